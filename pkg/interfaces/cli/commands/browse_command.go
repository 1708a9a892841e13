package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/bom/pkg/interfaces/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the full-screen BOM browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}
		defer func() { _ = s.logger.Sync() }()

		node, _, err := loadTree(s)
		if err != nil {
			return err
		}
		return tui.Browse(node)
	},
}
