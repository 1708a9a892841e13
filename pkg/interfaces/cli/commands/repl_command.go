package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/bom/pkg/interfaces/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if workbookFile == "" && bomDir == "" {
			bomDir = "."
		}
		return runREPL(cmd)
	},
}

func runREPL(cmd *cobra.Command) error {
	s, err := resolveSettings()
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	node, source, err := loadTree(s)
	if err != nil {
		return err
	}

	return repl.New(node, source, cmd.InOrStdin(), cmd.OutOrStdout(), s.logger).Run()
}
