package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vsinha/bom/pkg/application/services/summary"
	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/interfaces/cli/output"
)

// SummaryConfig holds configuration for the summary command
type SummaryConfig struct {
	Format  string
	Verbose bool
}

// SummaryCommand aggregates a tree and renders the purchasing summary
type SummaryCommand struct {
	config SummaryConfig
}

// NewSummaryCommand creates a new summary command with the given configuration
func NewSummaryCommand(config SummaryConfig) *SummaryCommand {
	return &SummaryCommand{
		config: config,
	}
}

// Execute builds the summary for the tree and writes it to w
func (c *SummaryCommand) Execute(node *bom.Node, w io.Writer) error {
	if c.config.Verbose {
		fmt.Printf("🔄 Aggregating quantities under %s...\n", node.PartNumber)
	}

	service := summary.NewSummaryService(node.Catalog())
	result, err := service.BuildSummary(node)
	if err != nil {
		return fmt.Errorf("error building summary: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Summary built: %d purchasable parts\n\n", len(result.Rows))
	}

	return output.Summary(w, result, c.config.Format)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Report aggregated quantities with package-rounded purchase costs",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		command := NewSummaryCommand(SummaryConfig{
			Format:  s.cfg.Format,
			Verbose: verbose,
		})
		return command.Execute(node, w)
	}),
}
