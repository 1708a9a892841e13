package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/interfaces/cli/output"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the assembly hierarchy as an ASCII tree",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.Tree(w, node)
	}),
}

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the root assembly's direct child parts",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.Parts(w, node)
	}),
}

var assembliesCmd = &cobra.Command{
	Use:   "assemblies",
	Short: "List the root assembly's direct child assemblies",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.Assemblies(w, node)
	}),
}

var flatCmd = &cobra.Command{
	Use:   "flat",
	Short: "List every part occurrence in the tree, depth first",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.Flat(w, node)
	}),
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Total required quantity per part across all levels",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.Aggregate(w, node, s.cfg.Format)
	}),
}

var qtyCmd = &cobra.Command{
	Use:   "qty <part number>",
	Short: "Print the declared quantity of one direct child of the root",
	Args:  cobra.ExactArgs(1),
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

		qty, err := node.QTY(entities.PartNumber(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), qty.String())
		return nil
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Emit the tree as a Graphviz digraph",
	Args:  cobra.NoArgs,
	RunE: withTree(func(s *settings, node *bom.Node, w io.Writer) error {
		return output.WriteDot(w, node)
	}),
}
