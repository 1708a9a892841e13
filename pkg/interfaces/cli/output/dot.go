package output

import (
	"fmt"
	"io"

	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
)

// WriteDot emits a GraphViz compatible definition of the BOM tree. One
// node statement per part number, one edge per declared link, edges
// labeled with the declared quantity. A multi-use assembly's subtree is
// emitted once.
func WriteDot(w io.Writer, root *bom.Node) error {
	if _, err := io.WriteString(w, "digraph {\n"); err != nil {
		return err
	}

	seen := make(map[entities.PartNumber]bool)
	if err := writeDotNode(w, root, seen); err != nil {
		return err
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

func writeDotNode(w io.Writer, node *bom.Node, seen map[entities.PartNumber]bool) error {
	if seen[node.PartNumber] {
		return nil
	}
	seen[node.PartNumber] = true

	if _, err := fmt.Fprintf(w, "\t%q;\n", string(node.PartNumber)); err != nil {
		return err
	}

	for _, child := range node.Children {
		if child.IsPart() && !seen[child.Part.PartNumber] {
			seen[child.Part.PartNumber] = true
			if _, err := fmt.Fprintf(w, "\t%q;\n", string(child.Part.PartNumber)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q];\n",
			string(node.PartNumber),
			string(child.Link.PartNumber),
			child.Link.Quantity.String()); err != nil {
			return err
		}

		if !child.IsPart() {
			if err := writeDotNode(w, child.Node, seen); err != nil {
				return err
			}
		}
	}

	return nil
}
