package bom

import "strings"

const (
	teeGlyph    = "├── "
	elbowGlyph  = "└── "
	pipeIndent  = "│   "
	blankIndent = "    "
)

// Tree renders the node and its subtree as indented text, one line per
// child in declared order. Pure presentation over the built structure.
func (n *Node) Tree() string {
	var sb strings.Builder
	sb.WriteString(string(n.PartNumber))
	sb.WriteString("\n")
	n.renderChildren(&sb, "")
	return sb.String()
}

func (n *Node) renderChildren(sb *strings.Builder, prefix string) {
	for i, child := range n.Children {
		glyph, indent := teeGlyph, pipeIndent
		if i == len(n.Children)-1 {
			glyph, indent = elbowGlyph, blankIndent
		}
		sb.WriteString(prefix)
		sb.WriteString(glyph)
		sb.WriteString(string(child.Link.PartNumber))
		sb.WriteString("\n")
		if !child.IsPart() {
			child.Node.renderChildren(sb, prefix+indent)
		}
	}
}
