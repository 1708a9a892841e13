package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
)

var decimalOne = decimal.NewFromInt(1)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(14)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// childItem is one row of an assembly screen: a direct child with its
// declared quantity.
type childItem struct {
	child bom.Child
}

func (i childItem) Title() string {
	prefix := "[P]"
	name := ""
	if i.child.IsPart() {
		name = i.child.Part.Name
	} else {
		prefix = "[A]"
		if i.child.Node.Item != nil {
			name = i.child.Node.Item.Name
		}
	}

	qty := ""
	if !i.child.Link.Quantity.Equal(decimalOne) {
		qty = "(" + i.child.Link.Quantity.String() + ")"
	}

	return fmt.Sprintf("%s %-7s %-20s %s", prefix, qty, i.child.Link.PartNumber, name)
}

func (i childItem) Description() string { return "" }

func (i childItem) FilterValue() string { return string(i.child.Link.PartNumber) }

// screen is one level of the drill-down stack: an assembly list or a
// part detail, never both.
type screen struct {
	node *bom.Node
	list list.Model
	part *entities.Item
}

// Model is the bubbletea model for the BOM browser: a screen stack
// rooted at the top assembly.
type Model struct {
	root  *bom.Node
	stack []screen

	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over a built BOM tree.
func NewModel(root *bom.Node) Model {
	m := Model{root: root}
	m.stack = []screen{{node: root, list: m.newList(root)}}
	return m
}

// Browse opens the interactive browser over a built tree and blocks
// until the user quits.
func Browse(root *bom.Node) error {
	_, err := tea.NewProgram(NewModel(root), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.stack {
			if m.stack[i].node != nil {
				m.stack[i].list.SetSize(m.width, m.listHeight())
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc", "backspace", "left":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
			}
			return m, nil

		case "enter":
			return m.openSelected()
		}
	}

	top := &m.stack[len(m.stack)-1]
	if top.node != nil {
		var cmd tea.Cmd
		top.list, cmd = top.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.breadcrumb()))
	b.WriteString("\n")

	top := m.stack[len(m.stack)-1]
	if top.node != nil {
		b.WriteString(top.list.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter open · esc back · q quit"))
	} else {
		b.WriteString(m.partView(top.part))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back · q quit"))
	}

	return b.String()
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	top := m.stack[len(m.stack)-1]
	if top.node == nil {
		return m, nil
	}

	item, ok := top.list.SelectedItem().(childItem)
	if !ok {
		return m, nil
	}

	if item.child.IsPart() {
		m.stack = append(m.stack, screen{part: item.child.Part})
	} else {
		node := item.child.Node
		m.stack = append(m.stack, screen{node: node, list: m.newList(node)})
	}
	return m, nil
}

func (m Model) newList(node *bom.Node) list.Model {
	items := make([]list.Item, 0, len(node.Children))
	for _, child := range node.Children {
		items = append(items, childItem{child: child})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, m.width, m.listHeight())
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

func (m Model) listHeight() int {
	// header and help line each take two rows with padding
	height := m.height - 4
	if height < 1 {
		height = 1
	}
	return height
}

func (m Model) breadcrumb() string {
	segments := make([]string, 0, len(m.stack))
	for _, s := range m.stack {
		if s.node != nil {
			segments = append(segments, string(s.node.PartNumber))
		} else {
			segments = append(segments, string(s.part.PartNumber))
		}
	}
	return strings.Join(segments, " > ")
}

// partView lists the catalog attributes of a part plus its total
// required quantity under the browsed root. Blank attributes are
// omitted.
func (m Model) partView(item *entities.Item) string {
	var b strings.Builder

	row := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailKeyStyle.Render(key))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("PN", string(item.PartNumber))
	row("Name", item.Name)
	row("Description", item.Description)
	row("Supplier", item.Supplier)
	row("Supplier PN", item.SupplierPN)
	row("Pkg QTY", fmt.Sprintf("%d", item.PkgQty))
	if !item.PkgPrice.IsZero() {
		row("Pkg Price", item.PkgPrice.StringFixed(2))
	}
	row("Kind", item.Kind.String())

	total := m.root.Aggregate()[item.PartNumber]
	b.WriteString("\n")
	b.WriteString(detailKeyStyle.Render("Total QTY"))
	b.WriteString(total.String())
	b.WriteString("\n")

	return b.String()
}
