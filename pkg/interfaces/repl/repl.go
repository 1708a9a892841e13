package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/vsinha/bom/pkg/application/services/summary"
	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/interfaces/cli/output"
	"github.com/vsinha/bom/pkg/interfaces/tui"
)

const welcome = "bom interactive mode  (type 'help' for commands, 'quit' to exit)\nSource: %s\n"

const prompt = "bom> "

// REPL is an interactive shell over one built BOM tree. It prints the
// tree on startup and then answers query commands until quit or EOF.
type REPL struct {
	node   *bom.Node
	source string
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	// browse launches the full-screen browser. Swappable so tests do
	// not need a terminal.
	browse func(*bom.Node) error
}

// New creates a REPL reading commands from in and writing results to
// out. source is the file or directory the tree was loaded from, shown
// in the welcome banner. A nil logger disables logging.
func New(node *bom.Node, source string, in io.Reader, out io.Writer, logger *zap.Logger) *REPL {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &REPL{
		node:   node,
		source: source,
		in:     in,
		out:    out,
		logger: logger,
		browse: tui.Browse,
	}
}

// Run executes the command loop until quit, exit, or EOF.
func (r *REPL) Run() error {
	fmt.Fprintf(r.out, welcome, r.source)
	fmt.Fprintln(r.out)
	io.WriteString(r.out, r.node.Tree())
	fmt.Fprintln(r.out)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if r.dispatch(line) {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the loop should
// stop.
func (r *REPL) dispatch(line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	r.logger.Debug("dispatching command", zap.String("command", command))

	switch command {
	case "tree":
		r.report(output.Tree(r.out, r.node))

	case "parts":
		r.report(output.Parts(r.out, r.node))

	case "assemblies":
		r.report(output.Assemblies(r.out, r.node))

	case "flat":
		r.report(output.Flat(r.out, r.node))

	case "aggregate":
		r.report(output.Aggregate(r.out, r.node, "text"))

	case "qty":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "usage: qty <part number>")
			return false
		}
		qty, err := r.node.QTY(entities.PartNumber(args[0]))
		if err != nil {
			r.report(err)
			return false
		}
		fmt.Fprintln(r.out, qty.String())

	case "summary":
		service := summary.NewSummaryService(r.node.Catalog())
		result, err := service.BuildSummary(r.node)
		if err != nil {
			r.report(err)
			return false
		}
		r.report(output.Summary(r.out, result, "text"))

	case "browse":
		r.report(r.browse(r.node))

	case "help":
		r.printHelp()

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(r.out, "Unknown command: %q  (type 'help' for commands)\n", line)
	}

	return false
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	help := [][2]string{
		{"tree", "Print the assembly hierarchy"},
		{"parts", "List the root's direct child parts"},
		{"assemblies", "List the root's direct child assemblies"},
		{"flat", "List every part occurrence in the tree"},
		{"aggregate", "Total required quantity per part"},
		{"qty <pn>", "Declared quantity of one direct child"},
		{"summary", "Purchasing summary with package rounding"},
		{"browse", "Open the interactive browser"},
		{"help", "Show this help"},
		{"quit", "Exit"},
	}
	for _, entry := range help {
		fmt.Fprintf(r.out, "  %-12s %s\n", entry[0], entry[1])
	}
}

func (r *REPL) report(err error) {
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}
