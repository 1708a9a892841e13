// Package commands wires the BOM reports, the REPL, and the browser
// into the bom command line tool.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vsinha/bom/pkg/domain/bom"
	"github.com/vsinha/bom/pkg/domain/entities"
	"github.com/vsinha/bom/pkg/infrastructure/config"
	"github.com/vsinha/bom/pkg/infrastructure/logging"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/bom/pkg/infrastructure/repositories/xlsx"
)

var (
	workbookFile  string
	bomDir        string
	partsListName string
	outputPath    string
	format        string
	configPath    string
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   "bom [directory]",
		Short: "Explode and cost multi-level BOMs kept in spreadsheet tables",
		Long: `bom reads a parts catalog and per-assembly tables from a folder of
CSV/xlsx files or from a single workbook, builds the assembly tree, and
reports aggregated quantities and package-rounded purchase costs.

Run without a subcommand to drop into an interactive shell on the
current directory (or the one given as an argument).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if workbookFile != "" || bomDir != "" {
					return fmt.Errorf("must specify either a directory argument or --file/--dir, not both")
				}
				bomDir = args[0]
			}
			if workbookFile == "" && bomDir == "" {
				bomDir = "."
			}
			return runREPL(cmd)
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workbookFile, "file", "f", "",
		"workbook whose first sheet is the parts list and every other sheet an assembly")
	rootCmd.PersistentFlags().StringVarP(&bomDir, "dir", "d", "",
		"folder holding a parts list table and one table per assembly")
	rootCmd.PersistentFlags().StringVar(&partsListName, "parts-list", "",
		`base name of the parts list table (default "Parts list")`)
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "",
		"write the report to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&format, "format", "",
		`report format for summary and aggregate: text, json or csv (default "text")`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		`config file (default "bom.yaml" in the working directory)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(
		treeCmd,
		partsCmd,
		assembliesCmd,
		flatCmd,
		aggregateCmd,
		qtyCmd,
		dotCmd,
		summaryCmd,
		replCmd,
		browseCmd,
	)
}

// settings is the merged flag and config state one invocation runs
// with. Explicit flags win over config file values.
type settings struct {
	cfg    config.Config
	logger *zap.Logger
}

func resolveSettings() (*settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if partsListName != "" {
		cfg.PartsListName = partsListName
	}
	if format != "" {
		cfg.Format = format
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(logging.Config{Level: level})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &settings{cfg: cfg, logger: logger}, nil
}

// loadTree loads the tables named by --file or --dir and builds the
// root assembly tree. It returns the tree and the source path for
// display.
func loadTree(s *settings) (*bom.Node, string, error) {
	if workbookFile != "" && bomDir != "" {
		return nil, "", fmt.Errorf("must specify either --file or --dir, not both")
	}

	var (
		items      []*entities.Item
		assemblies []*entities.Assembly
		source     string
		err        error
	)
	switch {
	case workbookFile != "":
		source = workbookFile
		items, assemblies, err = xlsx.NewLoader(s.logger).LoadWorkbook(workbookFile)
	case bomDir != "":
		source = bomDir
		items, assemblies, err = loadFolder(s, bomDir)
	default:
		return nil, "", fmt.Errorf("must specify either --file or --dir")
	}
	if err != nil {
		return nil, "", err
	}

	catalog := memory.NewCatalogRepository(len(items))
	if err := catalog.LoadItems(items); err != nil {
		return nil, "", fmt.Errorf("failed to load catalog into repository: %w", err)
	}

	assemblyRepo := memory.NewAssemblyRepository(len(assemblies))
	if err := assemblyRepo.LoadAssemblies(assemblies); err != nil {
		return nil, "", fmt.Errorf("failed to load assemblies into repository: %w", err)
	}

	node, err := bom.NewBuilder(catalog, assemblyRepo).BuildRoot()
	if err != nil {
		return nil, "", err
	}
	return node, source, nil
}

// loadFolder picks the loader from the folder's contents: any workbook
// present means the xlsx layout, otherwise CSV tables.
func loadFolder(s *settings, dir string) ([]*entities.Item, []*entities.Assembly, error) {
	hasWorkbooks, err := folderHasWorkbooks(dir)
	if err != nil {
		return nil, nil, err
	}
	if hasWorkbooks {
		return xlsx.NewLoader(s.logger).LoadFolder(dir, s.cfg.PartsListName)
	}
	return csv.NewLoader(s.logger).LoadFolder(dir, s.cfg.PartsListName)
}

func folderHasWorkbooks(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read BOM directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, "~") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			return true, nil
		}
	}
	return false, nil
}

// openOutput returns the report destination: fallback (the command's
// stdout) by default, or the file named by --output.
func openOutput(fallback io.Writer) (io.Writer, func() error, error) {
	if outputPath == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return f, f.Close, nil
}

// withTree wraps a report renderer with the shared load and output
// plumbing.
func withTree(render func(s *settings, node *bom.Node, w io.Writer) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}
		defer func() { _ = s.logger.Sync() }()

		node, _, err := loadTree(s)
		if err != nil {
			return err
		}

		w, closeOutput, err := openOutput(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := render(s, node, w); err != nil {
			closeOutput()
			return err
		}
		return closeOutput()
	}
}
