// Package cmd implements the gridx command line interface: it loads a
// declarative column configuration and a row file, applies sort/filter
// requests through the column model, and renders the grid either once or in
// the interactive viewer.
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/gridx/internal/config"
	"github.com/oakwood-commons/gridx/internal/expr"
	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/limiter"
	"github.com/oakwood-commons/gridx/internal/render"
	"github.com/oakwood-commons/gridx/pkg/column"
	"github.com/oakwood-commons/gridx/pkg/logger"
	"github.com/oakwood-commons/gridx/pkg/rows"
	"github.com/oakwood-commons/gridx/pkg/settings"
)

var (
	columnsPath    string
	rowsPath       string
	totalWidth     int
	noColor        bool
	rowNumberStyle string
	sortSpec       string
	filterSpec     string
	interactive    bool
	logLevel       int8
	window         limiter.Window
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Render tabular data under a declarative column configuration",
	Long: `gridx renders rows under a column configuration file: per-column
sizing (width, flex, min/max bounds), behavior flags, type-driven formatting,
and CEL value-getter expressions. Use -i for the interactive viewer.`,
	Version:       settings.VersionInformation.BuildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		params := settings.NewCliParams()
		params.MinLogLevel = logLevel
		params.NoColor = noColor
		cmd.SetContext(settings.IntoContext(cmd.Context(), params))
	},
}

// runParams returns the per-run settings stored by PersistentPreRun.
func runParams(cmd *cobra.Command) *settings.Run {
	if params, ok := settings.FromContext(cmd.Context()); ok {
		return params
	}
	return settings.NewCliParams()
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // cobra flag registration
func init() {
	rootCmd.RunE = runRoot
	rootCmd.PersistentFlags().StringVarP(&columnsPath, "columns", "c", "", "column configuration file (YAML)")
	rootCmd.PersistentFlags().IntVarP(&totalWidth, "width", "w", 0, "total grid width (0 = terminal width)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().Int8Var(&logLevel, "log-level", 0, "minimum log level (zap levels, negative = more verbose)")

	rootCmd.Flags().StringVarP(&rowsPath, "rows", "r", "", "row data file (JSON or YAML list of records)")
	rootCmd.Flags().StringVar(&rowNumberStyle, "row-numbers", "numbered", "row number style: numbered, index, none")
	rootCmd.Flags().StringVar(&sortSpec, "sort", "", "initial sort: field[:asc|desc]")
	rootCmd.Flags().StringVar(&filterSpec, "filter", "", "filter: field:operator:value")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive viewer")
	rootCmd.Flags().IntVar(&window.Limit, "limit", 0, "show only the first N rows (0 = all)")
	rootCmd.Flags().IntVar(&window.Offset, "offset", 0, "skip the first N rows")
	rootCmd.Flags().IntVar(&window.Tail, "tail", 0, "show only the last N rows")

	_ = rootCmd.MarkPersistentFlagRequired("columns")
	rootCmd.AddCommand(columnsCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	params := runParams(cmd)
	log := logger.Get(params.MinLogLevel)

	set, file, err := loadColumnSet()
	if err != nil {
		return err
	}
	if rowsPath == "" {
		return fmt.Errorf("no row data: --rows is required")
	}
	if err := window.Validate(); err != nil {
		return err
	}
	records, err := rows.LoadFile(rowsPath)
	if err != nil {
		return err
	}
	log.V(1).Info("loaded grid input", "columns", set.Len(), "rows", len(records))

	if filterSpec != "" {
		field, op, value, err := parseFilterSpec(filterSpec)
		if err != nil {
			return err
		}
		records, err = set.FilterRows(records, field, op, value)
		if err != nil {
			return err
		}
	}

	sortField, sortDir := parseSortSpec(sortSpec)
	if sortField != "" {
		records = set.SortRows(records, sortField, sortDir)
	}
	records = limiter.Apply(window, records)

	if interactive {
		m := grid.New(set, records)
		m.SetTitle(file.Grid.Title)
		if sortField != "" {
			m.SetSort(sortField, sortDir)
		}
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return fmt.Errorf("interactive viewer: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if file.Grid.Title != "" {
		fmt.Fprintln(out, file.Grid.Title)
	}
	fmt.Fprint(out, render.Table(set, records, renderOptions(file, params)))
	return nil
}

func renderOptions(file *config.File, params *settings.Run) render.Options {
	opts := render.Options{
		NoColor:        params.NoColor,
		TotalWidth:     totalWidth,
		RowNumberStyle: rowNumberStyle,
	}
	if opts.TotalWidth == 0 && file.Grid.Width > 0 {
		opts.TotalWidth = file.Grid.Width
	}
	if file.Grid.RowNumbers != "" && !rootCmd.Flags().Changed("row-numbers") {
		opts.RowNumberStyle = file.Grid.RowNumbers
	}
	return opts
}

func loadColumnSet() (*column.Set[expr.Row], *config.File, error) {
	file, err := config.Load(columnsPath)
	if err != nil {
		return nil, nil, err
	}
	compiler, err := expr.NewCompiler()
	if err != nil {
		return nil, nil, err
	}
	set, err := file.ColumnSet(compiler)
	if err != nil {
		return nil, nil, err
	}
	return set, file, nil
}

// parseSortSpec splits "field[:asc|desc]"; a bare field sorts ascending.
func parseSortSpec(spec string) (string, column.Direction) {
	if spec == "" {
		return "", column.DirectionNone
	}
	field, dir, found := strings.Cut(spec, ":")
	if !found {
		return field, column.DirectionAsc
	}
	d := column.ParseDirection(dir)
	if d == column.DirectionNone {
		d = column.DirectionAsc
	}
	return field, d
}

// parseFilterSpec splits "field:operator:value"; the value may itself
// contain colons.
func parseFilterSpec(spec string) (field, op string, value any, err error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return "", "", nil, fmt.Errorf("invalid --filter %q (want field:operator[:value])", spec)
	}
	field, op = parts[0], parts[1]
	if len(parts) == 3 {
		value = parts[2]
	}
	return field, op, value, nil
}

// detectWidth returns the terminal width for subcommands that render tables
// without an explicit --width.
func detectWidth() int {
	if totalWidth > 0 {
		return totalWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
