package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/filex"
	"github.com/msto63/extkit/utils/tablex"
	"github.com/msto63/extkit/utils/tablex/tablestore"
)

type csvFlags struct {
	separator    string
	outSeparator string
	noHeader     bool
	infer        bool
	output       string
	storePath    string
}

func newCSVCommand(a *app) *cobra.Command {
	f := &csvFlags{}

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV files and manage table snapshots",
		Long: `Works with separator-joined CSV files: one header line with the
column names, then one line per row. Fields are not quoted.

Examples:
  extkit csv convert --out-separator "," people.csv
  extkit csv save people people.csv
  extkit csv load people -o people-restored.csv
  extkit csv list`,
	}

	csvCmd.PersistentFlags().StringVarP(&f.separator, "separator", "s", "", "Field separator (default: csv.separator)")
	csvCmd.PersistentFlags().BoolVar(&f.noHeader, "no-header", false, "Output omits the header line")
	csvCmd.PersistentFlags().BoolVar(&f.infer, "infer", false, "Infer value kinds when loading (default: csv.infer_types)")
	csvCmd.PersistentFlags().StringVar(&f.storePath, "store", "", "Snapshot database (default: store.path)")

	convertCmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Rewrite a CSV file with another separator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args, f)
		},
	}
	convertCmd.Flags().StringVar(&f.outSeparator, "out-separator", "", "Output separator (default: input separator)")
	convertCmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")

	saveCmd := &cobra.Command{
		Use:   "save <name> <input>",
		Short: "Store a CSV file as a named snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSave(cmd, args, f)
		},
	}

	loadCmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Write a stored snapshot as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLoad(cmd, args, f)
		},
	}
	loadCmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default: stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, f)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDelete(cmd, args, f)
		},
	}

	csvCmd.AddCommand(convertCmd, saveCmd, loadCmd, listCmd, deleteCmd)
	return csvCmd
}

// csvOptions merges command flags over the configuration
func (a *app) csvOptions(cmd *cobra.Command, f *csvFlags) tablex.CSVOptions {
	opts := tablex.CSVOptions{
		Separator:  a.cfg.GetString("csv.separator", tablex.DefaultSeparator),
		SkipHeader: !a.cfg.GetBool("csv.header", true),
		InferTypes: a.cfg.GetBool("csv.infer_types"),
	}
	if f.separator != "" {
		opts.Separator = unescapeSeparator(f.separator)
	}
	if cmd.Flags().Changed("no-header") {
		opts.SkipHeader = f.noHeader
	}
	if cmd.Flags().Changed("infer") {
		opts.InferTypes = f.infer
	}
	return opts
}

// unescapeSeparator accepts \t for a tab on the command line
func unescapeSeparator(sep string) string {
	if sep == `\t` {
		return "\t"
	}
	return sep
}

// readTable loads a CSV file; input files always start with a header line
func (a *app) readTable(path string, opts tablex.CSVOptions) (*tablex.Table, error) {
	opts.SkipHeader = false

	t := tablex.New()
	t.SetLogger(a.logger.WithName("tablex").WithFields(log.Fields{
		"file":      path,
		"separator": opts.Separator,
	}))
	if err := t.LoadCSVFile(path, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// writeTable writes t to path, or to the command output when path is empty
func (a *app) writeTable(cmd *cobra.Command, t *tablex.Table, path string, opts tablex.CSVOptions) error {
	if path == "" {
		return t.WriteCSV(cmd.OutOrStdout(), opts)
	}
	return filex.WriteLines(path, t.ToCSV(opts), 0644)
}

func (a *app) openStore(ctx context.Context, f *csvFlags) (*tablestore.SQLiteStore, error) {
	path := f.storePath
	if path == "" {
		path = a.cfg.GetString("store.path", tablestore.DefaultConfig().Path)
	}
	return tablestore.Open(ctx, tablestore.Config{
		Path:   path,
		Logger: a.logger.WithName("tablestore"),
	})
}

func (a *app) runConvert(cmd *cobra.Command, args []string, f *csvFlags) error {
	t, err := a.readTable(args[0], a.csvOptions(cmd, f))
	if err != nil {
		return err
	}

	out := a.csvOptions(cmd, f)
	if f.outSeparator != "" {
		out.Separator = unescapeSeparator(f.outSeparator)
	}

	a.logger.Info("converting table", log.Fields{
		"input":   args[0],
		"columns": t.ColumnCount(),
		"rows":    t.RowCount(),
	})
	return a.writeTable(cmd, t, f.output, out)
}

func (a *app) runSave(cmd *cobra.Command, args []string, f *csvFlags) error {
	name, input := args[0], args[1]

	t, err := a.readTable(input, a.csvOptions(cmd, f))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := a.openStore(ctx, f)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(ctx, name, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d columns, %d rows) as %s\n", name, t.ColumnCount(), t.RowCount(), id)
	return nil
}

func (a *app) runLoad(cmd *cobra.Command, args []string, f *csvFlags) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := a.openStore(ctx, f)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	return a.writeTable(cmd, t, f.output, a.csvOptions(cmd, f))
}

func (a *app) runList(cmd *cobra.Command, f *csvFlags) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := a.openStore(ctx, f)
	if err != nil {
		return err
	}
	defer store.Close()

	snapshots, err := store.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{"NAME", "COLUMNS", "ROWS", "CREATED", "ID"}, "\t"))
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", s.Name, s.Columns, s.Rows, s.CreatedAt.Format(time.RFC3339), s.ID)
	}
	return w.Flush()
}

func (a *app) runDelete(cmd *cobra.Command, args []string, f *csvFlags) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	store, err := a.openStore(ctx, f)
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Delete(ctx, args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("snapshot %q not found", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}
