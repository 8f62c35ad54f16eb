package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "hsnctl",
		Short: "Build and inspect HSN code datasets",
		Long: `hsnctl converts HSN master workbooks into the nested dataset the portal
loads at startup, and lets operators query a dataset the same way the
/api/hsn endpoint does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger.Init(level, true)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newImportCmd(), newSearchCmd(), newStatsCmd())
	return root
}

func newImportCmd() *cobra.Command {
	opts := hsn.DefaultImportOptions()
	var workbook, out string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert an HSN master workbook into a dataset file",
		Long: `Reads code and description columns from an .xlsx workbook and nests the
codes by prefix (2, 4, 6 then 8 digits). A code whose parent is missing is
attached to its longest existing prefix, or to the root.

The output format follows the --out extension (.json, .yaml or .yml).

Example:
  hsnctl import --xlsx HSN_MSTR.xlsx --sheet HSN --code-col A --desc-col B --out data/hsn_codes.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := hsn.FormatFromPath(out)
			if err != nil {
				return err
			}

			start := time.Now()
			rows, err := hsn.ReadWorkbook(workbook, opts)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return errors.New("workbook contains no HSN codes")
			}
			tree := hsn.BuildTree(rows)

			if err := writeDataset(out, tree, format); err != nil {
				return err
			}

			log.Debug().
				Str("workbook", workbook).
				Int("rows", len(rows)).
				Dur("duration", time.Since(start)).
				Msg("Workbook imported")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d codes (%d chapters) into %s\n", tree.Count(), tree.Len(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&workbook, "xlsx", "", "HSN master workbook (.xlsx)")
	cmd.Flags().StringVar(&out, "out", "", "dataset file to write (.json, .yaml)")
	cmd.Flags().StringVar(&opts.Sheet, "sheet", "", "sheet name (default first sheet)")
	cmd.Flags().StringVar(&opts.CodeColumn, "code-col", opts.CodeColumn, "column holding the HSN code")
	cmd.Flags().StringVar(&opts.DescriptionColumn, "desc-col", opts.DescriptionColumn, "column holding the description")
	cmd.Flags().IntVar(&opts.HeaderRows, "header-rows", opts.HeaderRows, "rows to skip before data")
	_ = cmd.MarkFlagRequired("xlsx")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func writeDataset(path string, tree hsn.Tree, format hsn.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return hsn.Encode(f, tree, format)
}

func newSearchCmd() *cobra.Command {
	var data string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search a dataset the way the portal does",
		Long: `Builds the index for a dataset and prints every entry whose description
contains all query words, in dataset order.

Example:
  hsnctl search --data data/hsn_codes.json cotton yarn`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, err := loadIndex(data)
			if err != nil {
				return err
			}

			results := ix.Search(strings.Join(args, " "))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, entry := range results {
				if limit > 0 && i == limit {
					break
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", entry.Code, entry.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if limit > 0 && len(results) > limit {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "... %d more\n", len(results)-limit)
				return err
			}
			if len(results) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&data, "data", "data/hsn_codes.json", "dataset file (.json, .yaml)")
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many matches (0 for all)")

	return cmd
}

func newStatsCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the number of indexed entries in a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := hsn.LoadFile(data)
			if err != nil {
				return err
			}
			ix := hsn.NewIndex(tree)

			leaves := 0
			for _, entry := range ix.Entries() {
				if len(hsn.NormalizeCode(entry.Code)) >= 6 {
					leaves++
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "entries\t%d\n", ix.Len())
			_, _ = fmt.Fprintf(w, "chapters\t%d\n", tree.Len())
			_, _ = fmt.Fprintf(w, "subheadings\t%d\n", leaves)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&data, "data", "data/hsn_codes.json", "dataset file (.json, .yaml)")

	return cmd
}

func loadIndex(path string) (*hsn.Index, error) {
	tree, err := hsn.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return hsn.NewIndex(tree), nil
}
