package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"faunadash/adapters/excel"
	"faunadash/internal/config"
	"faunadash/internal/dashboard"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "faunadash",
		Short:         "Fauna dashboard in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newSummaryCmd())
	return rootCmd
}

func newSummaryCmd() *cobra.Command {
	var years []string
	var municipalities []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary [file.xlsx]",
		Short: "Print the dashboard for a workbook",
		Long: `Load the first sheet of a workbook and print the same figures the web
dashboard shows. Without --year every year is used; without --municipality
the preferred municipality is used when present.

Example: faunadash summary fauna.xlsx --year 2019,2020 --municipality BELLO`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var sel dashboard.Selection
			if cmd.Flags().Changed("year") {
				sel.Years = nonNil(years)
			}
			if cmd.Flags().Changed("municipality") {
				sel.Municipalities = nonNil(municipalities)
			}

			view, err := runSummary(args[0], sel, dashboard.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			printView(cmd.OutOrStdout(), view)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&years, "year", nil, "Years of remission to keep (repeat or comma separate)")
	cmd.Flags().StringSliceVar(&municipalities, "municipality", nil, "Municipalities of origin to keep")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view as JSON")

	return cmd
}

func runSummary(path string, sel dashboard.Selection, opts dashboard.Options) (dashboard.View, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return dashboard.View{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tbl, err := excel.NewDataReader(nil).ReadBytes(content)
	if err != nil {
		return dashboard.View{}, err
	}

	view := dashboard.Build(tbl, sel, opts)
	view.Filename = path
	return view, nil
}

func printView(w io.Writer, view dashboard.View) {
	fmt.Fprintf(w, "%s: %d registros, %d luego de filtros\n", view.Filename, view.SourceRows, view.FilteredRows)
	for _, f := range view.Filters {
		if f.Available {
			fmt.Fprintf(w, "%s: %v\n", f.Label, f.Selected)
		}
	}
	for _, n := range view.Notices {
		fmt.Fprintf(w, "! %s Se omite: %s.\n", n.Message, n.Feature)
	}

	fmt.Fprintln(w)
	for _, m := range []dashboard.Metric{view.Maltreatment, view.Trafficking, view.Total} {
		if m.Available {
			fmt.Fprintf(w, "%s: %d\n", m.Label, m.Value)
		} else {
			fmt.Fprintf(w, "%s: -\n", m.Label)
		}
	}

	for _, d := range []dashboard.Distribution{view.Classes, view.Municipalities} {
		if !d.Result.Available {
			if n, ok := view.Notice(d.Result.Column); ok {
				fmt.Fprintf(w, "\n%s: omitida. %s\n", d.Title, n.Message)
			}
			continue
		}
		fmt.Fprintf(w, "\n%s\n", d.Title)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\tCASOS\n", d.Label)
		for _, c := range d.Result.Counts {
			fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.Count)
		}
		tw.Flush()
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
