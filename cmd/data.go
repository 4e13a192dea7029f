package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/pipeline"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Show history and descriptive statistics for a selection",
	RunE:  runData,
}

func init() {
	rootCmd.AddCommand(dataCmd)
}

func runData(_ *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	sel, err := resolveSelection(st)
	if err != nil {
		return err
	}

	series, err := pipeline.SeriesFor(st, sel)
	if err != nil {
		return err
	}

	name, _ := category.LabelFor(sel.Division)
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s · %s", name, sel.State)))

	if len(series) == 0 {
		fmt.Println(cli.RenderNotice("No data in the selected range."))
		return nil
	}

	latest, _ := series.Latest()
	fmt.Printf("\n  Latest: %s%%  (%s)\n\n",
		cli.FormatSigned(latest.InflationMoM), cli.FormatMonthName(latest.Date))

	fmt.Printf("  %s\n\n", cli.Sparkline(series.Values()))

	stats, ok := pipeline.Describe(series)
	if !ok {
		return nil
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Descriptive Statistics (MoM %)",
		Headers: []string{"stat", "value"},
		Rows: [][]string{
			{"count", cli.FormatCount(stats.Count)},
			{"mean", cli.FormatValue(stats.Mean)},
			{"std", cli.FormatValue(stats.Std)},
			{"min", cli.FormatValue(stats.Min)},
			{"25%", cli.FormatValue(stats.P25)},
			{"50%", cli.FormatValue(stats.Median)},
			{"75%", cli.FormatValue(stats.P75)},
			{"max", cli.FormatValue(stats.Max)},
		},
	}))

	return nil
}
