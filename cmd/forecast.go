package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
	"github.com/dmaia/cpidash/internal/pipeline"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project MoM inflation 6 months ahead for a selection",
	Long: "Fits an ordinary least-squares line to the full history of the selected " +
		"category and region and evaluates it 6 months forward. Any --from/--to " +
		"narrowing is ignored: the fit always uses full history.",
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	sel, err := resolveSelection(st)
	if err != nil {
		return err
	}

	full, err := pipeline.FullSeriesFor(st, sel)
	if err != nil {
		return err
	}

	name, _ := category.LabelFor(sel.Division)
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Forecast · %s · %s", name, sel.State)))

	if len(full) == 0 {
		fmt.Println(cli.RenderNotice("No data for this selection."))
		return nil
	}

	points, err := pipeline.Forecast(full)
	if err != nil {
		if errors.Is(err, pipeline.ErrInsufficientHistory) {
			fmt.Println(cli.RenderNotice(fmt.Sprintf(
				"Not enough data to forecast: %d observations, need at least %d.",
				len(full), pipeline.MinHistory)))
			return nil
		}
		return err
	}

	last, _ := full.Latest()
	fmt.Printf("\n  History: %s observations through %s\n\n",
		cli.FormatCount(len(full)), cli.FormatMonthName(last.Date))

	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{cli.FormatMonth(p.Date), cli.FormatValue(p.Predicted)}
	}
	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Projected MoM Inflation (%)",
		Headers: []string{"month", "predicted"},
		Rows:    rows,
	}))

	return nil
}
