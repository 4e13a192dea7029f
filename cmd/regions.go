package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/cli"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List regions with data for the selected category",
	RunE:  runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(_ *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	sel, err := resolveSelection(st)
	if err != nil {
		return err
	}

	states, err := st.States(sel.Division)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Println(cli.RenderNotice("No regions found for this category."))
		return nil
	}

	rows := make([][]string, len(states))
	for i, s := range states {
		lo, hi, ok, err := st.DateBounds(sel.Division, s)
		if err != nil {
			return err
		}
		span := ""
		if ok {
			span = fmt.Sprintf("%s – %s", cli.FormatMonth(lo), cli.FormatMonth(hi))
		}
		rows[i] = []string{s, span}
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Regions",
		Headers: []string{"state", "available range"},
		Rows:    rows,
	}))
	return nil
}
