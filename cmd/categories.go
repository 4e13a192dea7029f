package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/category"
	"github.com/dmaia/cpidash/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List selectable spending categories present in the dataset",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	st, err := loadStore()
	if err != nil {
		return err
	}

	labels, err := st.Categories()
	if err != nil {
		return err
	}

	rows := make([][]string, len(labels))
	for i, name := range labels {
		code, _ := category.CodeFor(name)
		rows[i] = []string{name, code}
	}

	fmt.Println(cli.RenderTable(cli.Table{
		Title:   "Categories",
		Headers: []string{"name", "code"},
		Rows:    rows,
	}))
	return nil
}
