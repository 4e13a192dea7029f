package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmaia/cpidash/internal/config"
	"github.com/dmaia/cpidash/internal/pipeline"
	"github.com/dmaia/cpidash/internal/store"
)

var (
	flagCategory string
	flagState    string
	flagFrom     string
	flagTo       string
	flagURL      string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "cpidash",
	Short: "Regional CPI dashboard",
	Long:  "Explore regional month-over-month consumer price inflation: history, statistics, and a 6-month projection.",
	RunE:  runData,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Spending category (division code or name)")
	rootCmd.PersistentFlags().StringVarP(&flagState, "state", "s", "", "Region (state name)")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Range start (YYYY-MM)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Range end (YYYY-MM)")
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "Dataset URL override")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadStore is the shared data loading path used by all commands. The load
// is memoized process-wide; only the first call fetches.
func loadStore() (*store.Store, error) {
	cfg, _ := config.Load()
	url := flagURL
	if url == "" {
		url = config.DatasetURL(cfg)
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching dataset...\n")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := pipeline.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		n, _ := st.Count()
		fmt.Fprintf(os.Stderr, "  Loaded %d observations\n", n)
	}
	return st, nil
}

// resolveSelection turns the flags (falling back to config defaults, then to
// the first offered value) into a concrete selection.
func resolveSelection(st *store.Store) (pipeline.Selection, error) {
	cfg, _ := config.Load()

	catInput := flagCategory
	if catInput == "" {
		catInput = cfg.General.DefaultCategory
	}

	var sel pipeline.Selection

	if catInput != "" {
		code, err := pipeline.ResolveCategory(catInput)
		if err != nil {
			return sel, err
		}
		sel.Division = code
	} else {
		cats, err := st.Categories()
		if err != nil {
			return sel, err
		}
		if len(cats) == 0 {
			return sel, fmt.Errorf("dataset has no mapped categories")
		}
		code, _ := pipeline.ResolveCategory(cats[0])
		sel.Division = code
	}

	sel.State = flagState
	if sel.State == "" {
		sel.State = cfg.General.DefaultState
	}
	if sel.State == "" {
		states, err := st.States(sel.Division)
		if err != nil {
			return sel, err
		}
		if len(states) == 0 {
			return sel, fmt.Errorf("no regions found for category %q", sel.Division)
		}
		sel.State = states[0]
	}

	r, err := pipeline.ParseRange(flagFrom, flagTo)
	if err != nil {
		return sel, err
	}
	sel.Range = r

	return sel, nil
}
