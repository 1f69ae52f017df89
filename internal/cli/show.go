// internal/cli/show.go
package evalscope

import (
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mwiater/evalscope/internal/explore"
	"github.com/mwiater/evalscope/internal/notify"
	"github.com/mwiater/evalscope/internal/results"
	"github.com/mwiater/evalscope/internal/util"
	"github.com/spf13/cobra"
)

// showCmd prints the per-model aggregate summary without the TUI.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the per-model aggregate summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		notifier := notify.NewConsole()

		store := results.NewStore(cfg.ResultsFilePath(), notifier)
		store.Load()

		if DebugEnabled() {
			pp.Println(store.Records())
		}

		engine := explore.NewEngine(store.Records())
		summaries := explore.Aggregate(engine.AggregateView())
		if len(summaries) == 0 {
			return nil
		}

		header := color.New(color.Bold, color.Underline)
		header.Printf("%s %s %s %s %s\n",
			util.PadRight("MODEL", 34),
			util.PadRight("RUNS", 5),
			util.PadRight("AVG%", 7),
			util.PadRight("BEST", 24),
			util.PadRight("WORST", 24))

		for _, s := range summaries {
			cmd.Printf("%s %s %s %s %s\n",
				util.PadRight(s.ModelName, 34),
				util.PadRight(itoa(s.BenchmarkCount), 5),
				util.PadRight(ftoa(s.Average), 7),
				util.PadRight(s.Best.BenchmarkLabel+" ("+ftoa(s.Best.Accuracy)+")", 24),
				util.PadRight(s.Worst.BenchmarkLabel+" ("+ftoa(s.Worst.Accuracy)+")", 24))
		}

		if top, ok := explore.TopModel(summaries); ok {
			color.New(color.FgGreen, color.Bold).Printf("\nTop model: %s (avg %s%%)\n", top.ModelName, ftoa(top.Average))
			for _, score := range explore.DetailBenchmarks(engine.AggregateView(), top.ModelName) {
				cmd.Printf("  %s %s\n", util.PadRight(score.BenchmarkLabel, 30), ftoa(score.Accuracy))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
