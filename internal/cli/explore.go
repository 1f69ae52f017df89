// internal/cli/explore.go
package evalscope

import (
	"github.com/mwiater/evalscope/internal/export"
	"github.com/mwiater/evalscope/internal/notify"
	"github.com/mwiater/evalscope/internal/results"
	"github.com/mwiater/evalscope/internal/tui"
	"github.com/spf13/cobra"
)

// exploreCmd launches the interactive benchmark explorer.
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively filter, aggregate, and export benchmark records",
	Long: `Load the evaluation-results document and open the interactive explorer:
cascading filters over task, family, model, technique, and benchmark, a
per-record list view and a per-model aggregate view, paging, and one-key
JSON/CSV export of the current filtered population.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		recorder := notify.NewRecorder()
		store := results.NewStore(cfg.ResultsFilePath(), recorder)
		exporter := export.New(cfg.ExportDirPath(), recorder)
		return tui.Run(store, exporter, recorder)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
