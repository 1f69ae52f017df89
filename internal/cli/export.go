// internal/cli/export.go
package evalscope

import (
	"fmt"

	"github.com/mwiater/evalscope/internal/explore"
	"github.com/mwiater/evalscope/internal/export"
	"github.com/mwiater/evalscope/internal/notify"
	"github.com/mwiater/evalscope/internal/results"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	format    string
	task      string
	family    string
	model     string
	technique string
	benchmark string
}

var exportOpts exportOptions

// exportCmd writes the filtered record population to a file without opening
// the explorer, so exports can be scripted.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered benchmark records to JSON or CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		notifier := notify.NewConsole()

		store := results.NewStore(cfg.ResultsFilePath(), notifier)
		store.Load()

		engine := explore.NewEngine(store.Records())
		// Outer to inner so task's cascade cannot clobber inner flags.
		for _, sel := range []struct {
			dim   explore.Dimension
			value string
		}{
			{explore.DimTask, exportOpts.task},
			{explore.DimFamily, exportOpts.family},
			{explore.DimModel, exportOpts.model},
			{explore.DimTechnique, exportOpts.technique},
			{explore.DimBenchmark, exportOpts.benchmark},
		} {
			if sel.value != "" {
				engine.Select(sel.dim, sel.value)
			}
		}

		exporter := export.New(cfg.ExportDirPath(), notifier)
		var path string
		var err error
		switch exportOpts.format {
		case "json":
			path, err = exporter.ExportJSON(engine.FullView())
		case "csv":
			path, err = exporter.ExportCSV(engine.FullView())
		default:
			return fmt.Errorf("unknown export format %q (expected json or csv)", exportOpts.format)
		}
		if err != nil {
			return err
		}
		if path != "" {
			cmd.Printf("Export written to %s\n", path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOpts.format, "format", "json", "export format: json or csv")
	exportCmd.Flags().StringVar(&exportOpts.task, "task", "", "filter by training task")
	exportCmd.Flags().StringVar(&exportOpts.family, "family", "", "filter by model family")
	exportCmd.Flags().StringVar(&exportOpts.model, "model", "", "filter by model (run key)")
	exportCmd.Flags().StringVar(&exportOpts.technique, "technique", "", "filter by technique")
	exportCmd.Flags().StringVar(&exportOpts.benchmark, "benchmark", "", "filter by benchmark name")

	rootCmd.AddCommand(exportCmd)
}
