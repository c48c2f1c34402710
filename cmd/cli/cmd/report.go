package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/telemetry-codec/internal/history"
	"github.com/telemetry-codec/internal/huffman"
	"github.com/telemetry-codec/internal/report"
	"github.com/telemetry-codec/internal/storage"
	"github.com/telemetry-codec/pkg/model"
	"github.com/telemetry-codec/pkg/utils"
	"github.com/telemetry-codec/pkg/writer"
)

var (
	// Report command flags
	reportCommandFile string
	reportOutputDir   string
	reportTargetBits  int
	reportCompress    bool
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the Huffman code table report for a command set",
	Long: `Build the Huffman codebook for a command set and print the full report:
the per-character code table, the short form reference, each command's
encoded bit string with its size, and whether it fits the target bit budget.

The report is also written to report.json in the output directory, and
optionally gzipped.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportCommandFile, "file", "f", "", "Command file (built-in set if empty)")
	reportCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (config default if empty)")
	reportCmd.Flags().IntVar(&reportTargetBits, "target-bits", 0, "Per-command bit budget (config default if 0)")
	reportCmd.Flags().BoolVar(&reportCompress, "compress", false, "Also write a gzipped report")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	set, err := loadSet(reportCommandFile)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer("telemetry-codec").Start(cmd.Context(), "report")
	defer span.End()
	span.SetAttributes(
		attribute.String("codec.set_name", set.Name),
		attribute.Int("codec.commands", set.Len()),
	)

	targetBits := reportTargetBits
	if targetBits <= 0 {
		targetBits = cfg.Codec.TargetBits
	}
	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	log.Info("=== Telemetry Codec ===")
	log.Info("Command set:  %s (%d commands)", set.Name, set.Len())
	log.Info("Target bits:  %d", targetBits)
	log.Info("")

	timer := utils.NewTimer("report", utils.WithLogger(log), utils.WithEnabled(verbose))

	phase := timer.Start("build codebook")
	cb, err := huffman.NewCodebook(set.Strings())
	phase.Stop()
	if err != nil {
		return fmt.Errorf("build codebook: %w", err)
	}

	phase = timer.Start("generate report")
	gen := report.NewGenerator(targetBits)
	rep, err := gen.Generate(set, cb)
	phase.Stop()
	if err != nil {
		return err
	}

	report.NewFormatter().Format(rep, log)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	phase = timer.Start("write report")
	reportFile := filepath.Join(outputDir, "report.json")
	if err := writer.NewPrettyJSONWriter[*model.Report]().WriteToFile(rep, reportFile); err != nil {
		return err
	}
	log.Info("Report written to: %s", reportFile)

	if reportCompress || cfg.Output.Compress {
		gzFile := reportFile + ".gz"
		stats, err := writer.NewGzipWriter[*model.Report]().WriteToFileWithStats(rep, gzFile)
		if err != nil {
			return err
		}
		log.Info("Compressed report: %s (%d -> %d bytes, %.1f%%)",
			gzFile, stats.JSONSize, stats.CompressedSize, stats.CompressionPct)
	}
	phase.Stop()

	if cfg.Storage.Enabled {
		if err := archiveReport(ctx, set.Name, reportFile); err != nil {
			return err
		}
	}

	if cfg.History.Enabled {
		if err := recordRun(ctx, rep, reportFile); err != nil {
			return err
		}
	}

	timer.PrintSummary()
	return nil
}

// archiveReport copies the written report into the configured archive
// backend under a per-run key.
func archiveReport(ctx context.Context, setName, reportFile string) error {
	log := GetLogger()

	store, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s/%s/report.json", setName, time.Now().Format("20060102-150405"))
	if err := store.UploadFile(ctx, key, reportFile); err != nil {
		return fmt.Errorf("archive report: %w", err)
	}
	log.Info("Report archived to: %s", store.GetURL(key))
	return nil
}

// recordRun saves the run to the history database.
func recordRun(ctx context.Context, rep *model.Report, reportFile string) error {
	log := GetLogger()

	db, err := history.NewGormDB(&cfg.History)
	if err != nil {
		return err
	}
	defer history.Close(db)

	run, err := history.NewGormRunRepository(db).SaveRun(ctx, rep, reportFile)
	if err != nil {
		return err
	}
	log.Info("Run recorded in history as #%d", run.ID)
	return nil
}
