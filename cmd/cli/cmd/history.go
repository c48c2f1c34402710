package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telemetry-codec/internal/history"
)

var (
	// History command flags
	historySetName string
	historyLimit   int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past encoding runs from the history database",
	Long: `List the most recent encoding runs recorded by the report command,
newest first. Requires history to be enabled in the configuration.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historySetName, "set", "s", "", "Only show runs for this command set")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled; enable it in the configuration first")
	}

	db, err := history.NewGormDB(&cfg.History)
	if err != nil {
		return err
	}
	defer history.Close(db)

	runs, err := history.NewGormRunRepository(db).ListRecent(cmd.Context(), historySetName, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		log.Info("No recorded runs")
		return nil
	}

	log.Info("%-5s %-20s %-18s %6s %5s %5s %5s %8s %5s", "ID", "Set", "When", "Target", "Cmds", "Min", "Max", "Avg", "Over")
	for _, r := range runs {
		log.Info("%-5d %-20s %-18s %6d %5d %5d %5d %8.2f %5d",
			r.ID, r.SetName, r.CreatedAt.Format("2006-01-02 15:04"),
			r.TargetBits, r.Commands, r.MinBits, r.MaxBits, r.AvgBits, r.OverBudget)
	}
	return nil
}
