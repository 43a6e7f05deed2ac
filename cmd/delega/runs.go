package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/delega-dev/delega/internal/config"
	"github.com/delega-dev/delega/internal/history"
	"github.com/delega-dev/delega/pkg/models"
)

var (
	runsLimit  int
	runsShowID string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past orchestration runs",
	Long: `List runs recorded in the history database, newest first.

Use --show <id> to print the stored plan and aggregated result of one run.`,
	RunE: listRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVar(&runsShowID, "show", "", "Show the full record for a run ID")
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path := cfg.History.Path
	if path == "" {
		path = history.DefaultPath()
	}
	db, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}

	if runsShowID != "" {
		return showRun(db, runsShowID)
	}

	records, err := db.ListRuns(runsLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s  %s  %s\n",
			rec.ID[:8],
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			statusString(rec.Status),
			rec.Goal)
	}
	return nil
}

func showRun(db *history.DB, id string) error {
	rec, err := db.GetRun(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no run with ID %q", id)
	}

	fmt.Printf("ID:      %s\n", rec.ID)
	fmt.Printf("Goal:    %s\n", rec.Goal)
	fmt.Printf("Model:   %s\n", rec.Model)
	fmt.Printf("Status:  %s\n", statusString(rec.Status))
	fmt.Printf("Started: %s\n", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if rec.CompletedAt != nil {
		fmt.Printf("Ended:   %s\n", rec.CompletedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if rec.Error != "" {
		fmt.Fprintf(os.Stderr, "Error:   %s\n", color.RedString(rec.Error))
	}
	if rec.PlanJSON != "" {
		fmt.Printf("\nPlan:\n%s\n", rec.PlanJSON)
	}
	if rec.ResultJSON != "" {
		fmt.Printf("\nResult:\n%s\n", rec.ResultJSON)
	}
	return nil
}

func statusString(s models.RunStatus) string {
	switch s {
	case models.RunStatusDone:
		return color.GreenString("done")
	case models.RunStatusFailed:
		return color.RedString("failed")
	case models.RunStatusRunning:
		return color.YellowString("running")
	default:
		return string(s)
	}
}
