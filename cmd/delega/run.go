package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/delega-dev/delega/internal/api"
	"github.com/delega-dev/delega/internal/config"
	"github.com/delega-dev/delega/internal/history"
	"github.com/delega-dev/delega/internal/orchestrator"
	"github.com/delega-dev/delega/internal/planner"
	"github.com/delega-dev/delega/pkg/models"
)

var (
	runModel           string
	runTemperature     float64
	runOutput          string
	runTimeout         time.Duration
	runSpecialistsFile string
	runNoHistory       bool
	runQuiet           bool
)

var runCmd = &cobra.Command{
	Use:   "run <goal>",
	Short: "Decompose a goal and delegate subtasks to specialists",
	Long: `Run the full orchestration pipeline on a high-level goal.

The goal is decomposed into subtasks by a single planning call, each
subtask is delegated to its assigned specialist in order, and the
outputs are aggregated into a JSON object keyed by specialist name
(a repeated specialist yields an ordered array of outputs).

Built-in specialists: Research, Copywriting, AdDesign.
Additional specialists can be supplied with --specialists (YAML file).

The aggregated result is written to stdout, or to a file with --output.`,
	Args: cobra.ExactArgs(1),
	RunE: runGoal,
}

func init() {
	runCmd.Flags().StringVar(&runModel, "model", "", "Model for planning and delegation (default from config)")
	runCmd.Flags().Float64Var(&runTemperature, "temperature", -1, "Specialist sampling temperature (default from config)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write the aggregated result to a file instead of stdout")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Whole-run timeout (default from config; 0 uses config value)")
	runCmd.Flags().StringVar(&runSpecialistsFile, "specialists", "", "YAML file with additional specialist definitions")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record this run in the history database")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Suppress progress output")
}

func runGoal(cmd *cobra.Command, args []string) error {
	goal := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if runModel != "" {
		cfg.Defaults.Model = runModel
	}
	if runTemperature >= 0 {
		cfg.Defaults.SpecialistTemperature = runTemperature
	}
	timeout := cfg.Defaults.Timeout
	if runTimeout > 0 {
		timeout = runTimeout
	}

	client, err := api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Defaults.Model),
		APIKey:        cfg.Anthropic.APIKey,
		UseAWSBedrock: cfg.Anthropic.UseBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
	})
	if err != nil {
		return err
	}
	runner := api.NewRunner(client)

	registry, err := buildRegistry(runner, cfg, runSpecialistsFile)
	if err != nil {
		return err
	}

	plannerTemp := cfg.Defaults.PlannerTemperature
	gen := planner.New(planner.Config{
		Completer:   runner,
		Temperature: &plannerTemp,
	})

	var sink orchestrator.EventSink = orchestrator.NopSink{}
	if !runQuiet {
		sink = newConsoleSink(os.Stderr)
	}

	orc := orchestrator.New(orchestrator.Config{
		Registry: registry,
		Planner:  gen,
		Events:   sink,
	})

	db := openHistory(cfg, runNoHistory)
	if db != nil {
		defer db.Close()
	}

	rec := &models.RunRecord{
		ID:        uuid.New().String(),
		Goal:      goal,
		Model:     cfg.Defaults.Model,
		Status:    models.RunStatusRunning,
		StartedAt: time.Now(),
	}
	recordRun(db, rec)

	// The only supported abort mechanism is this caller-level timeout
	// around the whole run.
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, runErr := orc.Run(ctx, goal)

	now := time.Now()
	rec.CompletedAt = &now
	if runErr != nil {
		rec.Status = models.RunStatusFailed
		rec.Error = runErr.Error()
		recordRun(db, rec)
		return runErr
	}

	serialized, err := json.MarshalIndent(result.Aggregate, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize result: %w", err)
	}

	rec.Status = models.RunStatusDone
	rec.ResultJSON = string(serialized)
	if planJSON, err := result.PlanJSON(); err == nil {
		rec.PlanJSON = planJSON
	}
	recordRun(db, rec)

	in, out := client.Tracker().Total()
	if !runQuiet {
		fmt.Fprintf(os.Stderr, "%s %d steps, %d calls, %d in / %d out tokens\n",
			color.GreenString("✓"), len(result.Steps), client.Tracker().Calls(), in, out)
	}

	if runOutput != "" {
		if err := os.WriteFile(runOutput, append(serialized, '\n'), 0644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
		if !runQuiet {
			fmt.Fprintf(os.Stderr, "Results written to %s\n", runOutput)
		}
		return nil
	}

	fmt.Println(string(serialized))
	return nil
}

// openHistory opens the run-history database, or returns nil when history
// is disabled or unavailable. History is advisory: failures only warn.
func openHistory(cfg *config.Config, disabled bool) *history.DB {
	if disabled || !cfg.History.Enabled {
		return nil
	}
	path := cfg.History.Path
	if path == "" {
		path = history.DefaultPath()
	}
	db, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s history unavailable: %v\n", color.YellowString("⚠"), err)
		return nil
	}
	if err := db.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s history unavailable: %v\n", color.YellowString("⚠"), err)
		db.Close()
		return nil
	}
	return db
}

// recordRun persists a run record, warning on failure.
func recordRun(db *history.DB, rec *models.RunRecord) {
	if db == nil {
		return
	}
	if err := db.SaveRun(rec); err != nil {
		fmt.Fprintf(os.Stderr, "%s record run: %v\n", color.YellowString("⚠"), err)
	}
}
