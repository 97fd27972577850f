package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ksandoval/mood-mirror/internal/engine"
)

var analyzeThreshold float64

var analyzeCmd = &cobra.Command{
	Use:   "analyze <logs.json>",
	Short: "Analyze a local mood log file and print the report",
	Long: `Analyze reads a JSON file with the same shape as the /analyze request body
({"user_name": ..., "daily_logs": [...], "camera_moods": [...]}) and prints
the resulting report to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", engine.DefaultCorrelationThreshold,
		"minimum cluster-mean delta for a feature to count as mood-correlated")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeFile mirrors the /analyze request body.
type analyzeFile struct {
	UserName    string           `json:"user_name"`
	DailyLogs   []engine.MoodLog `json:"daily_logs"`
	CameraMoods []engine.MoodLog `json:"camera_moods"`
}

func runAnalyze(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	var file analyzeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing log file: %w", err)
	}

	e := engine.New(engine.Config{CorrelationThreshold: analyzeThreshold})

	res, err := e.Analyze(engine.Request{
		UserName:   file.UserName,
		SurveyLogs: file.DailyLogs,
		CameraLogs: file.CameraMoods,
	})
	if err != nil {
		return fmt.Errorf("analyzing logs: %w", err)
	}

	fmt.Print(engine.FormatResult(res))
	return nil
}
