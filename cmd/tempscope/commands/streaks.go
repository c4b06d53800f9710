package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// streaksCmd represents the streaks command
var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Find longest threshold streaks",
	Long: `Find the longest runs of consecutive days where the chosen metric
stayed above or below a threshold.

Example:
  tempscope streaks --file weather.csv --metric TMAX --threshold 95 --direction above --top 3
  tempscope streaks --file weather.csv --metric TMIN --threshold 32 --direction below`,
	RunE: runStreaks,
}

var (
	streaksMetric    string
	streaksThreshold float64
	streaksDirection string
	streaksTop       int
)

func init() {
	rootCmd.AddCommand(streaksCmd)

	streaksCmd.Flags().StringVar(&streaksMetric, "metric", "TMAX", "temperature metric (TMAX|TMIN|TAVG)")
	streaksCmd.Flags().Float64Var(&streaksThreshold, "threshold", 0, "temperature threshold in °F (required)")
	streaksCmd.Flags().StringVar(&streaksDirection, "direction", "above", "threshold direction (above|below)")
	streaksCmd.Flags().IntVar(&streaksTop, "top", 10, "number of results to show")

	streaksCmd.MarkFlagRequired("threshold")
}

func runStreaks(cmd *cobra.Command, args []string) error {
	metric, err := series.ParseMetric(streaksMetric)
	if err != nil {
		return err
	}
	direction, err := analysis.ParseDirection(streaksDirection)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	streaks := app.svc.Streaks(metric, streaksThreshold, direction, streaksTop)
	report.Streaks(os.Stdout, streaks, metric, streaksThreshold, direction)
	return nil
}
