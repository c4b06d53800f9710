package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// histogramCmd represents the histogram command
var histogramCmd = &cobra.Command{
	Use:   "histogram",
	Short: "Threshold histogram for a calendar range",
	Long: `Count how often a threshold is met within a calendar range, year by
year, with cross-year summary statistics.

Example:
  tempscope histogram --file weather.csv --range 1/1-1/31 --metric TMIN --threshold 32 --direction below`,
	RunE: runHistogram,
}

var (
	histogramRange     string
	histogramMetric    string
	histogramThreshold float64
	histogramDirection string
)

func init() {
	rootCmd.AddCommand(histogramCmd)

	histogramCmd.Flags().StringVar(&histogramRange, "range", "", "calendar range M/D-M/D (required)")
	histogramCmd.Flags().StringVar(&histogramMetric, "metric", "TMIN", "temperature metric (TMAX|TMIN|TAVG)")
	histogramCmd.Flags().Float64Var(&histogramThreshold, "threshold", 0, "temperature threshold in °F (required)")
	histogramCmd.Flags().StringVar(&histogramDirection, "direction", "below", "threshold direction (above|below)")

	histogramCmd.MarkFlagRequired("range")
	histogramCmd.MarkFlagRequired("threshold")
}

func runHistogram(cmd *cobra.Command, args []string) error {
	rng, err := calendar.ParseRange(histogramRange)
	if err != nil {
		return err
	}
	metric, err := series.ParseMetric(histogramMetric)
	if err != nil {
		return err
	}
	direction, err := analysis.ParseDirection(histogramDirection)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	result := app.svc.ThresholdHistogram(rng, metric, histogramThreshold, direction)
	report.Histogram(os.Stdout, result, rng, metric, histogramThreshold, direction)
	return nil
}
