package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// frequencyCmd represents the frequency command
var frequencyCmd = &cobra.Command{
	Use:   "frequency",
	Short: "Annual threshold frequency with trend",
	Long: `Count threshold days per calendar year over the whole series and fit
a linear trend of event days against year. The trend label uses a fixed
slope cutoff and is not a statistical significance test.

Example:
  tempscope frequency --file weather.csv --metric TMAX --threshold 90 --direction above
  tempscope frequency --file weather.csv --metric TMIN --threshold 32 --direction below`,
	RunE: runFrequency,
}

var (
	frequencyMetric    string
	frequencyThreshold float64
	frequencyDirection string
)

func init() {
	rootCmd.AddCommand(frequencyCmd)

	frequencyCmd.Flags().StringVar(&frequencyMetric, "metric", "TMAX", "temperature metric (TMAX|TMIN|TAVG)")
	frequencyCmd.Flags().Float64Var(&frequencyThreshold, "threshold", 0, "temperature threshold in °F (required)")
	frequencyCmd.Flags().StringVar(&frequencyDirection, "direction", "above", "threshold direction (above|below)")

	frequencyCmd.MarkFlagRequired("threshold")
}

func runFrequency(cmd *cobra.Command, args []string) error {
	metric, err := series.ParseMetric(frequencyMetric)
	if err != nil {
		return err
	}
	direction, err := analysis.ParseDirection(frequencyDirection)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	result := app.svc.ThresholdFrequency(metric, frequencyThreshold, direction)
	report.Frequency(os.Stdout, result, metric, frequencyThreshold, direction)
	return nil
}
