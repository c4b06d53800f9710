package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// freezeCmd represents the freeze command
var freezeCmd = &cobra.Command{
	Use:   "freeze",
	Short: "Track freeze dates and growing seasons",
	Long: `For each year, find the last freeze before July and the first freeze
from July on, and report the growing season length between them.

Example:
  tempscope freeze --file weather.csv --metric TMIN --threshold 32`,
	RunE: runFreeze,
}

var (
	freezeMetric    string
	freezeThreshold float64
)

func init() {
	rootCmd.AddCommand(freezeCmd)

	freezeCmd.Flags().StringVar(&freezeMetric, "metric", "TMIN", "temperature metric (TMAX|TMIN|TAVG)")
	freezeCmd.Flags().Float64Var(&freezeThreshold, "threshold", 32, "freeze threshold in °F")
}

func runFreeze(cmd *cobra.Command, args []string) error {
	metric, err := series.ParseMetric(freezeMetric)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	results := app.svc.FreezeDates(metric, freezeThreshold)
	report.Freeze(os.Stdout, results, metric, freezeThreshold)
	return nil
}
