package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// climateCmd represents the climate command
var climateCmd = &cobra.Command{
	Use:   "climate",
	Short: "Per-calendar-day climatology",
	Long: `Group records by calendar day across every year and report record
highs, record lows and the long-term average. An optional range restricts
the output; ranges spanning the year boundary stay contiguous in plot
order.

Example:
  tempscope climate --file weather.csv --metric TMAX
  tempscope climate --file weather.csv --metric TMIN --range 12/1-2/28`,
	RunE: runClimate,
}

var (
	climateMetric string
	climateRange  string
)

func init() {
	rootCmd.AddCommand(climateCmd)

	climateCmd.Flags().StringVar(&climateMetric, "metric", "TMAX", "temperature metric (TMAX|TMIN|TAVG)")
	climateCmd.Flags().StringVar(&climateRange, "range", "", "optional calendar range M/D-M/D")
}

func runClimate(cmd *cobra.Command, args []string) error {
	metric, err := series.ParseMetric(climateMetric)
	if err != nil {
		return err
	}

	var rng *calendar.Range
	if climateRange != "" {
		parsed, err := calendar.ParseRange(climateRange)
		if err != nil {
			return err
		}
		rng = &parsed
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	rows := app.svc.DailyClimatology(metric, rng)
	report.Climatology(os.Stdout, rows, metric)
	return nil
}
