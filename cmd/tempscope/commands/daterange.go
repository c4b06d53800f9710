package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// daterangeCmd represents the daterange command
var daterangeCmd = &cobra.Command{
	Use:   "daterange",
	Short: "Rank a custom calendar range across years",
	Long: `Find the coldest or warmest instances of a calendar range across all
years. Ranges may span the year boundary: 12/20-1/10 groups December
with the following January under the year the range began.

Example:
  tempscope daterange --file weather.csv --range 12/20-12/31 --metric TAVG --extreme coldest --top 5
  tempscope daterange --file weather.csv --range 11/15-2/15 --extreme warmest`,
	RunE: runDateRange,
}

var (
	daterangeRange   string
	daterangeMetric  string
	daterangeExtreme string
	daterangeTop     int
)

func init() {
	rootCmd.AddCommand(daterangeCmd)

	daterangeCmd.Flags().StringVar(&daterangeRange, "range", "", "calendar range M/D-M/D (required)")
	daterangeCmd.Flags().StringVar(&daterangeMetric, "metric", "TAVG", "temperature metric (TMAX|TMIN|TAVG)")
	daterangeCmd.Flags().StringVar(&daterangeExtreme, "extreme", "coldest", "extreme type (coldest|warmest)")
	daterangeCmd.Flags().IntVar(&daterangeTop, "top", 10, "number of results to show")

	daterangeCmd.MarkFlagRequired("range")
}

func runDateRange(cmd *cobra.Command, args []string) error {
	rng, err := calendar.ParseRange(daterangeRange)
	if err != nil {
		return err
	}
	metric, err := series.ParseMetric(daterangeMetric)
	if err != nil {
		return err
	}
	extreme, err := analysis.ParseExtreme(daterangeExtreme)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	results := app.svc.ExtremeDateRange(rng, metric, extreme, daterangeTop)
	report.DateRange(os.Stdout, results, rng, metric, extreme)
	return nil
}
