package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// periodsCmd represents the periods command
var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Find extreme N-day periods",
	Long: `Find the coldest or warmest N-day periods by rolling average.
Selected periods never overlap: the cluster of windows around one cold
snap collapses into a single result.

Example:
  tempscope periods --file weather.csv --metric TAVG --days 10 --extreme coldest --top 3
  tempscope periods --file weather.csv --metric TMAX --days 7 --extreme warmest`,
	RunE: runPeriods,
}

var (
	periodsMetric  string
	periodsDays    int
	periodsExtreme string
	periodsTop     int
)

func init() {
	rootCmd.AddCommand(periodsCmd)

	periodsCmd.Flags().StringVar(&periodsMetric, "metric", "TAVG", "temperature metric (TMAX|TMIN|TAVG)")
	periodsCmd.Flags().IntVar(&periodsDays, "days", 7, "number of days in the period")
	periodsCmd.Flags().StringVar(&periodsExtreme, "extreme", "coldest", "extreme type (coldest|warmest)")
	periodsCmd.Flags().IntVar(&periodsTop, "top", 10, "number of results to show")
}

func runPeriods(cmd *cobra.Command, args []string) error {
	metric, err := series.ParseMetric(periodsMetric)
	if err != nil {
		return err
	}
	extreme, err := analysis.ParseExtreme(periodsExtreme)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	periods := app.svc.ExtremePeriods(metric, periodsDays, extreme, periodsTop)
	report.Periods(os.Stdout, periods, metric, periodsDays, extreme)
	return nil
}
