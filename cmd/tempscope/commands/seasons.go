package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/report"
	"github.com/kellerwx/tempscope/internal/series"
)

// seasonsCmd represents the seasons command
var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Rank seasons by temperature",
	Long: `Find the coldest or warmest instances of a season across all years.
Winter = Dec-Feb (December counts toward the following year's winter),
spring = Mar-May, summer = Jun-Aug, fall = Sep-Nov.

Example:
  tempscope seasons --file weather.csv --season winter --metric TAVG --extreme coldest --top 5
  tempscope seasons --file weather.csv --season summer --metric TMAX --extreme warmest`,
	RunE: runSeasons,
}

var (
	seasonsSeason  string
	seasonsMetric  string
	seasonsExtreme string
	seasonsTop     int
)

func init() {
	rootCmd.AddCommand(seasonsCmd)

	seasonsCmd.Flags().StringVar(&seasonsSeason, "season", "", "season to rank (winter|spring|summer|fall, required)")
	seasonsCmd.Flags().StringVar(&seasonsMetric, "metric", "TAVG", "temperature metric (TMAX|TMIN|TAVG)")
	seasonsCmd.Flags().StringVar(&seasonsExtreme, "extreme", "coldest", "extreme type (coldest|warmest)")
	seasonsCmd.Flags().IntVar(&seasonsTop, "top", 10, "number of results to show")

	seasonsCmd.MarkFlagRequired("season")
}

func runSeasons(cmd *cobra.Command, args []string) error {
	season, err := calendar.ParseSeason(seasonsSeason)
	if err != nil {
		return err
	}
	metric, err := series.ParseMetric(seasonsMetric)
	if err != nil {
		return err
	}
	extreme, err := analysis.ParseExtreme(seasonsExtreme)
	if err != nil {
		return err
	}

	app, err := initApp()
	if err != nil {
		return err
	}

	report.LoadSummary(os.Stdout, app.dataSet, app.stats)

	seasons := app.svc.ExtremeSeasons(season, metric, extreme, seasonsTop)
	report.Seasons(os.Stdout, seasons, season, metric, extreme)
	return nil
}
