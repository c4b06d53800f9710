package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/series"
	"github.com/kellerwx/tempscope/pkg/config"
	"github.com/kellerwx/tempscope/pkg/logger"
)

var (
	// Global flags
	dataFile   string
	columnMaps []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tempscope",
	Short: "tempscope - historical temperature analytics",
	Long: `tempscope analyzes a multi-year daily temperature record for
streaks, extreme periods, seasonal rankings, threshold frequencies,
freeze dates and per-day climatology.

Usage:
  tempscope [command] --file weather.csv

Examples:
  tempscope streaks --file weather.csv --metric TMAX --threshold 95 --direction above
  tempscope periods --file weather.csv --metric TAVG --days 10 --extreme coldest
  tempscope seasons --file weather.csv --season winter --extreme coldest --top 5
  tempscope daterange --file weather.csv --range 12/20-12/31 --extreme coldest
  tempscope histogram --file weather.csv --range 1/1-1/31 --metric TMIN --threshold 32 --direction below
  tempscope serve --file weather.csv --port 8080`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "weather CSV file (default: DATA_FILE env)")
	rootCmd.PersistentFlags().StringArrayVar(&columnMaps, "map", nil, "column mapping SRC=DST (repeatable, e.g. --map MaxTemp=TMAX)")
}

// appContext bundles what every analysis command needs.
type appContext struct {
	cfg     *config.Config
	log     *logger.Logger
	svc     *analysis.Service
	stats   *series.LoadStats
	dataSet *series.Series
}

// initApp loads config, the logger and the series. Flags override env
// configuration; --map entries extend the COLUMN_MAP default.
func initApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	path := dataFile
	if path == "" {
		path = cfg.DataFile
	}
	if path == "" {
		return nil, fmt.Errorf("no data file: pass --file or set DATA_FILE")
	}

	columnMap, err := mergeColumnMaps(cfg.ColumnMap, columnMaps)
	if err != nil {
		return nil, err
	}

	s, stats, err := series.LoadCSV(path, columnMap)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	log.WithFields(map[string]interface{}{
		"file":    path,
		"records": s.Len(),
		"dropped": stats.DroppedRows,
	}).Debug("Series loaded")

	return &appContext{
		cfg:     cfg,
		log:     log,
		svc:     analysis.NewService(s, log),
		stats:   stats,
		dataSet: s,
	}, nil
}

// mergeColumnMaps layers --map SRC=DST flags over the configured default.
func mergeColumnMaps(base map[string]string, flags []string) (map[string]string, error) {
	if len(base) == 0 && len(flags) == 0 {
		return nil, nil
	}

	merged := make(map[string]string, len(base)+len(flags))
	for src, dst := range base {
		merged[src] = dst
	}
	for _, pair := range flags {
		src, dst, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid column mapping %q (expected SRC=DST)", pair)
		}
		merged[src] = dst
	}
	return merged, nil
}
