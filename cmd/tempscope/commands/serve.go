package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kellerwx/tempscope/internal/api"
	"github.com/kellerwx/tempscope/internal/api/handlers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the query API server",
	Long: `Load the series once and serve every analysis as a JSON endpoint.

Endpoints:
  GET /health
  GET /api/info
  GET /api/streaks?metric=TMAX&threshold=90&direction=above&top=10
  GET /api/periods?metric=TAVG&days=7&extreme=coldest&top=10
  GET /api/seasons?season=winter&metric=TAVG&extreme=coldest&top=10
  GET /api/daterange?range=12/20-1/10&metric=TAVG&extreme=coldest&top=10
  GET /api/histogram?range=1/1-1/31&metric=TMIN&threshold=32&direction=below
  GET /api/frequency?metric=TMAX&threshold=90&direction=above
  GET /api/freeze?metric=TMIN&threshold=32
  GET /api/climatology?metric=TMAX&range=12/1-2/28&overlay=2021

Example:
  tempscope serve --file weather.csv --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "server port (default: PORT env)")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := initApp()
	if err != nil {
		return err
	}

	if servePort != "" {
		app.cfg.Port = servePort
	}

	queryHandler := handlers.NewQueryHandler(app.svc, app.stats, app.log)
	router := api.NewRouter(queryHandler, app.cfg, app.log)
	server := api.New(app.cfg, app.log, router)

	// Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			app.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	app.log.WithFields(map[string]interface{}{
		"records": app.dataSet.Len(),
		"from":    app.dataSet.Start().Format("2006-01-02"),
		"to":      app.dataSet.End().Format("2006-01-02"),
	}).Info("Serving loaded series")

	fmt.Printf("Server running on http://localhost:%s (Ctrl+C to stop)\n", app.cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
