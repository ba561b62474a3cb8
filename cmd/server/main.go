package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rhyrak/go-timetable/internal/config"
	"github.com/rhyrak/go-timetable/internal/logger"
	"github.com/rhyrak/go-timetable/internal/portal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "timetable-portal",
	Short: "Serve the weekly timetable portal",
	Long: `timetable-portal reads course CSV exports from the source directory,
places every subject into the weekly grid and lets students look up their
personal timetable by first name and roll number.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML or JSON config file")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New("portal", cfg.Logging)
	gin.SetMode(gin.ReleaseMode)

	metrics, err := portal.NewMetrics(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	pipe := newPipeline(cfg, log, metrics)
	if _, err := pipe.Snapshot(); err != nil {
		log.Warn().Err(err).Str("dir", cfg.Source.Dir).Msg("portal starts without a roster")
	}

	srv, err := portal.NewServer(pipe, metrics, portal.Options{Placeholder: cfg.Schedule.Placeholder}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, cfg.Server.Addr)
}
