package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-timetable/internal/config"
	"github.com/rhyrak/go-timetable/internal/csvio"
	"github.com/rhyrak/go-timetable/internal/logger"
	"github.com/rhyrak/go-timetable/internal/pipeline"
	"github.com/rhyrak/go-timetable/internal/scheduler"
)

var (
	configPath string
	exportPath string
	sourceDir  string
)

var rootCmd = &cobra.Command{
	Use:          "timetable",
	Short:        "Build and print the master weekly timetable from course CSV exports",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML or JSON config file")
	rootCmd.Flags().StringVarP(&exportPath, "export", "o", "", "write the timetable as CSV to this file")
	rootCmd.Flags().StringVarP(&sourceDir, "dir", "d", "", "directory holding the course exports (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if sourceDir != "" {
		cfg.Source.Dir = sourceDir
	}
	log := logger.New("cli", cfg.Logging)
	out := cmd.OutOrStdout()

	schedCfg := cfg.SchedulerConfiguration()
	pipe := pipeline.New(pipeline.Options{
		Dir:       cfg.Source.Dir,
		Pattern:   cfg.Source.Pattern,
		Scheduler: schedCfg,
	}, log, nil)

	fmt.Fprintln(out, "Loading...")
	start := time.Now()
	snap, err := pipe.Snapshot()
	if errors.Is(err, pipeline.ErrNoRoster) {
		fmt.Fprintf(out, "No student rows found in %s; %d subjects discovered.\n", cfg.Source.Dir, snap.Courses.Len())
		return nil
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(out, "Subjects and faculty are as below:")
	for _, subject := range snap.Courses.Subjects() {
		fmt.Fprintf(out, "%s (%s)\n", subject, snap.Courses.Faculty(subject))
	}

	csvio.PrintSchedule(out, snap.Schedule)

	if dropped := scheduler.Unscheduled(snap.Courses, snap.Schedule); len(dropped) != 0 {
		fmt.Fprintln(out, "Subjects that did not fit into the grid are as below:")
		for _, d := range dropped {
			fmt.Fprintln(out, d+" is unscheduled.")
		}
		fmt.Fprintln(out)
	}

	valid, msg := schedCfg.Validate(snap.Schedule)
	if !valid {
		fmt.Fprintln(out, "Invalid schedule:")
	} else {
		fmt.Fprintln(out, "Passed all tests")
	}
	fmt.Fprint(out, msg)

	fmt.Fprintf(out, "Students: %d\n", len(snap.Students))
	fmt.Fprintf(out, "Roster rows: %d\n", len(snap.Roster))
	fmt.Fprintf(out, "Timer: %f ms\n", float64(elapsed.Microseconds())/1000.0)

	if exportPath != "" {
		if err := csvio.ExportSchedule(snap.Schedule, exportPath); err != nil {
			return err
		}
		fmt.Fprintln(out, "Exported output to: "+exportPath)
	}
	return nil
}
