package main

import (
	"github.com/rs/zerolog"

	"github.com/rhyrak/go-timetable/internal/config"
	"github.com/rhyrak/go-timetable/internal/pipeline"
)

func newPipeline(cfg *config.Config, log zerolog.Logger, rec pipeline.Recorder) *pipeline.Pipeline {
	return pipeline.New(pipeline.Options{
		Dir:       cfg.Source.Dir,
		Pattern:   cfg.Source.Pattern,
		Scheduler: cfg.SchedulerConfiguration(),
	}, log, rec)
}
