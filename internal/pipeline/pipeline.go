// Package pipeline runs the roster loader and the scheduler as two memoized
// stages. Each stage is keyed by a content hash of its input, so unchanged
// exports are never re-parsed and an unchanged subject table keeps its rooms.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rhyrak/go-timetable/internal/cache"
	"github.com/rhyrak/go-timetable/internal/csvio"
	"github.com/rhyrak/go-timetable/internal/scheduler"
	"github.com/rhyrak/go-timetable/pkg/model"
)

// ErrNoRoster reports that no source produced any student rows.
var ErrNoRoster = errors.New("no roster rows found")

const (
	StageRoster   = "roster"
	StageSchedule = "schedule"
)

// Dataset is the output of the loader stage.
type Dataset struct {
	Roster   model.Roster
	Courses  *model.CourseInfo
	Students []*model.Student
}

// Snapshot is everything a request needs: the dataset and the master timetable.
type Snapshot struct {
	*Dataset
	Schedule model.Schedule
}

// Recorder observes pipeline activity.
type Recorder interface {
	CacheLookup(stage string, hit bool)
	RosterLoaded(rows int, subjects int)
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) CacheLookup(string, bool) {}
func (NopRecorder) RosterLoaded(int, int)    {}

type Options struct {
	Dir       string
	Pattern   string
	Scheduler *scheduler.Configuration
}

type Pipeline struct {
	dir       string
	pattern   string
	loader    *csvio.Loader
	scheduler *scheduler.Scheduler
	datasets  *cache.Memo[*Dataset]
	schedules *cache.Memo[model.Schedule]
	rec       Recorder
	log       zerolog.Logger
}

// New creates a pipeline over the exports in opts.Dir. A nil rec discards
// observations.
func New(opts Options, log zerolog.Logger, rec Recorder) *Pipeline {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Pattern == "" {
		opts.Pattern = "*.csv"
	}
	if rec == nil {
		rec = NopRecorder{}
	}
	return &Pipeline{
		dir:       opts.Dir,
		pattern:   opts.Pattern,
		loader:    csvio.NewLoader(log),
		scheduler: scheduler.New(opts.Scheduler),
		datasets:  cache.NewMemo[*Dataset](),
		schedules: cache.NewMemo[model.Schedule](),
		rec:       rec,
		log:       log,
	}
}

// Dataset returns the roster and subject table for the current exports.
func (p *Pipeline) Dataset() (*Dataset, error) {
	sources, err := p.loader.ReadSources(p.dir, p.pattern)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}

	ds, hit, err := p.datasets.Get(sourcesKey(sources), func() (*Dataset, error) {
		roster, info := p.loader.Load(sources)
		p.rec.RosterLoaded(len(roster), info.Len())
		return &Dataset{Roster: roster, Courses: info, Students: roster.Students()}, nil
	})
	if err != nil {
		return nil, err
	}
	p.rec.CacheLookup(StageRoster, hit)
	return ds, nil
}

// Schedule returns the master timetable for info.
func (p *Pipeline) Schedule(info *model.CourseInfo) model.Schedule {
	schedule, hit, _ := p.schedules.Get(courseKey(info), func() (model.Schedule, error) {
		s := p.scheduler.Build(info)
		if dropped := scheduler.Unscheduled(info, s); len(dropped) > 0 {
			p.log.Warn().Strs("subjects", dropped).Msg("subjects did not fit into the weekly grid")
		}
		return s, nil
	})
	p.rec.CacheLookup(StageSchedule, hit)
	return schedule
}

// Snapshot runs both stages. When no roster rows exist the snapshot carries
// the dataset without a timetable and ErrNoRoster is returned.
func (p *Pipeline) Snapshot() (*Snapshot, error) {
	ds, err := p.Dataset()
	if err != nil {
		return nil, err
	}
	if len(ds.Roster) == 0 {
		return &Snapshot{Dataset: ds}, ErrNoRoster
	}
	return &Snapshot{Dataset: ds, Schedule: p.Schedule(ds.Courses)}, nil
}

func sourcesKey(sources []csvio.Source) string {
	h := cache.NewHasher()
	for _, src := range sources {
		h.AddString(src.Name).Add(src.Data)
	}
	return h.Key()
}

func courseKey(info *model.CourseInfo) string {
	h := cache.NewHasher()
	for _, subject := range info.Subjects() {
		h.AddString(subject).AddString(info.Faculty(subject))
	}
	return h.Key()
}
