package scheduler

import (
	"math/rand"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// Scheduler places subjects into the weekly grid.
type Scheduler struct {
	cfg *Configuration
	rng *rand.Rand
}

// New creates a Scheduler. A nil cfg uses NewDefaultConfiguration.
func New(cfg *Configuration) *Scheduler {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	if cfg.RoomCount <= 0 || cfg.RoomCount > MaxRoomCount {
		cfg.RoomCount = MaxRoomCount
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = int64(Rand64())
	}
	return &Scheduler{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Build assigns each subject, in insertion order, to the next free cell.
// Cells are visited day by day, slot by slot; subjects left over once the
// grid is full are not scheduled. Each placed subject gets a random room.
// Not safe for concurrent use.
func (s *Scheduler) Build(info *model.CourseInfo) model.Schedule {
	subjects := info.Subjects()
	schedule := model.Schedule{}

	idx := 0
	for _, day := range model.Days {
		for _, slot := range model.TimeSlots {
			if idx >= len(subjects) {
				return schedule
			}
			subject := subjects[idx]
			schedule = append(schedule, &model.ScheduleSlot{
				Subject:     subject,
				FacultyName: info.Faculty(subject),
				Day:         day,
				TimeSlot:    slot,
				Room:        model.RoomLabel(s.rng.Intn(s.cfg.RoomCount) + 1),
			})
			idx++
		}
	}
	return schedule
}

// Unscheduled returns the subjects that did not fit into the grid.
func Unscheduled(info *model.CourseInfo, schedule model.Schedule) []string {
	placed := make(map[string]bool, len(schedule))
	for _, slot := range schedule {
		placed[slot.Subject] = true
	}
	var out []string
	for _, subject := range info.Subjects() {
		if !placed[subject] {
			out = append(out, subject)
		}
	}
	return out
}
