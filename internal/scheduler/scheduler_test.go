package scheduler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-timetable/pkg/model"
)

func courseInfo(n int) *model.CourseInfo {
	info := model.NewCourseInfo()
	for i := 1; i <= n; i++ {
		info.Set(fmt.Sprintf("SUBJ%02d", i), fmt.Sprintf("Faculty %d", i))
	}
	return info
}

func seeded(seed int64) *Scheduler {
	cfg := NewDefaultConfiguration()
	cfg.Seed = seed
	return New(cfg)
}

func TestBuildFillsGridDayMajor(t *testing.T) {
	schedule := seeded(1).Build(courseInfo(6))

	require.Len(t, schedule, 6)
	want := [][2]string{
		{"Monday", model.TimeSlots[0]},
		{"Monday", model.TimeSlots[1]},
		{"Monday", model.TimeSlots[2]},
		{"Monday", model.TimeSlots[3]},
		{"Tuesday", model.TimeSlots[0]},
		{"Tuesday", model.TimeSlots[1]},
	}
	for i, slot := range schedule {
		assert.Equal(t, fmt.Sprintf("SUBJ%02d", i+1), slot.Subject)
		assert.Equal(t, fmt.Sprintf("Faculty %d", i+1), slot.FacultyName)
		assert.Equal(t, want[i][0], slot.Day)
		assert.Equal(t, want[i][1], slot.TimeSlot)
	}
}

func TestBuildDropsSubjectsBeyondCapacity(t *testing.T) {
	info := courseInfo(25)
	schedule := seeded(7).Build(info)

	require.Len(t, schedule, 20)
	assert.Equal(t, info.Subjects()[:20], schedule.Subjects())
	assert.Equal(t, info.Subjects()[20:], Unscheduled(info, schedule))
	last := schedule[19]
	assert.Equal(t, "Friday", last.Day)
	assert.Equal(t, model.TimeSlots[3], last.TimeSlot)
}

func TestBuildRoomLabels(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, slot := range seeded(seed).Build(courseInfo(20)) {
			n, ok := model.ParseRoom(slot.Room)
			require.True(t, ok, slot.Room)
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 8)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, New(nil).Build(model.NewCourseInfo()))
}

func TestBuildSeedIsDeterministic(t *testing.T) {
	a := seeded(42).Build(courseInfo(20))
	b := seeded(42).Build(courseInfo(20))
	assert.Equal(t, a, b)
}

func TestNewFixesOutOfRangeRoomCount(t *testing.T) {
	for _, rooms := range []int{0, -2, 12} {
		cfg := NewDefaultConfiguration()
		cfg.RoomCount = rooms
		cfg.Seed = 3
		schedule := New(cfg).Build(courseInfo(20))
		require.Len(t, schedule, 20)
		assert.Equal(t, MaxRoomCount, cfg.RoomCount)
		valid, msg := cfg.Validate(schedule)
		assert.True(t, valid, msg)
	}
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 20, NewDefaultConfiguration().Capacity())
}
