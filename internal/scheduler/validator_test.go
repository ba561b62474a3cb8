package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhyrak/go-timetable/pkg/model"
)

func TestValidateBuiltSchedule(t *testing.T) {
	cfg := NewDefaultConfiguration()
	cfg.Seed = 11
	valid, msg := cfg.Validate(New(cfg).Build(courseInfo(25)))
	assert.True(t, valid, msg)
	assert.Contains(t, msg, "[  OK]: Subject collision check.")
	assert.Contains(t, msg, "[  OK]: Grid capacity check.")
}

func TestValidateReportsProblems(t *testing.T) {
	cfg := NewDefaultConfiguration()
	schedule := model.Schedule{
		{Subject: "A", Day: "Monday", TimeSlot: model.TimeSlots[0], Room: "CR-1"},
		{Subject: "A", Day: "Monday", TimeSlot: model.TimeSlots[0], Room: "CR-9"},
		{Subject: "B", Day: "Monday", TimeSlot: model.TimeSlots[1], Room: "Room 2"},
	}
	valid, msg := cfg.Validate(schedule)

	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Subject collision check.")
	assert.Contains(t, msg, "[FAIL]: Cell collision check.")
	assert.Contains(t, msg, "[FAIL]: Room label check.")
	assert.Contains(t, msg, "[  OK]: Grid capacity check.")
	assert.Contains(t, msg, `invalid room "CR-9"`)
}

func TestValidateCapacity(t *testing.T) {
	cfg := NewDefaultConfiguration()
	schedule := New(cfg).Build(courseInfo(20))
	extra := *schedule[0]
	extra.Subject = "SUBJ21"
	schedule = append(schedule, &extra)

	valid, msg := cfg.Validate(schedule)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Grid capacity check.")
}
