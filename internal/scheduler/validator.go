package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// Validate checks the timetable for repeated subjects, doubly used cells,
// malformed rooms and overflow. Returns false and a report for invalid
// timetables; the report is always filled.
func (c *Configuration) Validate(schedule model.Schedule) (bool, string) {
	var message string
	var valid bool = true
	var hasSubjectCollision bool = false
	var hasCellCollision bool = false
	var hasBadRoom bool = false

	seenSubjects := make(map[string]bool, len(schedule))
	usedCells := make(map[string]bool, len(schedule))
	for _, s := range schedule {
		if seenSubjects[s.Subject] {
			valid = false
			hasSubjectCollision = true
			message += "- Subject " + s.Subject + " scheduled multiple times\n"
		}
		seenSubjects[s.Subject] = true

		cell := s.Day + " " + s.TimeSlot
		if usedCells[cell] {
			valid = false
			hasCellCollision = true
			message += "- Cell " + cell + " assigned multiple times\n"
		}
		usedCells[cell] = true

		if n, ok := model.ParseRoom(s.Room); !ok || n < 1 || n > c.RoomCount {
			valid = false
			hasBadRoom = true
			message += fmt.Sprintf("- Subject %s has invalid room %q\n", s.Subject, s.Room)
		}
	}

	overflow := len(schedule) > c.Capacity()
	if overflow {
		valid = false
		message += fmt.Sprintf("- %d slots exceed grid capacity %d\n", len(schedule), c.Capacity())
	}

	if overflow {
		message = "[FAIL]: Grid capacity check.\n" + message
	} else {
		message = "[  OK]: Grid capacity check.\n" + message
	}
	if hasBadRoom {
		message = "[FAIL]: Room label check.\n" + message
	} else {
		message = "[  OK]: Room label check.\n" + message
	}
	if hasCellCollision {
		message = "[FAIL]: Cell collision check.\n" + message
	} else {
		message = "[  OK]: Cell collision check.\n" + message
	}
	if hasSubjectCollision {
		message = "[FAIL]: Subject collision check.\n" + message
	} else {
		message = "[  OK]: Subject collision check.\n" + message
	}

	return valid, message
}
