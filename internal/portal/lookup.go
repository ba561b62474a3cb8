package portal

import (
	"strings"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// Outcome is the result class of a login attempt.
type Outcome int

const (
	OutcomeNotReady Outcome = iota
	OutcomeMissingFields
	OutcomeNotFound
	OutcomeOK
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotReady:
		return "not_ready"
	case OutcomeMissingFields:
		return "missing_fields"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeOK:
		return "ok"
	}
	return "unknown"
}

// Credentials are the free-text login fields. Both are matched as
// case-insensitive substrings.
type Credentials struct {
	Name       string `form:"name"`
	RollNumber string `form:"roll_number"`
}

// FindStudent returns the student of the first roster row whose ID contains
// the roll number and whose name contains the name. The matched row's name is
// the display name. Subjects are taken only from rows with the same ID whose
// name also matches, so a broad query never merges two students' subjects.
func FindStudent(roster model.Roster, c Credentials) (*model.Student, Outcome) {
	if len(roster) == 0 {
		return nil, OutcomeNotReady
	}
	name := strings.ToLower(strings.TrimSpace(c.Name))
	id := strings.ToLower(strings.TrimSpace(c.RollNumber))
	if name == "" || id == "" {
		return nil, OutcomeMissingFields
	}

	var student *model.Student
	for _, e := range roster {
		if student == nil {
			if !matches(e, id, name) {
				continue
			}
			student = &model.Student{ID: e.StudentID, Name: e.StudentName}
		}
		if e.StudentID == student.ID && matches(e, id, name) && !student.HasSubject(e.Subject) {
			student.Subjects = append(student.Subjects, e.Subject)
		}
	}
	if student == nil {
		return nil, OutcomeNotFound
	}
	return student, OutcomeOK
}

func matches(e model.RosterEntry, id string, name string) bool {
	return strings.Contains(strings.ToLower(e.StudentID), id) &&
		strings.Contains(strings.ToLower(e.StudentName), name)
}
