package model

import "slices"

// RosterEntry associates one student with one subject.
type RosterEntry struct {
	StudentID   string `csv:"Student ID"`
	StudentName string `csv:"Student Name"`
	Subject     string `csv:"-"`
}

// Roster holds every (student, subject) association from a load cycle.
type Roster []RosterEntry

// Student is the composite record of one student ID across the roster.
type Student struct {
	ID       string
	Name     string
	Subjects []string
}

// Students groups the roster by student ID, in order of first appearance.
// The first name seen for an ID is kept as the display name and subjects
// are deduplicated.
func (r Roster) Students() []*Student {
	var students []*Student
	byID := make(map[string]*Student)
	for _, e := range r {
		s, ok := byID[e.StudentID]
		if !ok {
			s = &Student{ID: e.StudentID, Name: e.StudentName}
			byID[e.StudentID] = s
			students = append(students, s)
		}
		if !s.HasSubject(e.Subject) {
			s.Subjects = append(s.Subjects, e.Subject)
		}
	}
	return students
}

func (s *Student) HasSubject(subject string) bool {
	return slices.Contains(s.Subjects, subject)
}
