package model

// UnknownFaculty is recorded when a source file carries no faculty label.
const UnknownFaculty = "Unknown"

// CourseInfo maps subject names to faculty names and remembers the order in
// which subjects were first seen. A subject recorded again keeps its original
// position and takes the new faculty.
type CourseInfo struct {
	subjects []string
	faculty  map[string]string
}

// NewCourseInfo creates an empty subject table.
func NewCourseInfo() *CourseInfo {
	return &CourseInfo{faculty: make(map[string]string)}
}

// Set records faculty for subject.
func (c *CourseInfo) Set(subject string, faculty string) {
	if c.faculty == nil {
		c.faculty = make(map[string]string)
	}
	if _, seen := c.faculty[subject]; !seen {
		c.subjects = append(c.subjects, subject)
	}
	c.faculty[subject] = faculty
}

// Faculty returns the faculty for subject, or UnknownFaculty.
func (c *CourseInfo) Faculty(subject string) string {
	if c == nil {
		return UnknownFaculty
	}
	if f, ok := c.faculty[subject]; ok {
		return f
	}
	return UnknownFaculty
}

// Subjects returns the subjects in insertion order.
func (c *CourseInfo) Subjects() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.subjects))
	copy(out, c.subjects)
	return out
}

func (c *CourseInfo) Len() int {
	if c == nil {
		return 0
	}
	return len(c.subjects)
}
