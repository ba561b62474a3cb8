package model

var (
	// Days lists the teaching days in grid order.
	Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	// TimeSlots lists the daily time ranges in grid order.
	TimeSlots = []string{
		"09:00 AM - 10:30 AM",
		"11:00 AM - 12:30 PM",
		"02:00 PM - 03:30 PM",
		"04:00 PM - 05:30 PM",
	}
)

// ScheduleSlot places one subject into one weekly cell.
type ScheduleSlot struct {
	Subject     string `csv:"Subject"`
	FacultyName string `csv:"Faculty Name"`
	Day         string `csv:"Day"`
	TimeSlot    string `csv:"Time Slot"`
	Room        string `csv:"Room"`
}

// Schedule is the master timetable in grid visiting order.
type Schedule []*ScheduleSlot

// Subjects returns the scheduled subjects in slot order.
func (s Schedule) Subjects() []string {
	out := make([]string, 0, len(s))
	for _, slot := range s {
		out = append(out, slot.Subject)
	}
	return out
}

// Filter returns the slots whose subject is in subjects, keeping slot order.
func (s Schedule) Filter(subjects []string) Schedule {
	want := make(map[string]bool, len(subjects))
	for _, sub := range subjects {
		want[sub] = true
	}
	var out Schedule
	for _, slot := range s {
		if want[slot.Subject] {
			out = append(out, slot)
		}
	}
	return out
}

// DayIndex converts a day name to its grid column (0-4), or -1.
func DayIndex(day string) int {
	switch day {
	case "Monday":
		return 0
	case "Tuesday":
		return 1
	case "Wednesday":
		return 2
	case "Thursday":
		return 3
	case "Friday":
		return 4
	}
	return -1
}

// TimeSlotIndex converts a time range to its grid row, or -1.
func TimeSlotIndex(slot string) int {
	for i, t := range TimeSlots {
		if t == slot {
			return i
		}
	}
	return -1
}
