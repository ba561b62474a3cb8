package portal

import (
	"github.com/rhyrak/go-timetable/pkg/model"
)

// Grid is a weekly view: one row per time slot, one column per day.
type Grid struct {
	Days []string
	Rows []GridRow
}

type GridRow struct {
	TimeSlot string
	Cells    []string
}

// Pivot lays the slots out by time slot and day. Cells without a class hold
// placeholder.
func Pivot(schedule model.Schedule, placeholder string) *Grid {
	g := &Grid{Days: model.Days, Rows: make([]GridRow, len(model.TimeSlots))}
	for i, t := range model.TimeSlots {
		cells := make([]string, len(model.Days))
		for j := range cells {
			cells[j] = placeholder
		}
		g.Rows[i] = GridRow{TimeSlot: t, Cells: cells}
	}
	for _, s := range schedule {
		row, col := model.TimeSlotIndex(s.TimeSlot), model.DayIndex(s.Day)
		if row < 0 || col < 0 {
			continue
		}
		g.Rows[row].Cells[col] = s.Subject
	}
	return g
}

// Cell returns the entry for a time slot and day, or "" if either is unknown.
func (g *Grid) Cell(timeSlot string, day string) string {
	row, col := model.TimeSlotIndex(timeSlot), model.DayIndex(day)
	if row < 0 || col < 0 {
		return ""
	}
	return g.Rows[row].Cells[col]
}
