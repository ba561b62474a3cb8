package csvio

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// ExportSchedule writes the timetable as CSV to the file at path,
// replacing any existing file.
func ExportSchedule(schedule model.Schedule, path string) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()

	if err := WriteSchedule(out, schedule); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSchedule writes the timetable as CSV to w.
func WriteSchedule(w io.Writer, schedule model.Schedule) error {
	rows := exportRows(schedule)
	return gocsv.Marshal(&rows, w)
}

// ExportScheduleString returns the timetable as a CSV document.
func ExportScheduleString(schedule model.Schedule) (string, error) {
	rows := exportRows(schedule)
	return gocsv.MarshalString(&rows)
}

// PrintSchedule prints the weekly timetable grouped by day.
func PrintSchedule(w io.Writer, schedule model.Schedule) {
	sorted := slices.Clone(schedule)
	slices.SortStableFunc(sorted, func(a, b *model.ScheduleSlot) int {
		if day := model.DayIndex(a.Day) - model.DayIndex(b.Day); day != 0 {
			return day
		}
		return model.TimeSlotIndex(a.TimeSlot) - model.TimeSlotIndex(b.TimeSlot)
	})

	var day string
	for _, s := range sorted {
		if s.Day != day {
			day = s.Day
			fmt.Fprintf(w, "\n%s\n", day)
		}
		fmt.Fprintf(w, "  %-20s %-6s %-24s %s\n", s.TimeSlot, s.Room, s.Subject, s.FacultyName)
	}
	fmt.Fprintf(w, "Printed rows: %d\n", len(sorted))
}

func exportRows(schedule model.Schedule) []*model.ScheduleSlot {
	rows := make([]*model.ScheduleSlot, 0, len(schedule))
	return append(rows, schedule...)
}
