package model

import (
	"fmt"
	"strconv"
	"strings"
)

const roomPrefix = "CR-"

// RoomLabel formats a classroom number as it appears in the timetable.
func RoomLabel(n int) string {
	return fmt.Sprintf("%s%d", roomPrefix, n)
}

// ParseRoom extracts the classroom number from a label.
// Returns false for labels not of the form CR-<n>.
func ParseRoom(label string) (int, bool) {
	num, ok := strings.CutPrefix(label, roomPrefix)
	if !ok || num == "" {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || strconv.Itoa(n) != num {
		return 0, false
	}
	return n, true
}
