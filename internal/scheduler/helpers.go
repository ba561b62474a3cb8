package scheduler

import (
	"hash/maphash"

	"github.com/rhyrak/go-timetable/pkg/model"
)

// MaxRoomCount is the highest classroom number a slot can be given.
const MaxRoomCount = 8

type Configuration struct {
	// RoomCount limits rooms to CR-1..CR-RoomCount, at most MaxRoomCount.
	RoomCount int
	// Seed fixes room assignment. Zero draws a fresh seed.
	Seed int64
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{RoomCount: MaxRoomCount}
}

// Capacity is the number of grid cells available for subjects.
func (c *Configuration) Capacity() int {
	return len(model.Days) * len(model.TimeSlots)
}

// Rand64 seeds room assignment when no seed is configured.
func Rand64() uint64 {
	return new(maphash.Hash).Sum64()
}
