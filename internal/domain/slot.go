package domain

import "github.com/artemkls/HMS-BookingService/pkg/types"

// SlotAvailability represents one offered time slot together with its
// occupancy. Full slots are still returned to the client, which renders
// them disabled.
type SlotAvailability struct {
	StartTime types.TimeString
	Taken     int
	Capacity  int
}

// IsFull returns true if the slot has no free spots
func (s *SlotAvailability) IsFull() bool {
	return s.Taken >= s.Capacity
}

// SpotsLeft returns the number of free spots in the slot
func (s *SlotAvailability) SpotsLeft() int {
	left := s.Capacity - s.Taken
	if left < 0 {
		return 0
	}
	return left
}

// DaySlots собирает полную сетку слотов даты с занятостью из счетчиков taken.
// Слоты без бронирований присутствуют с Taken=0, закрытый день дает пустую сетку.
func DaySlots(cfg *CalendarConfig, day string, taken map[types.TimeString]int) ([]SlotAvailability, error) {
	candidates, err := cfg.CandidateSlots(day)
	if err != nil {
		return nil, err
	}

	slots := make([]SlotAvailability, 0, len(candidates))
	for _, slot := range candidates {
		slots = append(slots, SlotAvailability{
			StartTime: slot,
			Taken:     taken[slot],
			Capacity:  cfg.HandymanCapacity,
		})
	}
	return slots, nil
}
