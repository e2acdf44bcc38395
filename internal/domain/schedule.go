package domain

import (
	"fmt"
	"time"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// Capacity ledger and availability rules. Everything here is pure: the
// config and the bookings are passed in, "now" is an argument, so tests can
// drive arbitrary scenarios without shared state.

// LocalDay buckets an absolute instant into the tenant-timezone calendar
// date and time-of-day. Server-local time and UTC are never used for
// bucketing: near midnight they disagree with the tenant calendar.
func LocalDay(cfg *CalendarConfig, instant time.Time) (string, types.TimeString, error) {
	loc, err := cfg.Location()
	if err != nil {
		return "", "", err
	}
	local := instant.In(loc)
	return local.Format(DateFormat), types.NewTimeString(local), nil
}

// Today возвращает текущую дату в таймзоне тенанта
func Today(cfg *CalendarConfig, now time.Time) (string, error) {
	day, _, err := LocalDay(cfg, now)
	return day, err
}

// DaysUntil возвращает количество целых дней от "сегодня" (в таймзоне
// тенанта) до указанной даты. Отрицательное значение - дата в прошлом.
func DaysUntil(cfg *CalendarConfig, now time.Time, day string) (int, error) {
	loc, err := cfg.Location()
	if err != nil {
		return 0, err
	}

	target, err := time.ParseInLocation(DateFormat, day, loc)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date %q", ErrInvalidConfig, day)
	}

	local := now.In(loc)
	todayMidnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	// Считаем по календарным дням, а не по 24-часовым интервалам,
	// чтобы переходы на летнее время не давали off-by-one
	days := 0
	cursor := todayMidnight
	switch {
	case target.After(cursor):
		for cursor.Before(target) {
			cursor = cursor.AddDate(0, 0, 1)
			days++
		}
	case target.Before(cursor):
		for cursor.After(target) {
			cursor = cursor.AddDate(0, 0, -1)
			days--
		}
	}

	return days, nil
}

// TakenCounts builds the per-slot occupancy map for a date: the count of
// non-cancelled bookings bucketed into each candidate slot. Slots with zero
// bookings are present with count 0 so the client can render the full grid.
func TakenCounts(cfg *CalendarConfig, day string, bookings []*Booking) (map[types.TimeString]int, error) {
	slots, err := cfg.CandidateSlots(day)
	if err != nil {
		return nil, err
	}

	taken := make(map[types.TimeString]int, len(slots))
	for _, slot := range slots {
		taken[slot] = 0
	}

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		if b.BookingDate.Format(DateFormat) != day {
			continue
		}
		if _, ok := taken[b.StartTime]; ok {
			taken[b.StartTime]++
		}
	}

	return taken, nil
}

// IsSlotFull возвращает true, если слот занят полностью
func IsSlotFull(cfg *CalendarConfig, taken map[types.TimeString]int, slot types.TimeString) bool {
	return taken[slot] >= cfg.HandymanCapacity
}

// IsDayFull returns true when every candidate slot of the date is at
// capacity. A closed day has no candidate slots and is trivially full.
func IsDayFull(cfg *CalendarConfig, day string, taken map[types.TimeString]int) (bool, error) {
	slots, err := cfg.CandidateSlots(day)
	if err != nil {
		return false, err
	}

	if len(slots) == 0 {
		return true, nil
	}

	for _, slot := range slots {
		if !IsSlotFull(cfg, taken, slot) {
			return false, nil
		}
	}
	return true, nil
}

// IsDayBookable composes the availability rules for a date: not in the
// past, at least MinLeadDays ahead (inclusive boundary: a date exactly
// MinLeadDays away is bookable), not closed and not full.
func IsDayBookable(cfg *CalendarConfig, day string, now time.Time, taken map[types.TimeString]int) (bool, error) {
	days, err := DaysUntil(cfg, now, day)
	if err != nil {
		return false, err
	}
	if days < 0 {
		return false, nil
	}
	if days < cfg.MinLeadDays {
		return false, nil
	}

	full, err := IsDayFull(cfg, day, taken)
	if err != nil {
		return false, err
	}
	return !full, nil
}
