package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

func mustLoadNY(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func bookingAt(day string, slot types.TimeString, status BookingStatus) *Booking {
	date, _ := time.Parse(DateFormat, day)
	return &Booking{
		BookingDate: date,
		StartTime:   slot,
		Status:      status,
	}
}

// TestLocalDay тестирует привязку момента времени к дате в таймзоне тенанта
func TestLocalDay(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name     string
		instant  time.Time
		wantDay  string
		wantTime types.TimeString
	}{
		{
			name:     "afternoon maps to same date",
			instant:  time.Date(2026, 1, 15, 19, 0, 0, 0, time.UTC), // 14:00 в Нью-Йорке
			wantDay:  "2026-01-15",
			wantTime: "14:00",
		},
		{
			// 01:00 UTC 16-го - это ещё вечер 15-го по местному времени
			name:     "utc past midnight is previous local day",
			instant:  time.Date(2026, 1, 16, 1, 0, 0, 0, time.UTC),
			wantDay:  "2026-01-15",
			wantTime: "20:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, tm, err := LocalDay(cfg, tt.instant)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantTime, tm)
		})
	}
}

// TestDaysUntil тестирует подсчет календарных дней до даты
func TestDaysUntil(t *testing.T) {
	cfg := testConfig()
	loc := mustLoadNY(t)

	// Поздний вечер 15-го по местному времени
	now := time.Date(2026, 1, 15, 23, 30, 0, 0, loc)

	tests := []struct {
		name string
		day  string
		want int
	}{
		{name: "today", day: "2026-01-15", want: 0},
		{name: "tomorrow even late at night", day: "2026-01-16", want: 1},
		{name: "next week", day: "2026-01-22", want: 7},
		{name: "yesterday", day: "2026-01-14", want: -1},
		// Интервал содержит переход на летнее время (8 марта 2026)
		{name: "across dst transition", day: "2026-03-10", want: 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysUntil(cfg, now, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DaysUntil(cfg, now, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestTakenCounts тестирует подсчет занятости слотов
func TestTakenCounts(t *testing.T) {
	cfg := testConfig() // слоты 09:00, 10:00, 11:00, 14:00
	day := "2026-01-13"

	bookings := []*Booking{
		bookingAt(day, "09:00", StatusPending),
		bookingAt(day, "09:00", StatusConfirmed),
		bookingAt(day, "10:00", StatusCompleted), // завершённые остаются в учете
		bookingAt(day, "11:00", StatusCancelled), // отменённые слот освобождают
		bookingAt(day, "08:00", StatusPending),   // не из сетки слотов, игнорируется
		bookingAt("2026-01-14", "09:00", StatusPending),
	}

	taken, err := TakenCounts(cfg, day, bookings)
	require.NoError(t, err)

	assert.Equal(t, map[types.TimeString]int{
		"09:00": 2,
		"10:00": 1,
		"11:00": 0,
		"14:00": 0,
	}, taken)
}

// TestIsSlotFull тестирует проверку заполненности слота
func TestIsSlotFull(t *testing.T) {
	cfg := testConfig() // вместимость 2

	taken := map[types.TimeString]int{"09:00": 2, "10:00": 1}

	assert.True(t, IsSlotFull(cfg, taken, "09:00"))
	assert.False(t, IsSlotFull(cfg, taken, "10:00"))
	assert.False(t, IsSlotFull(cfg, taken, "11:00"))
}

// TestIsDayFull тестирует проверку заполненности дня
func TestIsDayFull(t *testing.T) {
	cfg := testConfig()
	cfg.HandymanCapacity = 1
	cfg.Overrides = map[string][]types.TimeString{"2026-01-15": {}}

	// Все слоты заняты
	full, err := IsDayFull(cfg, "2026-01-13", map[types.TimeString]int{
		"09:00": 1, "10:00": 1, "11:00": 1, "14:00": 1,
	})
	require.NoError(t, err)
	assert.True(t, full)

	// Остался один свободный слот
	full, err = IsDayFull(cfg, "2026-01-13", map[types.TimeString]int{
		"09:00": 1, "10:00": 1, "11:00": 1, "14:00": 0,
	})
	require.NoError(t, err)
	assert.False(t, full)

	// Закрытый день считается заполненным
	full, err = IsDayFull(cfg, "2026-01-15", map[types.TimeString]int{})
	require.NoError(t, err)
	assert.True(t, full)
}

// TestIsDayBookable тестирует составное правило доступности даты
func TestIsDayBookable(t *testing.T) {
	loc := mustLoadNY(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, loc) // четверг

	empty := map[types.TimeString]int{}

	tests := []struct {
		name   string
		mutate func(*CalendarConfig)
		day    string
		taken  map[types.TimeString]int
		want   bool
	}{
		{name: "open future day", mutate: func(c *CalendarConfig) {}, day: "2026-01-16", taken: empty, want: true},
		{name: "today is bookable with zero lead", mutate: func(c *CalendarConfig) {}, day: "2026-01-15", taken: empty, want: true},
		{name: "past day", mutate: func(c *CalendarConfig) {}, day: "2026-01-14", taken: empty, want: false},
		{name: "closed weekday", mutate: func(c *CalendarConfig) {}, day: "2026-01-17", taken: empty, want: false}, // суббота
		{
			name:   "inside lead window",
			mutate: func(c *CalendarConfig) { c.MinLeadDays = 2 },
			day:    "2026-01-16",
			taken:  empty,
			want:   false,
		},
		{
			// Дата ровно на границе MinLeadDays доступна
			name:   "lead boundary is inclusive",
			mutate: func(c *CalendarConfig) { c.MinLeadDays = 1 },
			day:    "2026-01-16",
			taken:  empty,
			want:   true,
		},
		{
			name:   "fully booked day",
			mutate: func(c *CalendarConfig) { c.HandymanCapacity = 1 },
			day:    "2026-01-16",
			taken:  map[types.TimeString]int{"09:00": 1, "10:00": 1, "11:00": 1, "14:00": 1},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			got, err := IsDayBookable(cfg, tt.day, now, tt.taken)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBookingCanBeCancelledBy тестирует правила отмены бронирования
func TestBookingCanBeCancelledBy(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	tests := []struct {
		name    string
		booking *Booking
		isAdmin bool
		want    bool
	}{
		{name: "customer cancels future pending", booking: &Booking{Status: StatusPending, StartsAt: future}, want: true},
		{name: "customer cannot cancel started", booking: &Booking{Status: StatusConfirmed, StartsAt: past}, want: false},
		{name: "admin cancels started", booking: &Booking{Status: StatusConfirmed, StartsAt: past}, isAdmin: true, want: true},
		{name: "completed is terminal for admin too", booking: &Booking{Status: StatusCompleted, StartsAt: past}, isAdmin: true, want: false},
		{name: "cancelled is terminal", booking: &Booking{Status: StatusCancelled, StartsAt: future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.CanBeCancelledBy(now, tt.isAdmin))
		})
	}
}
