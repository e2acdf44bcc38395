package get_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeConfigStore struct {
	cfg *domain.CalendarConfig
	err error
}

func (f *fakeConfigStore) Get(_ context.Context) (*domain.CalendarConfig, error) {
	return f.cfg, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func testCalendarConfig() *domain.CalendarConfig {
	return &domain.CalendarConfig{
		ID:               1,
		Timezone:         "America/New_York",
		SlotMinutes:      60,
		MinLeadDays:      0,
		ClosedWeekdays:   []int{0, 6},
		DefaultHours:     []types.TimeString{"09:00", "10:00", "11:00"},
		Overrides:        map[string][]types.TimeString{},
		Holidays:         []string{},
		HandymanCapacity: 2,
	}
}

func newTestUseCase(repo *fakeBookingRepo, cfg *domain.CalendarConfig) *UseCase {
	uc := NewUseCase(repo, &fakeConfigStore{cfg: cfg}, noopLogger{})
	// Четверг 15 января 2026, полдень по Нью-Йорку
	uc.timeProvider = &fixedTime{now: time.Date(2026, 1, 15, 17, 0, 0, 0, time.UTC)}
	return uc
}

func dayBooking(day string, slot types.TimeString, status domain.BookingStatus) *domain.Booking {
	date, _ := time.Parse(domain.DateFormat, day)
	return &domain.Booking{BookingDate: date, StartTime: slot, Status: status}
}

// TestExecute_OpenDay тестирует сетку слотов обычного дня со счетчиками
func TestExecute_OpenDay(t *testing.T) {
	day := "2026-01-16"
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		dayBooking(day, "09:00", domain.StatusPending),
		dayBooking(day, "09:00", domain.StatusConfirmed),
		dayBooking(day, "10:00", domain.StatusCompleted),
		dayBooking(day, "11:00", domain.StatusCancelled),
	}}
	uc := newTestUseCase(repo, testCalendarConfig())

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Bookable)
	assert.Equal(t, 2, resp.Capacity)
	require.Len(t, resp.Slots, 3)

	assert.Equal(t, domain.SlotAvailability{StartTime: "09:00", Taken: 2, Capacity: 2}, resp.Slots[0])
	assert.True(t, resp.Slots[0].IsFull())
	assert.Equal(t, domain.SlotAvailability{StartTime: "10:00", Taken: 1, Capacity: 2}, resp.Slots[1])
	assert.Equal(t, 1, resp.Slots[1].SpotsLeft())
	// Отмененное бронирование слот не занимает
	assert.Equal(t, domain.SlotAvailability{StartTime: "11:00", Taken: 0, Capacity: 2}, resp.Slots[2])
}

// TestExecute_ClosedDay тестирует ответ для закрытого дня
func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testCalendarConfig())

	// Суббота - еженедельный выходной
	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
	assert.Empty(t, resp.Slots)
}

// TestExecute_PastDay тестирует прошлую дату: сетка видна, бронировать нельзя
func TestExecute_PastDay(t *testing.T) {
	day := "2026-01-13"
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		dayBooking(day, "09:00", domain.StatusCompleted),
	}}
	uc := newTestUseCase(repo, testCalendarConfig())

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
	require.Len(t, resp.Slots, 3)
	// Завершенные бронирования остаются в счетчиках прошлых дней
	assert.Equal(t, 1, resp.Slots[0].Taken)
}

// TestExecute_FullDay тестирует полностью занятый день
func TestExecute_FullDay(t *testing.T) {
	day := "2026-01-16"
	cfg := testCalendarConfig()
	cfg.HandymanCapacity = 1

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		dayBooking(day, "09:00", domain.StatusPending),
		dayBooking(day, "10:00", domain.StatusPending),
		dayBooking(day, "11:00", domain.StatusConfirmed),
	}}
	uc := newTestUseCase(repo, cfg)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
	for i := range resp.Slots {
		assert.True(t, resp.Slots[i].IsFull())
	}
}

// TestExecute_LeadTime тестирует минимальный срок предварительной записи
func TestExecute_LeadTime(t *testing.T) {
	cfg := testCalendarConfig()
	cfg.MinLeadDays = 2

	uc := newTestUseCase(&fakeBookingRepo{}, cfg)

	// Завтра - внутри окна, бронировать нельзя
	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, resp.Bookable)

	// Ровно через MinLeadDays (понедельник 19-е закрыт, берем вторник)
	cfg.MinLeadDays = 5
	resp, err = uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, resp.Bookable)
}

// TestExecute_ZeroDate тестирует отклонение пустой даты
func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, testCalendarConfig())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
