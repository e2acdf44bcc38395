package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	bookingRepo "github.com/artemkls/HMS-BookingService/internal/infra/storage/booking"
	"github.com/artemkls/HMS-BookingService/internal/service/bookings/models"
	"github.com/artemkls/HMS-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID      map[int64]*domain.Booking
	byUser    []*domain.Booking
	active    *domain.Booking
	filtered  []*domain.Booking
	cancelled []int64
	updated   map[int64]domain.BookingStatus
}

func newFakeRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:    make(map[int64]*domain.Booking),
		updated: make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetActiveByAddress(_ context.Context, _ int64, _ time.Time) (*domain.Booking, error) {
	if f.active == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.active, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.filtered, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updated[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeBookingRepo) *Service {
	s := NewService(repo, noopLogger{})
	s.timeProvider = &fixedTime{now: testNow}
	return s
}

func futureBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BookingNumber: "HM-20260116-AB12",
		UserID:        userID,
		AddressID:     10,
		Service:       "TV Mounting",
		StartsAt:      testNow.Add(48 * time.Hour),
		BookingDate:   time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		Status:        status,
	}
}

// TestGetByID тестирует получение бронирования с проверкой прав доступа
func TestGetByID(t *testing.T) {
	repo := newFakeRepo(futureBooking(1, 100, domain.StatusPending))

	tests := []struct {
		name      string
		bookingID int64
		userID    int64
		isAdmin   bool
		wantErr   error
	}{
		{name: "owner reads own booking", bookingID: 1, userID: 100},
		{name: "admin reads any booking", bookingID: 1, userID: 999, isAdmin: true},
		{name: "stranger is denied", bookingID: 1, userID: 200, wantErr: ErrAccessDenied},
		{name: "missing booking", bookingID: 777, userID: 100, wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(repo)
			resp, err := svc.GetByID(context.Background(), tt.bookingID, tt.userID, tt.isAdmin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bookingID, resp.ID)
			assert.Equal(t, "HM-20260116-AB12", resp.BookingNumber)
		})
	}
}

// TestGetUserBookings тестирует историю бронирований пользователя
func TestGetUserBookings(t *testing.T) {
	repo := newFakeRepo()
	repo.byUser = []*domain.Booking{
		futureBooking(1, 100, domain.StatusPending),
		futureBooking(2, 100, domain.StatusCancelled),
	}
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 100})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Некорректный статус фильтра отклоняется до обращения к репозиторию
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 100,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// TestGetNextBooking тестирует ближайшее активное бронирование адреса
func TestGetNextBooking(t *testing.T) {
	// Активного бронирования нет: пустой ответ, не ошибка
	svc := newTestService(newFakeRepo())
	resp, err := svc.GetNextBooking(context.Background(), 10, 100, false)
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)

	// Владелец видит свое бронирование
	repo := newFakeRepo()
	repo.active = futureBooking(1, 100, domain.StatusConfirmed)
	svc = newTestService(repo)

	resp, err = svc.GetNextBooking(context.Background(), 10, 100, false)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(1), resp.Booking.ID)

	// Чужое активное бронирование не показываем
	_, err = svc.GetNextBooking(context.Background(), 10, 200, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// TestCancel тестирует правила отмены бронирования
func TestCancel(t *testing.T) {
	started := futureBooking(3, 100, domain.StatusConfirmed)
	started.StartsAt = testNow.Add(-2 * time.Hour)

	tests := []struct {
		name      string
		booking   *domain.Booking
		bookingID int64
		req       *models.CancelBookingRequest
		wantErr   error
	}{
		{
			name:      "owner cancels future booking",
			booking:   futureBooking(1, 100, domain.StatusPending),
			bookingID: 1,
			req:       &models.CancelBookingRequest{UserID: 100},
		},
		{
			name:      "missing booking",
			bookingID: 777,
			req:       &models.CancelBookingRequest{UserID: 100},
			wantErr:   ErrBookingNotFound,
		},
		{
			name:      "stranger is denied",
			booking:   futureBooking(1, 100, domain.StatusPending),
			bookingID: 1,
			req:       &models.CancelBookingRequest{UserID: 200},
			wantErr:   ErrAccessDenied,
		},
		{
			name:      "already cancelled",
			booking:   futureBooking(2, 100, domain.StatusCancelled),
			bookingID: 2,
			req:       &models.CancelBookingRequest{UserID: 100},
			wantErr:   ErrAlreadyTerminal,
		},
		{
			name:      "completed is terminal",
			booking:   futureBooking(2, 100, domain.StatusCompleted),
			bookingID: 2,
			req:       &models.CancelBookingRequest{UserID: 100},
			wantErr:   ErrAlreadyTerminal,
		},
		{
			name:      "customer cannot cancel started booking",
			booking:   started,
			bookingID: 3,
			req:       &models.CancelBookingRequest{UserID: 100},
			wantErr:   ErrCannotCancel,
		},
		{
			name:      "admin cancels started booking",
			booking:   started,
			bookingID: 3,
			req:       &models.CancelBookingRequest{UserID: 999, IsAdmin: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			if tt.booking != nil {
				repo.byID[tt.booking.ID] = tt.booking
			}
			svc := newTestService(repo)

			err := svc.Cancel(context.Background(), tt.bookingID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.cancelled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []int64{tt.bookingID}, repo.cancelled)
		})
	}
}

// TestUpdateStatus тестирует смену статуса бронирования администратором
func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		booking   *domain.Booking
		bookingID int64
		status    string
		wantErr   error
	}{
		{
			name:      "pending to confirmed",
			booking:   futureBooking(1, 100, domain.StatusPending),
			bookingID: 1,
			status:    "confirmed",
		},
		{
			name:      "confirmed to completed",
			booking:   futureBooking(1, 100, domain.StatusConfirmed),
			bookingID: 1,
			status:    "completed",
		},
		{
			name:      "unknown status",
			booking:   futureBooking(1, 100, domain.StatusPending),
			bookingID: 1,
			status:    "archived",
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "missing booking",
			bookingID: 777,
			status:    "confirmed",
			wantErr:   ErrBookingNotFound,
		},
		{
			name:      "terminal source is rejected",
			booking:   futureBooking(1, 100, domain.StatusCancelled),
			bookingID: 1,
			status:    "confirmed",
			wantErr:   ErrAlreadyTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			if tt.booking != nil {
				repo.byID[tt.booking.ID] = tt.booking
			}
			svc := newTestService(repo)

			err := svc.UpdateStatus(context.Background(), tt.bookingID, &models.UpdateStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.status), repo.updated[tt.bookingID])
		})
	}
}
