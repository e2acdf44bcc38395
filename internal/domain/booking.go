package domain

import (
	"time"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a scheduled appointment at a customer address.
//
// StartsAt is the absolute instant (stored UTC). BookingDate and StartTime
// are the same instant bucketed into the tenant timezone at creation time;
// the capacity ledger is computed over these local buckets, never over UTC.
type Booking struct {
	ID            int64
	BookingNumber string // Человекочитаемый номер, например "HM-20260115-4F2A"
	UserID        int64
	AddressID     int64
	Service       string
	StartsAt      time.Time
	BookingDate   time.Time // Дата в таймзоне тенанта (только день)
	StartTime     types.TimeString
	Status        BookingStatus
	Note          *string
	Images        []string // Непрозрачные ссылки на загруженные файлы

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot returns true if the booking counts against slot capacity.
// Cancelled bookings free their slot immediately; completed ones stay in
// the ledger so past days render correctly.
func (b *Booking) OccupiesSlot() bool {
	for _, s := range InactiveStatuses {
		if b.Status == s {
			return false
		}
	}
	return true
}

// IsActive returns true if the booking blocks new bookings for its address:
// not terminal and not yet started.
func (b *Booking) IsActive(now time.Time) bool {
	return !b.IsTerminal() && !b.StartsAt.Before(now)
}

// CanBeCancelledBy returns true if the cancel action is allowed for the
// caller. The customer-facing cancel requires the booking to be future-dated
// and not already terminal; admins may cancel any non-terminal booking.
func (b *Booking) CanBeCancelledBy(now time.Time, isAdmin bool) bool {
	if b.IsTerminal() {
		return false
	}
	if isAdmin {
		return true
	}
	return b.StartsAt.After(now)
}

// BookingsFilter фильтр для выборки бронирований (админская таблица)
type BookingsFilter struct {
	AddressID       *int64         // Фильтр по адресу (опционально)
	StartDate       *time.Time     // Начало периода по BookingDate (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// ValidStatus проверяет, что строка является допустимым статусом бронирования
func ValidStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}
