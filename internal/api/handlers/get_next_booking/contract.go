package get_next_booking

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetNextBooking(ctx context.Context, addressID int64, userID int64, isAdmin bool) (*models.NextBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
