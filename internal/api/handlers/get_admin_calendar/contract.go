package get_admin_calendar

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Get(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
