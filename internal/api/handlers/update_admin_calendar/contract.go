package update_admin_calendar

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
