package get_admin_calendar

import (
	"errors"
	"net/http"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
	"github.com/artemkls/HMS-BookingService/internal/service/calendar"
)

const (
	msgNotConfigured = "booking calendar is not configured"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrConfigNotFound):
			h.logger.Warn("GET /admin/calendar - Calendar config not found")
			handlers.RespondNotFound(w, msgNotConfigured)

		default:
			h.logger.Error("GET /admin/calendar - Failed to get calendar config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, config)
}
