package update_admin_calendar

import (
	"errors"
	"net/http"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
	"github.com/artemkls/HMS-BookingService/internal/service/calendar"
	"github.com/artemkls/HMS-BookingService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle PUT /api/admin/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	config, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /admin/calendar - Validation failed: %v", err)
			handlers.RespondUnprocessable(w, err.Error())

		default:
			h.logger.Error("PUT /admin/calendar - Failed to update calendar config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/calendar - Calendar config updated")
	handlers.RespondJSON(w, http.StatusOK, config)
}
