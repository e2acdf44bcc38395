package get_next_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
	"github.com/artemkls/HMS-BookingService/internal/api/middleware"
	"github.com/artemkls/HMS-BookingService/internal/service/bookings"
)

const (
	msgInvalidAddressID = "invalid address id"
	msgMissingUserID    = "missing user identity"
	msgForbidden        = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/next?addressId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.ParseInt(r.URL.Query().Get("addressId"), 10, 64)
	if err != nil || addressID <= 0 {
		h.logger.Warn("GET /bookings/next - Invalid address ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddressID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/next - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetNextBooking(r.Context(), addressID, userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/next - Access denied: address_id=%d, user_id=%d", addressID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/next - Failed to get next booking: address_id=%d, error=%v", addressID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
