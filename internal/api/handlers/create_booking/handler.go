package create_booking

import (
	"errors"
	"net/http"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
	"github.com/artemkls/HMS-BookingService/internal/api/middleware"
	createBooking "github.com/artemkls/HMS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected an ISO 8601 instant or YYYY-MM-DD with HH:MM"
	msgMissingUserID      = "missing user identity"
	msgAlreadyBooked      = "this address already has an active booking"
	msgNoSubscription     = "no active subscription covers this service"
	msgSlotNotOffered     = "this time is not offered on the selected date"
	msgDateNotBookable    = "the selected date is not open for booking"
	msgSlotFull           = "the selected time slot is fully booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: user_id=%d, address_id=%d", userID, req.AddressID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrNoActiveSubscription):
			h.logger.Warn("POST /bookings - No active subscription: user_id=%d, address_id=%d", userID, req.AddressID)
			handlers.RespondForbidden(w, msgNoSubscription)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - Slot not offered: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /bookings - Date not bookable: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: user_id=%d, date=%s, time=%s", userID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, number=%s, user_id=%d",
		result.ID, result.BookingNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
