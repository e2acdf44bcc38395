package get_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/artemkls/HMS-BookingService/internal/api/handlers"
	"github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
)

const (
	msgInvalidAddressID = "invalid address id"
	msgNoSubscription   = "no subscription found for this address"
)

type Handler struct {
	client SubscriptionClient
	logger Logger
}

func NewHandler(client SubscriptionClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/bookings/subscription?addressId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.ParseInt(r.URL.Query().Get("addressId"), 10, 64)
	if err != nil || addressID <= 0 {
		h.logger.Warn("GET /bookings/subscription - Invalid address ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddressID)
		return
	}

	subscription, err := h.client.GetSubscription(r.Context(), addressID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptionservice.ErrNoSubscription):
			h.logger.Warn("GET /bookings/subscription - No subscription: address_id=%d", addressID)
			handlers.RespondNotFound(w, msgNoSubscription)

		default:
			h.logger.Error("GET /bookings/subscription - Failed to get subscription: address_id=%d, error=%v",
				addressID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSubscription(subscription))
}
