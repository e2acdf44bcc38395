package create_booking

import (
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	createBooking "github.com/artemkls/HMS-BookingService/internal/usecase/create_booking"
	"github.com/artemkls/HMS-BookingService/pkg/types"
)

const msgBookingCreated = "booking created"

// CreateBookingRequest HTTP request model.
// Поле date принимает либо полный момент ISO 8601 ("2026-01-16T10:00:00-05:00",
// привязывается к слоту в таймзоне тенанта), либо дату "2026-01-16" вместе
// с отдельным startTime "10:00".
type CreateBookingRequest struct {
	AddressID int64    `json:"addressId"`
	Service   string   `json:"service"`
	Date      string   `json:"date"`
	StartTime string   `json:"startTime,omitempty"`
	Note      *string  `json:"note,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// BookingPayload данные созданного бронирования в ответе
type BookingPayload struct {
	ID            int64    `json:"id"`
	BookingNumber string   `json:"bookingNumber"`
	UserID        int64    `json:"userId"`
	AddressID     int64    `json:"addressId"`
	Service       string   `json:"service"`
	StartsAt      string   `json:"startsAt"` // ISO 8601, UTC
	Date          string   `json:"date"`     // "2026-01-16", таймзона тенанта
	Time          string   `json:"time"`     // "10:00"
	Status        string   `json:"status"`
	Note          *string  `json:"note,omitempty"`
	Images        []string `json:"images,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message string         `json:"message"`
	Booking BookingPayload `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		UserID:    userID,
		AddressID: r.AddressID,
		Service:   r.Service,
		Note:      r.Note,
		Images:    r.Images,
	}

	// Полный момент ISO 8601: дату и слот вычислит use case в таймзоне тенанта
	if instant, err := time.Parse(time.RFC3339, r.Date); err == nil {
		req.StartsAt = &instant
		return req, nil
	}

	// Иначе пара дата + время слота
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req.Date = date
	req.StartTime = startTime
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message: msgBookingCreated,
		Booking: BookingPayload{
			ID:            resp.ID,
			BookingNumber: resp.BookingNumber,
			UserID:        resp.UserID,
			AddressID:     resp.AddressID,
			Service:       resp.Service,
			StartsAt:      resp.StartsAt.UTC().Format(time.RFC3339),
			Date:          resp.BookingDate.Format(domain.DateFormat),
			Time:          resp.StartTime.String(),
			Status:        resp.Status,
			Note:          resp.Note,
			Images:        resp.Images,
			CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}
