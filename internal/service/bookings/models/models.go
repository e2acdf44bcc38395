package models

import (
	"errors"
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"-"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования (админка)
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAdminBookingsRequest запрос на получение бронирований (админская таблица)
type GetAdminBookingsRequest struct {
	AddressID       *int64     `json:"addressId,omitempty"`       // Фильтр по адресу (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetAdminBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		AddressID:       r.AddressID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64    `json:"id"`
	BookingNumber string   `json:"bookingNumber"`
	UserID        int64    `json:"userId"`
	AddressID     int64    `json:"addressId"`
	Service       string   `json:"service"`
	StartsAt      string   `json:"startsAt"`    // ISO 8601, UTC
	BookingDate   string   `json:"bookingDate"` // "2026-01-15", таймзона тенанта
	StartTime     string   `json:"startTime"`   // "10:00"
	Status        string   `json:"status"`
	Note          *string  `json:"note,omitempty"`
	Images        []string `json:"images,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// NextBookingResponse ближайшее активное бронирование адреса.
// Booking равен null, если активного бронирования нет.
type NextBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		UserID:        b.UserID,
		AddressID:     b.AddressID,
		Service:       b.Service,
		StartsAt:      b.StartsAt.UTC().Format(time.RFC3339),
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		Status:        string(b.Status),
		Note:          b.Note,
		Images:        b.Images,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ValidStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
