package create_booking

import (
	"fmt"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.AddressID <= 0 {
		return fmt.Errorf("%w: addressID must be positive", ErrInvalidInput)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if len(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service must be at most %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	// Момент начала: либо абсолютный StartsAt, либо пара дата + время слота
	if req.StartsAt == nil {
		if req.Date.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}

		if req.StartTime.IsZero() {
			return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
		}

		// Валидируем формат времени
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	} else if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt must not be zero", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if len(req.Images) > domain.MaxImagesPerBooking {
		return fmt.Errorf("%w: at most %d images are allowed", ErrInvalidInput, domain.MaxImagesPerBooking)
	}

	return nil
}

// slotOffered проверяет, что время входит в список предлагаемых слотов даты
func slotOffered(cfg *domain.CalendarConfig, day string, startTime types.TimeString) (bool, error) {
	slots, err := cfg.CandidateSlots(day)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot == startTime {
			return true, nil
		}
	}
	return false, nil
}
