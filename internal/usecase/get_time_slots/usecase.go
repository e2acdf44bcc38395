package get_time_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

// UseCase use case для получения сетки слотов дня со счетчиками занятости
type UseCase struct {
	bookingRepo  BookingRepository
	configStore  ConfigStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configStore ConfigStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configStore:  configStore,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов дня.
//
// Чтение не транзакционное: между ответом и создением бронирования слот
// все равно может занять другой клиент, окончательную проверку делает
// создание. Прошлые и закрытые дни - валидный запрос с Bookable=false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetTimeSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	day := req.Date.Format(domain.DateFormat)

	cfg, err := uc.configStore.Get(ctx)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get calendar config: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
	}

	candidates, err := cfg.CandidateSlots(day)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Закрытый день: пустая сетка, бронировать нельзя
	if len(candidates) == 0 {
		uc.logger.Info("GetTimeSlots: %s is closed", day)
		return &Response{
			Date:     req.Date,
			Bookable: false,
			Capacity: cfg.HandymanCapacity,
			Slots:    []domain.SlotAvailability{},
		}, nil
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get bookings for %s: %v", day, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	taken, err := domain.TakenCounts(cfg, day, bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	bookable, err := domain.IsDayBookable(cfg, day, now, taken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	slots, err := domain.DaySlots(cfg, day, taken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("GetTimeSlots: %d slots for %s, bookable=%v", len(slots), day, bookable)

	return &Response{
		Date:     req.Date,
		Bookable: bookable,
		Capacity: cfg.HandymanCapacity,
		Slots:    slots,
	}, nil
}
