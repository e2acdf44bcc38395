package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	bookingRepo "github.com/artemkls/HMS-BookingService/internal/infra/storage/booking"
	subscriptionClient "github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo        BookingRepository
	configStore        ConfigStore
	subscriptionClient SubscriptionClient
	txManager          TransactionManager
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configStore ConfigStore,
	subscriptionClient SubscriptionClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		configStore:        configStore,
		subscriptionClient: subscriptionClient,
		txManager:          txManager,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверки вместимости и единственного активного бронирования выполняются
// в сериализуемой транзакции с блокировкой строк (FOR UPDATE): из двух
// конкурентных писателей на последнее место побеждает ровно один, второй
// получает детерминированный отказ. Транзакция выполняется один раз,
// без скрытых повторов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, address=%d, service=%q", req.UserID, req.AddressID, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем подписку адреса до открытия транзакции: это внешний
	// HTTP-вызов, держать под него сериализуемую транзакцию нельзя.
	// При недоступности сервиса подписок бронирование отклоняется.
	subscription, err := uc.subscriptionClient.GetSubscription(ctx, req.AddressID)
	if err != nil {
		if errors.Is(err, subscriptionClient.ErrNoSubscription) {
			uc.logger.Warn("CreateBooking: address=%d has no subscription", req.AddressID)
			return nil, ErrNoActiveSubscription
		}
		uc.logger.Error("CreateBooking: subscription check failed for address=%d: %v", req.AddressID, err)
		return nil, fmt.Errorf("%w: subscription check failed: %v", ErrInternal, err)
	}

	if !subscription.IsActive() {
		uc.logger.Warn("CreateBooking: subscription for address=%d is not active, status=%s",
			req.AddressID, subscription.Status)
		return nil, ErrNoActiveSubscription
	}

	if !subscription.Covers(req.Service) {
		uc.logger.Warn("CreateBooking: subscription plan=%s for address=%d does not cover service=%q",
			subscription.Plan, req.AddressID, req.Service)
		return nil, ErrNoActiveSubscription
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем конфигурацию календаря
		cfg, err := uc.configStore.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get calendar config: %v", err)
			return fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
		}

		loc, err := cfg.Location()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 3.2. Приводим момент начала к дате и слоту в таймзоне тенанта.
		// Абсолютный момент привязывается через конфигурацию календаря,
		// пара дата + время уже выражена в таймзоне тенанта.
		day := req.Date.Format(domain.DateFormat)
		startTime := req.StartTime
		bookingDate := req.Date
		if req.StartsAt != nil {
			day, startTime, err = domain.LocalDay(cfg, *req.StartsAt)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			bookingDate, err = time.Parse(domain.DateFormat, day)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		// 3.3. Переводим просроченные незавершённые бронирования адреса в
		// completed: иначе забытая в pending запись с прошедшей датой
		// навсегда блокировала бы адрес через частичный уникальный индекс
		if err := uc.bookingRepo.CompletePast(txCtx, req.AddressID, now); err != nil {
			uc.logger.Error("CreateBooking: failed to complete past bookings for address=%d: %v", req.AddressID, err)
			return fmt.Errorf("%w: failed to complete past bookings: %v", ErrInternal, err)
		}

		// 3.4. Проверяем, что у адреса нет другого активного бронирования.
		// FOR UPDATE внутри транзакции; частичный уникальный индекс в БД
		// страхует эту проверку от гонки.
		active, err := uc.bookingRepo.GetActiveByAddress(txCtx, req.AddressID, now)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check active booking for address=%d: %v", req.AddressID, err)
			return fmt.Errorf("%w: failed to check active booking: %v", ErrInternal, err)
		}
		if active != nil {
			uc.logger.Warn("CreateBooking: address=%d already has active booking id=%d", req.AddressID, active.ID)
			return ErrAlreadyBooked
		}

		// 3.5. Проверяем, что дата доступна: не в прошлом, не раньше
		// минимального срока предварительной записи и не закрыта
		days, err := domain.DaysUntil(cfg, now, day)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if days < 0 {
			uc.logger.Warn("CreateBooking: date %s is in the past", day)
			return ErrDateNotBookable
		}
		if days < cfg.MinLeadDays {
			uc.logger.Warn("CreateBooking: date %s violates min lead time of %d days", day, cfg.MinLeadDays)
			return ErrDateNotBookable
		}

		rule, err := cfg.RuleFor(day)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if rule.Closed() {
			uc.logger.Warn("CreateBooking: date %s is closed", day)
			return ErrDateNotBookable
		}

		// 3.6. Проверяем, что время входит в список предлагаемых слотов
		offered, err := slotOffered(cfg, day, startTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !offered {
			uc.logger.Warn("CreateBooking: slot %s is not offered on %s", startTime, day)
			return ErrSlotNotOffered
		}

		// 3.7. Считаем занятость слотов по бронированиям даты (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, bookingDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for %s: %v", day, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		taken, err := domain.TakenCounts(cfg, day, bookings)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if domain.IsSlotFull(cfg, taken, startTime) {
			uc.logger.Warn("CreateBooking: slot %s on %s is full, %d/%d taken",
				startTime, day, taken[startTime], cfg.HandymanCapacity)
			return ErrSlotFull
		}

		uc.logger.Info("CreateBooking: slot %s on %s available, %d/%d taken",
			startTime, day, taken[startTime], cfg.HandymanCapacity)

		// 3.8. Вычисляем абсолютный момент начала в таймзоне тенанта
		startsAt, err := time.ParseInLocation(
			domain.DateFormat+" "+domain.TimeFormat,
			day+" "+startTime.String(),
			loc,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to compute start instant: %v", ErrInternal, err)
		}

		// 3.9. Создаем бронирование
		booking := &domain.Booking{
			BookingNumber: generateBookingNumber(day),
			UserID:        req.UserID,
			AddressID:     req.AddressID,
			Service:       req.Service,
			StartsAt:      startsAt.UTC(),
			BookingDate:   bookingDate,
			StartTime:     startTime,
			Status:        domain.StatusPending,
			Note:          req.Note,
			Images:        req.Images,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrActiveBookingExists) {
				uc.logger.Warn("CreateBooking: concurrent active booking for address=%d", req.AddressID)
				return ErrAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d number=%s", result.ID, result.BookingNumber)

	return &Response{
		ID:            result.ID,
		BookingNumber: result.BookingNumber,
		UserID:        result.UserID,
		AddressID:     result.AddressID,
		Service:       result.Service,
		StartsAt:      result.StartsAt,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		Status:        string(result.Status),
		Note:          result.Note,
		Images:        result.Images,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// generateBookingNumber генерирует человекочитаемый номер вида "HM-20260115-4F2A"
func generateBookingNumber(day string) string {
	uid := uuid.New()
	suffix := fmt.Sprintf("%X", uid[0:2])
	return fmt.Sprintf("HM-%s-%s", strings.ReplaceAll(day, "-", ""), suffix)
}
