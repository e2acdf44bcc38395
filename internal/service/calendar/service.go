package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	calendarRepo "github.com/artemkls/HMS-BookingService/internal/infra/storage/calendar"
	"github.com/artemkls/HMS-BookingService/internal/service/calendar/models"
)

// Service сервис для работы с конфигурацией календаря
type Service struct {
	store  ConfigStore
	logger Logger
}

// NewService создает новый экземпляр сервиса конфигурации календаря
func NewService(store ConfigStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get получает полный документ конфигурации (админка)
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.getDomainConfig(ctx, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// GetPublic получает клиентскую проекцию конфигурации.
// Виджет бронирования строит по ней месячную сетку без запросов по каждому дню.
func (s *Service) GetPublic(ctx context.Context) (*models.PublicConfigResponse, error) {
	cfg, err := s.getDomainConfig(ctx, "GetPublic")
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfigPublic(cfg), nil
}

// Update обновляет документ конфигурации целиком.
// Входные списки нормализуются (сортировка, дедупликация), затем валидируются.
// Update не сверяет версию документа: при конкурентных правках побеждает
// последняя запись.
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating calendar config, timezone=%s, capacity=%d", req.Timezone, req.HandymanCapacity)

	cfg := req.ToDomainConfig()
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.store.Put(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: store error: %v", err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: calendar config saved, updatedAt=%s", saved.UpdatedAt)
	return models.FromDomainConfig(saved), nil
}

func (s *Service) getDomainConfig(ctx context.Context, op string) (*domain.CalendarConfig, error) {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrConfigNotFound) {
			s.logger.Warn("%s: calendar config not found", op)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("%s: store error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
	return cfg, nil
}
