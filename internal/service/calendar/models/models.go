package models

import (
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации календаря.
// Конфигурация - один документ: обновляется целиком, last-write-wins.
type UpdateConfigRequest struct {
	Timezone         string              `json:"timezone"`
	SlotMinutes      int                 `json:"slotMinutes"`
	MinLeadDays      int                 `json:"minLeadDays"`
	ClosedWeekdays   []int               `json:"closedWeekdays"` // 0=воскресенье .. 6=суббота
	DefaultHours     []string            `json:"defaultHours"`   // "HH:MM"
	Overrides        map[string][]string `json:"overrides"`      // Ключ YYYY-MM-DD, пустой список = закрыт
	Holidays         []string            `json:"holidays"`       // YYYY-MM-DD
	HandymanCapacity int                 `json:"handymanCapacity"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig() *domain.CalendarConfig {
	overrides := make(map[string][]types.TimeString, len(r.Overrides))
	for day, hours := range r.Overrides {
		overrides[day] = toTimeStrings(hours)
	}

	return &domain.CalendarConfig{
		Timezone:         r.Timezone,
		SlotMinutes:      r.SlotMinutes,
		MinLeadDays:      r.MinLeadDays,
		ClosedWeekdays:   r.ClosedWeekdays,
		DefaultHours:     toTimeStrings(r.DefaultHours),
		Overrides:        overrides,
		Holidays:         r.Holidays,
		HandymanCapacity: r.HandymanCapacity,
	}
}

// Response модели

// ConfigResponse полный документ конфигурации (админка)
type ConfigResponse struct {
	Timezone         string              `json:"timezone"`
	SlotMinutes      int                 `json:"slotMinutes"`
	MinLeadDays      int                 `json:"minLeadDays"`
	ClosedWeekdays   []int               `json:"closedWeekdays"`
	DefaultHours     []string            `json:"defaultHours"`
	Overrides        map[string][]string `json:"overrides"`
	Holidays         []string            `json:"holidays"`
	HandymanCapacity int                 `json:"handymanCapacity"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// PublicConfigResponse проекция конфигурации для клиентского виджета.
// maxConcurrent нужен виджету для предварительной отрисовки заполненности,
// служебные метки времени остаются внутренними.
type PublicConfigResponse struct {
	Timezone       string              `json:"timezone"`
	SlotMinutes    int                 `json:"slotMinutes"`
	MinLeadDays    int                 `json:"minLeadDays"`
	ClosedWeekdays []int               `json:"closedWeekdays"`
	DefaultHours   []string            `json:"defaultHours"`
	Overrides      map[string][]string `json:"overrides"`
	Holidays       []string            `json:"holidays"`
	MaxConcurrent  int                 `json:"maxConcurrent"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в полный DTO
func FromDomainConfig(c *domain.CalendarConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		Timezone:         c.Timezone,
		SlotMinutes:      c.SlotMinutes,
		MinLeadDays:      c.MinLeadDays,
		ClosedWeekdays:   c.ClosedWeekdays,
		DefaultHours:     fromTimeStrings(c.DefaultHours),
		Overrides:        fromOverrides(c.Overrides),
		Holidays:         c.Holidays,
		HandymanCapacity: c.HandymanCapacity,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// FromDomainConfigPublic конвертирует domain модель в клиентскую проекцию
func FromDomainConfigPublic(c *domain.CalendarConfig) *PublicConfigResponse {
	if c == nil {
		return nil
	}

	return &PublicConfigResponse{
		Timezone:       c.Timezone,
		SlotMinutes:    c.SlotMinutes,
		MinLeadDays:    c.MinLeadDays,
		ClosedWeekdays: c.ClosedWeekdays,
		DefaultHours:   fromTimeStrings(c.DefaultHours),
		Overrides:      fromOverrides(c.Overrides),
		Holidays:       c.Holidays,
		MaxConcurrent:  c.HandymanCapacity,
	}
}

func toTimeStrings(values []string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}

func fromTimeStrings(values []types.TimeString) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.String())
	}
	return out
}

func fromOverrides(overrides map[string][]types.TimeString) map[string][]string {
	out := make(map[string][]string, len(overrides))
	for day, hours := range overrides {
		out[day] = fromTimeStrings(hours)
	}
	return out
}
