package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

func testConfig() *CalendarConfig {
	return &CalendarConfig{
		ID:             1,
		Timezone:       "America/New_York",
		SlotMinutes:    60,
		MinLeadDays:    0,
		ClosedWeekdays: []int{0, 6}, // выходные
		DefaultHours:   []types.TimeString{"09:00", "10:00", "11:00", "14:00"},
		Overrides:      map[string][]types.TimeString{},
		Holidays:       []string{},
		HandymanCapacity: 2,
	}
}

// TestRuleFor тестирует приоритет правил дня:
// праздник > точечный override > еженедельный выходной > обычный день
func TestRuleFor(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays = []string{"2026-01-19"}
	cfg.Overrides = map[string][]types.TimeString{
		"2026-01-14": {"12:00", "13:00"}, // среда с особыми часами
		"2026-01-15": {},                 // четверг явно закрыт
		"2026-01-17": {"10:00"},          // суббота (выходной) открыта точечно
		"2026-01-19": {"09:00", "10:00"}, // понедельник: праздник сильнее override
	}

	tests := []struct {
		name      string
		day       string
		wantKind  DayRuleKind
		wantHours []types.TimeString
	}{
		{name: "regular weekday uses defaults", day: "2026-01-13", wantKind: DayRuleDefault},
		{name: "override replaces default hours", day: "2026-01-14", wantKind: DayRuleCustom, wantHours: []types.TimeString{"12:00", "13:00"}},
		{name: "empty override closes the day", day: "2026-01-15", wantKind: DayRuleClosed},
		{name: "closed weekday", day: "2026-01-18", wantKind: DayRuleClosed}, // воскресенье
		{name: "override opens a closed weekday", day: "2026-01-17", wantKind: DayRuleCustom, wantHours: []types.TimeString{"10:00"}},
		{name: "holiday wins over override", day: "2026-01-19", wantKind: DayRuleClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := cfg.RuleFor(tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, rule.Kind)
			if tt.wantHours != nil {
				assert.Equal(t, tt.wantHours, rule.Hours)
			}
		})
	}
}

// TestCandidateSlots тестирует список предлагаемых слотов
func TestCandidateSlots(t *testing.T) {
	cfg := testConfig()
	cfg.Overrides = map[string][]types.TimeString{
		"2026-01-15": {},
		"2026-01-16": {"08:00"},
	}

	// Обычный день - дефолтные часы
	slots, err := cfg.CandidateSlots("2026-01-13")
	require.NoError(t, err)
	assert.Equal(t, cfg.DefaultHours, slots)

	// Закрытый день - пустой список, не ошибка
	slots, err = cfg.CandidateSlots("2026-01-15")
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Override полностью заменяет дефолтные часы, а не дополняет их
	slots, err = cfg.CandidateSlots("2026-01-16")
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00"}, slots)
}

// TestNormalize тестирует нормализацию списков конфигурации
func TestNormalize(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultHours = []types.TimeString{"14:00", "09:00", "14:00", "10:00"}
	cfg.Holidays = []string{"2026-07-04", "2026-01-01", "2026-07-04"}
	cfg.ClosedWeekdays = []int{6, 0, 6}
	cfg.Overrides = map[string][]types.TimeString{
		"2026-02-01": {"13:00", "12:00", "13:00"},
	}

	cfg.Normalize()

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "14:00"}, cfg.DefaultHours)
	assert.Equal(t, []string{"2026-01-01", "2026-07-04"}, cfg.Holidays)
	assert.Equal(t, []int{0, 6}, cfg.ClosedWeekdays)
	assert.Equal(t, []types.TimeString{"12:00", "13:00"}, cfg.Overrides["2026-02-01"])
}

// TestValidate тестирует валидацию конфигурации
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CalendarConfig)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *CalendarConfig) {}},
		{name: "unknown timezone", mutate: func(c *CalendarConfig) { c.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "slot minutes too small", mutate: func(c *CalendarConfig) { c.SlotMinutes = 1 }, wantErr: true},
		{name: "negative lead days", mutate: func(c *CalendarConfig) { c.MinLeadDays = -1 }, wantErr: true},
		{name: "zero capacity", mutate: func(c *CalendarConfig) { c.HandymanCapacity = 0 }, wantErr: true},
		{name: "weekday out of range", mutate: func(c *CalendarConfig) { c.ClosedWeekdays = []int{7} }, wantErr: true},
		{name: "bad default hour", mutate: func(c *CalendarConfig) { c.DefaultHours = []types.TimeString{"25:00"} }, wantErr: true},
		{name: "bad override date key", mutate: func(c *CalendarConfig) {
			c.Overrides = map[string][]types.TimeString{"15.01.2026": {"10:00"}}
		}, wantErr: true},
		{name: "bad holiday date", mutate: func(c *CalendarConfig) { c.Holidays = []string{"christmas"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}
