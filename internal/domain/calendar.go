package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации календаря
var ErrInvalidConfig = errors.New("domain: invalid calendar config")

// CalendarConfig is the tenant-wide scheduling policy. It is a single
// document: admins read-modify-write it whole, concurrent edits are
// last-write-wins.
//
// Offered hours are a curated list (DefaultHours / Overrides), not a grid
// synthesized from SlotMinutes; SlotMinutes only drives admin tooling.
type CalendarConfig struct {
	ID          int64
	Timezone    string // IANA имя зоны, например "America/New_York"
	SlotMinutes int
	MinLeadDays int

	ClosedWeekdays []int // 0=воскресенье .. 6=суббота

	DefaultHours []types.TimeString

	// Overrides точечные исключения по датам (ключ YYYY-MM-DD).
	// Наличие ключа с пустым списком = день явно закрыт,
	// непустой список = эти часы вместо DefaultHours.
	Overrides map[string][]types.TimeString

	Holidays []string // Даты YYYY-MM-DD, закрыты всегда (приоритет выше override)

	HandymanCapacity int // Максимум одновременных бронирований на слот

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayRuleKind вид правила для конкретного дня
type DayRuleKind int

const (
	// DayRuleDefault день работает по DefaultHours
	DayRuleDefault DayRuleKind = iota
	// DayRuleClosed день закрыт (праздник, override-закрытие или выходной)
	DayRuleClosed
	// DayRuleCustom день работает по индивидуальному списку часов
	DayRuleCustom
)

// DayRule explicit resolution of a calendar date. The three-state signal
// "absent key / empty override / custom hours" collapses into a tagged
// variant here so downstream code never inspects map presence.
type DayRule struct {
	Kind  DayRuleKind
	Hours []types.TimeString // Заполнено только для DayRuleCustom
}

// Closed returns true if the rule closes the day
func (r DayRule) Closed() bool {
	return r.Kind == DayRuleClosed
}

// Location возвращает *time.Location таймзоны тенанта
func (c *CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Timezone)
	}
	return loc, nil
}

// RuleFor resolves the rule for a YYYY-MM-DD date with strict precedence:
// holiday > per-date override > weekly closure > default. An override
// replaces the default hours entirely, it never extends them.
func (c *CalendarConfig) RuleFor(day string) (DayRule, error) {
	loc, err := c.Location()
	if err != nil {
		return DayRule{}, err
	}

	date, err := time.ParseInLocation(DateFormat, day, loc)
	if err != nil {
		return DayRule{}, fmt.Errorf("%w: invalid date %q", ErrInvalidConfig, day)
	}

	// 1. Праздник - закрыт, даже если на эту дату есть override
	for _, h := range c.Holidays {
		if h == day {
			return DayRule{Kind: DayRuleClosed}, nil
		}
	}

	// 2. Точечный override: пустой список = закрыт, иначе - эти часы
	if hours, ok := c.Overrides[day]; ok {
		if len(hours) == 0 {
			return DayRule{Kind: DayRuleClosed}, nil
		}
		return DayRule{Kind: DayRuleCustom, Hours: hours}, nil
	}

	// 3. Еженедельный выходной
	if c.IsClosedWeekday(int(date.Weekday())) {
		return DayRule{Kind: DayRuleClosed}, nil
	}

	// 4. Обычный день
	return DayRule{Kind: DayRuleDefault}, nil
}

// CandidateSlots returns the ordered hours offered on the date, before any
// capacity filtering. Empty result means the day is closed.
func (c *CalendarConfig) CandidateSlots(day string) ([]types.TimeString, error) {
	rule, err := c.RuleFor(day)
	if err != nil {
		return nil, err
	}

	switch rule.Kind {
	case DayRuleClosed:
		return []types.TimeString{}, nil
	case DayRuleCustom:
		return rule.Hours, nil
	default:
		return c.DefaultHours, nil
	}
}

// IsClosedWeekday возвращает true, если день недели (0=вс..6=сб) закрыт
func (c *CalendarConfig) IsClosedWeekday(weekday int) bool {
	for _, wd := range c.ClosedWeekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// Normalize sorts and deduplicates hour lists, holidays and closed weekdays
// in place. Unsorted or duplicated admin input is accepted and normalized
// rather than rejected.
func (c *CalendarConfig) Normalize() {
	c.DefaultHours = normalizeHours(c.DefaultHours)
	for day, hours := range c.Overrides {
		c.Overrides[day] = normalizeHours(hours)
	}
	c.Holidays = normalizeStrings(c.Holidays)
	c.ClosedWeekdays = normalizeInts(c.ClosedWeekdays)
}

// Validate проверяет конфигурацию. Вызывается после Normalize.
func (c *CalendarConfig) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	if c.SlotMinutes < MinSlotMinutes || c.SlotMinutes > MaxSlotMinutes {
		return fmt.Errorf("%w: slotMinutes must be between %d and %d", ErrInvalidConfig, MinSlotMinutes, MaxSlotMinutes)
	}

	if c.MinLeadDays < MinLeadDaysLimit || c.MinLeadDays > MaxLeadDaysLimit {
		return fmt.Errorf("%w: minLeadDays must be between %d and %d", ErrInvalidConfig, MinLeadDaysLimit, MaxLeadDaysLimit)
	}

	if c.HandymanCapacity < MinHandymanCapacity || c.HandymanCapacity > MaxHandymanCapacity {
		return fmt.Errorf("%w: handymanCapacity must be between %d and %d", ErrInvalidConfig, MinHandymanCapacity, MaxHandymanCapacity)
	}

	for _, wd := range c.ClosedWeekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: closedWeekdays values must be 0..6, got %d", ErrInvalidConfig, wd)
		}
	}

	for _, h := range c.DefaultHours {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%w: defaultHours: %v", ErrInvalidConfig, err)
		}
	}

	for day, hours := range c.Overrides {
		if _, err := time.Parse(DateFormat, day); err != nil {
			return fmt.Errorf("%w: override date %q is not YYYY-MM-DD", ErrInvalidConfig, day)
		}
		for _, h := range hours {
			if err := h.Validate(); err != nil {
				return fmt.Errorf("%w: override %s: %v", ErrInvalidConfig, day, err)
			}
		}
	}

	for _, day := range c.Holidays {
		if _, err := time.Parse(DateFormat, day); err != nil {
			return fmt.Errorf("%w: holiday %q is not YYYY-MM-DD", ErrInvalidConfig, day)
		}
	}

	return nil
}

func normalizeHours(hours []types.TimeString) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(hours))
	out := make([]types.TimeString, 0, len(hours))
	for _, h := range hours {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}

func normalizeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func normalizeInts(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
