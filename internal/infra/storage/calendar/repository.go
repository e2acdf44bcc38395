package calendar

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/pkg/dbmetrics"
	"github.com/artemkls/HMS-BookingService/pkg/psqlbuilder"
	"github.com/artemkls/HMS-BookingService/pkg/types"
)

// configRowID конфигурация календаря хранится единственной строкой-документом
const configRowID = 1

// Repository репозиторий конфигурации календаря.
// Конфигурация - один документ на тенанта: читается целиком, пишется целиком
// (read-modify-write на стороне админки, last-write-wins).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает документ конфигурации
func (r *Repository) Get(ctx context.Context) (*domain.CalendarConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"timezone",
		"slot_minutes",
		"min_lead_days",
		"closed_weekdays",
		"default_hours",
		"overrides",
		"holidays",
		"handyman_capacity",
		"created_at",
		"updated_at",
	).
		From("calendar_config").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		cfg                  domain.CalendarConfig
		closedWeekdays       []int64
		defaultHours         []string
		overridesJSON        []byte
		holidays             []string
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Timezone,
		&cfg.SlotMinutes,
		&cfg.MinLeadDays,
		pq.Array(&closedWeekdays),
		pq.Array(&defaultHours),
		&overridesJSON,
		pq.Array(&holidays),
		&cfg.HandymanCapacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.ClosedWeekdays = make([]int, len(closedWeekdays))
	for i, wd := range closedWeekdays {
		cfg.ClosedWeekdays[i] = int(wd)
	}

	cfg.DefaultHours = toTimeStrings(defaultHours)
	cfg.Holidays = holidays

	cfg.Overrides = make(map[string][]types.TimeString)
	if len(overridesJSON) > 0 {
		var raw map[string][]string
		if err := json.Unmarshal(overridesJSON, &raw); err != nil {
			return nil, fmt.Errorf("%w: Get - decode overrides: %v", ErrScanRow, err)
		}
		for day, hours := range raw {
			cfg.Overrides[day] = toTimeStrings(hours)
		}
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Put записывает документ конфигурации целиком (upsert, last-write-wins)
func (r *Repository) Put(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	overrides := make(map[string][]string, len(cfg.Overrides))
	for day, hours := range cfg.Overrides {
		overrides[day] = fromTimeStrings(hours)
	}
	overridesJSON, err := json.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("%w: Put - encode overrides: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("calendar_config").
		Columns(
			"id",
			"timezone",
			"slot_minutes",
			"min_lead_days",
			"closed_weekdays",
			"default_hours",
			"overrides",
			"holidays",
			"handyman_capacity",
		).
		Values(
			configRowID,
			cfg.Timezone,
			cfg.SlotMinutes,
			cfg.MinLeadDays,
			pq.Array(cfg.ClosedWeekdays),
			pq.Array(fromTimeStrings(cfg.DefaultHours)),
			overridesJSON,
			pq.Array(cfg.Holidays),
			cfg.HandymanCapacity,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			slot_minutes = EXCLUDED.slot_minutes,
			min_lead_days = EXCLUDED.min_lead_days,
			closed_weekdays = EXCLUDED.closed_weekdays,
			default_hours = EXCLUDED.default_hours,
			overrides = EXCLUDED.overrides,
			holidays = EXCLUDED.holidays,
			handyman_capacity = EXCLUDED.handyman_capacity,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Put - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Put - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func toTimeStrings(values []string) []types.TimeString {
	out := make([]types.TimeString, len(values))
	for i, v := range values {
		out[i] = types.TimeString(v)
	}
	return out
}

func fromTimeStrings(values []types.TimeString) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
