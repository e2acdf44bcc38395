package get_time_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	getTimeSlots "github.com/artemkls/HMS-BookingService/internal/usecase/get_time_slots"
)

type fakeUseCase struct {
	resp *getTimeSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getTimeSlots.Request) (*getTimeSlots.Response, error) {
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// TestHandle_ResponseShape тестирует формат ответа для виджета календаря:
// слоты плоским списком времен, занятость отдельной картой
func TestHandle_ResponseShape(t *testing.T) {
	uc := &fakeUseCase{resp: &getTimeSlots.Response{
		Date:     time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		Bookable: true,
		Capacity: 2,
		Slots: []domain.SlotAvailability{
			{StartTime: "09:00", Taken: 2, Capacity: 2},
			{StartTime: "10:00", Taken: 1, Capacity: 2},
			{StartTime: "11:00", Taken: 0, Capacity: 2},
		},
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2026-01-16", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Date            string         `json:"date"`
		Bookable        bool           `json:"bookable"`
		Slots           []string       `json:"slots"`
		Taken           map[string]int `json:"taken"`
		CapacityPerSlot int            `json:"capacityPerSlot"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2026-01-16", body.Date)
	assert.True(t, body.Bookable)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, body.Slots)
	assert.Equal(t, map[string]int{"09:00": 2, "10:00": 1, "11:00": 0}, body.Taken)
	assert.Equal(t, 2, body.CapacityPerSlot)
}

// TestHandle_BadDate тестирует отклонение запросов без корректной даты
func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=16.01.2026", nil)
	rec = httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
