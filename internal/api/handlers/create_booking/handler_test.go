package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artemkls/HMS-BookingService/internal/api/middleware"
	"github.com/artemkls/HMS-BookingService/internal/domain"
	createBooking "github.com/artemkls/HMS-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	req  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func createdResponse() *createBooking.Response {
	return &createBooking.Response{
		ID:            42,
		BookingNumber: "HM-20260116-4F2A",
		UserID:        100,
		AddressID:     10,
		Service:       "TV Mounting",
		StartsAt:      time.Date(2026, 1, 16, 15, 0, 0, 0, time.UTC),
		BookingDate:   time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		Status:        string(domain.StatusPending),
	}
}

func doRequest(t *testing.T, uc *fakeUseCase, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, noopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	if authed {
		req = req.WithContext(middleware.WithIdentity(req.Context(), 100, ""))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

// TestHandle_Created тестирует успешное создание: ответ обернут в message
// и объект booking с датой и временем слота
func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: createdResponse()}

	rec := doRequest(t, uc, `{"addressId":10,"service":"TV Mounting","date":"2026-01-16","startTime":"10:00"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message string `json:"message"`
		Booking struct {
			BookingNumber string `json:"bookingNumber"`
			Service       string `json:"service"`
			Date          string `json:"date"`
			Time          string `json:"time"`
			Status        string `json:"status"`
		} `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.NotEmpty(t, body.Message)
	assert.Equal(t, "HM-20260116-4F2A", body.Booking.BookingNumber)
	assert.Equal(t, "2026-01-16", body.Booking.Date)
	assert.Equal(t, "10:00", body.Booking.Time)
	assert.Equal(t, "pending", body.Booking.Status)

	require.NotNil(t, uc.req)
	assert.Equal(t, int64(100), uc.req.UserID)
	assert.Equal(t, "2026-01-16", uc.req.Date.Format(domain.DateFormat))
}

// TestHandle_InstantDate тестирует дату в виде полного момента ISO 8601
func TestHandle_InstantDate(t *testing.T) {
	uc := &fakeUseCase{resp: createdResponse()}

	rec := doRequest(t, uc, `{"addressId":10,"service":"TV Mounting","date":"2026-01-16T10:00:00-05:00"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.req)
	require.NotNil(t, uc.req.StartsAt, "instant form must reach the use case as an absolute moment")
	assert.True(t, uc.req.StartsAt.Equal(time.Date(2026, 1, 16, 15, 0, 0, 0, time.UTC)))
}

// TestHandle_Rejections тестирует маппинг отказов на HTTP статусы
func TestHandle_Rejections(t *testing.T) {
	validBody := `{"addressId":10,"service":"TV Mounting","date":"2026-01-16","startTime":"10:00"}`

	tests := []struct {
		name     string
		body     string
		authed   bool
		err      error
		wantCode int
	}{
		{name: "no identity", body: validBody, wantCode: http.StatusUnauthorized},
		{name: "garbage date", body: `{"addressId":10,"service":"x","date":"tomorrow"}`, authed: true, wantCode: http.StatusBadRequest},
		{name: "already booked", body: validBody, authed: true, err: createBooking.ErrAlreadyBooked, wantCode: http.StatusConflict},
		{name: "no subscription", body: validBody, authed: true, err: createBooking.ErrNoActiveSubscription, wantCode: http.StatusForbidden},
		{name: "slot full", body: validBody, authed: true, err: createBooking.ErrSlotFull, wantCode: http.StatusConflict},
		{name: "date not bookable", body: validBody, authed: true, err: createBooking.ErrDateNotBookable, wantCode: http.StatusBadRequest},
		{name: "validation error", body: validBody, authed: true, err: createBooking.ErrInvalidInput, wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, tt.body, tt.authed)
			assert.Equal(t, tt.wantCode, rec.Code)

			// Каждый отказ несет message для фронтенда
			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
		})
	}
}
