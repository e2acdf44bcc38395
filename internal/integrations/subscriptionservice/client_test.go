package subscriptionservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// TestGetSubscription тестирует обработку ответов SubscriptionService
func TestGetSubscription(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, sub *Subscription, err error)
	}{
		{
			name: "active subscription",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/internal/addresses/10/subscription", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":7,"address_id":10,"plan":"standard","status":"active","services":["TV Mounting"]}`))
			},
			check: func(t *testing.T, sub *Subscription, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(10), sub.AddressID)
				assert.True(t, sub.IsActive())
				assert.True(t, sub.Covers("TV Mounting"))
				assert.False(t, sub.Covers("Plumbing"))
			},
		},
		{
			name: "no subscription",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			check: func(t *testing.T, _ *Subscription, err error) {
				assert.ErrorIs(t, err, ErrNoSubscription)
			},
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			check: func(t *testing.T, _ *Subscription, err error) {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			check: func(t *testing.T, _ *Subscription, err error) {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`not json`))
			},
			check: func(t *testing.T, _ *Subscription, err error) {
				assert.ErrorIs(t, err, ErrInvalidResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 2*time.Second, noopLogger{})
			sub, err := client.GetSubscription(context.Background(), 10)
			tt.check(t, sub, err)
		})
	}
}

// TestSubscriptionCovers тестирует покрытие услуг планом
func TestSubscriptionCovers(t *testing.T) {
	// Пустой список услуг означает "все услуги плана"
	all := &Subscription{Status: "active"}
	assert.True(t, all.Covers("anything"))

	limited := &Subscription{Status: "active", Services: []string{"Plumbing", "TV Mounting"}}
	assert.True(t, limited.Covers("Plumbing"))
	assert.False(t, limited.Covers("Painting"))
}
