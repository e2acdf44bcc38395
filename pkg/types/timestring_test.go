package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTimeStringFromString тестирует парсинг и нормализацию строки времени
func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "10:00", want: "10:00"},
		{name: "normalizes missing leading zero", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "ten o'clock", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTimeStringAddMinutes тестирует сложение времени с минутами
func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add within hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "add across hour boundary", start: "10:45", minutes: 30, want: "11:15"},
		{name: "subtract", start: "10:00", minutes: -15, want: "09:45"},
		{name: "overflow past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "underflow below midnight", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestTimeStringComparison тестирует лексикографическое сравнение
func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))

	// Ведущие нули гарантируют корректность строкового сравнения
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

// TestTimeStringScan тестирует чтение из БД
func TestTimeStringScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want TimeString
	}{
		{name: "text column", src: "10:00", want: "10:00"},
		{name: "bytes", src: []byte("09:30"), want: "09:30"},
		{name: "time column with seconds", src: "14:00:00", want: "14:00"},
		{name: "time.Time value", src: time.Date(2026, 1, 15, 11, 45, 0, 0, time.UTC), want: "11:45"},
		{name: "null", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			require.NoError(t, ts.Scan(tt.src))
			assert.Equal(t, tt.want, ts)
		})
	}
}

// TestTimeStringValue тестирует запись в БД
func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	require.Error(t, err)
}
