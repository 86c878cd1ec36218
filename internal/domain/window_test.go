package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

func TestWindowBounds_ConvertsLocalToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	window := BusinessWindow{
		Date:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Location: loc,
		Open:     types.TimeString("09:00"),
		Close:    types.TimeString("18:00"),
	}

	start, end, err := window.Bounds()
	require.NoError(t, err)

	// Сан-Паулу: UTC-3 круглый год
	assert.Equal(t, time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 10, 21, 0, 0, 0, time.UTC), end)
}

func TestWindowBounds_DSTGap(t *testing.T) {
	// Нью-Йорк, 8 марта 2026: в 02:00 часы переводятся на 03:00,
	// локального времени 02:30 не существует. Политика: время
	// сдвигается вперёд за пропуск, абсолютный момент однозначен
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	window := BusinessWindow{
		Date:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Location: loc,
		Open:     types.TimeString("02:30"),
		Close:    types.TimeString("10:00"),
	}

	start, end, err := window.Bounds()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 8, 7, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC), end)
}

func TestWindowBounds_DSTFold(t *testing.T) {
	// Нью-Йорк, 1 ноября 2026: 01:30 существует дважды (EDT и EST).
	// Политика: берётся первое вхождение (EDT, UTC-4)
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	window := BusinessWindow{
		Date:     time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Location: loc,
		Open:     types.TimeString("01:30"),
		Close:    types.TimeString("09:00"),
	}

	start, _, err := window.Bounds()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 11, 1, 5, 30, 0, 0, time.UTC), start)

	// Разрешение детерминировано: повторный вызов дает тот же момент
	again, _, err := window.Bounds()
	require.NoError(t, err)
	assert.True(t, start.Equal(again))
}

func TestWindowValidate(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name    string
		window  BusinessWindow
		wantErr bool
	}{
		{
			name: "valid",
			window: BusinessWindow{
				Date: time.Now(), Location: loc,
				Open: "09:00", Close: "18:00",
			},
		},
		{
			name: "close equals open",
			window: BusinessWindow{
				Date: time.Now(), Location: loc,
				Open: "09:00", Close: "09:00",
			},
			wantErr: true,
		},
		{
			name: "close before open",
			window: BusinessWindow{
				Date: time.Now(), Location: loc,
				Open: "18:00", Close: "09:00",
			},
			wantErr: true,
		},
		{
			name: "bad open format",
			window: BusinessWindow{
				Date: time.Now(), Location: loc,
				Open: "9am", Close: "18:00",
			},
			wantErr: true,
		},
		{
			name: "missing location",
			window: BusinessWindow{
				Date: time.Now(),
				Open: "09:00", Close: "18:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResourceKey(t *testing.T) {
	staffA := StaffResource(mustUUID(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	staffB := StaffResource(mustUUID(t, "6ba7b811-9dad-11d1-80b4-00c04fd430c8"))
	shared := AnyResource()

	assert.True(t, staffA.Equal(staffA))
	assert.False(t, staffA.Equal(staffB))
	assert.False(t, staffA.Equal(shared))
	assert.True(t, shared.Equal(AnyResource()))

	assert.True(t, shared.IsAny())
	assert.False(t, staffA.IsAny())

	id, ok := staffA.StaffID()
	assert.True(t, ok)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	_, ok = shared.StaffID()
	assert.False(t, ok)
	assert.Equal(t, "any", shared.String())
}
