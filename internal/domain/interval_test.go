package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return Interval{Start: s, End: e}
}

func TestInterval_Overlaps(t *testing.T) {
	slot := interval(t, "2026-09-10T11:30:00Z", "2026-09-10T12:00:00Z")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "partial overlap from the left",
			other: interval(t, "2026-09-10T11:20:00Z", "2026-09-10T11:40:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap from the right",
			other: interval(t, "2026-09-10T11:50:00Z", "2026-09-10T12:20:00Z"),
			want:  true,
		},
		{
			name:  "fully contained",
			other: interval(t, "2026-09-10T11:40:00Z", "2026-09-10T11:50:00Z"),
			want:  true,
		},
		{
			name:  "fully containing",
			other: interval(t, "2026-09-10T11:00:00Z", "2026-09-10T13:00:00Z"),
			want:  true,
		},
		{
			name:  "identical",
			other: interval(t, "2026-09-10T11:30:00Z", "2026-09-10T12:00:00Z"),
			want:  true,
		},
		{
			name:  "touching at slot start is not a conflict",
			other: interval(t, "2026-09-10T11:00:00Z", "2026-09-10T11:30:00Z"),
			want:  false,
		},
		{
			name:  "touching at slot end is not a conflict",
			other: interval(t, "2026-09-10T12:00:00Z", "2026-09-10T12:30:00Z"),
			want:  false,
		},
		{
			name:  "fully before",
			other: interval(t, "2026-09-10T10:00:00Z", "2026-09-10T10:30:00Z"),
			want:  false,
		},
		{
			name:  "fully after",
			other: interval(t, "2026-09-10T13:00:00Z", "2026-09-10T13:30:00Z"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(slot))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(t, "2026-09-10T11:00:00Z", "2026-09-10T11:30:00Z").IsValid())
	assert.False(t, interval(t, "2026-09-10T11:00:00Z", "2026-09-10T11:00:00Z").IsValid())
	assert.False(t, interval(t, "2026-09-10T11:30:00Z", "2026-09-10T11:00:00Z").IsValid())
}

func TestAppointment_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.IsActive(), "status %s must occupy time", status)
	}
	for _, status := range InactiveStatuses {
		appt := &Appointment{Status: status}
		assert.False(t, appt.IsActive(), "status %s must not occupy time", status)
	}
}
