package get_availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

func slotAt(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func appointment(start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:        uuid.New(),
		ServiceID: uuid.New(),
		StartAt:   start,
		EndAt:     end,
		Status:    status,
	}
}

func TestGenerateSlots_EmptyCalendar(t *testing.T) {
	// окно 09:00-10:00, услуга 30 минут, шаг 30 минут
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 10, 0)

	slots := generateSlots(openAt, closeAt, 30*time.Minute, 30*time.Minute, nil)

	assert.Equal(t, []time.Time{slotAt(t, 9, 0), slotAt(t, 9, 30)}, slots)
}

func TestGenerateSlots_ExistingAppointmentExcludesSlot(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 10, 0)
	appts := []*domain.Appointment{
		appointment(slotAt(t, 9, 0), slotAt(t, 9, 30), domain.StatusConfirmed),
	}

	slots := generateSlots(openAt, closeAt, 30*time.Minute, 30*time.Minute, appts)

	assert.Equal(t, []time.Time{slotAt(t, 9, 30)}, slots)
}

func TestGenerateSlots_TouchingAppointmentDoesNotBlock(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 11, 0)
	// запись заканчивается ровно в 10:00 - слот 10:00 свободен
	appts := []*domain.Appointment{
		appointment(slotAt(t, 9, 30), slotAt(t, 10, 0), domain.StatusPending),
	}

	slots := generateSlots(openAt, closeAt, 60*time.Minute, 60*time.Minute, appts)

	assert.Equal(t, []time.Time{slotAt(t, 10, 0)}, slots)
}

func TestGenerateSlots_InactiveAppointmentsIgnored(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 10, 0)
	appts := []*domain.Appointment{
		appointment(slotAt(t, 9, 0), slotAt(t, 9, 30), domain.StatusCancelled),
		appointment(slotAt(t, 9, 30), slotAt(t, 10, 0), domain.StatusCompleted),
	}

	slots := generateSlots(openAt, closeAt, 30*time.Minute, 30*time.Minute, appts)

	assert.Equal(t, []time.Time{slotAt(t, 9, 0), slotAt(t, 9, 30)}, slots)
}

func TestGenerateSlots_ServiceLongerThanWindow(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 10, 0)

	slots := generateSlots(openAt, closeAt, 2*time.Hour, 30*time.Minute, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotEndsExactlyAtClose(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 18, 0)

	slots := generateSlots(openAt, closeAt, 60*time.Minute, 30*time.Minute, nil)

	// floor((540 - 60) / 30) + 1 = 17 слотов, последний 17:00
	assert.Len(t, slots, 17)
	assert.Equal(t, slotAt(t, 9, 0), slots[0])
	assert.Equal(t, slotAt(t, 17, 0), slots[len(slots)-1])
}

func TestGenerateSlots_StepSmallerThanDuration(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 10, 30)
	// запись в середине окна, шаг 15 минут при длительности 30
	appts := []*domain.Appointment{
		appointment(slotAt(t, 9, 30), slotAt(t, 10, 0), domain.StatusPending),
	}

	slots := generateSlots(openAt, closeAt, 30*time.Minute, 15*time.Minute, appts)

	assert.Equal(t, []time.Time{slotAt(t, 9, 0), slotAt(t, 10, 0)}, slots)
}

func TestGenerateSlots_SortedAscending(t *testing.T) {
	openAt := slotAt(t, 9, 0)
	closeAt := slotAt(t, 18, 0)

	slots := generateSlots(openAt, closeAt, 30*time.Minute, 30*time.Minute, nil)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]), "slots must be strictly increasing")
	}
}
