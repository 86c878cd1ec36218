package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/BRB-BookingService/internal/service/appointments/models"
	"github.com/m04kA/BRB-BookingService/pkg/types"
)

type fakeRepo struct {
	byID map[uuid.UUID]*domain.Appointment
	list []*domain.Appointment

	lastDayStart time.Time
	lastDayEnd   time.Time
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) ListBetween(_ context.Context, dayStart, dayEnd time.Time) ([]*domain.Appointment, error) {
	f.lastDayStart = dayStart
	f.lastDayEnd = dayEnd
	return f.list, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id uuid.UUID, reason string) error {
	appt, ok := f.byID[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	now := time.Now().UTC()
	appt.Status = domain.StatusCancelled
	appt.CancellationReason = &reason
	appt.CancelledAt = &now
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func saoPauloHours(t *testing.T) domain.BusinessHours {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return domain.BusinessHours{
		Location: loc,
		Open:     types.TimeString("09:00"),
		Close:    types.TimeString("18:00"),
	}
}

func pendingAppointment(start time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID:        uuid.New(),
		ServiceID: uuid.New(),
		StartAt:   start,
		EndAt:     start.Add(30 * time.Minute),
		Status:    domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	appt := pendingAppointment(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{appt.ID: appt}}
	svc := NewService(repo, saoPauloHours(t), noopLogger{})

	resp, err := svc.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByDate_UsesSalonDayBounds(t *testing.T) {
	repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{}}
	svc := NewService(repo, saoPauloHours(t), noopLogger{})

	// 1 сентября в Сан-Паулу (UTC-3): день длится 03:00Z - 03:00Z следующих суток
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.ListByDate(context.Background(), &models.ListByDateRequest{Date: date})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC), repo.lastDayStart)
	assert.Equal(t, time.Date(2026, 9, 2, 3, 0, 0, 0, time.UTC), repo.lastDayEnd)
}

func TestCancel(t *testing.T) {
	t.Run("активная запись отменяется", func(t *testing.T) {
		appt := pendingAppointment(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{appt.ID: appt}}
		svc := NewService(repo, saoPauloHours(t), noopLogger{})

		resp, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{
			CancellationReason: "клиент попросил перенести",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "клиент попросил перенести", *resp.CancellationReason)
		assert.NotNil(t, resp.CancelledAt)
	})

	t.Run("отмененную запись нельзя отменить повторно", func(t *testing.T) {
		appt := pendingAppointment(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
		appt.Status = domain.StatusCancelled
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{appt.ID: appt}}
		svc := NewService(repo, saoPauloHours(t), noopLogger{})

		_, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("несуществующая запись", func(t *testing.T) {
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{}}
		svc := NewService(repo, saoPauloHours(t), noopLogger{})

		_, err := svc.Cancel(context.Background(), uuid.New(), &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("слишком длинная причина", func(t *testing.T) {
		appt := pendingAppointment(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
		repo := &fakeRepo{byID: map[uuid.UUID]*domain.Appointment{appt.ID: appt}}
		svc := NewService(repo, saoPauloHours(t), noopLogger{})

		_, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{
			CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
