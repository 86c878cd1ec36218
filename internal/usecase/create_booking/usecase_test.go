package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/service"
	"github.com/m04kA/BRB-BookingService/pkg/ptr"
	"github.com/m04kA/BRB-BookingService/pkg/txmanager"
)

// --- fakes ---

type fakeServiceRepo struct {
	services map[uuid.UUID]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

// fakeAppointmentRepo хранит записи в памяти. Mutex берется менеджером
// транзакций, что воспроизводит сериализацию check-then-insert
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) FindOverlapping(_ context.Context, resource *domain.ResourceKey, interval domain.Interval, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.appointments {
		if !statusIn(a.Status, statuses) {
			continue
		}
		if resource != nil && !a.Resource().Equal(*resource) {
			continue
		}
		if a.Interval().Overlaps(interval) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	f.appointments = append(f.appointments, &stored)
	return &stored, nil
}

func statusIn(s domain.AppointmentStatus, statuses []domain.AppointmentStatus) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

type fakeClientRepo struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (f *fakeClientRepo) UpsertByContact(_ context.Context, _ string, _, _ *string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return uuid.Nil, f.err
	}
	return uuid.New(), nil
}

// fakeTxManager сериализует транзакции mutex-ом репозитория
type fakeTxManager struct {
	repo *fakeAppointmentRepo
	err  error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	f.repo.mu.Lock()
	defer f.repo.mu.Unlock()
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- helpers ---

type fixture struct {
	uc       *UseCase
	svcID    uuid.UUID
	appts    *fakeAppointmentRepo
	clients  *fakeClientRepo
	txm      *fakeTxManager
	services *fakeServiceRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	svcID := uuid.New()
	services := &fakeServiceRepo{services: map[uuid.UUID]*domain.Service{
		svcID: {ID: svcID, Name: "Haircut", DurationMinutes: 30, Active: true},
	}}
	appts := &fakeAppointmentRepo{}
	clients := &fakeClientRepo{}
	txm := &fakeTxManager{repo: appts}

	uc := NewUseCase(services, appts, clients, txm, 5*time.Second, noopLogger{})

	return &fixture{uc: uc, svcID: svcID, appts: appts, clients: clients, txm: txm, services: services}
}

func validRequest(svcID uuid.UUID, startAt time.Time) *Request {
	return &Request{
		Name:      "Alice",
		Phone:     ptr.Ptr("+55 11 99999-0000"),
		ServiceID: svcID,
		StartAt:   startAt,
	}
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	resp, err := f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, startAt, resp.StartAt)
	assert.Equal(t, startAt.Add(30*time.Minute), resp.EndAt)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.NotNil(t, resp.ClientID)
	assert.Nil(t, resp.ClientWarning)
	assert.Len(t, f.appts.appointments, 1)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	require.NoError(t, err)

	// полное совпадение интервала
	_, err = f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// частичное пересечение
	_, err = f.uc.Execute(context.Background(), validRequest(f.svcID, startAt.Add(15*time.Minute)))
	assert.ErrorIs(t, err, ErrSlotConflict)

	assert.Len(t, f.appts.appointments, 1)
}

func TestExecute_TouchingIntervalsDoNotConflict(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	require.NoError(t, err)

	// [12:30, 13:00) сразу после [12:00, 12:30) - границы не пересекаются
	_, err = f.uc.Execute(context.Background(), validRequest(f.svcID, startAt.Add(30*time.Minute)))
	require.NoError(t, err)

	assert.Len(t, f.appts.appointments, 2)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	f.appts.appointments = append(f.appts.appointments, &domain.Appointment{
		ID:        uuid.New(),
		ServiceID: f.svcID,
		StartAt:   startAt,
		EndAt:     startAt.Add(30 * time.Minute),
		Status:    domain.StatusCancelled,
	})

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	assert.NoError(t, err)
}

func TestExecute_StaffBucketsAreIndependent(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	staffA := uuid.New()
	staffB := uuid.New()

	reqA := validRequest(f.svcID, startAt)
	reqA.StaffID = &staffA
	_, err := f.uc.Execute(context.Background(), reqA)
	require.NoError(t, err)

	// тот же интервал у другого мастера
	reqB := validRequest(f.svcID, startAt)
	reqB.StaffID = &staffB
	_, err = f.uc.Execute(context.Background(), reqB)
	require.NoError(t, err)

	// тот же интервал на общий ресурс
	_, err = f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
	require.NoError(t, err)

	// повтор к мастеру A конфликтует
	reqA2 := validRequest(f.svcID, startAt)
	reqA2.StaffID = &staffA
	_, err = f.uc.Execute(context.Background(), reqA2)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ConcurrentRequestsOneWinner(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), validRequest(f.svcID, startAt))
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, f.appts.appointments, 1)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(t)

	req := validRequest(uuid.New(), time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceNotFound(t *testing.T) {
	f := newFixture(t)
	f.services.services[f.svcID].Active = false

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)
	startAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"nil service id", func(req *Request) { req.ServiceID = uuid.Nil }},
		{"zero startAt", func(req *Request) { req.StartAt = time.Time{} }},
		{"empty name", func(req *Request) { req.Name = "   " }},
		{"no contact", func(req *Request) { req.Phone = nil; req.Email = nil }},
		{"blank phone only", func(req *Request) { req.Phone = ptr.Ptr("  "); req.Email = nil }},
		{"nil uuid staff", func(req *Request) { req.StaffID = ptr.Ptr(uuid.Nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(f.svcID, startAt)
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Empty(t, f.appts.appointments)
}

func TestExecute_ClientUpsertFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	f.clients.err = errors.New("clients table unavailable")

	resp, err := f.uc.Execute(context.Background(), validRequest(f.svcID, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Nil(t, resp.ClientID)
	require.NotNil(t, resp.ClientWarning)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Len(t, f.appts.appointments, 1)
}

func TestExecute_TimeoutMapped(t *testing.T) {
	f := newFixture(t)
	f.txm.err = txmanager.ErrTimeout

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestExecute_RetriesExhaustedMappedToTimeout(t *testing.T) {
	f := newFixture(t)
	f.txm.err = txmanager.ErrRetriesExhausted

	_, err := f.uc.Execute(context.Background(), validRequest(f.svcID, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, err, ErrTimeout)
}
