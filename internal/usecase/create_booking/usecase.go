package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/service"
	"github.com/m04kA/BRB-BookingService/pkg/txmanager"
)

// UseCase use case атомарного создания записи.
//
// Транзакция serializable: проверка пересечений и вставка выполняются как
// единое целое, при параллельной гонке за один слот ровно один запрос
// создаёт запись, остальные получают ErrSlotConflict
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	bookingTimeout  time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// bookingTimeout - верхняя граница времени на транзакцию бронирования
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	bookingTimeout time.Duration,
	logger Logger,
) *UseCase {
	if bookingTimeout <= 0 {
		bookingTimeout = 5 * time.Second
	}
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		bookingTimeout:  bookingTimeout,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%s, staff=%s, startAt=%s",
		req.ServiceID, staffLabel(req.StaffID), req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу и считаем интервал записи
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.Active {
		uc.logger.Warn("CreateBooking: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}
	if err := validateDuration(svc.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}

	startAt := req.StartAt.UTC()
	interval := domain.Interval{Start: startAt, End: startAt.Add(svc.Duration())}
	resource := domain.ResourceFromStaffID(req.StaffID)

	// 3. Вспомогательная запись клиента. Выполняется до транзакции:
	// ошибка в любом statement отравила бы serializable-транзакцию целиком.
	// Неудача не блокирует бронирование
	clientID, clientWarning := uc.upsertClient(ctx, req)

	// 4. Проверка занятости и вставка одной транзакцией
	txCtx, cancel := context.WithTimeout(ctx, uc.bookingTimeout)
	defer cancel()

	var created *domain.Appointment
	err = uc.txManager.DoSerializable(txCtx, func(ctx context.Context) error {
		conflicts, err := uc.appointmentRepo.FindOverlapping(ctx, &resource, interval, domain.ActiveStatuses)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			return ErrSlotConflict
		}

		created, err = uc.appointmentRepo.Create(ctx, &domain.Appointment{
			ClientID:  clientID,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			StartAt:   interval.Start,
			EndAt:     interval.End,
			Status:    domain.StatusPending,
		})
		if err != nil {
			// Exclusion constraint - страховка на случай гонки, которую
			// не поймала проверка выше
			if errors.Is(err, appointmentRepo.ErrOverlapConflict) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("CreateBooking: slot conflict for resource=%s, interval=[%s, %s)",
				resource, interval.Start.Format(time.RFC3339), interval.End.Format(time.RFC3339))
			return nil, ErrSlotConflict
		case errors.Is(err, txmanager.ErrTimeout), errors.Is(err, txmanager.ErrRetriesExhausted):
			uc.logger.Error("CreateBooking: booking transaction timed out: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: created appointment id=%s, status=%s", created.ID, created.Status)

	return &Response{
		ID:              created.ID,
		ClientID:        created.ClientID,
		StaffID:         created.StaffID,
		ServiceID:       created.ServiceID,
		StartAt:         created.StartAt,
		EndAt:           created.EndAt,
		DurationMinutes: svc.DurationMinutes,
		Status:          string(created.Status),
		ClientWarning:   clientWarning,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// upsertClient сохраняет контакт клиента best-effort
func (uc *UseCase) upsertClient(ctx context.Context, req *Request) (*uuid.UUID, *string) {
	id, err := uc.clientRepo.UpsertByContact(ctx, strings.TrimSpace(req.Name), req.Phone, req.Email)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to upsert client: %v", err)
		msg := "booking created, but client record could not be saved"
		return nil, &msg
	}
	return &id, nil
}

func staffLabel(id *uuid.UUID) string {
	if id == nil {
		return "any"
	}
	return id.String()
}
