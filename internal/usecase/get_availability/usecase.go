package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/service"
)

// UseCase use case расчёта доступных слотов на день.
//
// Чистое чтение: ничего не мутирует, результат - снимок занятости на момент
// выборки. Параллельное бронирование может сделать любой слот неактуальным,
// поэтому выбранный слот всё равно перепроверяется транзакцией create_booking
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	defaultStep     int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// hours - явная конфигурация рабочих часов салона
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	hours domain.BusinessHours,
	defaultStepMinutes int,
	logger Logger,
) *UseCase {
	if defaultStepMinutes <= 0 {
		defaultStepMinutes = domain.DefaultStepMinutes
	}
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		hours:           hours,
		defaultStep:     defaultStepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%s, date=%s, step=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StepMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	stepMinutes := req.StepMinutes
	if stepMinutes == 0 {
		stepMinutes = uc.defaultStep
	}

	// 2. Получаем услугу
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !svc.Active {
		uc.logger.Warn("GetAvailability: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	if err := validateDuration(svc.DurationMinutes); err != nil {
		uc.logger.Warn("GetAvailability: duration validation failed: %v", err)
		return nil, err
	}

	// 3. Строим рабочее окно дня и переводим его в абсолютные моменты
	window := uc.hours.WindowFor(req.Date)
	openAt, closeAt, err := window.Bounds()
	if err != nil {
		uc.logger.Warn("GetAvailability: invalid window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	// 4. Забираем активные записи, пересекающиеся с окном, по всем ресурсам.
	// Снимок занятости: выборка без блокировок, расчёт полностью в памяти
	appointments, err := uc.appointmentRepo.FindOverlapping(
		ctx,
		nil,
		domain.Interval{Start: openAt, End: closeAt},
		domain.ActiveStatuses,
	)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots := generateSlots(
		openAt,
		closeAt,
		svc.Duration(),
		time.Duration(stepMinutes)*time.Minute,
		appointments,
	)

	uc.logger.Info("GetAvailability: %d free slots for service=%s, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:     req.Date,
		Timezone: uc.hours.Location.String(),
		Slots:    slots,
	}, nil
}
