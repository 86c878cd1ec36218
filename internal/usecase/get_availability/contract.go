package get_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// FindOverlapping возвращает записи с указанными статусами,
	// пересекающиеся с интервалом. resource=nil - все ресурсы
	FindOverlapping(ctx context.Context, resource *domain.ResourceKey, interval domain.Interval, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
