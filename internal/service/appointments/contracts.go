package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListBetween(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
