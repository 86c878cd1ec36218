package create_booking

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
	// FindOverlapping внутри транзакции блокирует найденные строки (FOR UPDATE)
	FindOverlapping(ctx context.Context, resource *domain.ResourceKey, interval domain.Interval, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ClientRepository интерфейс справочника клиентов
type ClientRepository interface {
	UpsertByContact(ctx context.Context, name string, phone, email *string) (uuid.UUID, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
