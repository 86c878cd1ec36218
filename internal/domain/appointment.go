package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment запись клиента на услугу.
// StartAt и EndAt хранятся как абсолютные моменты времени (UTC);
// всегда EndAt > StartAt, EndAt = StartAt + длительность услуги
type Appointment struct {
	ID        uuid.UUID
	ClientID  *uuid.UUID // nil, если клиент не был сохранён (best-effort upsert)
	StaffID   *uuid.UUID // nil = общий ресурс, запись не привязана к мастеру
	ServiceID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает время в календаре.
// Отмененные и завершенные записи слоты не блокируют
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval возвращает занимаемый записью полуоткрытый интервал [StartAt, EndAt)
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartAt, End: a.EndAt}
}

// Resource возвращает ключ ресурса, календарь которого занимает запись
func (a *Appointment) Resource() ResourceKey {
	return ResourceFromStaffID(a.StaffID)
}
