package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	Name      string     // Имя клиента
	Phone     *string    // Телефон (опционально)
	Email     *string    // Email (опционально)
	ServiceID uuid.UUID  // ID услуги
	StaffID   *uuid.UUID // ID мастера; nil = общий ресурс салона
	StartAt   time.Time  // Начало записи (абсолютный момент)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID  // ID созданной записи
	ClientID        *uuid.UUID // ID клиента (nil, если upsert не удался)
	StaffID         *uuid.UUID // ID мастера
	ServiceID       uuid.UUID  // ID услуги
	StartAt         time.Time  // Начало записи (UTC)
	EndAt           time.Time  // Конец записи (UTC)
	DurationMinutes int        // Длительность в минутах
	Status          string     // Статус записи (pending)

	// ClientWarning заполняется, когда запись создана, но клиента
	// сохранить не удалось. Не является ошибкой бронирования
	ClientWarning *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
