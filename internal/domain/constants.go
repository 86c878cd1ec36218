package domain

// Default configuration values
const (
	DefaultStepMinutes = 30
)

// Business validation constants
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480 // 8 часов

	MinStepMinutes = 1
	MaxStepMinutes = 240

	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, занимающих время в календаре.
// Используется при подсчёте свободных слотов и проверке конфликтов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы записей, не занимающих время
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
}
