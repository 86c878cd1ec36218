package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotConflict возвращается, когда интервал пересекается с активной
	// записью того же ресурса. Ошибка retryable через повторный запрос
	// доступности: слот могли занять параллельно
	ErrSlotConflict = errors.New("create_booking: slot already taken")

	// ErrTimeout возвращается, когда транзакция бронирования не уложилась
	// в отведенное время. Запрос можно повторить без изменений
	ErrTimeout = errors.New("create_booking: booking timed out")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
