package get_availability

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (нулевая дата, пустой serviceId, отрицательный шаг)
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInvalidWindow возвращается при некорректном рабочем окне (close <= open)
	ErrInvalidWindow = errors.New("get_availability: invalid business window")

	// ErrInvalidDuration возвращается при некорректной длительности услуги
	ErrInvalidDuration = errors.New("get_availability: invalid service duration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
