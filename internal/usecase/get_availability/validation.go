package get_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StepMinutes < 0 {
		return fmt.Errorf("%w: stepMinutes must be positive", ErrInvalidInput)
	}

	if req.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must not exceed %d", ErrInvalidInput, domain.MaxStepMinutes)
	}

	return nil
}

// validateDuration проверяет длительность услуги из каталога
func validateDuration(durationMinutes int) error {
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes out of range [%d, %d]",
			ErrInvalidDuration, durationMinutes, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}
