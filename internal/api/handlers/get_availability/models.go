package get_availability

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string   `json:"date"`           // "2026-09-01"
	Timezone string   `json:"timezone"`       // IANA, например "America/Sao_Paulo"
	Slots    []string `json:"availableSlots"` // начала слотов в RFC 3339 (UTC)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.Format(time.RFC3339))
	}

	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Slots:    slots,
	}
}
