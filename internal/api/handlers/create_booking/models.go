package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/BRB-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	ServiceID string  `json:"serviceId"`
	StaffID   *string `json:"staffId,omitempty"`
	StartAt   string  `json:"startAt"` // RFC 3339
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        *string `json:"clientId,omitempty"`
	StaffID         *string `json:"staffId,omitempty"`
	ServiceID       string  `json:"serviceId"`
	StartAt         string  `json:"startAt"` // RFC 3339 (UTC)
	EndAt           string  `json:"endAt"`   // RFC 3339 (UTC)
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Warning         *string `json:"warning,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("parse serviceId: %w", err)
	}

	var staffID *uuid.UUID
	if r.StaffID != nil {
		id, err := uuid.Parse(*r.StaffID)
		if err != nil {
			return nil, fmt.Errorf("parse staffId: %w", err)
		}
		staffID = &id
	}

	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("parse startAt: %w", err)
	}

	return &createBooking.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		ServiceID: serviceID,
		StaffID:   staffID,
		StartAt:   startAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:              resp.ID.String(),
		ServiceID:       resp.ServiceID.String(),
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Warning:         resp.ClientWarning,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.ClientID != nil {
		clientID := resp.ClientID.String()
		out.ClientID = &clientID
	}
	if resp.StaffID != nil {
		staffID := resp.StaffID.String()
		out.StaffID = &staffID
	}

	return out
}
