package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service услуга из каталога салона
type Service struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration возвращает длительность услуги как time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
