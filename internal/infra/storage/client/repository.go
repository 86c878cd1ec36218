package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-BookingService/pkg/psqlbuilder"
)

const (
	upsertByEmailSuffix = "ON CONFLICT (email) WHERE email IS NOT NULL DO UPDATE SET " +
		"name = EXCLUDED.name, " +
		"phone = COALESCE(EXCLUDED.phone, clients.phone), " +
		"updated_at = NOW() " +
		"RETURNING id"

	upsertByPhoneSuffix = "ON CONFLICT (phone) WHERE phone IS NOT NULL DO UPDATE SET " +
		"name = EXCLUDED.name, " +
		"updated_at = NOW() " +
		"RETURNING id"

	plainInsertSuffix = "RETURNING id"
)

// Repository репозиторий справочника клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByContact находит или создает клиента по контактным данным.
// Идентичность определяется email'ом; при его отсутствии - телефоном;
// без контактов создается новая строка без дедупликации.
// При совпадении обновляются имя и недостающие контакты
func (r *Repository) UpsertByContact(ctx context.Context, name string, phone, email *string) (uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	suffix := plainInsertSuffix
	switch {
	case email != nil:
		suffix = upsertByEmailSuffix
	case phone != nil:
		suffix = upsertByPhoneSuffix
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "name", "phone", "email").
		Values(uuid.New(), name, phone, email).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: UpsertByContact - build insert query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%w: UpsertByContact - execute upsert: %v", ErrExecQuery, err)
	}

	return id, nil
}
