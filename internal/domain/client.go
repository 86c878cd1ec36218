package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client клиент салона. Идентифицируется контактами:
// уникальность по email, при его отсутствии - по телефону
type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContact возвращает true, если у клиента есть хотя бы один контакт,
// по которому его можно идентифицировать при следующей записи
func (c *Client) HasContact() bool {
	return c.Email != nil || c.Phone != nil
}
