package client

import "errors"

var (
	// ErrMissingContact возвращается, когда у клиента нет ни email, ни телефона
	ErrMissingContact = errors.New("client.repository: email or phone is required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")
)
