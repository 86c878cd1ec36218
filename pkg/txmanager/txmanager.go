package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
)

const (
	// maxSerializableRetries максимальное число повторов сериализуемой
	// транзакции при serialization failure
	maxSerializableRetries = 3

	// retryBackoff пауза между повторами
	retryBackoff = 25 * time.Millisecond
)

var (
	// ErrTimeout возвращается, когда транзакция не успела выполниться
	// в отведенное время (дедлайн контекста или lock timeout).
	// Ошибка retryable - вызывающая сторона может повторить запрос
	ErrTimeout = errors.New("txmanager: transaction timed out")

	// ErrRetriesExhausted возвращается, когда сериализуемая транзакция
	// не смогла закоммититься после всех повторов
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)

// PostgreSQL SQLSTATE коды
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
)

// TxBeginner интерфейс для начала транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции в рамках транзакции БД.
// Открытая транзакция передаётся вниз через контекст (dbmetrics.ContextWithExecutor),
// репозитории подхватывают её через dbmetrics.GetExecutor
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// При serialization failure (40001) или deadlock (40P01) транзакция
// повторяется целиком, до maxSerializableRetries раз.
// Дедлайн контекста ограничивает общее время попыток
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt <= maxSerializableRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
			case <-time.After(retryBackoff):
			}
		}

		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil {
			return nil
		}
		if !IsSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

// run открывает транзакцию, выполняет fn и коммитит/откатывает
func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return mapTimeout(fmt.Errorf("begin transaction: %w", err))
	}

	txCtx := dbmetrics.ContextWithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return mapTimeout(err)
	}

	if err := tx.Commit(); err != nil {
		return mapTimeout(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}

// IsSerializationFailure возвращает true для ошибок, при которых
// сериализуемую транзакцию имеет смысл повторить
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgSerializationFailure || code == pgDeadlockDetected
	}
	return false
}

// IsLockTimeout возвращает true, если ошибка вызвана невозможностью
// получить блокировку или отменой запроса по таймауту
func IsLockTimeout(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgLockNotAvailable || code == pgQueryCanceled
	}
	return false
}

// mapTimeout конвертирует дедлайны контекста и lock-таймауты БД в ErrTimeout
func mapTimeout(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || IsLockTimeout(err) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
