package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/BRB-BookingService/pkg/types"
)

// BusinessHours рабочие часы салона, не привязанные к дате.
// Явная конфигурация, передаваемая в usecases при сборке приложения
type BusinessHours struct {
	Location *time.Location
	Open     types.TimeString
	Close    types.TimeString
}

// WindowFor возвращает рабочее окно на конкретный календарный день
func (h BusinessHours) WindowFor(date time.Time) BusinessWindow {
	return BusinessWindow{
		Date:     date,
		Location: h.Location,
		Open:     h.Open,
		Close:    h.Close,
	}
}

// BusinessWindow рабочее окно салона на конкретный календарный день.
// Open и Close заданы как wall-clock время в часовом поясе салона;
// для сравнения с записями окно конвертируется в абсолютные моменты
type BusinessWindow struct {
	Date     time.Time // календарный день (время игнорируется)
	Location *time.Location
	Open     types.TimeString
	Close    types.TimeString
}

// Validate проверяет корректность окна: формат времени и Close > Open
func (w BusinessWindow) Validate() error {
	if w.Location == nil {
		return fmt.Errorf("business window: location is required")
	}
	if err := w.Open.Validate(); err != nil {
		return fmt.Errorf("business window open: %w", err)
	}
	if err := w.Close.Validate(); err != nil {
		return fmt.Errorf("business window close: %w", err)
	}
	if !w.Open.IsBefore(w.Close) {
		return fmt.Errorf("business window: close %s must be after open %s", w.Close, w.Open)
	}
	return nil
}

// Bounds возвращает границы окна как абсолютные моменты (UTC).
//
// Разрешение переходов на летнее/зимнее время детерминировано через
// time.Date: несуществующее локальное время (весенний пропуск) сдвигается
// вперёд за пропуск, неоднозначное (осенний повтор) берёт более ранний
// offset. Политика зафиксирована тестами в window_test.go
func (w BusinessWindow) Bounds() (start, end time.Time, err error) {
	if err := w.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err = w.instantAt(w.Open)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = w.instantAt(w.Close)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

// DayBounds возвращает границы всего календарного дня [00:00, 24:00)
// в часовом поясе салона как абсолютные моменты (UTC)
func (w BusinessWindow) DayBounds() (start, end time.Time) {
	y, m, d := w.Date.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, w.Location).UTC()
	end = time.Date(y, m, d+1, 0, 0, 0, 0, w.Location).UTC()
	return start, end
}

// instantAt конвертирует wall-clock время в абсолютный момент этого дня
func (w BusinessWindow) instantAt(ts types.TimeString) (time.Time, error) {
	hour, min, err := ts.Clock()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := w.Date.Date()
	return time.Date(y, m, d, hour, min, 0, 0, w.Location).UTC(), nil
}
