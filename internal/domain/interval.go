package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End).
// Начало включено, конец исключен - единое правило для всех
// проверок пересечения в сервисе
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true, если End строго позже Start
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps возвращает true, если интервалы действительно пересекаются.
// Полуоткрытые интервалы [a,b) и [c,d) пересекаются iff a < d && c < b:
// записи, граничащие точно по концам, НЕ конфликтуют
//
// Примеры:
//   - [11:30, 12:00) и [11:20, 11:40) → пересекаются
//   - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
//   - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Duration возвращает длительность интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
