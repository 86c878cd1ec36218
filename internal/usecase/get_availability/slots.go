package get_availability

import (
	"time"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// generateSlots генерирует упорядоченный список начал свободных слотов.
//
// Курсор стартует от открытия салона и двигается с шагом step; слот-кандидат
// попадает в результат, если он целиком помещается до закрытия
// (cursor + duration <= closeAt) и его интервал [cursor, cursor+duration)
// не пересекается ни с одной активной записью. Пересечение полуоткрытое:
// запись, заканчивающаяся ровно в начале слота, слот не блокирует.
//
// Границы окна заранее переведены в абсолютные моменты (см. BusinessWindow.Bounds),
// поэтому шаг курсора - это сложение длительностей, однозначное и на днях
// перевода часов. Цикл строго ограничен (closeAt-openAt)/step итерациями
func generateSlots(
	openAt, closeAt time.Time,
	duration time.Duration,
	step time.Duration,
	appointments []*domain.Appointment,
) []time.Time {
	slots := make([]time.Time, 0)

	for cursor := openAt; !cursor.Add(duration).After(closeAt); cursor = cursor.Add(step) {
		candidate := domain.Interval{Start: cursor, End: cursor.Add(duration)}
		if !hasOverlap(candidate, appointments) {
			slots = append(slots, cursor)
		}
	}

	return slots
}

// hasOverlap возвращает true, если кандидат пересекается хотя бы с одной
// активной записью. Неактивные записи (отмененные, завершенные) время не занимают
func hasOverlap(candidate domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if candidate.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}
