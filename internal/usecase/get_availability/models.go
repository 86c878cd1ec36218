package get_availability

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID   uuid.UUID // ID услуги
	Date        time.Time // Календарный день (время игнорируется)
	StepMinutes int       // Шаг между слотами; 0 = значение по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time   // Дата, на которую запрашивались слоты
	Timezone string      // Часовой пояс салона (IANA)
	Slots    []time.Time // Начала свободных слотов (UTC), по возрастанию
}
