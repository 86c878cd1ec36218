package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/domain"
	getAvailability "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidServiceID = "некорректный serviceId, ожидается UUID"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStep      = "некорректный шаг слотов"
	msgServiceNotFound  = "услуга не найдена"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?serviceId={uuid}&date={YYYY-MM-DD}&stepMinutes={n}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := uuid.Parse(query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid serviceId=%q: %v", query.Get("serviceId"), err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date=%q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	stepMinutes := 0
	if raw := query.Get("stepMinutes"); raw != "" {
		stepMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid stepMinutes=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStep)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		ServiceID:   serviceID,
		Date:        date,
		StepMinutes: stepMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput),
			errors.Is(err, getAvailability.ErrInvalidWindow),
			errors.Is(err, getAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /availability - Invalid request: service_id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to compute slots: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots returned: service_id=%s, date=%s",
		len(result.Slots), serviceID, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
