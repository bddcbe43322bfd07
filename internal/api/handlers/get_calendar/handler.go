package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	calendarService "github.com/m04kA/SMC-ReservationService/internal/service/calendar"
)

const (
	msgMissingRange = "параметры start и end обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "конец диапазона раньше начала"
)

// CalendarDayResponse HTTP response model
type CalendarDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar?start=YYYY-MM-DD&end=YYYY-MM-DD
// Возвращает только явно открытые дни: отсутствующие даты закрыты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawStart := r.URL.Query().Get("start")
	rawEnd := r.URL.Query().Get("end")
	if rawStart == "" || rawEnd == "" {
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.Parse(domain.DateFormat, rawStart)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := time.Parse(domain.DateFormat, rawEnd)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days, err := h.service.GetRange(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, calendarService.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /calendar - Failed for %s..%s: %v", rawStart, rawEnd, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]CalendarDayResponse, 0, len(days))
	for _, day := range days {
		response = append(response, CalendarDayResponse{
			Date:   day.Date.Format(domain.DateFormat),
			Status: string(day.Status),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
