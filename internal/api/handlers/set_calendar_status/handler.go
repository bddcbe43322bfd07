package set_calendar_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	calendarService "github.com/m04kA/SMC-ReservationService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus      = "некорректный статус, ожидается open или closed"
)

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // open | closed
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

// Handle PUT /api/v1/calendar/{date}
// Привилегированный маршрут: авторизация выполняется middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PUT /calendar/{date} - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetStatus(r.Context(), date, req.Status); err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, calendarService.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("PUT /calendar/{date} - Failed for date=%s: %v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/{date} - Status updated: date=%s, status=%s", rawDate, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
