package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	checkUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Status    string `json:"status"`
	Count     int    `json:"count"`
	Max       int    `json:"max"`
	Remaining int    `json:"remaining"`
}

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkUC.Request{Date: date})
	if err != nil {
		if errors.Is(err, checkUC.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /availability - Failed for date=%s: %v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		Date:      result.Date.Format(domain.DateFormat),
		Available: result.Available,
		Status:    result.Status,
		Count:     result.Count,
		Max:       result.Max,
		Remaining: result.Remaining,
	})
}
