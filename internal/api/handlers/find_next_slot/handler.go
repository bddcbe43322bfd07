package find_next_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	findUC "github.com/m04kA/SMC-ReservationService/internal/usecase/find_next_slot"
)

const (
	msgMissingFrom    = "параметр from обязателен"
	msgInvalidFrom    = "некорректный формат даты from, ожидается YYYY-MM-DD"
	msgInvalidHorizon = "некорректное значение horizonDays"
	msgNoSlot         = "свободных дней в пределах горизонта поиска нет"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Remaining int    `json:"remaining"`
}

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/next?from=YYYY-MM-DD&horizonDays=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawFrom := r.URL.Query().Get("from")
	if rawFrom == "" {
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	from, err := time.Parse(domain.DateFormat, rawFrom)
	if err != nil {
		h.logger.Warn("GET /slots/next - Invalid from %q: %v", rawFrom, err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	horizonDays := 0
	if rawHorizon := r.URL.Query().Get("horizonDays"); rawHorizon != "" {
		horizonDays, err = strconv.Atoi(rawHorizon)
		if err != nil || horizonDays < 0 {
			h.logger.Warn("GET /slots/next - Invalid horizonDays %q", rawHorizon)
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &findUC.Request{
		FromDate:    from,
		HorizonDays: horizonDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, findUC.ErrNoSlotAvailable):
			handlers.RespondNotFound(w, msgNoSlot)
		case errors.Is(err, findUC.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFrom)
		default:
			h.logger.Error("GET /slots/next - Failed for from=%s: %v", rawFrom, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &NextSlotResponse{
		Date:      result.Date.Format(domain.DateFormat),
		Count:     result.Count,
		Remaining: result.Remaining,
	})
}
