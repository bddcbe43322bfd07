package update_limits

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	settingsService "github.com/m04kA/SMC-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLimitOutOfRange    = "значение лимита вне допустимых границ"
	msgNoValues           = "не передано ни одного значения"
)

// UpdateLimitsRequest HTTP request model
type UpdateLimitsRequest struct {
	MaxPerDay   *int `json:"maxPerDay,omitempty"`
	MaxPerMonth *int `json:"maxPerMonth,omitempty"`
}

// LimitsResponse HTTP response model
type LimitsResponse struct {
	MaxPerDay   int `json:"maxPerDay"`
	MaxPerMonth int `json:"maxPerMonth"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings/limits
// Привилегированный маршрут: авторизация выполняется middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateLimitsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings/limits - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateLimits(r.Context(), &settingsService.UpdateLimitsRequest{
		MaxPerDay:   req.MaxPerDay,
		MaxPerMonth: req.MaxPerMonth,
	})
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrLimitOutOfRange):
			handlers.RespondBadRequest(w, msgLimitOutOfRange)
		case errors.Is(err, settingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNoValues)
		default:
			h.logger.Error("PUT /settings/limits - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings/limits - Limits updated: maxPerDay=%d, maxPerMonth=%d",
		result.MaxPerDay, result.MaxPerMonth)
	handlers.RespondJSON(w, http.StatusOK, &LimitsResponse{
		MaxPerDay:   result.MaxPerDay,
		MaxPerMonth: result.MaxPerMonth,
	})
}
