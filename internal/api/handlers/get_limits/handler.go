package get_limits

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

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

// Handle GET /api/v1/settings/limits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limits, err := h.service.ResolveLimits(r.Context())
	if err != nil {
		h.logger.Error("GET /settings/limits - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &LimitsResponse{
		MaxPerDay:   limits.MaxPerDay,
		MaxPerMonth: limits.MaxPerMonth,
	})
}
