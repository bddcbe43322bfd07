package export_submissions

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	exportService "github.com/m04kA/SMC-ReservationService/internal/service/export"
)

const (
	msgMissingRange = "параметры start и end обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный диапазон дат"
)

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/submissions/export?start=YYYY-MM-DD&end=YYYY-MM-DD
// Привилегированный маршрут: авторизация выполняется middleware
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

	data, err := h.service.ExportSubmissions(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, exportService.ErrInvalidRange) {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /admin/submissions/export - Failed for %s..%s: %v", rawStart, rawEnd, err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("submissions_%s_%s.xlsx", rawStart, rawEnd)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	h.logger.Info("GET /admin/submissions/export - Exported %s..%s (%d bytes)", rawStart, rawEnd, len(data))
}
