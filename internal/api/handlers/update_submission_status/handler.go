package update_submission_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	submissionsService "github.com/m04kA/SMC-ReservationService/internal/service/submissions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается pending, reviewed, archived или rejected"
	msgNotFound           = "заявка не найдена"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SubmissionResponse HTTP response model
type SubmissionResponse struct {
	ID          string  `json:"id"`
	BookingDate string  `json:"bookingDate"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Note        *string `json:"note,omitempty"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Handler struct {
	service SubmissionsService
	logger  Logger
}

func NewHandler(service SubmissionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/submissions/{id}/status
// Привилегированный маршрут: авторизация выполняется middleware
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/submissions/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sub, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, submissionsService.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, submissionsService.ErrSubmissionNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("PUT /admin/submissions/{id}/status - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/submissions/{id}/status - Status updated: id=%s, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, &SubmissionResponse{
		ID:          sub.ID,
		BookingDate: sub.BookingDate.Format(domain.DateFormat),
		Name:        sub.Name,
		Phone:       sub.Phone,
		Note:        sub.Note,
		Status:      string(sub.Status),
		Source:      sub.Source,
		UpdatedAt:   sub.UpdatedAt.Format(time.RFC3339),
	})
}
