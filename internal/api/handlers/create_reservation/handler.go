package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reserveUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reserve"
)

// Каждой причине отказа соответствует ровно одно сообщение, без слияния
const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgPastDate           = "дата бронирования уже прошла"
	msgDateNotOpen        = "выбранная дата не открыта для записи"
	msgDailyCapacity      = "на выбранную дату не осталось свободных мест"
	msgMonthlyCapacity    = "превышен лимит заявок на этот месяц"
	msgStorageBusy        = "сервис перегружен, повторите попытку"
	msgInvalidInput       = "некорректные данные заявки"
)

type Handler struct {
	useCase ReserveUseCase
	metrics MetricsRecorder
	logger  Logger
	source  string
}

// NewHandler создает обработчик публичного маршрута: заявки помечаются источником web
func NewHandler(useCase ReserveUseCase, metrics MetricsRecorder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
		source:  domain.SourceWeb,
	}
}

// NewAdminHandler создает обработчик админского маршрута: заявки, внесенные
// оператором за клиента, помечаются источником admin
func NewAdminHandler(useCase ReserveUseCase, metrics MetricsRecorder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
		source:  domain.SourceAdmin,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.source)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveUC.ErrPastDate):
			h.metrics.IncReservation("past_date")
			h.logger.Warn("POST /reservations - Past date: %s", req.BookingDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, reserveUC.ErrDateNotOpen):
			h.metrics.IncReservation("date_not_open")
			h.logger.Warn("POST /reservations - Date not open: %s", req.BookingDate)
			handlers.RespondConflict(w, msgDateNotOpen)

		case errors.Is(err, reserveUC.ErrDailyCapacityExceeded):
			h.metrics.IncReservation("daily_capacity_exceeded")
			h.logger.Warn("POST /reservations - Daily capacity exceeded: %s", req.BookingDate)
			respondCapacityReject(w, err, msgDailyCapacity)

		case errors.Is(err, reserveUC.ErrMonthlyCapacityExceeded):
			h.metrics.IncReservation("monthly_capacity_exceeded")
			h.logger.Warn("POST /reservations - Monthly capacity exceeded: date=%s", req.BookingDate)
			respondCapacityReject(w, err, msgMonthlyCapacity)

		case errors.Is(err, reserveUC.ErrStorageBusy):
			h.metrics.IncReservation("storage_busy")
			h.logger.Warn("POST /reservations - Storage busy: %s", req.BookingDate)
			handlers.RespondServiceUnavailable(w, msgStorageBusy)

		case errors.Is(err, reserveUC.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.metrics.IncReservation("error")
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, error=%v",
				req.BookingDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.IncReservation("accepted")
	h.logger.Info("POST /reservations - Reservation accepted: id=%s, date=%s, remaining=%d",
		result.ID, req.BookingDate, result.Remaining)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondCapacityReject отдает 409 с фактической занятостью, чтобы клиенту
// не требовался дополнительный запрос доступности
func respondCapacityReject(w http.ResponseWriter, err error, message string) {
	var capErr *reserveUC.CapacityError
	if errors.As(err, &capErr) {
		handlers.RespondJSON(w, http.StatusConflict, &CapacityRejectResponse{
			Error: message,
			Count: capErr.Count,
			Max:   capErr.Max,
		})
		return
	}
	handlers.RespondConflict(w, message)
}
