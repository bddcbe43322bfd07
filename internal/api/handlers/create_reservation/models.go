package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reserveUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reserve"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	BookingDate string  `json:"bookingDate"` // "2026-01-10"
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Note        *string `json:"note,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          string  `json:"id"`
	BookingDate string  `json:"bookingDate"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Note        *string `json:"note,omitempty"`
	Status      string  `json:"status"`
	DailyCount  int     `json:"dailyCount"`
	DailyMax    int     `json:"dailyMax"`
	Remaining   int     `json:"remaining"`
	CreatedAt   string  `json:"createdAt"`
}

// CapacityRejectResponse тело отказа по исчерпанному лимиту
// Занятость отдается сразу, чтобы клиенту не требовался отдельный
// запрос доступности
type CapacityRejectResponse struct {
	Error string `json:"error"`
	Count int    `json:"count"`
	Max   int    `json:"max"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// source зависит от маршрута: публичный или админский
func (r *CreateReservationRequest) ToUseCaseRequest(source string) (*reserveUC.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &reserveUC.Request{
		Date:   bookingDate,
		Name:   r.Name,
		Phone:  r.Phone,
		Note:   r.Note,
		Source: source,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveUC.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		Name:        resp.Name,
		Phone:       resp.Phone,
		Note:        resp.Note,
		Status:      resp.Status,
		DailyCount:  resp.DailyCount,
		DailyMax:    resp.DailyMax,
		Remaining:   resp.Remaining,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
