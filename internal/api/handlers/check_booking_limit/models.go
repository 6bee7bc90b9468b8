package check_booking_limit

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	checkBookingLimit "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_booking_limit"
)

// BookingLimitResponse HTTP response model
type BookingLimitResponse struct {
	Date        string `json:"date"`
	LimitActive bool   `json:"limitActive"`
	Limit       int    `json:"limit"`
	ActiveCount int    `json:"activeCount"`
	Reached     bool   `json:"reached"`
	Remaining   int    `json:"remaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *checkBookingLimit.Request, resp *checkBookingLimit.Response) *BookingLimitResponse {
	return &BookingLimitResponse{
		Date:        req.Date.Format(domain.DateFormat),
		LimitActive: resp.LimitActive,
		Limit:       resp.Limit,
		ActiveCount: resp.ActiveCount,
		Reached:     resp.Reached,
		Remaining:   resp.Remaining,
	}
}
