package recommend_time_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	recommendTimeSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_time_slots"
)

// SlotRecommendationsResponse HTTP response model
type SlotRecommendationsResponse struct {
	Date  string              `json:"date"`
	Slots []SlotScoreResponse `json:"slots"`
}

// SlotScoreResponse оценка одного временного слота
type SlotScoreResponse struct {
	Time           string `json:"time"`
	Score          int    `json:"score"`
	Available      bool   `json:"available"`
	AvailableStaff int    `json:"availableStaff"`
	Bookings       int    `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *recommendTimeSlots.Request, resp *recommendTimeSlots.Response) *SlotRecommendationsResponse {
	slots := make([]SlotScoreResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotScoreResponse{
			Time:           slot.Time.String(),
			Score:          slot.Score,
			Available:      slot.Available,
			AvailableStaff: slot.AvailableStaff,
			Bookings:       slot.Bookings,
		}
	}

	return &SlotRecommendationsResponse{
		Date:  req.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*recommendTimeSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &recommendTimeSlots.Request{Date: date}, nil
}
