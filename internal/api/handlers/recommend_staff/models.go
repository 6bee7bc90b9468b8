package recommend_staff

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	recommendStaff "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_staff"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// StaffRecommendationsResponse HTTP response model
type StaffRecommendationsResponse struct {
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Recommendations []StaffScoreResponse `json:"recommendations"`
}

// StaffScoreResponse оценка одного сотрудника
type StaffScoreResponse struct {
	StaffID int64          `json:"staffId"`
	Name    string         `json:"name"`
	Score   int            `json:"score"`
	Reasons []string       `json:"reasons"`
	Details map[string]int `json:"details"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *recommendStaff.Request, resp *recommendStaff.Response) *StaffRecommendationsResponse {
	recommendations := make([]StaffScoreResponse, len(resp.Recommendations))
	for i, score := range resp.Recommendations {
		recommendations[i] = StaffScoreResponse{
			StaffID: score.StaffID,
			Name:    score.Name,
			Score:   score.Score,
			Reasons: score.Reasons,
			Details: score.Details,
		}
	}

	return &StaffRecommendationsResponse{
		Date:            req.Date.Format(domain.DateFormat),
		Time:            req.Time.String(),
		Recommendations: recommendations,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string, serviceID, customerID *int64) (*recommendStaff.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &recommendStaff.Request{
		Date:       date,
		Time:       types.TimeString(timeStr),
		ServiceID:  serviceID,
		CustomerID: customerID,
	}, nil
}
