package assess_risk

import (
	assessRisk "github.com/m04kA/SMC-SchedulingService/internal/usecase/assess_risk"
)

// RiskAssessmentResponse HTTP response model
type RiskAssessmentResponse struct {
	AppointmentID   int64            `json:"appointmentId"`
	Level           string           `json:"level"`
	Score           int              `json:"score"`
	Factors         []FactorResponse `json:"factors"`
	Recommendations []string         `json:"recommendations"`
}

// FactorResponse один сработавший фактор риска
type FactorResponse struct {
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(appointmentID int64, resp *assessRisk.Response) *RiskAssessmentResponse {
	factors := make([]FactorResponse, len(resp.Factors))
	for i, factor := range resp.Factors {
		factors[i] = FactorResponse{
			Description: factor.Description,
			Points:      factor.Points,
		}
	}

	return &RiskAssessmentResponse{
		AppointmentID:   appointmentID,
		Level:           string(resp.Level),
		Score:           resp.Score,
		Factors:         factors,
		Recommendations: resp.Recommendations,
	}
}
