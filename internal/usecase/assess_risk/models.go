package assess_risk

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса оценки риска записи
type Request struct {
	AppointmentID int64 // ID существующей записи
}

// Factor один сработавший фактор риска
type Factor struct {
	Description string // Человекочитаемое описание фактора
	Points      int    // Вклад в итоговый балл, может быть отрицательным
}

// Response модель ответа оценки риска. Score не клампится снизу:
// фактор "well planned" может увести итог в минус.
type Response struct {
	Level           domain.RiskLevel // Итоговый уровень: low, medium, high
	Score           int              // Сырой балл, сумма факторов
	Factors         []Factor         // Сработавшие факторы в порядке проверки
	Recommendations []string         // Фиксированные действия по уровню риска
}
