package recommend_staff

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса подбора сотрудника для кандидатной записи
type Request struct {
	Date       time.Time        // Дата записи
	Time       types.TimeString // Время начала
	ServiceID  *int64           // Услуга; nil отключает фактор специализации
	CustomerID *int64           // Клиент; nil отключает фактор истории
}

// StaffScore оценка одного сотрудника
type StaffScore struct {
	StaffID int64          // ID сотрудника
	Name    string         // Имя сотрудника
	Score   int            // Итоговый балл, сумма факторов
	Reasons []string       // По короткой фразе на каждый ненулевой фактор
	Details map[string]int // Сырые баллы по факторам
}

// Response модель ответа: не больше domain.MaxStaffRecommendations
// сотрудников по убыванию балла
type Response struct {
	Recommendations []StaffScore
}
