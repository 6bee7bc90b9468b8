package recommend_staff

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Имена факторов в details
const (
	factorWorkload        = "workload"
	factorSpecialization  = "specialization"
	factorCustomerHistory = "customer_history"
	factorPerformance     = "performance"
	factorRecent          = "recent_completion"
)

// staffStats все собранные входы скоринга одного сотрудника
type staffStats struct {
	appointmentsThatDay int
	completedOfService  *int // nil, если услуга не указана
	completedWithClient *int // nil, если клиент не указан
	allTime             domain.StaffCompletionStats
	recent              domain.StaffCompletionStats
}

// scoreStaff считает итоговый балл сотрудника по собранным входам.
// Чистая функция: балл воспроизводим по stats без обращений к хранилищу.
func scoreStaff(profile *domain.StaffProfile, stats staffStats) StaffScore {
	score := StaffScore{
		StaffID: profile.ID,
		Name:    profile.Name,
		Reasons: make([]string, 0, 5),
		Details: make(map[string]int, 5),
	}

	workload := domain.WorkloadScore(stats.appointmentsThatDay)
	score.addFactor(factorWorkload, workload,
		fmt.Sprintf("%d appointments on that day", stats.appointmentsThatDay))

	if stats.completedOfService != nil {
		specialization := domain.SpecializationScore(*stats.completedOfService)
		score.addFactor(factorSpecialization, specialization,
			fmt.Sprintf("completed %d appointments of this service type", *stats.completedOfService))
	}

	if stats.completedWithClient != nil {
		history := domain.CustomerHistoryScore(*stats.completedWithClient)
		score.addFactor(factorCustomerHistory, history,
			fmt.Sprintf("served this customer %d times before", *stats.completedWithClient))
	}

	performance := domain.PerformanceScore(stats.allTime)
	score.addFactor(factorPerformance, performance, performanceReason(stats.allTime))

	recent := domain.RecentCompletionScore(stats.recent)
	score.addFactor(factorRecent, recent, recentReason(stats.recent))

	return score
}

// addFactor добавляет фактор в балл; фраза попадает в Reasons
// только при ненулевом вкладе
func (s *StaffScore) addFactor(name string, points int, reason string) {
	s.Details[name] = points
	s.Score += points
	if points != 0 {
		s.Reasons = append(s.Reasons, reason)
	}
}

func performanceReason(stats domain.StaffCompletionStats) string {
	if stats.NonCancelled == 0 {
		return "new staff member"
	}
	return fmt.Sprintf("completion rate %.0f%%", stats.CompletionRate()*100)
}

func recentReason(stats domain.StaffCompletionStats) string {
	if stats.NonCancelled == 0 {
		return "no recent appointments"
	}
	return fmt.Sprintf("recent completion rate %.0f%%", stats.CompletionRate()*100)
}

// rankScores сортирует по убыванию балла, сохраняя исходный порядок
// при равенстве, и обрезает до limit
func rankScores(scores []StaffScore, limit int) []StaffScore {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// hasConflictAt проверяет, есть ли у сотрудника не-отмененная запись
// ровно на это время
func hasConflictAt(appointments []*domain.Appointment, staffID int64, t types.TimeString) bool {
	for _, appt := range appointments {
		if appt.AssignedTo(staffID) && appt.StartTime.Equal(t) {
			return true
		}
	}
	return false
}

// countAssignedThatDay считает не-отмененные записи сотрудника на дату
func countAssignedThatDay(appointments []*domain.Appointment, staffID int64) int {
	count := 0
	for _, appt := range appointments {
		if appt.AssignedTo(staffID) {
			count++
		}
	}
	return count
}
