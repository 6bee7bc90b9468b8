package assess_risk

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// collectFactors считает факторы риска по записи и истории клиента.
// Чистая функция: порядок факторов фиксирован, балл воспроизводим по входам.
func collectFactors(appt *domain.Appointment, history domain.CustomerHistoryStats, now time.Time) []Factor {
	factors := make([]Factor, 0, 6)

	// История не-приходов клиента
	noShowRate := history.NoShowRate()
	switch {
	case noShowRate > domain.RiskNoShowHighRate:
		factors = append(factors, Factor{
			Description: fmt.Sprintf("customer no-show rate %.0f%%", noShowRate*100),
			Points:      domain.RiskNoShowHighScore,
		})
	case noShowRate > domain.RiskNoShowElevatedRate:
		factors = append(factors, Factor{
			Description: fmt.Sprintf("customer no-show rate %.0f%%", noShowRate*100),
			Points:      domain.RiskNoShowElevatedScore,
		})
	}

	// История отмен клиента
	if cancelRate := history.CancellationRate(); cancelRate > domain.RiskCancellationRate {
		factors = append(factors, Factor{
			Description: fmt.Sprintf("customer cancellation rate %.0f%%", cancelRate*100),
			Points:      domain.RiskCancellationScore,
		})
	}

	// Дистанция до записи в календарных днях
	days := daysUntil(appt.Date, now)
	switch {
	case days <= domain.RiskLastMinuteMaxDays:
		factors = append(factors, Factor{
			Description: "last-minute booking",
			Points:      domain.RiskLastMinuteScore,
		})
	case days > domain.RiskWellPlannedMinDays:
		factors = append(factors, Factor{
			Description: "booked well in advance",
			Points:      domain.RiskWellPlannedScore,
		})
	}

	// Пиковое обеденное окно
	if !appt.StartTime.IsBefore(domain.PeakWindowStart) && appt.StartTime.IsBefore(domain.PeakWindowEnd) {
		factors = append(factors, Factor{
			Description: "peak lunchtime slot",
			Points:      domain.RiskPeakTimeScore,
		})
	}

	// Края рабочей недели чаще срываются
	if weekday := appt.Date.Weekday(); weekday == time.Monday || weekday == time.Friday {
		factors = append(factors, Factor{
			Description: fmt.Sprintf("%s appointment", weekday),
			Points:      domain.RiskEdgeWeekdayScore,
		})
	}

	return factors
}

// daysUntil количество полных календарных дней от now до даты записи
func daysUntil(date time.Time, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return int(target.Sub(today).Hours() / 24)
}

func sumFactors(factors []Factor) int {
	total := 0
	for _, f := range factors {
		total += f.Points
	}
	return total
}
