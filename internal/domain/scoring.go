package domain

// Чистые ступенчатые функции скоринга сотрудников. Таблицы ступеней
// вынесены в именованные константы (constants.go), чтобы каждую можно
// было проверить отдельно и воспроизвести итоговый балл по входам.

// WorkloadScore scores how loaded a staff member already is on the day (0-25)
func WorkloadScore(appointmentsThatDay int) int {
	switch {
	case appointmentsThatDay == 0:
		return WorkloadScoreFree
	case appointmentsThatDay <= WorkloadLightMax:
		return WorkloadScoreLight
	case appointmentsThatDay <= WorkloadModerateMax:
		return WorkloadScoreModerate
	case appointmentsThatDay <= WorkloadBusyMax:
		return WorkloadScoreBusy
	default:
		return WorkloadScoreOverload
	}
}

// SpecializationScore scores completed appointments of the requested
// service type (0-20)
func SpecializationScore(completedOfServiceType int) int {
	switch {
	case completedOfServiceType >= SpecializationExpertMin:
		return SpecializationScoreExpert
	case completedOfServiceType >= SpecializationSeasonedMin:
		return SpecializationScoreSeasoned
	case completedOfServiceType >= SpecializationFamiliarMin:
		return SpecializationScoreFamiliar
	default:
		return SpecializationScoreNone
	}
}

// CustomerHistoryScore scores completed appointments between the staff
// member and the customer (0-20)
func CustomerHistoryScore(completedWithCustomer int) int {
	switch {
	case completedWithCustomer >= CustomerHistoryStrongMin:
		return CustomerHistoryScoreStrong
	case completedWithCustomer >= CustomerHistoryGoodMin:
		return CustomerHistoryScoreGood
	case completedWithCustomer >= CustomerHistorySomeMin:
		return CustomerHistoryScoreSome
	default:
		return CustomerHistoryScoreNone
	}
}

// PerformanceScore scores the all-time completion rate (0-20).
// A staff member with no non-cancelled appointments gets the new-staff default.
func PerformanceScore(stats StaffCompletionStats) int {
	if stats.NonCancelled == 0 {
		return PerformanceScoreNewStaff
	}

	rate := stats.CompletionRate()
	switch {
	case rate >= PerformanceExcellentRate:
		return PerformanceScoreExcellent
	case rate >= PerformanceGoodRate:
		return PerformanceScoreGood
	case rate >= PerformanceFairRate:
		return PerformanceScoreFair
	default:
		return PerformanceScorePoor
	}
}

// RecentCompletionScore scores the completion rate over the recent window (0-15).
// No recent appointments gets the no-data default.
func RecentCompletionScore(stats StaffCompletionStats) int {
	if stats.NonCancelled == 0 {
		return RecentScoreNoData
	}

	rate := stats.CompletionRate()
	switch {
	case rate >= RecentExcellentRate:
		return RecentScoreExcellent
	case rate >= RecentGoodRate:
		return RecentScoreGood
	case rate >= RecentFairRate:
		return RecentScoreFair
	default:
		return RecentScorePoor
	}
}
