package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot grid values
const (
	DefaultDayStart        = types.TimeString("09:00")
	DefaultDayEnd          = types.TimeString("17:00")
	DefaultSlotStepMinutes = 30
)

// DailyLimitStatuses статусы, учитываемые дневным лимитом бронирований.
// Отмененные, отклоненные и завершенные записи лимит не расходуют.
var DailyLimitStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
}

// Alternative suggestion constants
const (
	// AlternativeUtilizationCeiling порог занятости, выше которого слот
	// не предлагается как альтернатива
	AlternativeUtilizationCeiling = 0.60

	// MaxAlternatives максимум альтернативных слотов в ответе
	MaxAlternatives = 5

	// DefaultAlternativeDaysAhead горизонт поиска альтернатив в днях
	DefaultAlternativeDaysAhead = 1
)

// Staff workload score: fewer appointments that day scores higher
const (
	WorkloadScoreFree     = 25 // нет записей в этот день
	WorkloadScoreLight    = 20 // не больше 2
	WorkloadScoreModerate = 15 // не больше 4
	WorkloadScoreBusy     = 10 // не больше 6
	WorkloadScoreOverload = 5  // больше 6

	WorkloadLightMax    = 2
	WorkloadModerateMax = 4
	WorkloadBusyMax     = 6
)

// Staff specialization score: completed appointments of the requested service type
const (
	SpecializationScoreExpert   = 20
	SpecializationScoreSeasoned = 15
	SpecializationScoreFamiliar = 10
	SpecializationScoreNone     = 0

	SpecializationExpertMin   = 10
	SpecializationSeasonedMin = 5
	SpecializationFamiliarMin = 2
)

// Customer history score: completed appointments between staff member and customer
const (
	CustomerHistoryScoreStrong = 20
	CustomerHistoryScoreGood   = 15
	CustomerHistoryScoreSome   = 10
	CustomerHistoryScoreNone   = 0

	CustomerHistoryStrongMin = 5
	CustomerHistoryGoodMin   = 3
	CustomerHistorySomeMin   = 1
)

// Staff performance score: completed share of all non-cancelled appointments
const (
	PerformanceScoreExcellent = 20
	PerformanceScoreGood      = 15
	PerformanceScoreFair      = 10
	PerformanceScorePoor      = 5
	PerformanceScoreNewStaff  = 10 // без единой не-отмененной записи

	PerformanceExcellentRate = 0.95
	PerformanceGoodRate      = 0.85
	PerformanceFairRate      = 0.75
)

// Recent completion score: same ratio over appointments created in the
// last RecentWindowMonths months
const (
	RecentScoreExcellent = 15
	RecentScoreGood      = 10
	RecentScoreFair      = 5
	RecentScorePoor      = 0
	RecentScoreNoData    = 10 // нет записей за окно

	RecentExcellentRate = 0.90
	RecentGoodRate      = 0.75
	RecentFairRate      = 0.50

	RecentWindowMonths = 3
)

// MaxStaffRecommendations максимум сотрудников в ответе RecommendStaff
const MaxStaffRecommendations = 3

// Time slot scoring
const (
	SlotScoreMidday        = 20 // слот в предпочтительном дневном окне
	SlotScoreBusinessHours = 10 // слот в рабочих часах вне дневного окна
	SlotScoreEmpty         = 15 // нет броней в слоте
	SlotScoreQuiet         = 10 // не больше SlotQuietMaxBookings броней
	SlotScoreOnTheHour     = 5  // слот начинается в ровный час

	SlotQuietMaxBookings = 2

	MiddayWindowStart = types.TimeString("10:00")
	MiddayWindowEnd   = types.TimeString("14:00")
)

// MaxSlotRecommendations максимум слотов в ответе RecommendTimeSlots
const MaxSlotRecommendations = 5

// Risk factor scores and thresholds
const (
	RiskNoShowHighScore     = 25
	RiskNoShowElevatedScore = 15
	RiskNoShowHighRate      = 0.20
	RiskNoShowElevatedRate  = 0.10

	RiskCancellationScore = 20
	RiskCancellationRate  = 0.30

	RiskLastMinuteScore   = 5
	RiskLastMinuteMaxDays = 1

	RiskWellPlannedScore   = -10 // не клампится, итог может уйти в минус
	RiskWellPlannedMinDays = 30

	RiskPeakTimeScore = 10
	PeakWindowStart   = types.TimeString("12:00")
	PeakWindowEnd     = types.TimeString("14:00")

	RiskEdgeWeekdayScore = 10 // понедельник или пятница
)

// RiskLevel итоговый уровень риска записи
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Risk level thresholds
const (
	RiskLevelHighMin   = 60
	RiskLevelMediumMin = 30
)

// RiskLevelFromScore maps a raw risk score to a level
func RiskLevelFromScore(score int) RiskLevel {
	switch {
	case score >= RiskLevelHighMin:
		return RiskLevelHigh
	case score >= RiskLevelMediumMin:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// RiskRecommendations fixed mitigation actions per risk level.
// Keyed by level, not derived from individual factors.
var RiskRecommendations = map[RiskLevel][]string{
	RiskLevelHigh: {
		"Send a reminder 24 hours before the appointment",
		"Call the customer to confirm attendance",
		"Consider requiring prepayment",
	},
	RiskLevelMedium: {
		"Send an automated reminder",
		"Keep backup staff available",
	},
	RiskLevelLow: {
		"Standard booking process",
	},
}
