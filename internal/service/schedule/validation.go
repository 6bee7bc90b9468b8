package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// validateCreateBlackout проверяет корректность запроса на создание блэкаута
func validateCreateBlackout(req *models.CreateBlackoutRequest) error {
	if req.Recurring {
		if len(req.Weekdays) == 0 {
			return fmt.Errorf("%w: recurring blackout requires at least one weekday", ErrInvalidInput)
		}
		if req.Date != nil {
			return fmt.Errorf("%w: recurring blackout must not have a specific date", ErrInvalidInput)
		}
	} else {
		if req.Date == nil {
			return fmt.Errorf("%w: one-off blackout requires a date", ErrInvalidInput)
		}
		if len(req.Weekdays) > 0 {
			return fmt.Errorf("%w: one-off blackout must not have weekdays", ErrInvalidInput)
		}
	}

	return validateTimeRange(req.StartTime, req.EndTime)
}

// validateCreateBucket проверяет корректность запроса на создание бакета
func validateCreateBucket(req *models.CreateCapacityBucketRequest) error {
	startTime := types.TimeString(req.StartTime)
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	endTime := types.TimeString(req.EndTime)
	if err := endTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if req.MaxAppointments <= 0 {
		return fmt.Errorf("%w: max appointments must be positive", ErrInvalidInput)
	}

	return nil
}

// validateTimeRange проверяет опциональный временной диапазон:
// либо обе границы, либо ни одной
func validateTimeRange(start, end *string) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return fmt.Errorf("%w: time range requires both start and end", ErrInvalidInput)
	}

	startTime := types.TimeString(*start)
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	endTime := types.TimeString(*end)
	if err := endTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	return nil
}
