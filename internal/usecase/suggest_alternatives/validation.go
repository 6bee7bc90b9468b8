package suggest_alternatives

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferredDate is required", ErrInvalidInput)
	}

	if err := req.PreferredTime.Validate(); err != nil {
		return fmt.Errorf("%w: preferredTime: %v", ErrInvalidInput, err)
	}

	if req.DaysAhead < 0 {
		return fmt.Errorf("%w: daysAhead must not be negative", ErrInvalidInput)
	}

	return nil
}
