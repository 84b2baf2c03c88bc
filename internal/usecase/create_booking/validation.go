package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.MerchantID <= 0 {
		return fmt.Errorf("%w: merchantID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ServiceName)
	if name == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: serviceName is longer than %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if req.ServicePrice < 0 {
		return fmt.Errorf("%w: servicePrice must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < domain.MinServiceDurationMinutes || d > domain.MaxServiceDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be in [%d, %d]",
				ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
