package service

import (
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxStringLen   = 255
	maxStatusLen   = 50
	minPasswordLen = 8
	maxPasswordLen = 40
)

// Length bounds count characters, not bytes, so multibyte input is
// measured the same way the stored column widths are.
func validateName(field, s string) error {
	n := utf8.RuneCountInString(s)
	if n < 1 {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	if n > maxStringLen {
		return fmt.Errorf("%w: %s longer than %d characters", ErrValidation, field, maxStringLen)
	}
	return nil
}

func validateDescription(s *string) error {
	if s != nil && utf8.RuneCountInString(*s) > maxStringLen {
		return fmt.Errorf("%w: description longer than %d characters", ErrValidation, maxStringLen)
	}
	return nil
}

func validateEmail(s string) error {
	if n := utf8.RuneCountInString(s); n < 1 || n > maxStringLen {
		return fmt.Errorf("%w: email must be 1-%d characters", ErrValidation, maxStringLen)
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("%w: email is malformed", ErrValidation)
	}
	return nil
}

func validatePassword(s string) error {
	if n := utf8.RuneCountInString(s); n < minPasswordLen || n > maxPasswordLen {
		return fmt.Errorf("%w: password must be %d-%d characters", ErrValidation, minPasswordLen, maxPasswordLen)
	}
	return nil
}

func validateStatus(s string) error {
	if utf8.RuneCountInString(s) > maxStatusLen {
		return fmt.Errorf("%w: status longer than %d characters", ErrValidation, maxStatusLen)
	}
	return nil
}

// validatePrice enforces non-negative fixed-point bounds: at most
// maxDigits significant digits with at most places after the point.
func validatePrice(field string, d decimal.Decimal, maxDigits, places int32) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	if d.Exponent() < -places {
		return fmt.Errorf("%w: %s allows at most %d decimal places", ErrValidation, field, places)
	}
	limit := decimal.New(1, maxDigits-places)
	if d.GreaterThanOrEqual(limit) {
		return fmt.Errorf("%w: %s out of range for decimal(%d,%d)", ErrValidation, field, maxDigits, places)
	}
	return nil
}
