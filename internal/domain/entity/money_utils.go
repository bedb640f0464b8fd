package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
)

// Amounts (prices, credits) are stored as int64 minor units. The API exchanges
// them as decimal strings with at most MaxDecimalPlaces fraction digits.

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount converts a decimal string such as "1000", "10.5" or "10.15" into minor units.
// Negative values and more than two fraction digits are rejected with ErrInvalidAmount.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") || strings.HasPrefix(amount, "+") {
		return 0, fmt.Errorf("%w: sign not allowed", errs.ErrInvalidAmount)
	}

	whole, fraction, hasPoint := strings.Cut(amount, ".")
	if hasPoint && strings.Contains(fraction, ".") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if whole == "" {
		whole = "0"
	}
	fraction += strings.Repeat("0", MaxDecimalPlaces-len(fraction))

	for _, r := range whole + fraction {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
		}
	}

	value, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return value, nil
}

// ParsePositiveAmount is ParseAmount that also rejects zero
func ParsePositiveAmount(amount string) (int64, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if err := ValidatePositiveAmount(value); err != nil {
		return 0, err
	}
	return value, nil
}

// ValidatePositiveAmount rejects zero and negative minor-unit amounts
func ValidatePositiveAmount(minor int64) error {
	if minor <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", errs.ErrInvalidAmount, minor)
	}
	return nil
}

// FormatAmount renders minor units as a decimal string with two fraction digits.
// For example 1015 becomes "10.15" and -5 becomes "-0.05".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// NormalizeCurrency upper-cases and trims an ISO currency code
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
