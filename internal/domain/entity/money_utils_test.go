package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.10", 10},
			{"1", 100},
			{"1.5", 150},
			{".5", 50},
			{" 1000 ", 100000},
			{"1234567.89", 123456789},
			{"0", 0},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				minor, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, minor)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"-1.00", "Negative amount"},
			{"+1.00", "Explicit sign"},
			{"1.234", "Too many decimal places"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
			{"99999999999999999999", "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestParsePositiveAmount(t *testing.T) {
	minor, err := ParsePositiveAmount("8.00")
	require.NoError(t, err)
	assert.Equal(t, int64(800), minor)

	_, err = ParsePositiveAmount("0.00")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestValidatePositiveAmount(t *testing.T) {
	assert.NoError(t, ValidatePositiveAmount(1))
	assert.ErrorIs(t, ValidatePositiveAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidatePositiveAmount(-100), errs.ErrInvalidAmount)
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{150, "1.50"},
		{100000, "1000.00"},
		{-5, "-0.05"},
		{-1015, "-10.15"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.input))
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "KZT", NormalizeCurrency(" kzt "))
	assert.Equal(t, "", NormalizeCurrency(""))
}
