package usecase

import (
	"testing"
	"time"

	"github.com/spendwise/spendwise/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBounds_February(t *testing.T) {
	start, end := monthBounds(2024, time.February)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonthBounds_December(t *testing.T) {
	start, end := monthBounds(2023, time.December)

	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, time.December, 31, 23, 59, 59, 999000000, time.UTC), end)
}

func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, "2024-02", monthKeyOf(time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12", monthKeyOf(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)))
}

func TestParseMonthKey_Valid(t *testing.T) {
	year, month, err := parseMonthKey("2024-02")

	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)
}

func TestParseMonthKey_Invalid(t *testing.T) {
	cases := []string{"2024-13", "2024-00", "2024", "02-2024", "abcd-ef", "2024-2-1", ""}

	for _, key := range cases {
		_, _, err := parseMonthKey(key)
		assert.ErrorIs(t, err, apperrors.ErrInvalidMonthFormat, "key %q", key)
	}
}
