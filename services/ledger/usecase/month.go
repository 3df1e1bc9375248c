package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spendwise/spendwise/internal/pkg/apperrors"
)

// monthBounds returns the first and last instant of a calendar month. The
// end bound is 23:59:59.999 of the month's final day so that inclusive
// range queries match the stored millisecond-precision timestamps.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// monthKeyOf builds the YYYY-MM bucket key for a date. Keys carry the true
// calendar year so transactions across a year boundary never collide.
func monthKeyOf(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// parseMonthKey validates and splits a YYYY-MM key
func parseMonthKey(key string) (int, time.Month, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return 0, 0, apperrors.ErrInvalidMonthFormat
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, apperrors.ErrInvalidMonthFormat
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, apperrors.ErrInvalidMonthFormat
	}

	return year, time.Month(month), nil
}
