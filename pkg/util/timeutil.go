package util

import "time"

// Clock returns the current time; services keep one so tests can pin it.
type Clock func() time.Time

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// MonthOrCurrent returns month when it is a calendar month, otherwise the
// month of now.
func MonthOrCurrent(month int, now time.Time) int {
	if month >= 1 && month <= 12 {
		return month
	}
	return int(now.Month())
}
