package utils

import "time"

// Subscription windows are stored as unix seconds of UTC midnight, so
// remaining-day math is always whole calendar days.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// TodayUTC truncates now to the UTC date component.
func TodayUTC() time.Time {
	return DateOf(time.Now().UTC())
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FromUnixDate(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return DateOf(time.Unix(sec, 0))
}
