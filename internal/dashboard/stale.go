package dashboard

import "time"

const dateLayout = "2006-01-02"

// StalePolicy decides whether a display hour of a given date is already past.
// It only affects the hourly view, never matching.
type StalePolicy interface {
	IsStale(date string, hour int) bool
}

type StalePolicyFunc func(date string, hour int) bool

func (f StalePolicyFunc) IsStale(date string, hour int) bool { return f(date, hour) }

// NeverStale keeps every hour visible.
var NeverStale StalePolicy = StalePolicyFunc(func(string, int) bool { return false })

// PastHours marks an hour stale once the hour has ended more than grace ago,
// relative to now in now's location. Dates that do not parse are never stale.
func PastHours(now time.Time, grace time.Duration) StalePolicy {
	return StalePolicyFunc(func(date string, hour int) bool {
		day, err := time.ParseInLocation(dateLayout, date, now.Location())
		if err != nil {
			return false
		}
		y, m, d := day.Date()
		end := time.Date(y, m, d, hour+1, 0, 0, 0, day.Location())
		return now.Sub(end) > grace
	})
}
