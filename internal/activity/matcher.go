package activity

import "sort"

// DefaultDisplayHours are the hours of the day the dashboard shows and matches against.
var DefaultDisplayHours = []int{10, 12, 14, 16, 18, 20}

// Matcher evaluates priority-ordered rules against day forecasts restricted
// to a fixed set of display hours. It never reorders rules and holds no
// mutable state, so one Matcher can be shared between goroutines.
type Matcher struct {
	hours map[int]struct{}
}

// NewMatcher builds a matcher for the given display hours. With no hours it
// falls back to DefaultDisplayHours.
func NewMatcher(hours ...int) *Matcher {
	if len(hours) == 0 {
		hours = DefaultDisplayHours
	}
	m := &Matcher{hours: make(map[int]struct{}, len(hours))}
	for _, h := range hours {
		m.hours[h] = struct{}{}
	}
	return m
}

var defaultMatcher = NewMatcher()

// DisplayHours returns the configured hours in ascending order.
func (m *Matcher) DisplayHours() []int {
	out := make([]int, 0, len(m.hours))
	for h := range m.hours {
		out = append(out, h)
	}
	sort.Ints(out)
	return out
}

func (m *Matcher) IsDisplayHour(hour int) bool {
	_, ok := m.hours[hour]
	return ok
}

// RelevantSamples returns the samples at display hours, keeping input order.
func (m *Matcher) RelevantSamples(day *DayForecast) []Sample {
	if day == nil {
		return nil
	}
	var out []Sample
	for _, s := range day.Forecasts {
		if m.IsDisplayHour(s.Hour) {
			out = append(out, s)
		}
	}
	return out
}

// MaxGustForDay returns the strongest gust within the display hours, or 0
// when the day is missing or has no display-hour samples.
func (m *Matcher) MaxGustForDay(day *DayForecast) float64 {
	var (
		maxGust float64
		found   bool
	)
	for _, s := range m.RelevantSamples(day) {
		if !found || s.WindGust > maxGust {
			maxGust = s.WindGust
			found = true
		}
	}
	return maxGust
}

// HasMatchingConditions reports whether any display-hour sample of the day satisfies the rule.
func (m *Matcher) HasMatchingConditions(day *DayForecast, rule Rule) bool {
	if day == nil {
		return false
	}
	for _, s := range day.Forecasts {
		if m.IsDisplayHour(s.Hour) && rule.Matches(s) {
			return true
		}
	}
	return false
}

// FindMatchingActivity returns the activity of the first rule for the location
// that matches the day. Rules must already be in priority order.
func (m *Matcher) FindMatchingActivity(rules []Rule, locationID string, day *DayForecast) (Activity, bool) {
	if day == nil {
		return "", false
	}
	for _, r := range rules {
		if r.LocationID == locationID && m.HasMatchingConditions(day, r) {
			return r.Activity, true
		}
	}
	return "", false
}

// FindAllMatchingActivities returns every distinct activity whose rule for the
// location matches the day, in first-seen order. The result is never nil.
func (m *Matcher) FindAllMatchingActivities(rules []Rule, locationID string, day *DayForecast) []Activity {
	out := []Activity{}
	if day == nil {
		return out
	}
	seen := make(map[Activity]struct{})
	for _, r := range rules {
		if r.LocationID != locationID || !m.HasMatchingConditions(day, r) {
			continue
		}
		if _, dup := seen[r.Activity]; dup {
			continue
		}
		seen[r.Activity] = struct{}{}
		out = append(out, r.Activity)
	}
	return out
}

// FindDailyActivity walks the rules in priority order and returns the first one
// whose location has a forecast that matches. The location name comes from the
// rule. Loading locations are not skipped as long as a forecast is present.
func (m *Matcher) FindDailyActivity(rules []Rule, locations []LocationForecast) (DailyActivity, bool) {
	for _, r := range rules {
		lf := findLocation(locations, r.LocationID)
		if lf == nil || lf.Forecast == nil {
			continue
		}
		if m.HasMatchingConditions(lf.Forecast, r) {
			return DailyActivity{
				Activity:     r.Activity,
				LocationName: r.LocationName,
				LocationID:   r.LocationID,
			}, true
		}
	}
	return DailyActivity{}, false
}

func findLocation(locations []LocationForecast, id string) *LocationForecast {
	for i := range locations {
		if locations[i].Location.ID == id {
			return &locations[i]
		}
	}
	return nil
}

func MaxGustForDay(day *DayForecast) float64 {
	return defaultMatcher.MaxGustForDay(day)
}

func HasMatchingConditions(day *DayForecast, rule Rule) bool {
	return defaultMatcher.HasMatchingConditions(day, rule)
}

func FindMatchingActivity(rules []Rule, locationID string, day *DayForecast) (Activity, bool) {
	return defaultMatcher.FindMatchingActivity(rules, locationID, day)
}

func FindAllMatchingActivities(rules []Rule, locationID string, day *DayForecast) []Activity {
	return defaultMatcher.FindAllMatchingActivities(rules, locationID, day)
}

func FindDailyActivity(rules []Rule, locations []LocationForecast) (DailyActivity, bool) {
	return defaultMatcher.FindDailyActivity(rules, locations)
}
