package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSample(hour int, gust float64) Sample {
	return Sample{Hour: hour, WindSpeed: gust * 0.7, WindGust: gust, WindDirection: 180, Temperature: ptr(15)}
}

func newDay(samples ...Sample) *DayForecast {
	return &DayForecast{Date: "2024-01-15", Forecasts: samples}
}

func newRule(id, locationID string, activity Activity, priority int) Rule {
	return Rule{
		ID:           id,
		LocationID:   locationID,
		LocationName: "Location " + locationID,
		Activity:     activity,
		Priority:     priority,
	}
}

func TestMaxGustForDay(t *testing.T) {
	assert.Equal(t, 0.0, MaxGustForDay(nil))
	assert.Equal(t, 0.0, MaxGustForDay(newDay()))

	day := newDay(
		newSample(8, 25),
		newSample(10, 15),
		newSample(12, 18),
		newSample(14, 20),
		newSample(16, 12),
		newSample(18, 10),
		newSample(20, 8),
		newSample(22, 30),
	)
	assert.Equal(t, 20.0, MaxGustForDay(day), "hours outside the display window are ignored")
	assert.Equal(t, 15.0, MaxGustForDay(newDay(newSample(14, 15))))
}

func TestMaxGustForDay_OnlyNonDisplayHours(t *testing.T) {
	assert.Equal(t, 0.0, MaxGustForDay(newDay(newSample(7, 12), newSample(23, 9))))
}

func TestHasMatchingConditions_AnyHour(t *testing.T) {
	rule := Rule{MinGust: ptr(10)}
	day := newDay(newSample(10, 4), newSample(12, 5), newSample(14, 11))
	assert.True(t, HasMatchingConditions(day, rule))

	outside := newDay(newSample(10, 4), newSample(9, 30))
	assert.False(t, HasMatchingConditions(outside, rule), "strong gust at a hidden hour does not count")
	assert.False(t, HasMatchingConditions(nil, rule))
}

func TestFindMatchingActivity(t *testing.T) {
	day := newDay(newSample(12, 15))

	t.Run("absent forecast", func(t *testing.T) {
		_, ok := FindMatchingActivity([]Rule{newRule("r1", "loc-1", Wingfoil, 1)}, "loc-1", nil)
		assert.False(t, ok)
	})

	t.Run("empty rules", func(t *testing.T) {
		_, ok := FindMatchingActivity(nil, "loc-1", day)
		assert.False(t, ok)
	})

	t.Run("other location only", func(t *testing.T) {
		_, ok := FindMatchingActivity([]Rule{newRule("r1", "other", Wingfoil, 1)}, "loc-1", day)
		assert.False(t, ok)
	})

	t.Run("unconstrained rule", func(t *testing.T) {
		got, ok := FindMatchingActivity([]Rule{newRule("r1", "loc-1", Wingfoil, 1)}, "loc-1", newDay(newSample(12, 5)))
		require.True(t, ok)
		assert.Equal(t, Wingfoil, got)
	})

	t.Run("first rule in input order wins", func(t *testing.T) {
		rules := []Rule{
			newRule("r1", "loc-1", Windsurfing, 1),
			newRule("r2", "loc-1", Wingfoil, 2),
		}
		got, ok := FindMatchingActivity(rules, "loc-1", day)
		require.True(t, ok)
		assert.Equal(t, Windsurfing, got)
	})

	t.Run("input order is trusted over priority field", func(t *testing.T) {
		rules := []Rule{
			newRule("r2", "loc-1", Wingfoil, 5),
			newRule("r1", "loc-1", Windsurfing, 1),
		}
		got, _ := FindMatchingActivity(rules, "loc-1", day)
		assert.Equal(t, Wingfoil, got)
	})

	t.Run("falls through to lower priority", func(t *testing.T) {
		strong := newRule("r1", "loc-1", Kiting, 1)
		strong.MinGust = ptr(20)
		light := newRule("r2", "loc-1", Sup, 2)
		light.MaxGust = ptr(16)
		got, ok := FindMatchingActivity([]Rule{strong, light}, "loc-1", day)
		require.True(t, ok)
		assert.Equal(t, Sup, got)
	})

	t.Run("gust below min", func(t *testing.T) {
		r := newRule("r1", "loc-1", Wingfoil, 1)
		r.MinGust = ptr(10)
		_, ok := FindMatchingActivity([]Rule{r}, "loc-1", newDay(newSample(12, 8)))
		assert.False(t, ok)
	})

	t.Run("gust equal to bounds", func(t *testing.T) {
		r := newRule("r1", "loc-1", Wingfoil, 1)
		r.MinGust = ptr(10)
		r.MaxGust = ptr(10)
		_, ok := FindMatchingActivity([]Rule{r}, "loc-1", newDay(newSample(12, 10)))
		assert.True(t, ok)
	})
}

func TestFindMatchingActivity_WindDirection(t *testing.T) {
	r := newRule("r1", "loc-1", Windfoil, 1)
	r.WindDirections = []Octant{South, SouthWest}

	south := newSample(12, 12)
	south.WindDirection = 190
	_, ok := FindMatchingActivity([]Rule{r}, "loc-1", newDay(south))
	assert.True(t, ok)

	north := newSample(12, 12)
	north.WindDirection = 10
	_, ok = FindMatchingActivity([]Rule{r}, "loc-1", newDay(north))
	assert.False(t, ok)

	r.WindDirections = []Octant{}
	_, ok = FindMatchingActivity([]Rule{r}, "loc-1", newDay(north))
	assert.True(t, ok, "empty direction list allows all directions")
}

func TestFindMatchingActivity_Temperature(t *testing.T) {
	r := newRule("r1", "loc-1", Sup, 1)
	r.MinTemp = ptr(10)

	missing := newSample(12, 5)
	missing.Temperature = nil
	_, ok := FindMatchingActivity([]Rule{r}, "loc-1", newDay(missing))
	assert.False(t, ok)

	cold := newSample(12, 5)
	cold.Temperature = ptr(8)
	_, ok = FindMatchingActivity([]Rule{r}, "loc-1", newDay(cold))
	assert.False(t, ok)

	warm := newSample(12, 5)
	warm.Temperature = ptr(10)
	_, ok = FindMatchingActivity([]Rule{r}, "loc-1", newDay(warm))
	assert.True(t, ok)

	unbounded := newRule("r2", "loc-1", Sup, 1)
	_, ok = FindMatchingActivity([]Rule{unbounded}, "loc-1", newDay(missing))
	assert.True(t, ok)
}

func TestFindMatchingActivity_AllConstraintsOnSameHour(t *testing.T) {
	r := newRule("r1", "loc-1", Wingfoil, 1)
	r.MinGust = ptr(10)
	r.WindDirections = []Octant{West}

	// gust fits at 10, direction fits at 12, never both at once
	a := newSample(10, 12)
	a.WindDirection = 90
	b := newSample(12, 5)
	b.WindDirection = 270
	_, ok := FindMatchingActivity([]Rule{r}, "loc-1", newDay(a, b))
	assert.False(t, ok)
}

func TestFindAllMatchingActivities(t *testing.T) {
	day := newDay(newSample(14, 12))

	assert.Empty(t, FindAllMatchingActivities([]Rule{newRule("r1", "loc-1", Sup, 1)}, "loc-1", nil))
	assert.NotNil(t, FindAllMatchingActivities(nil, "loc-1", nil))

	strong := newRule("r3", "loc-1", Kiting, 3)
	strong.MinGust = ptr(20)
	rules := []Rule{
		newRule("r1", "loc-1", Wingfoil, 1),
		newRule("r2", "loc-1", Windsurfing, 2),
		strong,
		newRule("r4", "loc-1", Wingfoil, 4),
		newRule("r5", "loc-2", Sup, 5),
	}

	got := FindAllMatchingActivities(rules, "loc-1", day)
	assert.ElementsMatch(t, []Activity{Wingfoil, Windsurfing}, got)
}

func TestFindDailyActivity(t *testing.T) {
	t.Run("lower priority rule wins when higher fails its floor", func(t *testing.T) {
		a := newRule("r1", "A", Windsurfing, 1)
		a.MinGust = ptr(20)
		b := newRule("r2", "B", Wingfoil, 2)
		b.MinGust = ptr(10)

		locations := []LocationForecast{
			{Location: Location{ID: "A", Name: "A"}, Forecast: newDay(newSample(12, 8))},
			{Location: Location{ID: "B", Name: "B"}, Forecast: newDay(newSample(12, 15))},
		}

		got, ok := FindDailyActivity([]Rule{a, b}, locations)
		require.True(t, ok)
		assert.Equal(t, Wingfoil, got.Activity)
		assert.Equal(t, "B", got.LocationID)
	})

	t.Run("rule order beats location order", func(t *testing.T) {
		rules := []Rule{
			newRule("r1", "B", Kiting, 1),
			newRule("r2", "A", Sup, 2),
		}
		locations := []LocationForecast{
			{Location: Location{ID: "A"}, Forecast: newDay(newSample(12, 10))},
			{Location: Location{ID: "B"}, Forecast: newDay(newSample(12, 10))},
		}
		got, ok := FindDailyActivity(rules, locations)
		require.True(t, ok)
		assert.Equal(t, Kiting, got.Activity)
		assert.Equal(t, "B", got.LocationID)
	})

	t.Run("location name comes from the rule", func(t *testing.T) {
		r := newRule("r1", "A", Sup, 1)
		r.LocationName = "Stored name"
		locations := []LocationForecast{
			{Location: Location{ID: "A", Name: "Renamed"}, Forecast: newDay(newSample(12, 3))},
		}
		got, ok := FindDailyActivity([]Rule{r}, locations)
		require.True(t, ok)
		assert.Equal(t, "Stored name", got.LocationName)
	})

	t.Run("unknown and absent locations are skipped", func(t *testing.T) {
		rules := []Rule{
			newRule("r1", "missing", Kiting, 1),
			newRule("r2", "A", Windfoil, 2),
			newRule("r3", "B", Sup, 3),
		}
		locations := []LocationForecast{
			{Location: Location{ID: "A"}, Forecast: nil},
			{Location: Location{ID: "B"}, Forecast: newDay(newSample(16, 6))},
		}
		got, ok := FindDailyActivity(rules, locations)
		require.True(t, ok)
		assert.Equal(t, Sup, got.Activity)
	})

	t.Run("loading locations with a forecast still match", func(t *testing.T) {
		locations := []LocationForecast{
			{Location: Location{ID: "A"}, Forecast: newDay(newSample(12, 9)), IsLoading: true},
		}
		got, ok := FindDailyActivity([]Rule{newRule("r1", "A", Wingfoil, 1)}, locations)
		require.True(t, ok)
		assert.Equal(t, Wingfoil, got.Activity)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := FindDailyActivity(nil, nil)
		assert.False(t, ok)

		r := newRule("r1", "A", Kiting, 1)
		r.MinGust = ptr(30)
		_, ok = FindDailyActivity([]Rule{r}, []LocationForecast{
			{Location: Location{ID: "A"}, Forecast: newDay(newSample(12, 9))},
		})
		assert.False(t, ok)
	})
}

func TestMatcher_CustomDisplayHours(t *testing.T) {
	m := NewMatcher(6, 7)
	assert.Equal(t, []int{6, 7}, m.DisplayHours())

	day := newDay(newSample(6, 11), newSample(12, 25))
	assert.Equal(t, 11.0, m.MaxGustForDay(day))

	r := Rule{LocationID: "loc-1", Activity: Kiting, MinGust: ptr(20)}
	_, ok := m.FindMatchingActivity([]Rule{r}, "loc-1", day)
	assert.False(t, ok)

	_, ok = NewMatcher().FindMatchingActivity([]Rule{r}, "loc-1", day)
	assert.True(t, ok)
}

func TestMatcher_DefaultHours(t *testing.T) {
	assert.Equal(t, DefaultDisplayHours, NewMatcher().DisplayHours())
}

func TestRuleJSON_PreservesNullBounds(t *testing.T) {
	r := Rule{ID: "r1", LocationID: "loc-1", Activity: Sup, MaxGust: ptr(20), MinTemp: ptr(0)}

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Nil(t, raw["min_gust"])
	assert.Contains(t, raw, "min_gust")
	assert.Equal(t, 20.0, raw["max_gust"])
	assert.Equal(t, 0.0, raw["min_temp"])

	var back Rule
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Nil(t, back.MinGust)
	require.NotNil(t, back.MinTemp)
	assert.Equal(t, 0.0, *back.MinTemp)
}

func TestActivityLabel(t *testing.T) {
	assert.Equal(t, "SUP-foil", SupFoil.Label())
	assert.Equal(t, "paragliding", Activity("paragliding").Label())
	assert.False(t, Activity("paragliding").IsValid())
	assert.Len(t, AllActivities(), 6)
}
