package activity

import "time"

// Activity is the water sport a rule recommends.
type Activity string

const (
	Windsurfing Activity = "windsurfing"
	Windfoil    Activity = "windfoil"
	Wingfoil    Activity = "wingfoil"
	SupFoil     Activity = "sup-foil"
	Kiting      Activity = "kiting"
	Sup         Activity = "sup"
)

var activityLabels = map[Activity]string{
	Windsurfing: "Windsurfing",
	Windfoil:    "Windfoil",
	Wingfoil:    "Wingfoil",
	SupFoil:     "SUP-foil",
	Kiting:      "Kiting",
	Sup:         "SUP",
}

func AllActivities() []Activity {
	return []Activity{Windsurfing, Windfoil, Wingfoil, SupFoil, Kiting, Sup}
}

func (a Activity) IsValid() bool {
	_, ok := activityLabels[a]
	return ok
}

// Label returns the human readable name, or the raw value for unknown activities.
func (a Activity) Label() string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return string(a)
}

// Rule is a user-authored constraint set that recommends an activity at one location.
// Nil bounds mean "no restriction" and are kept as null when serialized.
type Rule struct {
	ID             string    `json:"id" yaml:"id"`
	UserID         string    `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	LocationID     string    `json:"location_id" yaml:"location_id" validate:"required,max=100"`
	LocationName   string    `json:"location_name" yaml:"location_name" validate:"max=200"`
	Activity       Activity  `json:"activity" yaml:"activity" validate:"required,activity"`
	MinGust        *float64  `json:"min_gust" yaml:"min_gust" validate:"omitempty,gte=0"`
	MaxGust        *float64  `json:"max_gust" yaml:"max_gust" validate:"omitempty,gte=0"`
	WindDirections []Octant  `json:"wind_directions" yaml:"wind_directions" validate:"omitempty,max=8,dive,octant"`
	MinTemp        *float64  `json:"min_temp" yaml:"min_temp"`
	MaxTemp        *float64  `json:"max_temp" yaml:"max_temp"`
	Priority       int       `json:"priority" yaml:"priority"`
	CreatedAt      time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Sample is a single hourly forecast value. Speeds are in m/s and the
// direction is where the wind comes from, in degrees.
type Sample struct {
	Hour          int      `json:"hour" yaml:"hour" validate:"hour"`
	WindSpeed     float64  `json:"wind_speed" yaml:"wind_speed" validate:"gte=0"`
	WindGust      float64  `json:"wind_gust" yaml:"wind_gust" validate:"gte=0"`
	WindDirection float64  `json:"wind_direction" yaml:"wind_direction" validate:"gte=0,lte=360"`
	Temperature   *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// DayForecast holds the samples of one calendar day at one location, in no particular order.
type DayForecast struct {
	Date      string   `json:"date" yaml:"date" validate:"required"`
	Forecasts []Sample `json:"forecasts" yaml:"forecasts" validate:"dive"`
}

type Location struct {
	ID      string  `json:"id" yaml:"id" validate:"required,max=100"`
	Name    string  `json:"name" yaml:"name" validate:"max=200"`
	Region  string  `json:"region,omitempty" yaml:"region,omitempty"`
	Country string  `json:"country,omitempty" yaml:"country,omitempty"`
	Lat     float64 `json:"lat" yaml:"lat" validate:"latitude"`
	Lon     float64 `json:"lon" yaml:"lon" validate:"longitude"`
}

// LocationForecast pairs a location with its forecast for a single day.
// IsLoading is informational; matching only looks at whether Forecast is set.
type LocationForecast struct {
	Location  Location     `json:"location" yaml:"location"`
	Forecast  *DayForecast `json:"forecast" yaml:"forecast" validate:"omitempty"`
	IsLoading bool         `json:"is_loading" yaml:"is_loading"`
}

// DailyActivity is the best recommendation for a day across all locations.
type DailyActivity struct {
	Activity     Activity `json:"activity"`
	LocationName string   `json:"location_name"`
	LocationID   string   `json:"location_id"`
}
