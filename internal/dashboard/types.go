package dashboard

import (
	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/units"
)

// LocationWeather is a saved location with its forecast days.
type LocationWeather struct {
	Location  activity.Location      `json:"location" yaml:"location"`
	Days      []activity.DayForecast `json:"days" yaml:"days" validate:"max=16,dive"`
	IsLoading bool                   `json:"is_loading" yaml:"is_loading"`
}

type Request struct {
	Rules     []activity.Rule   `json:"rules" yaml:"rules" validate:"max=500,dive"`
	Locations []LocationWeather `json:"locations" yaml:"locations" validate:"max=100,dive"`
	WindUnit  units.WindUnit    `json:"wind_unit,omitempty" yaml:"wind_unit,omitempty" validate:"omitempty,oneof=ms knots"`
}

// HourView is one display hour as shown to the user. Wind values are nil for
// hours the stale policy marked as already past.
type HourView struct {
	Hour        int             `json:"hour"`
	WindSpeed   *float64        `json:"wind_speed"`
	WindGust    *float64        `json:"wind_gust"`
	Direction   activity.Octant `json:"direction"`
	Degrees     float64         `json:"degrees"`
	Temperature *float64        `json:"temperature,omitempty"`
	Stale       bool            `json:"stale,omitempty"`
}

type LocationDay struct {
	LocationID   string              `json:"location_id"`
	LocationName string              `json:"location_name"`
	IsLoading    bool                `json:"is_loading"`
	HasForecast  bool                `json:"has_forecast"`
	MaxGust      float64             `json:"max_gust"`
	Activity     *activity.Activity  `json:"activity"`
	Activities   []activity.Activity `json:"activities"`
	Hours        []HourView          `json:"hours"`
}

type DaySummary struct {
	Date      string                  `json:"date"`
	Daily     *activity.DailyActivity `json:"daily"`
	Locations []LocationDay           `json:"locations"`
}

type Dashboard struct {
	Days         []DaySummary   `json:"days"`
	WindUnit     units.WindUnit `json:"wind_unit"`
	UnitLabel    string         `json:"unit_label"`
	DisplayHours []int          `json:"display_hours"`
	GeneratedAt  string         `json:"generated_at"`
}
