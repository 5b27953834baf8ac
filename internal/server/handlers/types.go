package handlers

import (
	"github.com/vzahanych/wind-activity-app/internal/activity"
	"github.com/vzahanych/wind-activity-app/internal/server/utils"
)

// MatchRequest asks for the recommendation of one location on one day.
type MatchRequest struct {
	Rules      []activity.Rule       `json:"rules" validate:"max=500,dive"`
	LocationID string                `json:"location_id" binding:"required" validate:"required,max=100"`
	Forecast   *activity.DayForecast `json:"forecast" validate:"omitempty"`
}

type MatchResponse struct {
	LocationID string              `json:"location_id"`
	Activity   *activity.Activity  `json:"activity"`
	Activities []activity.Activity `json:"activities"`
	MaxGust    float64             `json:"max_gust"`
}

// DailyRequest asks for the best activity of a day across locations.
type DailyRequest struct {
	Rules     []activity.Rule             `json:"rules" validate:"max=500,dive"`
	Locations []activity.LocationForecast `json:"locations" validate:"max=100,dive"`
}

type DailyResponse struct {
	Match *activity.DailyActivity `json:"match"`
}

type CompassRequest struct {
	Degrees *float64 `form:"degrees" binding:"required"`
}

type CompassResponse struct {
	Degrees float64         `json:"degrees"`
	Octant  activity.Octant `json:"octant"`
}

// ErrorResponse represents an error response with validation
type ErrorResponse struct {
	Error   string                  `json:"error" validate:"required,min=1,max=500"`
	Code    string                  `json:"code,omitempty" validate:"omitempty,min=1,max=50"`
	Details string                  `json:"details,omitempty" validate:"omitempty,max=1000"`
	Fields  []utils.ValidationError `json:"fields,omitempty"`
}

// HealthResponse represents health check response with validation
type HealthResponse struct {
	Status    string `json:"status" validate:"required,oneof=alive ready ok"`
	Uptime    string `json:"uptime" validate:"required"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
