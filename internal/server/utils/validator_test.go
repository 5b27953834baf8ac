package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vzahanych/wind-activity-app/internal/activity"
)

func ptr(v float64) *float64 { return &v }

func TestValidateStruct_Rule(t *testing.T) {
	tests := []struct {
		name    string
		rule    activity.Rule
		wantTag string
		field   string
	}{
		{
			name: "valid",
			rule: activity.Rule{LocationID: "a", Activity: activity.Kiting, MinGust: ptr(5), MaxGust: ptr(20),
				WindDirections: []activity.Octant{activity.North, activity.SouthWest}},
		},
		{
			name:    "unknown activity",
			rule:    activity.Rule{LocationID: "a", Activity: "paragliding"},
			wantTag: "activity",
			field:   "Rule.activity",
		},
		{
			name:    "missing location",
			rule:    activity.Rule{Activity: activity.Sup},
			wantTag: "required",
			field:   "Rule.location_id",
		},
		{
			name:    "bad octant",
			rule:    activity.Rule{LocationID: "a", Activity: activity.Sup, WindDirections: []activity.Octant{"NNE"}},
			wantTag: "octant",
			field:   "Rule.wind_directions[0]",
		},
		{
			name:    "inverted gust bounds",
			rule:    activity.Rule{LocationID: "a", Activity: activity.Sup, MinGust: ptr(20), MaxGust: ptr(10)},
			wantTag: "ltefield",
			field:   "Rule.min_gust",
		},
		{
			name:    "inverted temperature bounds",
			rule:    activity.Rule{LocationID: "a", Activity: activity.Sup, MinTemp: ptr(25), MaxTemp: ptr(5)},
			wantTag: "ltefield",
			field:   "Rule.min_temp",
		},
		{
			name:    "negative gust",
			rule:    activity.Rule{LocationID: "a", Activity: activity.Sup, MinGust: ptr(-1)},
			wantTag: "gte",
			field:   "Rule.min_gust",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(tt.rule)
			if tt.wantTag == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantTag, errs[0].Tag)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.NotEmpty(t, errs[0].Message)
		})
	}
}

func TestValidateStruct_Sample(t *testing.T) {
	assert.Empty(t, ValidateStruct(activity.Sample{Hour: 23, WindDirection: 359.9}))

	errs := ValidateStruct(activity.Sample{Hour: 24})
	require.Len(t, errs, 1)
	assert.Equal(t, "hour", errs[0].Tag)

	assert.Empty(t, ValidateStruct(activity.Sample{Hour: 12, WindDirection: 360}), "360 is north")

	errs = ValidateStruct(activity.Sample{Hour: 12, WindDirection: 360.5})
	require.Len(t, errs, 1)
	assert.Equal(t, "lte", errs[0].Tag)
}

func TestValidateStruct_Location(t *testing.T) {
	assert.Empty(t, ValidateStruct(activity.Location{ID: "x", Lat: 36.0, Lon: -5.6}))

	errs := ValidateStruct(activity.Location{ID: "x", Lat: 91, Lon: 181})
	require.Len(t, errs, 2)
	assert.Equal(t, "latitude", errs[0].Tag)
	assert.Equal(t, "longitude", errs[1].Tag)
}

func TestFormatValidationErrors_NonValidatorError(t *testing.T) {
	assert.Empty(t, FormatValidationErrors(assert.AnError))
}
