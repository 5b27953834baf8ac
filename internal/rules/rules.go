// Package rules holds the in-memory ordering operations a rule store applies
// before rules are handed to the matcher.
package rules

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vzahanych/wind-activity-app/internal/activity"
)

// New fills in an id and creation time for a freshly authored rule.
func New(r activity.Rule) activity.Rule {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}

// SortByPriority returns a copy ordered by ascending priority. Equal priorities keep input order.
func SortByPriority(in []activity.Rule) []activity.Rule {
	out := make([]activity.Rule, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

// NextPriority returns the priority that places a new rule above all existing ones.
func NextPriority(in []activity.Rule) int {
	if len(in) == 0 {
		return 0
	}
	lowest := in[0].Priority
	for _, r := range in[1:] {
		if r.Priority < lowest {
			lowest = r.Priority
		}
	}
	return lowest - 1
}

// Reorder assigns priorities from the position of each id in orderedIDs.
// Unknown ids are ignored and rules missing from orderedIDs are dropped.
func Reorder(in []activity.Rule, orderedIDs []string) []activity.Rule {
	byID := make(map[string]activity.Rule, len(in))
	for _, r := range in {
		byID[r.ID] = r
	}

	out := make([]activity.Rule, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		r, ok := byID[id]
		if !ok {
			continue
		}
		r.Priority = len(out)
		out = append(out, r)
		delete(byID, id)
	}
	return out
}

func ForLocation(in []activity.Rule, locationID string) []activity.Rule {
	var out []activity.Rule
	for _, r := range in {
		if r.LocationID == locationID {
			out = append(out, r)
		}
	}
	return out
}

// RemoveLocation drops every rule bound to the location.
func RemoveLocation(in []activity.Rule, locationID string) []activity.Rule {
	out := make([]activity.Rule, 0, len(in))
	for _, r := range in {
		if r.LocationID != locationID {
			out = append(out, r)
		}
	}
	return out
}
