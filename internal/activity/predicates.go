package activity

// GustInRange reports whether gust lies within the inclusive bounds. A nil bound is open.
func GustInRange(gust float64, minGust, maxGust *float64) bool {
	if minGust != nil && gust < *minGust {
		return false
	}
	if maxGust != nil && gust > *maxGust {
		return false
	}
	return true
}

// DirectionAllowed reports whether the direction falls in one of the allowed octants.
// An empty set allows every direction.
func DirectionAllowed(degrees float64, allowed []Octant) bool {
	if len(allowed) == 0 {
		return true
	}
	octant := DegreesToCompass(degrees)
	for _, o := range allowed {
		if o == octant {
			return true
		}
	}
	return false
}

// TemperatureInRange checks the inclusive temperature bounds. When at least one
// bound is set, a missing temperature never satisfies it.
func TemperatureInRange(temperature, minTemp, maxTemp *float64) bool {
	if minTemp == nil && maxTemp == nil {
		return true
	}
	if temperature == nil {
		return false
	}
	if minTemp != nil && *temperature < *minTemp {
		return false
	}
	if maxTemp != nil && *temperature > *maxTemp {
		return false
	}
	return true
}

// Matches reports whether a single sample satisfies every constraint of the rule.
func (r Rule) Matches(s Sample) bool {
	return GustInRange(s.WindGust, r.MinGust, r.MaxGust) &&
		DirectionAllowed(s.WindDirection, r.WindDirections) &&
		TemperatureInRange(s.Temperature, r.MinTemp, r.MaxTemp)
}

// Unconstrained reports whether the rule matches any sample.
func (r Rule) Unconstrained() bool {
	return r.MinGust == nil && r.MaxGust == nil &&
		len(r.WindDirections) == 0 &&
		r.MinTemp == nil && r.MaxTemp == nil
}
