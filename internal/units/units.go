package units

import (
	"errors"
	"fmt"
	"math"
)

type WindUnit string

const (
	MetersPerSecond WindUnit = "ms"
	Knots           WindUnit = "knots"
)

// MSToKnots converts metres per second to knots.
const MSToKnots = 1.94384

var ErrUnknownWindUnit = errors.New("unknown wind unit")

// ParseWindUnit accepts the same values as the wind_unit fields: "ms" and
// "knots". An empty value means m/s.
func ParseWindUnit(s string) (WindUnit, error) {
	switch WindUnit(s) {
	case "", MetersPerSecond:
		return MetersPerSecond, nil
	case Knots:
		return Knots, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWindUnit, s)
	}
}

// ConvertWindSpeed converts a value in m/s to the given unit, rounded to one decimal.
func ConvertWindSpeed(ms float64, to WindUnit) float64 {
	v := ms
	if to == Knots {
		v = ms * MSToKnots
	}
	return math.Round(v*10) / 10
}

func (u WindUnit) Label() string {
	if u == Knots {
		return "kn"
	}
	return "m/s"
}
