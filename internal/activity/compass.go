package activity

import "math"

// Octant is one of the eight compass directions.
type Octant string

const (
	North     Octant = "N"
	NorthEast Octant = "NE"
	East      Octant = "E"
	SouthEast Octant = "SE"
	South     Octant = "S"
	SouthWest Octant = "SW"
	West      Octant = "W"
	NorthWest Octant = "NW"
)

var octants = [8]Octant{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func AllOctants() []Octant {
	out := make([]Octant, len(octants))
	copy(out, octants[:])
	return out
}

func (o Octant) IsValid() bool {
	for _, v := range octants {
		if v == o {
			return true
		}
	}
	return false
}

// DegreesToCompass maps a direction in degrees to its octant using
// round(degrees/45) mod 8. Halves round away from zero, so 22 is N and 23 is NE.
// The index is reduced in floating point before the int conversion so huge
// inputs resolve the same on every architecture. NaN and infinities map to N.
func DegreesToCompass(degrees float64) Octant {
	r := math.Mod(math.Round(degrees/45), 8)
	if math.IsNaN(r) {
		return North
	}
	idx := int(r)
	if idx < 0 {
		idx += 8
	}
	return octants[idx]
}
