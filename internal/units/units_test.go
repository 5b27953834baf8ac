package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindUnit(t *testing.T) {
	for in, want := range map[string]WindUnit{
		"":      MetersPerSecond,
		"ms":    MetersPerSecond,
		"knots": Knots,
	} {
		got, err := ParseWindUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	// Only the values accepted by the wind_unit config and request fields.
	for _, in := range []string{"mph", "m/s", "kn", "kt", "KNOTS", " ms "} {
		_, err := ParseWindUnit(in)
		assert.ErrorIs(t, err, ErrUnknownWindUnit, in)
	}
}

func TestConvertWindSpeed(t *testing.T) {
	assert.Equal(t, 10.0, ConvertWindSpeed(10, MetersPerSecond))
	assert.Equal(t, 19.4, ConvertWindSpeed(10, Knots))
	assert.Equal(t, 12.3, ConvertWindSpeed(12.34, MetersPerSecond))
	assert.Equal(t, 0.0, ConvertWindSpeed(0, Knots))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "kn", Knots.Label())
	assert.Equal(t, "m/s", MetersPerSecond.Label())
	assert.Equal(t, "m/s", WindUnit("").Label())
}
