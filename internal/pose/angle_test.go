package pose

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{179, 179},
		{180, -180},
		{-180, -180},
		{-181, 179},
		{-1, -1},
		{359, -1},
		{360, 0},
		{540, -180},
		{-720, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%d)", tt.in)
	}
}

func TestNormalize_RangeExhaustive(t *testing.T) {
	for d := -1080; d <= 1080; d++ {
		n := Normalize(d)
		require.GreaterOrEqual(t, n, -180)
		require.Less(t, n, 180)
		require.Equal(t, 0, mod360(n-d), "Normalize(%d) = %d is not congruent", d, n)
	}
}

func TestNormalize360(t *testing.T) {
	assert.Equal(t, 0, Normalize360(-360))
	assert.Equal(t, 359, Normalize360(-1))
	assert.Equal(t, 10, Normalize360(370))
	assert.Equal(t, 180, Normalize360(180))
}

func TestIntegerAngle(t *testing.T) {
	got, err := IntegerAngle(45)
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = IntegerAngle(-370)
	require.NoError(t, err)
	assert.Equal(t, -370, got)

	for _, bad := range []float64{10.5, -0.25, math.NaN(), math.Inf(1), 1e12} {
		_, err := IntegerAngle(bad)
		assert.True(t, errors.Is(err, ErrInvalidAngle), "IntegerAngle(%v) error = %v", bad, err)
	}
}

func TestAxisAndAngleDistance(t *testing.T) {
	assert.Equal(t, 0, AxisDistance(10, 190))
	assert.Equal(t, 4, AxisDistance(2, 178))
	assert.Equal(t, 90, AxisDistance(0, 90))
	assert.Equal(t, 20, AngleDistance(-170, 170))
	assert.Equal(t, 180, AngleDistance(0, 180))
	assert.Equal(t, 3, AngleDistance(358, 1))
}
