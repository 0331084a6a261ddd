//go:build gocv
// +build gocv

package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoCVRotator_Registered(t *testing.T) {
	r, err := RotatorByName("gocv")
	require.NoError(t, err)
	assert.IsType(t, GoCVRotator{}, r)
}

func TestExpandedSize(t *testing.T) {
	w, h := expandedSize(100, 40, 90)
	assert.Equal(t, 40, w)
	assert.Equal(t, 100, h)

	w, h = expandedSize(100, 40, 0)
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}

func TestGoCVRotator_RecoversHeading(t *testing.T) {
	opts := DefaultOptions()
	opts.Rotator = GoCVRotator{}

	res := estimate(t, teardrop(200, 200, 30), opts, MethodFull)

	assert.LessOrEqual(t, AngleDistance(res.Angle, Normalize(210)), tolerance+1, "got %+v", res)
}
