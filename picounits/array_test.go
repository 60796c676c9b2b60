package picounits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, elems []float64, unit Unit) *Vector {
	t.Helper()
	v, err := NewVector(elems, unit)
	require.NoError(t, err)
	return v
}

func TestVectorConstruction(t *testing.T) {
	t.Run("EmptyRejected", func(t *testing.T) {
		_, err := NewVector(nil, Length)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("InputCopied", func(t *testing.T) {
		elems := []float64{1, 2, 3}
		v := vec(t, elems, Length)
		elems[0] = 99
		assert.Equal(t, []float64{1, 2, 3}, v.Values())
	})

	t.Run("PrefixRebasesElements", func(t *testing.T) {
		v, err := NewVectorWithPrefix([]float64{1, 2}, Length, PrefixKilo)
		require.NoError(t, err)
		assert.Equal(t, []float64{1000, 2000}, v.Values())
	})
}

func TestVectorNorm(t *testing.T) {
	v := vec(t, []float64{3, 4}, Force)

	assert.InDelta(t, 5, v.Magnitude(), 1e-12)

	norm := v.Norm()
	assert.InDelta(t, 5, norm.Value(), 1e-12)
	assert.True(t, norm.Unit().Equal(Force))
}

func TestVectorNormalize(t *testing.T) {
	v := vec(t, []float64{3, 4}, Velocity)

	unitVec, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, unitVec.Values()[0], 1e-12)
	assert.InDelta(t, 0.8, unitVec.Values()[1], 1e-12)
	assert.True(t, unitVec.Unit().IsDimensionless())
	assert.InDelta(t, 1, unitVec.Magnitude(), 1e-12)

	zero := vec(t, []float64{0, 0}, Velocity)
	_, err = zero.Normalize()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVectorDot(t *testing.T) {
	force := vec(t, []float64{1, 2, 3}, Force)
	disp := vec(t, []float64{4, 5, 6}, Length)

	work, err := force.Dot(disp)
	require.NoError(t, err)
	assert.InDelta(t, 32, work.Value(), 1e-12)
	assert.True(t, work.Unit().Equal(Energy))

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := force.Dot(vec(t, []float64{1, 2}, Length))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("ScalarRejected", func(t *testing.T) {
		_, err := force.Dot(2.0)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestVectorCross(t *testing.T) {
	x := vec(t, []float64{1, 0, 0}, Length)
	y := vec(t, []float64{0, 1, 0}, Force)

	z, err := x.Cross(y)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, z.Values())
	assert.True(t, z.Unit().Equal(Energy))

	t.Run("ThreeElementsOnly", func(t *testing.T) {
		_, err := vec(t, []float64{1, 2}, Length).Cross(vec(t, []float64{3, 4}, Length))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAngleBetween(t *testing.T) {
	x := vec(t, []float64{1, 0}, Velocity)
	y := vec(t, []float64{0, 2}, Velocity)

	angle, err := x.AngleBetween(y)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, angle.Value(), 1e-9)
	assert.True(t, angle.Unit().IsDimensionless())

	degrees, err := ToDegrees(angle)
	require.NoError(t, err)
	assert.InDelta(t, 90, degrees.Value(), 1e-9)

	t.Run("ParallelClampsDrift", func(t *testing.T) {
		a := vec(t, []float64{0.1, 0.2, 0.3}, Length)
		b := vec(t, []float64{0.2, 0.4, 0.6}, Length)
		angle, err := a.AngleBetween(b)
		require.NoError(t, err)
		assert.InDelta(t, 0, angle.Value(), 1e-6)
	})

	t.Run("UnitMismatch", func(t *testing.T) {
		_, err := x.AngleBetween(vec(t, []float64{1, 0}, Force))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("ZeroVector", func(t *testing.T) {
		_, err := x.AngleBetween(vec(t, []float64{0, 0}, Velocity))
		assert.ErrorIs(t, err, ErrDomain)
	})
}

func TestVectorNegAbs(t *testing.T) {
	v := vec(t, []float64{-1, 2}, Length)

	assert.Equal(t, []float64{1, -2}, v.Neg().(*Vector).Values())
	assert.Equal(t, []float64{1, 2}, v.Abs().(*Vector).Values())
}
