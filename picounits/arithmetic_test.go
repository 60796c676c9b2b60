package picounits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	t.Run("SameUnit", func(t *testing.T) {
		a := NewReal(10, Length)
		b := NewReal(5, Length)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.InDelta(t, 15, sum.(*Real).Value(), 1e-12)
		assert.True(t, sum.Unit().Equal(Length))

		diff, err := a.Sub(b)
		require.NoError(t, err)
		assert.InDelta(t, 5, diff.(*Real).Value(), 1e-12)
	})

	t.Run("UnitMismatch", func(t *testing.T) {
		a := NewReal(10, Length)
		b := NewReal(5, Time)

		_, err := a.Add(b)
		assert.ErrorIs(t, err, ErrDimensionMismatch)

		_, err = a.Sub(b)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("BareNumberIsDimensionless", func(t *testing.T) {
		sum, err := Number(2).Add(3.5)
		require.NoError(t, err)
		assert.InDelta(t, 5.5, sum.(*Real).Value(), 1e-12)
		assert.True(t, sum.Unit().IsDimensionless())

		_, err = NewReal(2, Length).Add(3.5)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestMulDiv(t *testing.T) {
	t.Run("UnitsCombine", func(t *testing.T) {
		distance := NewReal(100, Length)
		duration := NewReal(20, Time)

		speed, err := distance.Div(duration)
		require.NoError(t, err)
		assert.InDelta(t, 5, speed.(*Real).Value(), 1e-12)
		assert.True(t, speed.Unit().Equal(Velocity))

		back, err := speed.Mul(duration)
		require.NoError(t, err)
		assert.True(t, back.Unit().Equal(Length))
		assert.InDelta(t, 100, back.(*Real).Value(), 1e-12)
	})

	t.Run("Commutative", func(t *testing.T) {
		a := NewReal(4, Mass)
		b := NewReal(2.5, Acceleration)

		ab, err := a.Mul(b)
		require.NoError(t, err)
		ba, err := b.Mul(a)
		require.NoError(t, err)

		assert.True(t, ab.Equal(ba))
		assert.True(t, ab.Unit().Equal(Force))
	})

	t.Run("DivisionByZero", func(t *testing.T) {
		_, err := NewReal(1, Length).Div(NewReal(0, Time))
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = Number(1).Div(0.0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestLiteralBridge(t *testing.T) {
	t.Run("NumberTimesUnit", func(t *testing.T) {
		q, err := Number(10).Mul(Length)
		require.NoError(t, err)
		assert.True(t, q.Unit().Equal(Length))
		assert.InDelta(t, 10, q.(*Real).Value(), 1e-12)
	})

	t.Run("PrefixRescales", func(t *testing.T) {
		q, err := Number(10).Mul(PrefixKilo)
		require.NoError(t, err)
		withUnit, err := q.Mul(Length)
		require.NoError(t, err)
		assert.InDelta(t, 10000, withUnit.(*Real).Value(), 1e-12)
		assert.True(t, withUnit.Unit().Equal(Length))
	})

	t.Run("DivByUnit", func(t *testing.T) {
		q, err := Number(10).Mul(Length)
		require.NoError(t, err)
		speed, err := q.Div(Time)
		require.NoError(t, err)
		assert.True(t, speed.Unit().Equal(Velocity))
		assert.InDelta(t, 10, speed.(*Real).Value(), 1e-12)
	})

	t.Run("DimensionedTimesUnit", func(t *testing.T) {
		torque, err := NewReal(3, Force).Mul(Length)
		require.NoError(t, err)
		assert.True(t, torque.Unit().Equal(Energy))
	})
}

func TestPow(t *testing.T) {
	t.Run("UnitExponentsScale", func(t *testing.T) {
		speed := NewReal(3, Velocity)
		sq, err := speed.Pow(2)
		require.NoError(t, err)
		assert.InDelta(t, 9, sq.(*Real).Value(), 1e-12)
		assert.Equal(t, "m² s⁻²", sq.Unit().Name())
	})

	t.Run("ZeroExponentIsPureOne", func(t *testing.T) {
		q, err := NewReal(42, Force).Pow(0)
		require.NoError(t, err)
		assert.InDelta(t, 1, q.(*Real).Value(), 1e-12)
		assert.True(t, q.Unit().IsDimensionless())
	})

	t.Run("ExponentMustBeDimensionless", func(t *testing.T) {
		_, err := Number(2).Pow(NewReal(2, Time))
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("ExponentMustBeRealScalar", func(t *testing.T) {
		_, err := Number(2).Pow(complex(2, 1))
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("NegativeBaseFractionalExponent", func(t *testing.T) {
		_, err := Number(-8).Pow(0.5)
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("ZeroBaseNegativeExponent", func(t *testing.T) {
		_, err := Number(0).Pow(-1)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		_, err = NewComplex(0, Impedance).Pow(-2)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		v, err := NewVector([]float64{1, 0, 2}, Length)
		require.NoError(t, err)
		_, err = v.Pow(-1)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("SqrtCbrt", func(t *testing.T) {
		area := NewReal(25, Area)
		side, err := area.Sqrt()
		require.NoError(t, err)
		assert.InDelta(t, 5, side.(*Real).Value(), 1e-12)
		assert.True(t, side.Unit().Equal(Length))

		vol := NewReal(27, Volume)
		edge, err := vol.Cbrt()
		require.NoError(t, err)
		assert.InDelta(t, 3, edge.(*Real).Value(), 1e-12)
		assert.True(t, edge.Unit().Equal(Length))
	})
}

func TestScalarPromotion(t *testing.T) {
	t.Run("RealPlusComplex", func(t *testing.T) {
		a := NewReal(3, Voltage)
		b := NewComplex(complex(1, 2), Voltage)

		sum, err := a.Add(b)
		require.NoError(t, err)
		c, ok := sum.(*Complex)
		require.True(t, ok)
		assert.Equal(t, complex(4, 2), c.Value())
		assert.True(t, c.Unit().Equal(Voltage))
	})

	t.Run("ComplexImpedanceDivision", func(t *testing.T) {
		v := NewComplex(complex(10, 0), Voltage)
		z := NewComplex(complex(3, 4), Impedance)

		i, err := v.Div(z)
		require.NoError(t, err)
		assert.True(t, i.Unit().Equal(Current))
		assert.InDelta(t, 2, i.Magnitude(), 1e-9)
	})
}

func TestVectorBroadcast(t *testing.T) {
	force, err := NewVector([]float64{3, 4, 0}, Force)
	require.NoError(t, err)

	t.Run("ScalarBroadcast", func(t *testing.T) {
		doubled, err := force.Mul(2.0)
		require.NoError(t, err)
		assert.Equal(t, []float64{6, 8, 0}, doubled.(*Vector).Values())
		assert.True(t, doubled.Unit().Equal(Force))
	})

	t.Run("ScalarReceiverVectorOperand", func(t *testing.T) {
		scaled, err := NewReal(2, Mass).Mul([]float64{1, 2, 3})
		require.NoError(t, err)
		v, ok := scaled.(*Vector)
		require.True(t, ok)
		assert.Equal(t, []float64{2, 4, 6}, v.Values())
		assert.True(t, v.Unit().Equal(Mass))
	})

	t.Run("Elementwise", func(t *testing.T) {
		other, err := NewVector([]float64{1, 1, 2}, Force)
		require.NoError(t, err)
		sum, err := force.Add(other)
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 5, 2}, sum.(*Vector).Values())
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		short, err := NewVector([]float64{1, 2}, Force)
		require.NoError(t, err)
		_, err = force.Add(short)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("ComplexOperandRejected", func(t *testing.T) {
		_, err := force.Mul(NewComplex(complex(1, 1), Dimensionless()))
		assert.ErrorIs(t, err, ErrUnsupportedValue)
	})

	t.Run("VectorDivisorWithZero", func(t *testing.T) {
		div, err := NewVector([]float64{1, 0, 2}, Dimensionless())
		require.NoError(t, err)
		_, err = force.Div(div)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

// Constant acceleration kinematics: v² = u² + 2as.
func TestKinematicsScenario(t *testing.T) {
	u, err := Number(10).Mul(Velocity)
	require.NoError(t, err)
	a := NewReal(2.5, Acceleration)
	s := prefixed(t, 12, PrefixKilo, Length)

	u2, err := u.Pow(2)
	require.NoError(t, err)
	as, err := a.Mul(s)
	require.NoError(t, err)
	twoAS, err := as.Mul(2.0)
	require.NoError(t, err)
	v2, err := u2.Add(twoAS)
	require.NoError(t, err)
	v, err := v2.(*Real).Sqrt()
	require.NoError(t, err)

	assert.True(t, v.Unit().Equal(Velocity))
	assert.InDelta(t, 245.153, v.(*Real).Value(), 0.01)
}

// prefixed builds a prefixed real packet, failing the test on
// construction errors.
func prefixed(t *testing.T, value float64, prefix Prefix, unit Unit) *Real {
	t.Helper()
	r, err := NewRealWithPrefix(value, unit, prefix)
	require.NoError(t, err)
	return r
}
