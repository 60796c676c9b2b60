package picounits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixBasics(t *testing.T) {
	assert.Equal(t, 3, PrefixKilo.Power())
	assert.InDelta(t, 1000.0, PrefixKilo.Factor(), 1e-12)
	assert.InDelta(t, 0.001, PrefixMilli.Factor(), 1e-15)
	assert.Equal(t, "k", PrefixKilo.Symbol())
	assert.Equal(t, "", PrefixBase.Symbol())
	assert.Equal(t, "u", PrefixMicro.Symbol())
	assert.Equal(t, "KILO", PrefixKilo.String())

	assert.False(t, Prefix(5).Valid())
	assert.True(t, PrefixDeka.Valid())
}

func TestPrefixFromPower(t *testing.T) {
	cases := []struct {
		power int
		want  Prefix
	}{
		{0, PrefixBase},
		{3, PrefixKilo},
		{-3, PrefixMilli},
		{4, PrefixKilo},
		{5, PrefixMega},
		{7, PrefixMega},
		{26, PrefixYotta},
		{-26, PrefixYocto},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PrefixFromPower(tc.power), "power %d", tc.power)
	}

	// Between MEGA (6) and GIGA (9) the scan keeps the first candidate
	// unless a strictly closer one appears.
	assert.Equal(t, PrefixMega, PrefixFromPower(7))
	assert.Equal(t, PrefixMicro, PrefixFromPower(-5))
}

func TestPrefixFromSymbol(t *testing.T) {
	p, ok := PrefixFromSymbol("k")
	require.True(t, ok)
	assert.Equal(t, PrefixKilo, p)

	p, ok = PrefixFromSymbol("")
	require.True(t, ok)
	assert.Equal(t, PrefixBase, p)

	_, ok = PrefixFromSymbol("q")
	assert.False(t, ok)
}

func TestNormalizePrefix(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		v, p := normalizePrefix(0)
		assert.Equal(t, 0.0, v)
		assert.Equal(t, PrefixBase, p)
	})

	t.Run("Kilo", func(t *testing.T) {
		v, p := normalizePrefix(12500)
		assert.Equal(t, PrefixKilo, p)
		assert.InDelta(t, 12.5, v, 1e-9)
	})

	t.Run("Milli", func(t *testing.T) {
		v, p := normalizePrefix(0.004)
		assert.Equal(t, PrefixMilli, p)
		assert.InDelta(t, 4.0, v, 1e-9)
	})

	t.Run("NegativeUsesMagnitude", func(t *testing.T) {
		v, p := normalizePrefix(-2500)
		assert.Equal(t, PrefixKilo, p)
		assert.InDelta(t, -2.5, v, 1e-9)
	})

	t.Run("MantissaCorrection", func(t *testing.T) {
		// Values just under a decade boundary must not render with a
		// mantissa below 1.
		v, p := normalizePrefix(999.4)
		assert.Equal(t, PrefixHecto, p)
		assert.InDelta(t, 9.994, v, 1e-9)
	})
}

func TestConvert(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		kilo, err := Convert(2500, PrefixMilli, PrefixKilo)
		require.NoError(t, err)
		assert.InDelta(t, 2.5e-3, kilo, 1e-12)

		milli, err := Convert(kilo, PrefixKilo, PrefixMilli)
		require.NoError(t, err)
		assert.InDelta(t, 2500, milli, 1e-9)
	})

	t.Run("Rebase", func(t *testing.T) {
		v, err := Rebase(12.5, PrefixKilo)
		require.NoError(t, err)
		assert.InDelta(t, 12500, v, 1e-9)
	})

	t.Run("InvalidPrefix", func(t *testing.T) {
		_, err := Convert(1, Prefix(5), PrefixBase)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
