package uiv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgbowley/PicoUnits/picounits"
)

const sampleDocument = `
# Coilgun stage parameters
[coil]
turns:      120
resistance: 350 m(Ohm)
length:     45 m(m)
wire:       "AWG 18"

[projectile]
mass:     8.5 m(kg)
velocity: [120, 0, 35] (m/s)
guided:   false
`

func TestParseDocument(t *testing.T) {
	doc, err := Parse(sampleDocument)
	require.NoError(t, err)

	assert.Equal(t, []string{"coil", "projectile"}, doc.Sections())

	coil, ok := doc.Section("coil")
	require.True(t, ok)
	assert.Equal(t, []string{"turns", "resistance", "length", "wire"}, coil.Keys())

	t.Run("BareNumberIsDimensionless", func(t *testing.T) {
		turns, err := coil.Packet("turns")
		require.NoError(t, err)
		assert.True(t, turns.Unit().IsDimensionless())
		assert.InDelta(t, 120, turns.(*picounits.Real).Value(), 1e-12)
	})

	t.Run("PrefixRebasedToBase", func(t *testing.T) {
		r, err := coil.Packet("resistance")
		require.NoError(t, err)
		assert.True(t, r.Unit().Equal(picounits.Impedance))
		assert.InDelta(t, 0.35, r.(*picounits.Real).Value(), 1e-12)
	})

	t.Run("StringsPassThrough", func(t *testing.T) {
		wire, ok := coil.Get("wire")
		require.True(t, ok)
		assert.Equal(t, "AWG 18", wire)

		_, err := coil.Packet("wire")
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("VectorEntry", func(t *testing.T) {
		v, err := doc.Packet("projectile.velocity")
		require.NoError(t, err)
		vec, ok := v.(*picounits.Vector)
		require.True(t, ok)
		assert.Equal(t, []float64{120, 0, 35}, vec.Values())
		assert.True(t, vec.Unit().Equal(picounits.Velocity))
	})

	t.Run("Bools", func(t *testing.T) {
		guided, ok := doc.Lookup("projectile.guided")
		require.True(t, ok)
		assert.Equal(t, false, guided)
	})
}

func TestDocumentLookupAndFind(t *testing.T) {
	doc, err := Parse(`
[stage_one]
mass: 2 (kg)

[stage_two]
mass: 5 (kg)
`)
	require.NoError(t, err)

	_, ok := doc.Lookup("stage_three.mass")
	assert.False(t, ok)

	masses := doc.Find("mass")
	require.Len(t, masses, 2)
	first := masses[0].(picounits.Packet)
	second := masses[1].(picounits.Packet)
	assert.InDelta(t, 2, first.(*picounits.Real).Value(), 1e-12)
	assert.InDelta(t, 5, second.(*picounits.Real).Value(), 1e-12)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"MissingColon":      "[a]\nkey 5\n",
		"UnclosedSection":   "[a\nkey: 5\n",
		"BadUnit":           "[a]\nkey: 5 (wat)\n",
		"PrefixWithoutUnit": "[a]\nkey: 5 k\n",
		"BadVectorElement":  "[a]\nkey: [1, two] (m)\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestEntriesOutsideSectionDropped(t *testing.T) {
	doc, err := Parse("stray: 5\n[a]\nkept: 5\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, doc.Sections())
	_, ok := doc.Lookup("a.kept")
	assert.True(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.uiv")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Sections(), 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.uiv"))
	assert.Error(t, err)
}

func TestQuantities(t *testing.T) {
	doc, err := Parse(sampleDocument)
	require.NoError(t, err)

	flat := Quantities(doc)
	assert.Contains(t, flat, "coil.resistance")
	assert.Contains(t, flat, "projectile.velocity")
	assert.NotContains(t, flat, "coil.wire")
	assert.NotContains(t, flat, "projectile.guided")
}
