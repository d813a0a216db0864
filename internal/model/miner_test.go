package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMinerSpec(t *testing.T) {
	m, err := NewMinerSpec("m1", "S21 Pro", 234, 3510, 5200)
	require.NoError(t, err)
	require.Equal(t, "m1", m.ID)
	require.InDelta(t, 15.0, m.EfficiencyJPerTH, 1e-9)
}

func TestNewMinerSpecGeneratesID(t *testing.T) {
	a, err := NewMinerSpec("", "S19k Pro", 120, 2760, 1700)
	require.NoError(t, err)
	b, err := NewMinerSpec("", "S19k Pro", 120, 2760, 1700)
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}

func TestNewMinerSpecRequiresName(t *testing.T) {
	_, err := NewMinerSpec("m1", "", 100, 3000, 2000)
	require.Error(t, err)
}

func TestNewMinerSpecClampsNegatives(t *testing.T) {
	m, err := NewMinerSpec("m1", "junk", -10, -3000, -1)
	require.NoError(t, err)
	require.Zero(t, m.HashrateTH)
	require.Zero(t, m.PowerW)
	require.Zero(t, m.AcquisitionPrice)
	require.Zero(t, m.EfficiencyJPerTH)
}

func TestWithRatesRecomputesEfficiency(t *testing.T) {
	m, err := NewMinerSpec("m1", "S21 Pro", 234, 3510, 5200)
	require.NoError(t, err)

	up := m.WithRates(200, 3000)
	require.InDelta(t, 15.0, up.EfficiencyJPerTH, 1e-9)
	// Original is untouched.
	require.InDelta(t, 234, m.HashrateTH, 1e-9)
}

func TestEfficiencyZeroHashrate(t *testing.T) {
	require.Zero(t, Efficiency(0, 3500))
	require.Zero(t, Efficiency(-1, 3500))
}

func TestRemoveMiner(t *testing.T) {
	a, _ := NewMinerSpec("a", "A", 100, 3000, 2000)
	b, _ := NewMinerSpec("b", "B", 100, 3000, 2000)

	out, ok := RemoveMiner([]MinerSpec{a, b}, "a")
	require.True(t, ok)
	require.Len(t, out, 1)
	require.Equal(t, "b", out[0].ID)

	// The roster never goes empty.
	out, ok = RemoveMiner(out, "b")
	require.False(t, ok)
	require.Len(t, out, 1)

	// Unknown id is refused.
	_, ok = RemoveMiner([]MinerSpec{a, b}, "zzz")
	require.False(t, ok)
}

func TestClampNonNegativeNaN(t *testing.T) {
	require.Zero(t, clampNonNegative(math.NaN()))
	require.Zero(t, clampNonNegative(math.Inf(-1)))
}
