package model

import (
	"errors"

	"github.com/google/uuid"
)

// MinerSpec describes one mining unit.
// Units:
// - HashrateTH: TH/s
// - PowerW: watts at the wall
// - AcquisitionPrice: $ per unit
//
// EfficiencyJPerTH is always derived from hashrate and power; it is never
// set directly. Specs are replaced, not mutated, so the derived value can
// not drift out of sync.
type MinerSpec struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	HashrateTH       float64 `json:"hashrateTH"`
	PowerW           float64 `json:"powerW"`
	EfficiencyJPerTH float64 `json:"efficiencyJPerTH"`
	AcquisitionPrice float64 `json:"acquisitionPrice"`
}

// NewMinerSpec builds a validated MinerSpec. An empty id gets a fresh UUID.
// Negative numeric inputs are clamped to zero rather than rejected; a zero
// hashrate or zero power is a legal (idle) miner.
func NewMinerSpec(id, name string, hashrateTH, powerW, acquisitionPrice float64) (MinerSpec, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" {
		return MinerSpec{}, errors.New("miner name is required")
	}
	m := MinerSpec{
		ID:               id,
		Name:             name,
		HashrateTH:       clampNonNegative(hashrateTH),
		PowerW:           clampNonNegative(powerW),
		AcquisitionPrice: clampNonNegative(acquisitionPrice),
	}
	m.EfficiencyJPerTH = Efficiency(m.HashrateTH, m.PowerW)
	return m, nil
}

// WithRates returns a copy with hashrate/power replaced and efficiency
// recomputed. This is the only supported way to change those fields.
func (m MinerSpec) WithRates(hashrateTH, powerW float64) MinerSpec {
	out := m
	out.HashrateTH = clampNonNegative(hashrateTH)
	out.PowerW = clampNonNegative(powerW)
	out.EfficiencyJPerTH = Efficiency(out.HashrateTH, out.PowerW)
	return out
}

// Efficiency computes J/TH from wall power and hashrate.
// A zero hashrate yields zero, not a division error.
func Efficiency(hashrateTH, powerW float64) float64 {
	if hashrateTH <= 0 {
		return 0
	}
	return powerW / hashrateTH
}

// RemoveMiner returns miners without the spec whose id matches.
// Removing the last miner is refused: an empty matrix is undefined, so the
// original slice comes back with ok=false.
func RemoveMiner(miners []MinerSpec, id string) ([]MinerSpec, bool) {
	if len(miners) <= 1 {
		return miners, false
	}
	out := make([]MinerSpec, 0, len(miners)-1)
	removed := false
	for _, m := range miners {
		if m.ID == id && !removed {
			removed = true
			continue
		}
		out = append(out, m)
	}
	if !removed {
		return miners, false
	}
	return out, true
}

func clampNonNegative(x float64) float64 {
	if x < 0 || x != x { // NaN clamps to 0 as well
		return 0
	}
	return x
}
