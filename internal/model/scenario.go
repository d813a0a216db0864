package model

import "time"

// CurrentSchemaVersion is the scenario shape this build reads and writes.
// Older stored versions are migrated up on load (see scenariostore).
const CurrentSchemaVersion = 3

// Scenario is the persisted unit: a named parameter set plus the miner
// roster it applies to. Derived values (results, matrices, efficiency)
// are never stored; they are recomputed from this canonical state.
type Scenario struct {
	Name          string             `json:"name"`
	Params        ScenarioParams     `json:"params"`
	Miners        []MinerSpec        `json:"miners"`
	MinerPrices   map[string]float64 `json:"minerPrices"`
	SavedDate     string             `json:"savedDate"`
	SchemaVersion int                `json:"schemaVersion"`
}

// NewScenario stamps a scenario with the current schema version and an
// ISO8601 save date.
func NewScenario(name string, params ScenarioParams, miners []MinerSpec, minerPrices map[string]float64) Scenario {
	if minerPrices == nil {
		minerPrices = map[string]float64{}
	}
	return Scenario{
		Name:          name,
		Params:        params,
		Miners:        miners,
		MinerPrices:   minerPrices,
		SavedDate:     time.Now().UTC().Format(time.RFC3339),
		SchemaVersion: CurrentSchemaVersion,
	}
}

// DefaultScenario is the fallback shape used when a stored record is
// corrupt or fails migration. Callers always get something usable.
func DefaultScenario(name string) Scenario {
	params := ScenarioParams{
		BTCPriceStart:          100000,
		BTCPriceEnd:            100000,
		NetworkHashrateStartEH: 800,
		NetworkHashrateEndEH:   800,
		PoolFeePct:             2,
		ElectricityRate:        0.08,
		FederalTaxRatePct:      24,
		StateTaxRatePct:        5,
		ProjectionYears:        1,
	}
	return NewScenario(name, params, nil, nil)
}

// MinerPrice resolves the price override for a miner, falling back to its
// acquisition price.
func (s Scenario) MinerPrice(m MinerSpec) float64 {
	if p, ok := s.MinerPrices[m.ID]; ok {
		return p
	}
	return m.AcquisitionPrice
}
