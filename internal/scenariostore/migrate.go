package scenariostore

import (
	"encoding/json"
	"fmt"

	"mining-econ/internal/model"
)

// migrations move a raw scenario document from version v to v+1. Each
// step only merges the fields its version introduced, with the defaults
// documented below; it never rewrites caller data.
var migrations = map[int]func(doc map[string]any){
	// v1 -> v2: annual-increase mode was added. Old scenarios carried
	// explicit end values, so increases default to off and 0%.
	1: func(doc map[string]any) {
		params := paramsSection(doc)
		setDefault(params, "useAnnualIncreases", false)
		setDefault(params, "annualBtcPriceIncreasePct", 0.0)
		setDefault(params, "annualDifficultyIncreasePct", 0.0)
	},
	// v2 -> v3: tax modeling was added. Defaults: 24% federal, 5% state,
	// bonus depreciation not elected.
	2: func(doc map[string]any) {
		params := paramsSection(doc)
		setDefault(params, "federalTaxRatePct", 24.0)
		setDefault(params, "stateTaxRatePct", 5.0)
		setDefault(params, "useBonusDepreciation", false)
	},
}

// migrateScenario parses a stored payload and walks it up the migration
// chain to the current schema version.
func migrateScenario(payload string) (model.Scenario, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return model.Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}

	version := 1
	if v, ok := doc["schemaVersion"].(float64); ok && int(v) >= 1 {
		version = int(v)
	}
	if version > model.CurrentSchemaVersion {
		return model.Scenario{}, fmt.Errorf("scenario schema v%d is newer than supported v%d", version, model.CurrentSchemaVersion)
	}

	for v := version; v < model.CurrentSchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return model.Scenario{}, fmt.Errorf("no migration from schema v%d", v)
		}
		step(doc)
	}
	doc["schemaVersion"] = model.CurrentSchemaVersion

	raw, err := json.Marshal(doc)
	if err != nil {
		return model.Scenario{}, fmt.Errorf("re-encode scenario: %w", err)
	}
	var sc model.Scenario
	if err := json.Unmarshal(raw, &sc); err != nil {
		return model.Scenario{}, fmt.Errorf("decode migrated scenario: %w", err)
	}
	if sc.MinerPrices == nil {
		sc.MinerPrices = map[string]float64{}
	}
	return sc, nil
}

// paramsSection fetches (creating if absent) the params object.
func paramsSection(doc map[string]any) map[string]any {
	if params, ok := doc["params"].(map[string]any); ok {
		return params
	}
	params := map[string]any{}
	doc["params"] = params
	return params
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
