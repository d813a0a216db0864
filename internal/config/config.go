package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mining-econ/internal/model"
	"mining-econ/internal/scenariostore"
	"mining-econ/internal/tax"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the bonus-depreciation phase-out table from a
	// separate YAML policy file. If both TaxPolicyFile and Tax are
	// provided, Tax overrides TaxPolicyFile.
	TaxPolicyFile string         `yaml:"tax_policy_file"`
	Tax           TaxConfig      `yaml:"tax"`
	Defaults      DefaultsConfig `yaml:"defaults"`
	Store         StoreConfig    `yaml:"store"`
}

// TaxConfig holds the depreciation policy tables.
type TaxConfig struct {
	BonusPhaseOut []tax.BonusRate `yaml:"bonus_phase_out"`
}

// DefaultsConfig seeds ScenarioParams for the CLI and demo.
type DefaultsConfig struct {
	BTCPriceStart          float64 `yaml:"btc_price_start"`
	BTCPriceEnd            float64 `yaml:"btc_price_end"`
	NetworkHashrateStartEH float64 `yaml:"network_hashrate_start_eh"`
	NetworkHashrateEndEH   float64 `yaml:"network_hashrate_end_eh"`
	PoolFeePct             float64 `yaml:"pool_fee_pct"`
	ElectricityRate        float64 `yaml:"electricity_rate"`
	FederalTaxRatePct      float64 `yaml:"federal_tax_rate_pct"`
	StateTaxRatePct        float64 `yaml:"state_tax_rate_pct"`
	UseBonusDepreciation   bool    `yaml:"use_bonus_depreciation"`
	ProjectionYears        int     `yaml:"projection_years"`

	UseAnnualIncreases          bool    `yaml:"use_annual_increases"`
	AnnualBTCPriceIncreasePct   float64 `yaml:"annual_btc_price_increase_pct"`
	AnnualDifficultyIncreasePct float64 `yaml:"annual_difficulty_increase_pct"`
}

// StoreConfig selects and tunes the scenario store backend.
type StoreConfig struct {
	Namespace            string `yaml:"namespace"`
	Backend              string `yaml:"backend"` // "memory", "file", or "mysql"
	Dir                  string `yaml:"dir"`     // file backend
	MySQLDSN             string `yaml:"mysql_dsn"`
	CompressionThreshold int    `yaml:"compression_threshold"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Unset horizon defaults to one year so a minimal config stays valid.
	if c.Defaults.ProjectionYears == 0 {
		c.Defaults.ProjectionYears = 1
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.TaxPolicyFile != "" && len(c.Tax.BonusPhaseOut) == 0 {
		policyPath := c.TaxPolicyFile
		if !filepath.IsAbs(policyPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), policyPath)
			if _, err := os.Stat(cand); err == nil {
				policyPath = cand
			}
		}
		loaded, err := loadTaxPolicyFile(policyPath)
		if err != nil {
			return nil, err
		}
		c.Tax = loaded
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate defaults by constructing ScenarioParams.
	if _, err := model.NewScenarioParams(c.ScenarioParams()); err != nil {
		return fmt.Errorf("defaults invalid: %w", err)
	}
	for _, row := range c.Tax.BonusPhaseOut {
		if row.Rate < 0 || row.Rate > 1 {
			return fmt.Errorf("bonus phase-out rate for %d must be in [0,1]", row.Year)
		}
	}
	switch c.Store.Backend {
	case "", "memory", "file":
	case "mysql":
		if c.Store.MySQLDSN == "" {
			return errors.New("store.mysql_dsn is required for the mysql backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// ScenarioParams converts the defaults section into engine params.
func (c *Config) ScenarioParams() model.ScenarioParams {
	d := c.Defaults
	return model.ScenarioParams{
		BTCPriceStart:               d.BTCPriceStart,
		BTCPriceEnd:                 d.BTCPriceEnd,
		NetworkHashrateStartEH:      d.NetworkHashrateStartEH,
		NetworkHashrateEndEH:        d.NetworkHashrateEndEH,
		PoolFeePct:                  d.PoolFeePct,
		ElectricityRate:             d.ElectricityRate,
		FederalTaxRatePct:           d.FederalTaxRatePct,
		StateTaxRatePct:             d.StateTaxRatePct,
		UseBonusDepreciation:        d.UseBonusDepreciation,
		ProjectionYears:             d.ProjectionYears,
		UseAnnualIncreases:          d.UseAnnualIncreases,
		AnnualBTCPriceIncreasePct:   d.AnnualBTCPriceIncreasePct,
		AnnualDifficultyIncreasePct: d.AnnualDifficultyIncreasePct,
	}
}

// BonusPolicy returns the configured phase-out table, or the built-in
// default when the config does not carry one.
func (c *Config) BonusPolicy() tax.BonusPolicy {
	if len(c.Tax.BonusPhaseOut) == 0 {
		return tax.DefaultBonusPolicy
	}
	return tax.BonusPolicy(c.Tax.BonusPhaseOut)
}

// OpenStore builds the configured scenario store.
func (c *Config) OpenStore() (*scenariostore.Store, error) {
	var backend scenariostore.Backend
	var err error
	switch c.Store.Backend {
	case "", "memory":
		backend = scenariostore.NewMemoryBackend()
	case "file":
		backend, err = scenariostore.NewFileBackend(c.Store.Dir)
	case "mysql":
		backend, err = scenariostore.NewGormBackend(c.Store.MySQLDSN)
	default:
		err = fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if err != nil {
		return nil, err
	}
	store := scenariostore.New(c.Store.Namespace, backend)
	if c.Store.CompressionThreshold > 0 {
		store = store.WithCompressionThreshold(c.Store.CompressionThreshold)
	}
	return store, nil
}

type taxPolicyFileWrapper struct {
	Tax TaxConfig `yaml:"tax"`
}

func loadTaxPolicyFile(path string) (TaxConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TaxConfig{}, err
	}
	var w taxPolicyFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TaxConfig{}, err
	}
	return w.Tax, nil
}
