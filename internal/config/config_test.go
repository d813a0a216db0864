package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mining-econ/internal/tax"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  btc_price_start: 95000
  btc_price_end: 120000
  network_hashrate_start_eh: 750
  network_hashrate_end_eh: 900
  pool_fee_pct: 2
  electricity_rate: 0.065
  federal_tax_rate_pct: 24
  state_tax_rate_pct: 5
  use_bonus_depreciation: true
  projection_years: 2
store:
  namespace: econtest
  backend: memory
  compression_threshold: 2048
tax:
  bonus_phase_out:
    - year: 2025
      rate: 0.4
    - year: 2026
      rate: 0.2
`)

	c, err := Load(path)
	require.NoError(t, err)

	params := c.ScenarioParams()
	require.InDelta(t, 95000, params.BTCPriceStart, 1e-9)
	require.Equal(t, 2, params.ProjectionYears)
	require.True(t, params.UseBonusDepreciation)

	require.Equal(t, "econtest", c.Store.Namespace)
	require.Equal(t, 2048, c.Store.CompressionThreshold)

	policy := c.BonusPolicy()
	require.Len(t, policy, 2)
	require.InDelta(t, 0.4, policy.RateFor(2025), 1e-9)
}

func TestLoadMinimalConfigDefaultsHorizon(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  btc_price_start: 100000
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Defaults.ProjectionYears)
	// No table configured: the built-in phase-out applies.
	require.Equal(t, tax.DefaultBonusPolicy, c.BonusPolicy())
}

func TestLoadMergesTaxPolicyFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tax_policy.yaml", `
tax:
  bonus_phase_out:
    - year: 2024
      rate: 0.6
`)
	path := writeConfig(t, dir, "config.yaml", `
tax_policy_file: tax_policy.yaml
defaults:
  projection_years: 1
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Tax.BonusPhaseOut, 1)
	require.InDelta(t, 0.6, c.Tax.BonusPhaseOut[0].Rate, 1e-9)
}

func TestInlineTaxOverridesPolicyFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "tax_policy.yaml", `
tax:
  bonus_phase_out:
    - year: 2024
      rate: 0.6
`)
	path := writeConfig(t, dir, "config.yaml", `
tax_policy_file: tax_policy.yaml
tax:
  bonus_phase_out:
    - year: 2030
      rate: 0.1
defaults:
  projection_years: 1
`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Tax.BonusPhaseOut, 1)
	require.Equal(t, 2030, c.Tax.BonusPhaseOut[0].Year)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  projection_years: 1
store:
  backend: cassandra
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "unknown store backend")
}

func TestValidateRequiresMySQLDSN(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  projection_years: 1
store:
  backend: mysql
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "mysql_dsn")
}

func TestValidateRejectsBadBonusRate(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", `
defaults:
  projection_years: 1
tax:
  bonus_phase_out:
    - year: 2025
      rate: 1.3
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "must be in [0,1]")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestOpenStoreMemory(t *testing.T) {
	c := &Config{}
	store, err := c.OpenStore()
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestOpenStoreFile(t *testing.T) {
	c := &Config{Store: StoreConfig{Backend: "file", Dir: t.TempDir()}}
	store, err := c.OpenStore()
	require.NoError(t, err)

	store.Set("k", "v")
	require.Equal(t, "v", store.Get("k", ""))
}
