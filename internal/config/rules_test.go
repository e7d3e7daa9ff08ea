package config

import (
	"testing"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRules_Defaults(t *testing.T) {
	assert.NoError(t, ValidateRules(domain.DefaultRulesFY2024_25()))
}

func TestValidateRules_Invalid(t *testing.T) {
	bound := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	tests := []struct {
		name        string
		mutate      func(r *domain.TaxRules)
		errContains string
	}{
		{"missing financial year", func(r *domain.TaxRules) { r.Metadata.FinancialYear = "" }, "financial year"},
		{"empty slab table", func(r *domain.TaxRules) { r.NewRegime.Slabs = nil }, "new regime has no slabs"},
		{"last slab bounded", func(r *domain.TaxRules) {
			r.OldRegime.Slabs = []domain.TaxSlab{{UpTo: bound(250000)}}
		}, "must be open-ended"},
		{"open slab not last", func(r *domain.TaxRules) {
			r.OldRegime.Slabs = []domain.TaxSlab{{Rate: decimal.Zero}, {UpTo: bound(500000)}}
		}, "open-ended but not last"},
		{"descending bounds", func(r *domain.TaxRules) {
			r.OldRegime.Slabs = []domain.TaxSlab{{UpTo: bound(500000)}, {UpTo: bound(250000)}, {}}
		}, "upper bound must exceed"},
		{"rate above one", func(r *domain.TaxRules) { r.CessRate = decimal.NewFromInt(4) }, "cess rate"},
		{"negative slab rate", func(r *domain.TaxRules) { r.NewRegime.Slabs[1].Rate = decimal.NewFromFloat(-0.05) }, "new regime slab 2 rate"},
		{"negative cap", func(r *domain.TaxRules) { r.Rebate.MaxRebate = decimal.NewFromInt(-1) }, "maximum rebate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := domain.DefaultRulesFY2024_25()
			tt.mutate(&rules)

			err := ValidateRules(rules)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRules)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateRules_FirstErrorStable(t *testing.T) {
	rules := domain.DefaultRulesFY2024_25()
	rules.Suggestions.AssumedMarginalRate = decimal.NewFromInt(2)
	rules.CapitalGains.DefaultLTCGRate = decimal.NewFromInt(-1)
	rules.CessRate = decimal.NewFromInt(3)
	rules.Suggestions.NPSLimit = decimal.NewFromInt(-1)
	rules.CapitalGains.EquityLTCGExemption = decimal.NewFromInt(-1)

	for i := 0; i < 50; i++ {
		err := ValidateRules(rules)
		require.Error(t, err)
		assert.EqualError(t, err, "invalid tax rules: cess rate must be between 0 and 1")
	}

	rules.CessRate = decimal.NewFromFloat(0.04)
	rules.CapitalGains.DefaultLTCGRate = decimal.NewFromFloat(0.2)
	rules.Suggestions.AssumedMarginalRate = decimal.NewFromFloat(0.2)
	for i := 0; i < 50; i++ {
		assert.EqualError(t, ValidateRules(rules), "invalid tax rules: equity LTCG exemption cannot be negative")
	}
}

func TestLoadRulesFromFile_PartialOverride(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
metadata:
  financial_year: FY2025-26
  assessment_year: AY2026-27
new_regime:
  slabs:
    - up_to: 400000
      rate: 0
    - up_to: 800000
      rate: 0.05
    - rate: 0.3
rebate_87a:
  income_threshold: 1200000
  max_rebate: 60000
`)

	rules, err := LoadRulesFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "FY2025-26", rules.Metadata.FinancialYear)
	require.Len(t, rules.NewRegime.Slabs, 3)
	assert.True(t, rules.NewRegime.Slabs[2].IsUnbounded())
	assert.True(t, rules.Rebate.MaxRebate.Equal(decimal.NewFromInt(60000)))
	// untouched sections keep the FY2024-25 values
	assert.Len(t, rules.OldRegime.Slabs, 4)
	assert.True(t, rules.CessRate.Equal(decimal.NewFromFloat(0.04)))
}

func TestLoadRulesFromFile_Errors(t *testing.T) {
	_, err := LoadRulesFromFile("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read rules file")

	bad := writeFile(t, "bad.yaml", "cess_rate: [1, 2")
	_, err = LoadRulesFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules YAML")

	invalid := writeFile(t, "invalid.yaml", "cess_rate: 2\n")
	_, err = LoadRulesFromFile(invalid)
	assert.ErrorIs(t, err, domain.ErrInvalidRules)
}
