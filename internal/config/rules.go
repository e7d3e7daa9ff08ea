package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRulesFromFile reads a tax-year rules file. Fields absent from the file
// keep their FY2024-25 values.
func LoadRulesFromFile(filename string) (domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	rules := domain.DefaultRulesFY2024_25()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return domain.TaxRules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	if err := ValidateRules(rules); err != nil {
		return domain.TaxRules{}, err
	}
	return rules, nil
}

// namedValue keeps rule checks in declaration order so the first error is stable
type namedValue struct {
	name  string
	value decimal.Decimal
}

// ValidateRules checks slab tables, rates and caps for consistency
func ValidateRules(rules domain.TaxRules) error {
	if rules.Metadata.FinancialYear == "" {
		return fmt.Errorf("%w: financial year is required", domain.ErrInvalidRules)
	}
	if err := validateSlabs("old regime", rules.OldRegime.Slabs); err != nil {
		return err
	}
	if err := validateSlabs("new regime", rules.NewRegime.Slabs); err != nil {
		return err
	}

	rates := []namedValue{
		{"cess rate", rules.CessRate},
		{"equity STCG rate", rules.CapitalGains.EquitySTCGRate},
		{"default STCG rate", rules.CapitalGains.DefaultSTCGRate},
		{"default LTCG rate", rules.CapitalGains.DefaultLTCGRate},
		{"equity LTCG rate", rules.CapitalGains.EquityLTCGRate},
		{"80C salary share", rules.Suggestions.Section80CSalaryShare},
		{"assumed marginal rate", rules.Suggestions.AssumedMarginalRate},
	}
	for _, r := range rates {
		if err := validateRate(r.name, r.value); err != nil {
			return err
		}
	}

	amounts := []namedValue{
		{"equity LTCG exemption", rules.CapitalGains.EquityLTCGExemption},
		{"rebate income threshold", rules.Rebate.IncomeThreshold},
		{"maximum rebate", rules.Rebate.MaxRebate},
		{"default standard deduction", rules.DefaultStandardDeduction},
		{"Chapter VI-A cap", rules.Chapter6ACap},
		{"80TTA limit", rules.InterestExemption.GeneralLimit},
		{"80TTB limit", rules.InterestExemption.SeniorLimit},
		{"80C limit", rules.Suggestions.Section80CLimit},
		{"80D limit", rules.Suggestions.Section80DLimit},
		{"NPS limit", rules.Suggestions.NPSLimit},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidRules, a.name)
		}
	}

	return nil
}

func validateSlabs(regime string, slabs []domain.TaxSlab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("%w: %s has no slabs", domain.ErrInvalidRules, regime)
	}

	prev := decimal.Zero
	for i, slab := range slabs {
		if err := validateRate(fmt.Sprintf("%s slab %d rate", regime, i+1), slab.Rate); err != nil {
			return err
		}
		last := i == len(slabs)-1
		if slab.IsUnbounded() {
			if !last {
				return fmt.Errorf("%w: %s slab %d is open-ended but not last", domain.ErrInvalidRules, regime, i+1)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: %s last slab must be open-ended", domain.ErrInvalidRules, regime)
		}
		if !slab.UpTo.GreaterThan(prev) {
			return fmt.Errorf("%w: %s slab %d upper bound must exceed %s", domain.ErrInvalidRules, regime, i+1, prev)
		}
		prev = *slab.UpTo
	}
	return nil
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s must be between 0 and 1", domain.ErrInvalidRules, name)
	}
	return nil
}
