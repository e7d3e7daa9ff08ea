package domain

import (
	"github.com/shopspring/decimal"
)

// TaxRules contains all statutory data for one assessment year.
// Defaults come from DefaultRulesFY2024_25; a YAML file with the same shape
// can replace them without touching the calculation code.
type TaxRules struct {
	Metadata                 RulesMetadata          `yaml:"metadata" json:"metadata"`
	OldRegime                RegimeRules            `yaml:"old_regime" json:"old_regime"`
	NewRegime                RegimeRules            `yaml:"new_regime" json:"new_regime"`
	InterestExemption        InterestExemptionRules `yaml:"interest_exemption" json:"interest_exemption"`
	CapitalGains             CapitalGainsRules      `yaml:"capital_gains" json:"capital_gains"`
	Rebate                   RebateRules            `yaml:"rebate_87a" json:"rebate_87a"`
	CessRate                 decimal.Decimal        `yaml:"cess_rate" json:"cess_rate"`
	DefaultStandardDeduction decimal.Decimal        `yaml:"default_standard_deduction" json:"default_standard_deduction"`
	Chapter6ACap             decimal.Decimal        `yaml:"chapter_6a_cap" json:"chapter_6a_cap"`
	Suggestions              SuggestionRules        `yaml:"suggestions" json:"suggestions"`
}

// RulesMetadata identifies the tax year the rules apply to
type RulesMetadata struct {
	FinancialYear  string `yaml:"financial_year" json:"financial_year"`
	AssessmentYear string `yaml:"assessment_year" json:"assessment_year"`
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
}

// RegimeRules holds the slab table of one regime
type RegimeRules struct {
	Slabs []TaxSlab `yaml:"slabs" json:"slabs"`
}

// TaxSlab is one bracket of a slab table. A nil UpTo marks the open-ended top slab.
type TaxSlab struct {
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"up_to,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// IsUnbounded reports whether the slab has no upper limit
func (s TaxSlab) IsUnbounded() bool {
	return s.UpTo == nil
}

// InterestExemptionRules contains the 80TTA / 80TTB limits
type InterestExemptionRules struct {
	GeneralLimit decimal.Decimal `yaml:"general_limit_80tta" json:"general_limit_80tta"` // savings interest only
	SeniorLimit  decimal.Decimal `yaml:"senior_limit_80ttb" json:"senior_limit_80ttb"`   // savings + FD interest
}

// CapitalGainsRules contains flat capital-gains rates and the equity LTCG exemption
type CapitalGainsRules struct {
	EquitySTCGRate      decimal.Decimal `yaml:"equity_stcg_rate" json:"equity_stcg_rate"`
	DefaultSTCGRate     decimal.Decimal `yaml:"default_stcg_rate" json:"default_stcg_rate"`
	DefaultLTCGRate     decimal.Decimal `yaml:"default_ltcg_rate" json:"default_ltcg_rate"`
	EquityLTCGRate      decimal.Decimal `yaml:"equity_ltcg_rate" json:"equity_ltcg_rate"`
	EquityLTCGExemption decimal.Decimal `yaml:"equity_ltcg_exemption" json:"equity_ltcg_exemption"`
}

// RebateRules contains the Section 87A threshold and cap, shared by both regimes
type RebateRules struct {
	IncomeThreshold decimal.Decimal `yaml:"income_threshold" json:"income_threshold"`
	MaxRebate       decimal.Decimal `yaml:"max_rebate" json:"max_rebate"`
}

// SuggestionRules drives the deduction headroom hints
type SuggestionRules struct {
	Section80CLimit       decimal.Decimal `yaml:"section_80c_limit" json:"section_80c_limit"`
	Section80CSalaryShare decimal.Decimal `yaml:"section_80c_salary_share" json:"section_80c_salary_share"`
	Section80DLimit       decimal.Decimal `yaml:"section_80d_limit" json:"section_80d_limit"`
	NPSLimit              decimal.Decimal `yaml:"nps_80ccd_1b_limit" json:"nps_80ccd_1b_limit"`
	AssumedMarginalRate   decimal.Decimal `yaml:"assumed_marginal_rate" json:"assumed_marginal_rate"`
}

func upTo(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultRulesFY2024_25 returns the rules for FY2024-25 (AY2025-26).
// A fresh value is returned on every call so callers may modify it freely.
func DefaultRulesFY2024_25() TaxRules {
	return TaxRules{
		Metadata: RulesMetadata{
			FinancialYear:  "FY2024-25",
			AssessmentYear: "AY2025-26",
			Description:    "Indian individual income tax, old and new regimes",
		},
		OldRegime: RegimeRules{Slabs: []TaxSlab{
			{UpTo: upTo(250000), Rate: decimal.Zero},
			{UpTo: upTo(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpTo: upTo(1000000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30)},
		}},
		NewRegime: RegimeRules{Slabs: []TaxSlab{
			{UpTo: upTo(300000), Rate: decimal.Zero},
			{UpTo: upTo(600000), Rate: decimal.NewFromFloat(0.05)},
			{UpTo: upTo(900000), Rate: decimal.NewFromFloat(0.10)},
			{UpTo: upTo(1200000), Rate: decimal.NewFromFloat(0.15)},
			{UpTo: upTo(1500000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30)},
		}},
		InterestExemption: InterestExemptionRules{
			GeneralLimit: decimal.NewFromInt(10000),
			SeniorLimit:  decimal.NewFromInt(50000),
		},
		CapitalGains: CapitalGainsRules{
			EquitySTCGRate:      decimal.NewFromFloat(0.15),
			DefaultSTCGRate:     decimal.NewFromFloat(0.15),
			DefaultLTCGRate:     decimal.NewFromFloat(0.20),
			EquityLTCGRate:      decimal.NewFromFloat(0.10),
			EquityLTCGExemption: decimal.NewFromInt(100000),
		},
		Rebate: RebateRules{
			IncomeThreshold: decimal.NewFromInt(700000),
			MaxRebate:       decimal.NewFromInt(25000),
		},
		CessRate:                 decimal.NewFromFloat(0.04),
		DefaultStandardDeduction: decimal.NewFromInt(50000),
		Chapter6ACap:             decimal.NewFromInt(150000),
		Suggestions: SuggestionRules{
			Section80CLimit:       decimal.NewFromInt(150000),
			Section80CSalaryShare: decimal.NewFromFloat(0.15),
			Section80DLimit:       decimal.NewFromInt(25000),
			NPSLimit:              decimal.NewFromInt(50000),
			AssumedMarginalRate:   decimal.NewFromFloat(0.30),
		},
	}
}
