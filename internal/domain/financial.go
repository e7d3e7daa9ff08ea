package domain

import (
	"github.com/shopspring/decimal"
)

// GainType distinguishes short-term and long-term capital gains
type GainType string

const (
	GainShortTerm GainType = "stcg"
	GainLongTerm  GainType = "ltcg"
)

// AssetEquity is the asset class that triggers the statutory equity rates
const AssetEquity = "equity"

// Valid reports whether the gain type is one the engine understands
func (g GainType) Valid() bool {
	return g == GainShortTerm || g == GainLongTerm
}

// CapitalGainRequest is a capital-gain entry as it arrives from a caller.
// Amount is a pointer so a missing or non-numeric value can be reported by
// the validator (see wire.go).
type CapitalGainRequest struct {
	Type   string           `yaml:"type" json:"type"`
	Asset  string           `yaml:"asset" json:"asset"`
	Amount *decimal.Decimal `yaml:"amount" json:"amount"`
	Rate   *decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
}

// TaxRequest is the raw calculation payload accepted by every surface
// (HTTP body, request file, TUI form). Optional amounts are pointers so
// defaults are substituted explicitly during normalization.
type TaxRequest struct {
	GrossSalary         *decimal.Decimal     `yaml:"grossSalary" json:"grossSalary"`
	StandardDeduction   *decimal.Decimal     `yaml:"standardDeduction,omitempty" json:"standardDeduction,omitempty"`
	OtherDeductions     *decimal.Decimal     `yaml:"otherDeductions,omitempty" json:"otherDeductions,omitempty"`
	Chapter6ADeductions *decimal.Decimal     `yaml:"chapter6ADeductions,omitempty" json:"chapter6ADeductions,omitempty"`
	EmployerNPS         *decimal.Decimal     `yaml:"employerNPS,omitempty" json:"employerNPS,omitempty"`
	InterestSavings     *decimal.Decimal     `yaml:"interestSavings,omitempty" json:"interestSavings,omitempty"`
	InterestFD          *decimal.Decimal     `yaml:"interestFD,omitempty" json:"interestFD,omitempty"`
	IsSenior            bool                 `yaml:"isSenior,omitempty" json:"isSenior,omitempty"`
	CapitalGains        []CapitalGainRequest `yaml:"capitalGains,omitempty" json:"capitalGains,omitempty"`
	HasVDA              bool                 `yaml:"hasVDA,omitempty" json:"hasVDA,omitempty"`
}

// CapitalGainEvent is a normalized capital-gain event
type CapitalGainEvent struct {
	Type   GainType         `json:"type"`
	Asset  string           `json:"asset"`
	Amount decimal.Decimal  `json:"amount"`
	Rate   *decimal.Decimal `json:"rate,omitempty"` // override, ignored for equity
}

// IsEquity reports whether the event is on listed equity
func (e CapitalGainEvent) IsEquity() bool {
	return e.Asset == AssetEquity
}

// RateOr returns the override rate, or fallback when no usable override is set.
// A zero override counts as unset.
func (e CapitalGainEvent) RateOr(fallback decimal.Decimal) decimal.Decimal {
	if e.Rate == nil || e.Rate.IsZero() {
		return fallback
	}
	return *e.Rate
}

// FinancialInput is the normalized input of one calculation.
// Every amount is non-negative and every default has been applied.
type FinancialInput struct {
	GrossSalary         decimal.Decimal    `json:"grossSalary"`
	StandardDeduction   decimal.Decimal    `json:"standardDeduction"`
	OtherDeductions     decimal.Decimal    `json:"otherDeductions"`
	Chapter6ADeductions decimal.Decimal    `json:"chapter6ADeductions"`
	EmployerNPS         decimal.Decimal    `json:"employerNPS"`
	InterestSavings     decimal.Decimal    `json:"interestSavings"`
	InterestFD          decimal.Decimal    `json:"interestFD"`
	IsSenior            bool               `json:"isSenior"`
	CapitalGains        []CapitalGainEvent `json:"capitalGains"`
	HasVDA              bool               `json:"hasVDA"`
}

// TotalInterest returns savings plus fixed-deposit interest
func (fi FinancialInput) TotalInterest() decimal.Decimal {
	return fi.InterestSavings.Add(fi.InterestFD)
}

// HasCapitalGains reports whether any capital-gain event is present
func (fi FinancialInput) HasCapitalGains() bool {
	return len(fi.CapitalGains) > 0
}

// Clone returns a deep copy of the request
func (r *TaxRequest) Clone() *TaxRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.GrossSalary = copyDecimal(r.GrossSalary)
	c.StandardDeduction = copyDecimal(r.StandardDeduction)
	c.OtherDeductions = copyDecimal(r.OtherDeductions)
	c.Chapter6ADeductions = copyDecimal(r.Chapter6ADeductions)
	c.EmployerNPS = copyDecimal(r.EmployerNPS)
	c.InterestSavings = copyDecimal(r.InterestSavings)
	c.InterestFD = copyDecimal(r.InterestFD)
	if r.CapitalGains != nil {
		c.CapitalGains = make([]CapitalGainRequest, len(r.CapitalGains))
		for i, cg := range r.CapitalGains {
			cg.Amount = copyDecimal(cg.Amount)
			cg.Rate = copyDecimal(cg.Rate)
			c.CapitalGains[i] = cg
		}
	}
	return &c
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
