package domain

import (
	"time"
)

// Regime names one of the two parallel tax schemes
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// ITRForm is the recommended return form
type ITRForm string

const (
	ITR1 ITRForm = "ITR-1"
	ITR2 ITRForm = "ITR-2"
)

// SlabLine is one row of a slab breakdown
type SlabLine struct {
	Range         string `json:"range"`
	Rate          string `json:"rate"`
	TaxableAmount Rupees `json:"taxableAmount"`
	Tax           Rupees `json:"tax"`
}

// CapitalGainLine describes one capital-gain event in the result.
// Equity LTCG lines carry only a rate hint; their tax is computed in aggregate.
type CapitalGainLine struct {
	Desc     string   `json:"desc"`
	Amount   Rupees   `json:"amount"`
	Rate     *float64 `json:"rate,omitempty"`
	Tax      *Rupees  `json:"tax,omitempty"`
	RateHint string   `json:"rateHint,omitempty"`
}

// EquityLTCGAggregate is the combined equity LTCG computation
type EquityLTCGAggregate struct {
	LTCGEquity Rupees `json:"ltcgEquity"`
	Taxable    Rupees `json:"taxable"`
	Tax        Rupees `json:"tax"`
}

// CapitalGainsSummary aggregates per-event and equity LTCG taxes
type CapitalGainsSummary struct {
	Detail              []CapitalGainLine   `json:"detail"`
	EquityLTCGAggregate EquityLTCGAggregate `json:"equityLTCGAggregate"`
	TotalTax            Rupees              `json:"totalTax"`
}

// TaxableIncome holds the taxable income under each regime
type TaxableIncome struct {
	TaxableOld Rupees `json:"taxableOld"`
	TaxableNew Rupees `json:"taxableNew"`
}

// RegimeResult is the full computation under one regime
type RegimeResult struct {
	DeductionsUsed     Rupees     `json:"deductionsUsed"`
	SlabTax            Rupees     `json:"slabTax"`
	SlabBreakdown      []SlabLine `json:"slabBreakdown"`
	CapitalGainsTax    Rupees     `json:"capitalGainsTax"`
	TaxBeforeCess      Rupees     `json:"taxBeforeCess"`
	Cess               Rupees     `json:"cess"`
	TaxTotal           Rupees     `json:"taxTotal"`
	Rebate             Rupees     `json:"rebate"`
	QualifiesForRebate bool       `json:"qualifiesForRebate"`
	FinalTaxPayable    Rupees     `json:"finalTaxPayable"`
}

// Comparison recommends a regime.
// SavingsPercentage is relative to the old-regime tax whichever regime wins.
type Comparison struct {
	Savings           Rupees  `json:"savings"`
	Recommended       Regime  `json:"recommended"`
	SavingsPercentage int64   `json:"savingsPercentage"`
	RebateMessage     *string `json:"rebateMessage"`
}

// Metadata records the tax year and calculation time
type Metadata struct {
	FinancialYear  string    `json:"financialYear"`
	AssessmentYear string    `json:"assessmentYear"`
	CalculatedAt   time.Time `json:"calculatedAt"`
}

// ComputationResult is the complete output of one calculation
type ComputationResult struct {
	Inputs       FinancialInput      `json:"inputs"`
	Taxable      TaxableIncome       `json:"taxable"`
	CapitalGains CapitalGainsSummary `json:"capitalGains"`
	OldRegime    RegimeResult        `json:"oldRegime"`
	NewRegime    RegimeResult        `json:"newRegime"`
	Comparison   Comparison          `json:"comparison"`
	ITRForm      ITRForm             `json:"itrForm"`
	Metadata     Metadata            `json:"metadata"`
}

// Regime returns the result for the given regime
func (cr *ComputationResult) Regime(r Regime) RegimeResult {
	if r == RegimeNew {
		return cr.NewRegime
	}
	return cr.OldRegime
}

// RecommendedTax returns the final tax under the recommended regime
func (cr *ComputationResult) RecommendedTax() Rupees {
	return cr.Regime(cr.Comparison.Recommended).FinalTaxPayable
}
