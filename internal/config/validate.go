package config

import (
	"fmt"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// Validate checks a raw request against the FY2024-25 rules
func Validate(req *domain.TaxRequest) []string {
	return ValidateWithRules(req, domain.DefaultRulesFY2024_25())
}

// ValidateWithRules checks a raw request and returns every problem found.
// It never mutates the request; an empty result means the request is valid.
func ValidateWithRules(req *domain.TaxRequest, rules domain.TaxRules) []string {
	errs := []string{}
	if req == nil {
		return append(errs, "Gross salary must be a non-negative number")
	}

	if req.GrossSalary == nil || req.GrossSalary.IsNegative() {
		errs = append(errs, "Gross salary must be a non-negative number")
	}

	if req.Chapter6ADeductions != nil && req.Chapter6ADeductions.GreaterThan(rules.Chapter6ACap) {
		errs = append(errs, fmt.Sprintf("Chapter VI-A deductions cannot exceed %s", domain.FormatINR(rules.Chapter6ACap)))
	}

	for i, cg := range req.CapitalGains {
		if !domain.GainType(cg.Type).Valid() {
			errs = append(errs, fmt.Sprintf("Capital gain %d: type must be 'stcg' or 'ltcg'", i+1))
		}
		if cg.Amount == nil || cg.Amount.IsNegative() {
			errs = append(errs, fmt.Sprintf("Capital gain %d: amount must be non-negative", i+1))
		}
	}

	return errs
}

// Normalize substitutes defaults and clamps negative amounts to zero.
// A missing standard deduction becomes the rules default; an explicit zero is kept.
func Normalize(req *domain.TaxRequest, rules domain.TaxRules) domain.FinancialInput {
	input := domain.FinancialInput{
		GrossSalary:         amountOr(req.GrossSalary, decimal.Zero),
		StandardDeduction:   amountOr(req.StandardDeduction, rules.DefaultStandardDeduction),
		OtherDeductions:     amountOr(req.OtherDeductions, decimal.Zero),
		Chapter6ADeductions: amountOr(req.Chapter6ADeductions, decimal.Zero),
		EmployerNPS:         amountOr(req.EmployerNPS, decimal.Zero),
		InterestSavings:     amountOr(req.InterestSavings, decimal.Zero),
		InterestFD:          amountOr(req.InterestFD, decimal.Zero),
		IsSenior:            req.IsSenior,
		HasVDA:              req.HasVDA,
		CapitalGains:        make([]domain.CapitalGainEvent, 0, len(req.CapitalGains)),
	}

	for _, cg := range req.CapitalGains {
		ev := domain.CapitalGainEvent{
			Type:   domain.GainType(cg.Type),
			Asset:  cg.Asset,
			Amount: amountOr(cg.Amount, decimal.Zero),
		}
		if cg.Rate != nil && cg.Rate.IsPositive() {
			r := *cg.Rate
			ev.Rate = &r
		}
		input.CapitalGains = append(input.CapitalGains, ev)
	}

	return input
}

func amountOr(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Max(fallback, decimal.Zero)
	}
	return decimal.Max(*v, decimal.Zero)
}
