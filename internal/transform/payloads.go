package transform

import (
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// orDefault follows the quick-compare form, where an empty or zero field
// means "not filled in".
func orDefault(v, fallback decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return fallback
	}
	return v
}

// FromRegimeComparison maps the quick-compare payload onto a calculation request.
// A flat grossSalary takes precedence over income.salary; other income heads are
// added to it, and a positive income.capitalGains becomes one equity LTCG event.
func FromRegimeComparison(req domain.RegimeComparisonRequest, rules domain.TaxRules) domain.TaxRequest {
	salary := req.Income.Salary
	if req.GrossSalary != nil && !req.GrossSalary.IsZero() {
		salary = *req.GrossSalary
	}
	gross := salary.
		Add(req.Income.HouseProperty).
		Add(req.Income.Business).
		Add(req.Income.OtherSources)

	d := req.Deductions
	out := domain.TaxRequest{
		GrossSalary:         ptr(gross),
		StandardDeduction:   ptr(orDefault(d.StandardDeduction, rules.DefaultStandardDeduction)),
		Chapter6ADeductions: ptr(d.Section80C.Add(d.Section80D).Add(d.Other)),
		OtherDeductions:     ptr(orDefault(d.Section24B, d.HomeLoanInterest)),
		EmployerNPS:         ptr(d.EmployerNPS),
		InterestSavings:     ptr(d.InterestSavings),
		InterestFD:          ptr(d.InterestFD),
		IsSenior:            d.IsSenior,
		HasVDA:              d.HasVDA,
	}

	if req.Income.CapitalGains.IsPositive() {
		out.CapitalGains = []domain.CapitalGainRequest{{
			Type:   string(domain.GainLongTerm),
			Asset:  domain.AssetEquity,
			Amount: ptr(req.Income.CapitalGains),
		}}
	}
	return out
}

// SummarizeRegimes condenses a full result into the quick-compare answer
func SummarizeRegimes(result *domain.ComputationResult) domain.RegimeSummary {
	return domain.RegimeSummary{
		TaxableIncome: domain.RegimePair{
			Old: result.Taxable.TaxableOld,
			New: result.Taxable.TaxableNew,
		},
		FinalTax: domain.RegimePair{
			Old: result.OldRegime.FinalTaxPayable,
			New: result.NewRegime.FinalTaxPayable,
		},
		Savings:           result.Comparison.Savings,
		Recommended:       result.Comparison.Recommended,
		SavingsPercentage: result.Comparison.SavingsPercentage,
		RebateApplied: domain.RebateApplied{
			Old:          result.OldRegime.Rebate,
			New:          result.NewRegime.Rebate,
			QualifiesOld: result.OldRegime.QualifiesForRebate,
			QualifiesNew: result.NewRegime.QualifiesForRebate,
		},
		ITRForm:       result.ITRForm,
		RebateMessage: result.Comparison.RebateMessage,
	}
}

// FromForm16 maps data extracted from a Form-16 onto a calculation request.
// Everything Form-16 does not carry is zero.
func FromForm16(req domain.Form16Request, rules domain.TaxRules) (domain.TaxRequest, error) {
	if req.ExtractedData == nil {
		return domain.TaxRequest{}, domain.ErrMissingExtractedData
	}
	data := req.ExtractedData

	return domain.TaxRequest{
		GrossSalary:         ptr(data.Income.Salary),
		StandardDeduction:   ptr(orDefault(data.Income.StandardDeduction, rules.DefaultStandardDeduction)),
		Chapter6ADeductions: ptr(data.Deductions.Total),
		OtherDeductions:     ptr(decimal.Zero),
		EmployerNPS:         ptr(decimal.Zero),
		InterestSavings:     ptr(decimal.Zero),
		InterestFD:          ptr(decimal.Zero),
		CapitalGains:        []domain.CapitalGainRequest{},
	}, nil
}
