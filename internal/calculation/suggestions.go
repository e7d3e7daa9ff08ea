package calculation

import (
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// SuggestionCalculator points out deductions with unused headroom
type SuggestionCalculator struct {
	Rules domain.SuggestionRules
}

// NewSuggestionCalculator creates a suggestion calculator
func NewSuggestionCalculator(rules domain.SuggestionRules) *SuggestionCalculator {
	return &SuggestionCalculator{Rules: rules}
}

// Suggest lists 80C, 80D and 80CCD(1B) headroom with an estimated saving at
// the assumed marginal rate.
func (sc *SuggestionCalculator) Suggest(req domain.SuggestionRequest) domain.SuggestionReport {
	report := domain.SuggestionReport{Suggestions: []domain.Suggestion{}}
	cur := req.CurrentDeductions

	if cur.Section80C.LessThan(sc.Rules.Section80CLimit) {
		target := decimal.Min(sc.Rules.Section80CLimit, decimal.Max(req.GrossSalary, decimal.Zero).Mul(sc.Rules.Section80CSalaryShare))
		report.Suggestions = append(report.Suggestions, sc.suggestion(
			"80C",
			"Section 80C Investments",
			"PPF, ELSS, Life Insurance, Home Loan Principal",
			cur.Section80C, target, sc.Rules.Section80CLimit,
			[]string{"PPF", "ELSS Mutual Funds", "Life Insurance Premium", "Home Loan Principal", "NSC", "Tax Saving FD"},
		))
	}

	if cur.Section80D.LessThan(sc.Rules.Section80DLimit) {
		report.Suggestions = append(report.Suggestions, sc.suggestion(
			"80D",
			"Health Insurance Premium",
			"Medical insurance for self, family, and parents",
			cur.Section80D, sc.Rules.Section80DLimit, sc.Rules.Section80DLimit,
			[]string{"Health Insurance Premium", "Preventive Health Check-up"},
		))
	}

	if cur.NPS.LessThan(sc.Rules.NPSLimit) {
		report.Suggestions = append(report.Suggestions, sc.suggestion(
			"80CCD(1B)",
			"National Pension System",
			"Additional NPS investment (over and above 80C limit)",
			cur.NPS, sc.Rules.NPSLimit, sc.Rules.NPSLimit,
			[]string{"NPS Contribution"},
		))
	}

	for _, s := range report.Suggestions {
		report.TotalPotentialSaving += s.PotentialSaving
	}

	if len(report.Suggestions) > 0 {
		report.Message = "You can potentially save " + report.TotalPotentialSaving.String() + " in taxes"
	} else {
		report.Message = "You are already maximizing your tax deductions!"
	}
	return report
}

func (sc *SuggestionCalculator) suggestion(section, title, desc string, current, suggested, limit decimal.Decimal, instruments []string) domain.Suggestion {
	saving := decimal.Max(decimal.Zero, suggested.Sub(current)).Mul(sc.Rules.AssumedMarginalRate)
	return domain.Suggestion{
		Section:         section,
		Title:           title,
		Description:     desc,
		CurrentAmount:   domain.RoundRupees(current),
		SuggestedAmount: domain.RoundRupees(suggested),
		MaxLimit:        domain.RoundRupees(limit),
		PotentialSaving: domain.RoundRupees(saving),
		Instruments:     instruments,
	}
}
