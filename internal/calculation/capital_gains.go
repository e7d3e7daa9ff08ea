package calculation

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// CapitalGainsResult holds per-event taxes and the equity LTCG aggregate
type CapitalGainsResult struct {
	PerEventTax decimal.Decimal
	Lines       []domain.CapitalGainLine

	LTCGEquity        decimal.Decimal
	LTCGEquityTaxable decimal.Decimal
	LTCGEquityTax     decimal.Decimal
}

// Total returns the capital-gains tax added to both regimes
func (r CapitalGainsResult) Total() decimal.Decimal {
	return r.PerEventTax.Add(r.LTCGEquityTax)
}

// Summary converts the result into its rounded output form
func (r CapitalGainsResult) Summary() domain.CapitalGainsSummary {
	detail := r.Lines
	if detail == nil {
		detail = []domain.CapitalGainLine{}
	}
	return domain.CapitalGainsSummary{
		Detail: detail,
		EquityLTCGAggregate: domain.EquityLTCGAggregate{
			LTCGEquity: domain.RoundRupees(r.LTCGEquity),
			Taxable:    domain.RoundRupees(r.LTCGEquityTaxable),
			Tax:        domain.RoundRupees(r.LTCGEquityTax),
		},
		TotalTax: domain.RoundRupees(r.Total()),
	}
}

// CapitalGainsCalculator taxes capital-gain events at flat rates, outside the slabs
type CapitalGainsCalculator struct {
	Rules domain.CapitalGainsRules
}

// NewCapitalGainsCalculator creates a capital-gains calculator
func NewCapitalGainsCalculator(rules domain.CapitalGainsRules) *CapitalGainsCalculator {
	return &CapitalGainsCalculator{Rules: rules}
}

// Calculate taxes every event. Equity LTCG is only described per event and
// taxed once over the aggregate above the exemption.
func (cgc *CapitalGainsCalculator) Calculate(events []domain.CapitalGainEvent) CapitalGainsResult {
	var result CapitalGainsResult

	for _, ev := range events {
		amount := decimal.Max(ev.Amount, decimal.Zero)
		desc := strings.TrimSpace(strings.ToUpper(string(ev.Type)) + " " + ev.Asset)

		switch ev.Type {
		case domain.GainShortTerm:
			rate := ev.RateOr(cgc.Rules.DefaultSTCGRate)
			if ev.IsEquity() {
				rate = cgc.Rules.EquitySTCGRate
			}
			tax := amount.Mul(rate)
			result.PerEventTax = result.PerEventTax.Add(tax)
			result.Lines = append(result.Lines, taxedLine(desc, amount, rate, tax))

		case domain.GainLongTerm:
			if ev.IsEquity() {
				result.LTCGEquity = result.LTCGEquity.Add(amount)
				result.Lines = append(result.Lines, domain.CapitalGainLine{
					Desc:     desc,
					Amount:   domain.RoundRupees(amount),
					RateHint: cgc.equityLTCGHint(),
				})
				continue
			}
			rate := ev.RateOr(cgc.Rules.DefaultLTCGRate)
			tax := amount.Mul(rate)
			result.PerEventTax = result.PerEventTax.Add(tax)
			result.Lines = append(result.Lines, taxedLine(desc, amount, rate, tax))
		}
	}

	result.LTCGEquityTaxable = decimal.Max(decimal.Zero, result.LTCGEquity.Sub(cgc.Rules.EquityLTCGExemption))
	result.LTCGEquityTax = result.LTCGEquityTaxable.Mul(cgc.Rules.EquityLTCGRate)

	return result
}

func (cgc *CapitalGainsCalculator) equityLTCGHint() string {
	return fmt.Sprintf("%s on amount >%s",
		domain.FormatRate(cgc.Rules.EquityLTCGRate),
		domain.FormatINR(cgc.Rules.EquityLTCGExemption))
}

func taxedLine(desc string, amount, rate, tax decimal.Decimal) domain.CapitalGainLine {
	r := rate.InexactFloat64()
	t := domain.RoundRupees(tax)
	return domain.CapitalGainLine{
		Desc:   desc,
		Amount: domain.RoundRupees(amount),
		Rate:   &r,
		Tax:    &t,
	}
}
