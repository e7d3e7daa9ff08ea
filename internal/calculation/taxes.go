package calculation

import (
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// SLAB CALCULATION NOTES:
//
// 1. Slab tables are walked in ascending order; each slab taxes the part of
//    the income between the previous upper bound and its own.
// 2. The last slab is open-ended and takes whatever income remains.
// 3. Slabs that receive no income produce no breakdown line.
// 4. Figures stay unrounded here; rounding happens when the result is assembled.

// SlabPortion is the share of income that fell into one slab
type SlabPortion struct {
	From   decimal.Decimal
	UpTo   *decimal.Decimal // nil for the open-ended slab
	Rate   decimal.Decimal
	Amount decimal.Decimal
	Tax    decimal.Decimal
}

// Label renders the slab range, e.g. "₹2,50,000 - ₹5,00,000" or "₹15,00,000 - Above"
func (sp SlabPortion) Label() string {
	if sp.UpTo == nil {
		return domain.FormatINR(sp.From) + " - Above"
	}
	return domain.FormatINR(sp.From) + " - " + domain.FormatINR(*sp.UpTo)
}

// Line converts the portion into a rounded breakdown row
func (sp SlabPortion) Line() domain.SlabLine {
	return domain.SlabLine{
		Range:         sp.Label(),
		Rate:          domain.FormatRate(sp.Rate),
		TaxableAmount: domain.RoundRupees(sp.Amount),
		Tax:           domain.RoundRupees(sp.Tax),
	}
}

// SlabResult is the outcome of applying a slab table to an income
type SlabResult struct {
	Tax      decimal.Decimal
	Portions []SlabPortion
}

// Lines returns the rounded breakdown rows
func (sr SlabResult) Lines() []domain.SlabLine {
	lines := make([]domain.SlabLine, 0, len(sr.Portions))
	for _, p := range sr.Portions {
		lines = append(lines, p.Line())
	}
	return lines
}

// SlabCalculator applies one regime's slab table
type SlabCalculator struct {
	Slabs []domain.TaxSlab
}

// NewSlabCalculator creates a slab calculator for the given table
func NewSlabCalculator(slabs []domain.TaxSlab) *SlabCalculator {
	return &SlabCalculator{Slabs: slabs}
}

// Calculate applies the slab table to a taxable income.
// Negative income is treated as zero.
func (sc *SlabCalculator) Calculate(income decimal.Decimal) SlabResult {
	var result SlabResult
	remaining := decimal.Max(income, decimal.Zero)
	prev := decimal.Zero

	for _, slab := range sc.Slabs {
		amount := remaining
		if !slab.IsUnbounded() {
			amount = decimal.Min(remaining, slab.UpTo.Sub(prev))
		}
		amount = decimal.Max(decimal.Zero, amount)

		if amount.IsPositive() {
			tax := amount.Mul(slab.Rate)
			result.Tax = result.Tax.Add(tax)
			remaining = remaining.Sub(amount)
			result.Portions = append(result.Portions, SlabPortion{
				From:   prev,
				UpTo:   slab.UpTo,
				Rate:   slab.Rate,
				Amount: amount,
				Tax:    tax,
			})
		}

		if !slab.IsUnbounded() {
			prev = *slab.UpTo
		}
		if !remaining.IsPositive() {
			break
		}
	}

	return result
}
