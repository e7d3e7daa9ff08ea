package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// ConsoleFormatter prints a short regime summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "TAX SUMMARY (%s / %s)\n", result.Metadata.FinancialYear, result.Metadata.AssessmentYear)
	fmt.Fprintf(&buf, "Old Regime: taxable %-14s tax %s\n", result.Taxable.TaxableOld, result.OldRegime.FinalTaxPayable)
	fmt.Fprintf(&buf, "New Regime: taxable %-14s tax %s\n", result.Taxable.TaxableNew, result.NewRegime.FinalTaxPayable)
	fmt.Fprintf(&buf, "Recommended: %s regime (saves %s, %d%%)\n",
		regimeLabel(result.Comparison.Recommended), result.Comparison.Savings, result.Comparison.SavingsPercentage)
	if result.Comparison.RebateMessage != nil {
		fmt.Fprintln(&buf, *result.Comparison.RebateMessage)
	}
	fmt.Fprintf(&buf, "File: %s\n", result.ITRForm)

	return buf.Bytes(), nil
}
