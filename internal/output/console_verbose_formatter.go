package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
)

const rule = "================================================================================="

// ConsoleVerboseFormatter renders the detailed console report with slab
// breakdowns for both regimes. Rules, when set, drive the assumptions block.
type ConsoleVerboseFormatter struct {
	Rules *domain.TaxRules
}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "INCOME TAX COMPUTATION %s (%s)\n", result.Metadata.FinancialYear, result.Metadata.AssessmentYear)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := DefaultAssumptions
	if c.Rules != nil {
		assumptions = Assumptions(*c.Rules)
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeInputs(&buf, result.Inputs)
	writeCapitalGains(&buf, result.CapitalGains)

	writeRegime(&buf, "OLD REGIME", result.Taxable.TaxableOld, result.OldRegime)
	writeRegime(&buf, "NEW REGIME", result.Taxable.TaxableNew, result.NewRegime)

	fmt.Fprintln(&buf, "RECOMMENDATION")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "Recommended Regime: %s\n", regimeLabel(result.Comparison.Recommended))
	fmt.Fprintf(&buf, "Savings:            %s (%d%% of old-regime tax)\n", result.Comparison.Savings, result.Comparison.SavingsPercentage)
	if result.Comparison.RebateMessage != nil {
		fmt.Fprintln(&buf, *result.Comparison.RebateMessage)
	}
	fmt.Fprintf(&buf, "Return Form:        %s\n", result.ITRForm)
	fmt.Fprintf(&buf, "Calculated At:      %s\n", result.Metadata.CalculatedAt.Format("2006-01-02 15:04:05 MST"))

	return buf.Bytes(), nil
}

func writeInputs(w io.Writer, in domain.FinancialInput) {
	fmt.Fprintln(w, "INPUTS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Gross Salary:          %s\n", domain.FormatINR(in.GrossSalary))
	fmt.Fprintf(w, "Standard Deduction:    %s\n", domain.FormatINR(in.StandardDeduction))
	fmt.Fprintf(w, "Chapter VI-A:          %s\n", domain.FormatINR(in.Chapter6ADeductions))
	fmt.Fprintf(w, "Other Deductions:      %s\n", domain.FormatINR(in.OtherDeductions))
	fmt.Fprintf(w, "Employer NPS:          %s\n", domain.FormatINR(in.EmployerNPS))
	fmt.Fprintf(w, "Savings Interest:      %s\n", domain.FormatINR(in.InterestSavings))
	fmt.Fprintf(w, "FD Interest:           %s\n", domain.FormatINR(in.InterestFD))
	if in.IsSenior {
		fmt.Fprintln(w, "Senior Citizen:        yes")
	}
	if in.HasVDA {
		fmt.Fprintln(w, "Virtual Digital Assets: yes")
	}
	fmt.Fprintln(w)
}

func writeCapitalGains(w io.Writer, cg domain.CapitalGainsSummary) {
	if len(cg.Detail) == 0 {
		return
	}
	fmt.Fprintln(w, "CAPITAL GAINS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, line := range cg.Detail {
		if line.Tax == nil {
			fmt.Fprintf(w, "  %-22s %14s  %s\n", line.Desc, line.Amount, line.RateHint)
			continue
		}
		fmt.Fprintf(w, "  %-22s %14s  @ %-5s %12s\n", line.Desc, line.Amount, FormatRate(line.Rate), *line.Tax)
	}
	agg := cg.EquityLTCGAggregate
	if agg.LTCGEquity > 0 {
		fmt.Fprintf(w, "  Equity LTCG total %s, taxable %s, tax %s\n", agg.LTCGEquity, agg.Taxable, agg.Tax)
	}
	fmt.Fprintf(w, "Total Capital Gains Tax: %s\n", cg.TotalTax)
	fmt.Fprintln(w)
}

func writeRegime(w io.Writer, title string, taxable domain.Rupees, r domain.RegimeResult) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Deductions Used:   %s\n", r.DeductionsUsed)
	fmt.Fprintf(w, "Taxable Income:    %s\n", taxable)
	fmt.Fprintln(w, "Slab Breakdown:")
	for _, s := range r.SlabBreakdown {
		fmt.Fprintf(w, "  %-24s %5s  %14s  %12s\n", s.Range, s.Rate, s.TaxableAmount, s.Tax)
	}
	fmt.Fprintf(w, "Slab Tax:          %s\n", r.SlabTax)
	fmt.Fprintf(w, "Capital Gains Tax: %s\n", r.CapitalGainsTax)
	fmt.Fprintf(w, "Tax Before Cess:   %s\n", r.TaxBeforeCess)
	fmt.Fprintf(w, "Cess:              %s\n", r.Cess)
	fmt.Fprintf(w, "Total Tax:         %s\n", r.TaxTotal)
	if r.QualifiesForRebate {
		fmt.Fprintf(w, "87A Rebate:        -%s\n", r.Rebate)
	}
	fmt.Fprintf(w, "Final Tax Payable: %s\n", r.FinalTaxPayable)
	fmt.Fprintln(w)
}
