package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// DefaultAssumptions lists the FY2024-25 rules rendered in detailed outputs.
var DefaultAssumptions = Assumptions(domain.DefaultRulesFY2024_25())

// Assumptions describes the statutory figures a set of rules applies
func Assumptions(rules domain.TaxRules) []string {
	return []string{
		"Old regime slabs: " + describeSlabs(rules.OldRegime.Slabs),
		"New regime slabs: " + describeSlabs(rules.NewRegime.Slabs),
		fmt.Sprintf("Health & education cess: %s of slab and capital-gains tax", domain.FormatRate(rules.CessRate)),
		fmt.Sprintf("Section 87A rebate: up to %s when taxable income is at most %s",
			domain.FormatINR(rules.Rebate.MaxRebate), domain.FormatINR(rules.Rebate.IncomeThreshold)),
		fmt.Sprintf("Equity LTCG: %s above %s; equity STCG: %s",
			domain.FormatRate(rules.CapitalGains.EquityLTCGRate),
			domain.FormatINR(rules.CapitalGains.EquityLTCGExemption),
			domain.FormatRate(rules.CapitalGains.EquitySTCGRate)),
		fmt.Sprintf("Other gains unless overridden: STCG %s, LTCG %s",
			domain.FormatRate(rules.CapitalGains.DefaultSTCGRate),
			domain.FormatRate(rules.CapitalGains.DefaultLTCGRate)),
		fmt.Sprintf("Interest exemption: 80TTA %s on savings, 80TTB %s for seniors",
			domain.FormatINR(rules.InterestExemption.GeneralLimit),
			domain.FormatINR(rules.InterestExemption.SeniorLimit)),
		fmt.Sprintf("Standard deduction default: %s; Chapter VI-A cap: %s",
			domain.FormatINR(rules.DefaultStandardDeduction), domain.FormatINR(rules.Chapter6ACap)),
	}
}

func describeSlabs(slabs []domain.TaxSlab) string {
	parts := make([]string, 0, len(slabs))
	for _, s := range slabs {
		if s.IsUnbounded() {
			parts = append(parts, domain.FormatRate(s.Rate)+" above")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s up to %s", domain.FormatRate(s.Rate), domain.FormatINR(*s.UpTo)))
	}
	return strings.Join(parts, ", ")
}
