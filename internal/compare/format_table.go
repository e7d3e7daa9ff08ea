package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
)

const tableWidth = 100

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	if compSet.FinancialYear != "" {
		sb.WriteString(fmt.Sprintf("Tax Year: %s\n", compSet.FinancialYear))
	}
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Scenarios File: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %6s\n",
		nameWidth, "Scenario",
		numWidth, "Taxable Old",
		numWidth, "Taxable New",
		numWidth, "Old Tax",
		numWidth, "New Tax",
		numWidth, "Best Tax",
		"Regime"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}
			sb.WriteString(fmt.Sprintf("  Tax Impact:       %s (%s%%)\n",
				tf.formatDelta(alt.TaxDiffFromBase), alt.TaxPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Effective Rate:   %s%%\n", alt.EffectiveRate.StringFixed(2)))
			if alt.RegimeChanged {
				sb.WriteString(fmt.Sprintf("  Regime:           switches to %s\n", alt.Recommended))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s %6s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.TaxableOld.String(),
		numWidth, result.TaxableNew.String(),
		numWidth, result.FinalOld.String(),
		numWidth, result.FinalNew.String(),
		numWidth, result.BestTax.String(),
		result.Recommended)
}

// formatDelta renders a tax change; more tax is shown with a plus sign
func (tf *TableFormatter) formatDelta(delta domain.Rupees) string {
	switch {
	case delta > 0:
		return "+" + delta.String()
	case delta < 0:
		return "-" + (-delta).String()
	default:
		return "no change"
	}
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.TaxDiffFromBase != 0 {
			change = tf.formatDelta(alt.TaxDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
