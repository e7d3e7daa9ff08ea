package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TableFormatter formats break-even results as a console table
type TableFormatter struct{}

// Format generates a report for a single break-even result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("REGIME BREAK-EVEN ANALYSIS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	if result.Name != "" {
		sb.WriteString(fmt.Sprintf("Scenario:              %s\n", result.Name))
	}
	sb.WriteString(fmt.Sprintf("Current Deductions:    %s\n", result.CurrentDeductions))
	sb.WriteString(fmt.Sprintf("Old Regime Tax:        %s\n", result.CurrentOldTax))
	sb.WriteString(fmt.Sprintf("New Regime Tax:        %s\n", result.NewRegimeTax))
	sb.WriteString("\n")

	if !result.Reachable {
		sb.WriteString("The old regime cannot match the new regime within the searched range.\n")
		if result.ConvergenceInfo != "" {
			sb.WriteString(fmt.Sprintf("(%s)\n", result.ConvergenceInfo))
		}
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Break-even Deductions: %s\n", result.BreakEvenDeduction))
	sb.WriteString(fmt.Sprintf("Old Tax at Break-even: %s\n", result.OldTaxAtBreakEven))
	if result.AdditionalNeeded > 0 {
		sb.WriteString(fmt.Sprintf("Additional Needed:     %s\n", result.AdditionalNeeded))
	} else {
		sb.WriteString(fmt.Sprintf("Headroom:              %s\n", result.Headroom))
	}
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:           %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")
	sb.WriteString(tf.verdict(result) + "\n")

	return sb.String()
}

// FormatAll formats results from several scenarios as one summary table
func (tf *TableFormatter) FormatAll(results []Result) string {
	var sb strings.Builder

	sb.WriteString("REGIME BREAK-EVEN SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %14s %14s %14s %14s\n", "Scenario", "Current", "Break-even", "Needed", "Favours"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i := range results {
		r := &results[i]
		breakEven, needed := "n/a", "n/a"
		if r.Reachable {
			breakEven = r.BreakEvenDeduction.String()
			needed = r.AdditionalNeeded.String()
		}
		favours := "NEW"
		if r.AlreadyFavoursOld {
			favours = "OLD"
		}
		sb.WriteString(fmt.Sprintf("%-20s %14s %14s %14s %14s\n",
			tf.truncate(r.Name, 20), r.CurrentDeductions, breakEven, needed, favours))
	}

	return sb.String()
}

func (tf *TableFormatter) verdict(result *Result) string {
	if result.AlreadyFavoursOld {
		return fmt.Sprintf("The old regime already wins; deductions could fall by %s before the new regime is cheaper.", result.Headroom)
	}
	return fmt.Sprintf("Claim %s more in old-regime deductions to make the old regime worthwhile.", result.AdditionalNeeded)
}

func (tf *TableFormatter) truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// JSONFormatter formats break-even results as indented JSON
type JSONFormatter struct{}

// Format generates JSON for any number of results
func (jf *JSONFormatter) Format(results []Result) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
