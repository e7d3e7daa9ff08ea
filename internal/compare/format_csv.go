package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// comparisonHeader names the columns shared by the CSV and XLSX formats
var comparisonHeader = []string{
	"Scenario",
	"Type",
	"Gross Salary",
	"Taxable Old",
	"Taxable New",
	"Old Regime Tax",
	"New Regime Tax",
	"Recommended",
	"Best Tax",
	"Effective Rate %",
	"ITR Form",
	"Tax Diff from Base",
	"Tax % Change",
	"Regime Changed",
}

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(comparisonHeader); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row; amounts are plain rupees
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		formatInt(int64(result.GrossSalary)),
		formatInt(int64(result.TaxableOld)),
		formatInt(int64(result.TaxableNew)),
		formatInt(int64(result.FinalOld)),
		formatInt(int64(result.FinalNew)),
		string(result.Recommended),
		formatInt(int64(result.BestTax)),
		result.EffectiveRate.StringFixed(2),
		string(result.ITRForm),
		formatInt(int64(result.TaxDiffFromBase)),
		result.TaxPctFromBase.StringFixed(2),
		strconv.FormatBool(result.RegimeChanged),
	}
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
