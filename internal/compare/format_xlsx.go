package compare

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	comparisonSheet      = "Comparison"
	recommendationsSheet = "Recommendations"
)

// XLSXFormatter formats comparison results as an Excel workbook with one
// comparison sheet and, when present, a recommendations sheet.
type XLSXFormatter struct{}

// Format returns the workbook as bytes
func (xf *XLSXFormatter) Format(compSet *ComparisonSet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", comparisonSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(comparisonHeader))
	for i, h := range comparisonHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(comparisonSheet, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(comparisonSheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(comparisonSheet, "A", "A", 28); err != nil {
		return nil, err
	}

	row := 2
	writeRow := func(result *ComparisonResult, scenarioType string) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		values := xf.formatRow(result, scenarioType)
		return f.SetSheetRow(comparisonSheet, cell, &values)
	}

	if compSet.BaseResult != nil {
		if err := writeRow(compSet.BaseResult, "base"); err != nil {
			return nil, err
		}
	}
	for i := range compSet.AlternativeResults {
		if err := writeRow(&compSet.AlternativeResults[i], "alternative"); err != nil {
			return nil, err
		}
	}

	if len(compSet.Recommendations) > 0 {
		if _, err := f.NewSheet(recommendationsSheet); err != nil {
			return nil, err
		}
		for i, rec := range compSet.Recommendations {
			if err := f.SetCellValue(recommendationsSheet, fmt.Sprintf("A%d", i+1), rec); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// formatRow keeps amounts numeric so the sheet can be summed and charted
func (xf *XLSXFormatter) formatRow(result *ComparisonResult, scenarioType string) []interface{} {
	return []interface{}{
		result.ScenarioName,
		scenarioType,
		int64(result.GrossSalary),
		int64(result.TaxableOld),
		int64(result.TaxableNew),
		int64(result.FinalOld),
		int64(result.FinalNew),
		string(result.Recommended),
		int64(result.BestTax),
		result.EffectiveRate.InexactFloat64(),
		string(result.ITRForm),
		int64(result.TaxDiffFromBase),
		result.TaxPctFromBase.InexactFloat64(),
		result.RegimeChanged,
	}
}
