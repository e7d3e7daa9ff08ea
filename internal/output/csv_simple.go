package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// CSVSummarizer writes one row per regime with the headline figures.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Regime", "DeductionsUsed", "TaxableIncome", "SlabTax", "CapitalGainsTax", "Cess", "Rebate", "FinalTaxPayable", "Recommended"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	rows := []struct {
		regime  domain.Regime
		taxable domain.Rupees
	}{
		{domain.RegimeOld, result.Taxable.TaxableOld},
		{domain.RegimeNew, result.Taxable.TaxableNew},
	}
	for _, row := range rows {
		r := result.Regime(row.regime)
		record := []string{
			string(row.regime),
			rupees(r.DeductionsUsed),
			rupees(row.taxable),
			rupees(r.SlabTax),
			rupees(r.CapitalGainsTax),
			rupees(r.Cess),
			rupees(r.Rebate),
			rupees(r.FinalTaxPayable),
			strconv.FormatBool(result.Comparison.Recommended == row.regime),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DetailedCSVFormatter writes every slab line and capital-gain line.
type DetailedCSVFormatter struct{}

func (d DetailedCSVFormatter) Name() string { return "detailed-csv" }

func (d DetailedCSVFormatter) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Item", "Rate", "Amount", "Tax"}); err != nil {
		return nil, err
	}

	for _, regime := range []domain.Regime{domain.RegimeOld, domain.RegimeNew} {
		for _, s := range result.Regime(regime).SlabBreakdown {
			if err := w.Write([]string{"slab_" + string(regime), s.Range, s.Rate, rupees(s.TaxableAmount), rupees(s.Tax)}); err != nil {
				return nil, err
			}
		}
	}

	for _, cg := range result.CapitalGains.Detail {
		rate, tax := cg.RateHint, ""
		if cg.Rate != nil {
			rate = FormatRate(cg.Rate)
		}
		if cg.Tax != nil {
			tax = rupees(*cg.Tax)
		}
		if err := w.Write([]string{"capital_gain", cg.Desc, rate, rupees(cg.Amount), tax}); err != nil {
			return nil, err
		}
	}
	agg := result.CapitalGains.EquityLTCGAggregate
	if agg.LTCGEquity > 0 {
		if err := w.Write([]string{"equity_ltcg_aggregate", "Equity LTCG", "", rupees(agg.Taxable), rupees(agg.Tax)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func rupees(r domain.Rupees) string {
	return strconv.FormatInt(int64(r), 10)
}
