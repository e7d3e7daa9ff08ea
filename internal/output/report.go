package output

import (
	"fmt"
	"io"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateReport renders the result in the named format and writes it to w
func GenerateReport(w io.Writer, result *domain.ComputationResult, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}

	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatCurrency formats a rupee amount with Indian digit grouping
func FormatCurrency(amount domain.Rupees) string {
	return amount.String()
}

// FormatPercentage formats a percentage value with one decimal
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

// FormatRate formats an optional fractional rate such as 0.15 as "15%"
func FormatRate(rate *float64) string {
	if rate == nil {
		return "-"
	}
	return domain.FormatRate(decimal.NewFromFloat(*rate))
}

func regimeLabel(r domain.Regime) string {
	if r == domain.RegimeNew {
		return "NEW"
	}
	return "OLD"
}
