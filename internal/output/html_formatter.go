package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct {
	Rules *domain.TaxRules
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"inr":    domain.FormatINR,
	"rate":   FormatRate,
	"regime": regimeLabel,
}).Parse(htmlTemplateSource))

type regimeView struct {
	Title   string
	Taxable domain.Rupees
	Result  domain.RegimeResult
}

func (h HTMLFormatter) Format(result *domain.ComputationResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: no result to format", domain.ErrInvalidInput)
	}
	assumptions := DefaultAssumptions
	if h.Rules != nil {
		assumptions = Assumptions(*h.Rules)
	}
	data := struct {
		*domain.ComputationResult
		Regimes     []regimeView
		Assumptions []string
	}{
		ComputationResult: result,
		Regimes: []regimeView{
			{"Old Regime", result.Taxable.TaxableOld, result.OldRegime},
			{"New Regime", result.Taxable.TaxableNew, result.NewRegime},
		},
		Assumptions: assumptions,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}
	return buf.Bytes(), nil
}
