package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/taxease/internal/domain"
)

// View renders the form, the regime cards and the key help
func (m Model) View() string {
	title := TitleStyle.Render("TaxEase · Income Tax Calculator")
	subtitle := SubtitleStyle.Render(fmt.Sprintf("%s (%s)", m.engine.Rules.Metadata.FinancialYear, m.engine.Rules.Metadata.AssessmentYear))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), "  ", m.renderResults())

	return lipgloss.JoinVertical(lipgloss.Left,
		title+" "+subtitle,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

func (m Model) renderForm() string {
	var b strings.Builder
	for i, f := range fields {
		label := LabelStyle.Render(f.label)
		if i == m.focus {
			label = FocusedLabelStyle.Render("› " + f.label)
		}
		b.WriteString(label + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(checkbox(m.isSenior) + " Senior citizen\n")
	b.WriteString(checkbox(m.hasVDA) + " Crypto/VDA income\n")
	if n := len(m.capitalGains); n > 0 {
		b.WriteString(MetricLabelStyle.Render(fmt.Sprintf("%d capital-gain event(s) from file", n)) + "\n")
	}
	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) renderResults() string {
	if len(m.errs) > 0 {
		lines := make([]string, 0, len(m.errs))
		for _, e := range m.errs {
			lines = append(lines, ErrorStyle.Render("✗ "+e))
		}
		return strings.Join(lines, "\n")
	}
	if m.result == nil {
		return ""
	}

	r := m.result
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		regimeCard("Old Regime", r.Taxable.TaxableOld, r.OldRegime, r.Comparison.Recommended == domain.RegimeOld),
		" ",
		regimeCard("New Regime", r.Taxable.TaxableNew, r.NewRegime, r.Comparison.Recommended == domain.RegimeNew),
	)

	summary := []string{
		SuccessStyle.Render(fmt.Sprintf("Recommended: %s regime · saves %s (%d%%)",
			strings.ToUpper(string(r.Comparison.Recommended)), r.Comparison.Savings, r.Comparison.SavingsPercentage)),
	}
	if r.Comparison.RebateMessage != nil {
		summary = append(summary, *r.Comparison.RebateMessage)
	}
	summary = append(summary, MetricLabelStyle.Render("Return form: ")+string(r.ITRForm))
	if r.CapitalGains.TotalTax > 0 {
		summary = append(summary, MetricLabelStyle.Render("Capital gains tax: ")+r.CapitalGains.TotalTax.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", strings.Join(summary, "\n"))
}

func regimeCard(title string, taxable domain.Rupees, rr domain.RegimeResult, recommended bool) string {
	style := CardStyle
	if recommended {
		style = RecommendedCardStyle
		title += " ★"
	}

	row := func(label string, v domain.Rupees) string {
		return MetricLabelStyle.Render(fmt.Sprintf("%-16s", label)) + v.String()
	}
	lines := []string{
		MetricValueStyle.Render(title),
		row("Taxable income", taxable),
		row("Deductions", rr.DeductionsUsed),
		row("Slab tax", rr.SlabTax),
		row("Cess", rr.Cess),
	}
	if rr.QualifiesForRebate {
		lines = append(lines, row("87A rebate", rr.Rebate))
	}
	lines = append(lines, MetricValueStyle.Render(fmt.Sprintf("%-16s%s", "Final tax", rr.FinalTaxPayable)))

	return style.Render(strings.Join(lines, "\n"))
}
