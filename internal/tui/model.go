package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
)

// field is one editable amount of the form
type field struct {
	label string
	get   func(*domain.TaxRequest) *decimal.Decimal
	set   func(*domain.TaxRequest, *decimal.Decimal)
}

const stdDeductionField = 1

var fields = []field{
	{"Gross Salary",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.GrossSalary },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.GrossSalary = v }},
	{"Standard Deduction",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.StandardDeduction },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.StandardDeduction = v }},
	{"Chapter VI-A",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.Chapter6ADeductions },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.Chapter6ADeductions = v }},
	{"Other Deductions",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.OtherDeductions },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.OtherDeductions = v }},
	{"Employer NPS",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.EmployerNPS },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.EmployerNPS = v }},
	{"Savings Interest",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.InterestSavings },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.InterestSavings = v }},
	{"FD Interest",
		func(r *domain.TaxRequest) *decimal.Decimal { return r.InterestFD },
		func(r *domain.TaxRequest, v *decimal.Decimal) { r.InterestFD = v }},
}

// Model is the interactive calculator. Every edit re-runs the engine.
type Model struct {
	engine *calculation.TaxEngine
	parser *config.InputParser

	inputs       []textinput.Model
	focus        int
	isSenior     bool
	hasVDA       bool
	capitalGains []domain.CapitalGainRequest

	result *domain.ComputationResult
	errs   []string

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates the calculator pre-filled from req, which may be nil
func NewModel(engine *calculation.TaxEngine, req *domain.TaxRequest) Model {
	if req == nil {
		req = &domain.TaxRequest{}
	}

	m := Model{
		engine:       engine,
		parser:       config.NewInputParserWithRules(engine.Rules),
		inputs:       make([]textinput.Model, len(fields)),
		isSenior:     req.IsSenior,
		hasVDA:       req.HasVDA,
		capitalGains: req.Clone().CapitalGains,
		keys:         defaultKeyMap(),
		help:         help.New(),
		width:        100,
		height:       30,
	}

	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 15
		ti.Width = 16
		if v := f.get(req); v != nil {
			ti.SetValue(v.String())
		}
		m.inputs[i] = ti
	}
	m.inputs[stdDeductionField].Placeholder = domain.FormatINR(engine.Rules.DefaultStandardDeduction) + " (default)"
	m.inputs[0].Focus()

	m.recompute()
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the latest computation, or nil while the form is invalid
func (m Model) Result() *domain.ComputationResult {
	return m.result
}

// Errors returns the messages that currently block the calculation
func (m Model) Errors() []string {
	return m.errs
}

// Focused returns the index of the field being edited
func (m Model) Focused() int {
	return m.focus
}

// Request builds the request the form currently describes
func (m Model) Request() (*domain.TaxRequest, []string) {
	req := &domain.TaxRequest{
		IsSenior:     m.isSenior,
		HasVDA:       m.hasVDA,
		CapitalGains: m.capitalGains,
	}

	var errs []string
	for i, f := range fields {
		raw := strings.ReplaceAll(strings.TrimSpace(m.inputs[i].Value()), ",", "")
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a number", f.label))
			continue
		}
		f.set(req, &v)
	}
	return req, errs
}

func (m *Model) recompute() {
	req, errs := m.Request()
	if len(errs) == 0 {
		errs = config.ValidateWithRules(req, m.engine.Rules)
	}

	m.errs = errs
	if len(errs) > 0 {
		m.result = nil
		return
	}
	m.result = m.engine.Compute(m.parser.Normalize(req))
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}
