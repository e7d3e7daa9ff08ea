package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxEngine computes liability under both regimes and recommends one.
// It holds only immutable rules, a logger and a clock, so one engine can
// serve concurrent callers.
type TaxEngine struct {
	Rules  domain.TaxRules
	Logger Logger
	Now    func() time.Time

	oldSlabs *SlabCalculator
	newSlabs *SlabCalculator
	gains    *CapitalGainsCalculator
}

// NewTaxEngine creates an engine with the FY2024-25 rules
func NewTaxEngine() *TaxEngine {
	return NewTaxEngineWithRules(domain.DefaultRulesFY2024_25())
}

// NewTaxEngineWithRules creates an engine for a specific tax year
func NewTaxEngineWithRules(rules domain.TaxRules) *TaxEngine {
	return &TaxEngine{
		Rules:    rules,
		Logger:   NopLogger{},
		Now:      time.Now,
		oldSlabs: NewSlabCalculator(rules.OldRegime.Slabs),
		newSlabs: NewSlabCalculator(rules.NewRegime.Slabs),
		gains:    NewCapitalGainsCalculator(rules.CapitalGains),
	}
}

// SetLogger installs a logger; nil restores the no-op logger
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// regimeComputation keeps the unrounded figures of one regime
type regimeComputation struct {
	Deductions   decimal.Decimal
	Taxable      decimal.Decimal
	Slabs        SlabResult
	CapitalGains decimal.Decimal
	BeforeCess   decimal.Decimal
	Cess         decimal.Decimal
	Total        decimal.Decimal
	Rebate       decimal.Decimal
	Qualifies    bool
	Final        decimal.Decimal
}

func (rc regimeComputation) result() domain.RegimeResult {
	return domain.RegimeResult{
		DeductionsUsed:     domain.RoundRupees(rc.Deductions),
		SlabTax:            domain.RoundRupees(rc.Slabs.Tax),
		SlabBreakdown:      rc.Slabs.Lines(),
		CapitalGainsTax:    domain.RoundRupees(rc.CapitalGains),
		TaxBeforeCess:      domain.RoundRupees(rc.BeforeCess),
		Cess:               domain.RoundRupees(rc.Cess),
		TaxTotal:           domain.RoundRupees(rc.Total),
		Rebate:             domain.RoundRupees(rc.Rebate),
		QualifiesForRebate: rc.Qualifies,
		FinalTaxPayable:    domain.RoundRupees(rc.Final),
	}
}

// InterestExemption returns the 80TTA/80TTB exemption and the interest left taxable
func (te *TaxEngine) InterestExemption(input domain.FinancialInput) (exempt, taxable decimal.Decimal) {
	total := input.TotalInterest()
	if input.IsSenior {
		exempt = decimal.Min(te.Rules.InterestExemption.SeniorLimit, total)
	} else {
		exempt = decimal.Min(te.Rules.InterestExemption.GeneralLimit, input.InterestSavings)
	}
	exempt = decimal.Max(exempt, decimal.Zero)
	taxable = decimal.Max(decimal.Zero, total.Sub(exempt))
	return exempt, taxable
}

// Compute runs the full calculation. It never fails for normalized input.
func (te *TaxEngine) Compute(input domain.FinancialInput) *domain.ComputationResult {
	input.CapitalGains = append([]domain.CapitalGainEvent(nil), input.CapitalGains...)

	exempt, taxableInterest := te.InterestExemption(input)
	te.Logger.Debugf("interest exemption=%s taxable interest=%s", exempt, taxableInterest)

	gains := te.gains.Calculate(input.CapitalGains)
	cgTax := gains.Total()
	te.Logger.Debugf("capital gains per-event=%s equity ltcg=%s total=%s", gains.PerEventTax, gains.LTCGEquityTax, cgTax)

	oldDeductions := input.StandardDeduction.
		Add(input.Chapter6ADeductions).
		Add(input.OtherDeductions).
		Add(exempt).
		Add(input.EmployerNPS)
	oldRegime := te.computeRegime(input.GrossSalary, oldDeductions, taxableInterest, te.oldSlabs, cgTax)
	te.Logger.Debugf("old regime: taxable=%s slab=%s cess=%s final=%s", oldRegime.Taxable, oldRegime.Slabs.Tax, oldRegime.Cess, oldRegime.Final)

	newDeductions := input.StandardDeduction.
		Add(input.EmployerNPS).
		Add(exempt)
	newRegime := te.computeRegime(input.GrossSalary, newDeductions, taxableInterest, te.newSlabs, cgTax)
	te.Logger.Debugf("new regime: taxable=%s slab=%s cess=%s final=%s", newRegime.Taxable, newRegime.Slabs.Tax, newRegime.Cess, newRegime.Final)

	comparison := te.compare(oldRegime, newRegime)

	itr := domain.ITR1
	if input.HasCapitalGains() || input.HasVDA {
		itr = domain.ITR2
	}

	return &domain.ComputationResult{
		Inputs: input,
		Taxable: domain.TaxableIncome{
			TaxableOld: domain.RoundRupees(oldRegime.Taxable),
			TaxableNew: domain.RoundRupees(newRegime.Taxable),
		},
		CapitalGains: gains.Summary(),
		OldRegime:    oldRegime.result(),
		NewRegime:    newRegime.result(),
		Comparison:   comparison,
		ITRForm:      itr,
		Metadata: domain.Metadata{
			FinancialYear:  te.Rules.Metadata.FinancialYear,
			AssessmentYear: te.Rules.Metadata.AssessmentYear,
			CalculatedAt:   te.Now().UTC(),
		},
	}
}

// computeRegime applies deductions, slabs, capital gains, cess and the 87A rebate
func (te *TaxEngine) computeRegime(gross, deductions, taxableInterest decimal.Decimal, slabs *SlabCalculator, cgTax decimal.Decimal) regimeComputation {
	rc := regimeComputation{
		Deductions:   deductions,
		CapitalGains: cgTax,
	}
	rc.Taxable = decimal.Max(decimal.Zero, gross.Sub(deductions)).Add(taxableInterest)
	rc.Slabs = slabs.Calculate(rc.Taxable)
	rc.BeforeCess = rc.Slabs.Tax.Add(cgTax)
	rc.Cess = rc.BeforeCess.Mul(te.Rules.CessRate)
	rc.Total = rc.BeforeCess.Add(rc.Cess)

	if rc.Taxable.LessThanOrEqual(te.Rules.Rebate.IncomeThreshold) {
		rc.Qualifies = true
		rc.Rebate = decimal.Min(te.Rules.Rebate.MaxRebate, rc.Total)
	}
	rc.Final = decimal.Max(decimal.Zero, rc.Total.Sub(rc.Rebate))
	return rc
}

// compare recommends the cheaper regime. Ties go to the old regime and the
// percentage is always taken against the old-regime tax.
func (te *TaxEngine) compare(oldRegime, newRegime regimeComputation) domain.Comparison {
	savings := oldRegime.Final.Sub(newRegime.Final)

	recommended := domain.RegimeOld
	if savings.IsPositive() {
		recommended = domain.RegimeNew
	}

	var pct int64
	if oldRegime.Final.IsPositive() {
		pct = savings.Abs().Div(oldRegime.Final).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}

	var msg *string
	if newRegime.Qualifies && recommended == domain.RegimeNew {
		s := fmt.Sprintf("🎉 New Regime: Section 87A rebate reduces tax from %s to %s",
			domain.FormatINR(newRegime.Total), domain.FormatINR(newRegime.Final))
		msg = &s
	}

	return domain.Comparison{
		Savings:           domain.RoundRupees(savings.Abs()),
		Recommended:       recommended,
		SavingsPercentage: pct,
		RebateMessage:     msg,
	}
}
