package transform

import (
	"fmt"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

func validateBase(name string, base *domain.TaxRequest) error {
	if base == nil {
		return NewTransformError(name, "validate", "base request cannot be nil", nil)
	}
	return nil
}

func validateAmount(name, field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewTransformError(name, "validate", fmt.Sprintf("%s must be non-negative, got %s", field, amount), domain.ErrInvalidInput)
	}
	return nil
}

func valueOf(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// SetGrossSalary replaces the gross salary.
type SetGrossSalary struct {
	Amount decimal.Decimal
}

func (t *SetGrossSalary) Name() string { return "set_salary" }

func (t *SetGrossSalary) Description() string {
	return fmt.Sprintf("Set gross salary to %s", domain.FormatINR(t.Amount))
}

func (t *SetGrossSalary) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	return validateAmount(t.Name(), "amount", t.Amount)
}

func (t *SetGrossSalary) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.GrossSalary = ptr(t.Amount)
	return modified, nil
}

// RaiseSalary scales the gross salary by a percentage (10 means +10%).
// The raised salary is rounded to the rupee.
type RaiseSalary struct {
	Percent decimal.Decimal
}

func (t *RaiseSalary) Name() string { return "raise_salary" }

func (t *RaiseSalary) Description() string {
	return fmt.Sprintf("Raise gross salary by %s%%", t.Percent)
}

func (t *RaiseSalary) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	if base.GrossSalary == nil {
		return NewTransformError(t.Name(), "validate", "base request has no gross salary", domain.ErrInvalidInput)
	}
	if t.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be greater than -100, got %s", t.Percent), domain.ErrInvalidInput)
	}
	return nil
}

func (t *RaiseSalary) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	factor := decimal.NewFromInt(1).Add(t.Percent.Div(decimal.NewFromInt(100)))
	modified.GrossSalary = ptr(base.GrossSalary.Mul(factor).Round(0))
	return modified, nil
}

// SetChapter6A replaces the Chapter VI-A deductions (80C, 80D and similar).
type SetChapter6A struct {
	Amount decimal.Decimal
}

func (t *SetChapter6A) Name() string { return "set_80c" }

func (t *SetChapter6A) Description() string {
	return fmt.Sprintf("Claim %s of Chapter VI-A deductions", domain.FormatINR(t.Amount))
}

func (t *SetChapter6A) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	return validateAmount(t.Name(), "amount", t.Amount)
}

func (t *SetChapter6A) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.Chapter6ADeductions = ptr(t.Amount)
	return modified, nil
}

// AddChapter6A adds to the Chapter VI-A deductions without passing Cap.
// A zero Cap means no cap.
type AddChapter6A struct {
	Amount decimal.Decimal
	Cap    decimal.Decimal
}

func (t *AddChapter6A) Name() string { return "add_80c" }

func (t *AddChapter6A) Description() string {
	return fmt.Sprintf("Add %s of Chapter VI-A deductions", domain.FormatINR(t.Amount))
}

func (t *AddChapter6A) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	if err := validateAmount(t.Name(), "amount", t.Amount); err != nil {
		return err
	}
	return validateAmount(t.Name(), "cap", t.Cap)
}

func (t *AddChapter6A) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	total := valueOf(base.Chapter6ADeductions).Add(t.Amount)
	if t.Cap.IsPositive() {
		total = decimal.Min(total, t.Cap)
	}
	modified.Chapter6ADeductions = ptr(total)
	return modified, nil
}

// SetEmployerNPS replaces the employer NPS contribution.
type SetEmployerNPS struct {
	Amount decimal.Decimal
}

func (t *SetEmployerNPS) Name() string { return "set_employer_nps" }

func (t *SetEmployerNPS) Description() string {
	return fmt.Sprintf("Set employer NPS contribution to %s", domain.FormatINR(t.Amount))
}

func (t *SetEmployerNPS) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	return validateAmount(t.Name(), "amount", t.Amount)
}

func (t *SetEmployerNPS) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.EmployerNPS = ptr(t.Amount)
	return modified, nil
}

// EmployerNPSShare sets the employer NPS contribution to a share of gross salary.
type EmployerNPSShare struct {
	Share decimal.Decimal // 0.10 for 10%
}

func (t *EmployerNPSShare) Name() string { return "employer_nps_share" }

func (t *EmployerNPSShare) Description() string {
	return fmt.Sprintf("Route %s of salary through employer NPS", domain.FormatRate(t.Share))
}

func (t *EmployerNPSShare) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	if t.Share.IsNegative() || t.Share.GreaterThan(decimal.NewFromInt(1)) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("share must be between 0 and 1, got %s", t.Share), domain.ErrInvalidInput)
	}
	return nil
}

func (t *EmployerNPSShare) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.EmployerNPS = ptr(valueOf(base.GrossSalary).Mul(t.Share).Round(0))
	return modified, nil
}

// SetOtherDeductions replaces deductions such as home-loan interest (24b).
type SetOtherDeductions struct {
	Amount decimal.Decimal
}

func (t *SetOtherDeductions) Name() string { return "set_other_deductions" }

func (t *SetOtherDeductions) Description() string {
	return fmt.Sprintf("Set other deductions to %s", domain.FormatINR(t.Amount))
}

func (t *SetOtherDeductions) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	return validateAmount(t.Name(), "amount", t.Amount)
}

func (t *SetOtherDeductions) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.OtherDeductions = ptr(t.Amount)
	return modified, nil
}
