package transform

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// AddCapitalGain appends one capital-gain event.
type AddCapitalGain struct {
	Type   domain.GainType
	Asset  string
	Amount decimal.Decimal
}

func (t *AddCapitalGain) Name() string { return "add_gain" }

func (t *AddCapitalGain) Description() string {
	return fmt.Sprintf("Realize %s of %s", domain.FormatINR(t.Amount), strings.TrimSpace(strings.ToUpper(string(t.Type))+" "+t.Asset))
}

func (t *AddCapitalGain) Validate(base *domain.TaxRequest) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("type must be 'stcg' or 'ltcg', got %q", t.Type), domain.ErrInvalidInput)
	}
	return validateAmount(t.Name(), "amount", t.Amount)
}

func (t *AddCapitalGain) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.CapitalGains = append(modified.CapitalGains, domain.CapitalGainRequest{
		Type:   string(t.Type),
		Asset:  t.Asset,
		Amount: ptr(t.Amount),
	})
	return modified, nil
}

// ClearCapitalGains removes every capital-gain event.
type ClearCapitalGains struct{}

func (t *ClearCapitalGains) Name() string { return "clear_gains" }

func (t *ClearCapitalGains) Description() string { return "Defer all capital gains" }

func (t *ClearCapitalGains) Validate(base *domain.TaxRequest) error {
	return validateBase(t.Name(), base)
}

func (t *ClearCapitalGains) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.CapitalGains = nil
	return modified, nil
}

// SetSenior toggles senior-citizen status, which switches 80TTA to 80TTB.
type SetSenior struct {
	Senior bool
}

func (t *SetSenior) Name() string { return "set_senior" }

func (t *SetSenior) Description() string {
	if t.Senior {
		return "Treat the taxpayer as a senior citizen"
	}
	return "Treat the taxpayer as below 60"
}

func (t *SetSenior) Validate(base *domain.TaxRequest) error {
	return validateBase(t.Name(), base)
}

func (t *SetSenior) Apply(base *domain.TaxRequest) (*domain.TaxRequest, error) {
	modified := base.Clone()
	modified.IsSenior = t.Senior
	return modified, nil
}
