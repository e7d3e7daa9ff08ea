package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (RequestTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_salary", createSetGrossSalary)
	registry.Register("raise_salary", createRaiseSalary)
	registry.Register("set_80c", createSetChapter6A)
	registry.Register("add_80c", createAddChapter6A)
	registry.Register("set_employer_nps", createSetEmployerNPS)
	registry.Register("employer_nps_share", createEmployerNPSShare)
	registry.Register("set_other_deductions", createSetOtherDeductions)
	registry.Register("add_gain", createAddCapitalGain)
	registry.Register("clear_gains", func(map[string]string) (RequestTransform, error) { return &ClearCapitalGains{}, nil })
	registry.Register("set_senior", createSetSenior)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (RequestTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in alphabetical order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "add_gain:type=ltcg,asset=equity,amount=250000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (RequestTransform, error) {
	name, paramsStr, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	paramsStr = strings.TrimSpace(paramsStr)

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			key, value, ok := strings.Cut(paramPair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	return r.Create(name, params)
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return value, nil
}

// Factory functions for each transform

func createSetGrossSalary(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("set_salary", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetGrossSalary{Amount: amount}, nil
}

func createRaiseSalary(params map[string]string) (RequestTransform, error) {
	pct, err := decimalParam("raise_salary", params, "percent")
	if err != nil {
		return nil, err
	}
	return &RaiseSalary{Percent: pct}, nil
}

func createSetChapter6A(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("set_80c", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetChapter6A{Amount: amount}, nil
}

func createAddChapter6A(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("add_80c", params, "amount")
	if err != nil {
		return nil, err
	}
	t := &AddChapter6A{Amount: amount}
	if _, ok := params["cap"]; ok {
		if t.Cap, err = decimalParam("add_80c", params, "cap"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func createSetEmployerNPS(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("set_employer_nps", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetEmployerNPS{Amount: amount}, nil
}

func createEmployerNPSShare(params map[string]string) (RequestTransform, error) {
	share, err := decimalParam("employer_nps_share", params, "share")
	if err != nil {
		return nil, err
	}
	return &EmployerNPSShare{Share: share}, nil
}

func createSetOtherDeductions(params map[string]string) (RequestTransform, error) {
	amount, err := decimalParam("set_other_deductions", params, "amount")
	if err != nil {
		return nil, err
	}
	return &SetOtherDeductions{Amount: amount}, nil
}

func createAddCapitalGain(params map[string]string) (RequestTransform, error) {
	kind, ok := params["type"]
	if !ok {
		return nil, fmt.Errorf("add_gain requires 'type' parameter")
	}
	amount, err := decimalParam("add_gain", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AddCapitalGain{
		Type:   domain.GainType(strings.ToLower(kind)),
		Asset:  params["asset"],
		Amount: amount,
	}, nil
}

func createSetSenior(params map[string]string) (RequestTransform, error) {
	raw, ok := params["senior"]
	if !ok {
		return &SetSenior{Senior: true}, nil
	}
	senior, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid senior value: %w", err)
	}
	return &SetSenior{Senior: senior}, nil
}
