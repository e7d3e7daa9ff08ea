package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/taxease/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of request and scenario files
type InputParser struct {
	Rules domain.TaxRules
}

// NewInputParser creates a new input parser for the FY2024-25 rules
func NewInputParser() *InputParser {
	return NewInputParserWithRules(domain.DefaultRulesFY2024_25())
}

// NewInputParserWithRules creates an input parser for a specific tax year
func NewInputParserWithRules(rules domain.TaxRules) *InputParser {
	return &InputParser{Rules: rules}
}

// LoadRequestFromFile loads a calculation request from a YAML or JSON file
func (ip *InputParser) LoadRequestFromFile(filename string) (*domain.TaxRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseRequest(data)
}

// ParseRequest decodes and validates a request document
func (ip *InputParser) ParseRequest(data []byte) (*domain.TaxRequest, error) {
	var req domain.TaxRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest returns a *domain.ValidationError listing every problem, or nil
func (ip *InputParser) ValidateRequest(req *domain.TaxRequest) error {
	return domain.NewValidationError(ValidateWithRules(req, ip.Rules))
}

// Normalize converts a validated request into engine input
func (ip *InputParser) Normalize(req *domain.TaxRequest) domain.FinancialInput {
	return Normalize(req, ip.Rules)
}

// LoadScenariosFromFile loads a scenarios file and validates every request in it
func (ip *InputParser) LoadScenariosFromFile(filename string) (*domain.ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file domain.ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenarios(&file); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &file, nil
}

// ValidateScenarios checks names, the base reference and each request
func (ip *InputParser) ValidateScenarios(file *domain.ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i+1)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i+1, sc.Name)
		}
		seen[sc.Name] = true

		if err := ip.ValidateRequest(&sc.Request); err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	if file.Base == "" {
		file.Base = file.Scenarios[0].Name
	} else if !seen[file.Base] {
		return fmt.Errorf("base %q: %w", file.Base, domain.ErrScenarioNotFound)
	}
	return nil
}
