package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/taxease/internal/calculation"
	"github.com/rgehrsitz/taxease/internal/config"
	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/rgehrsitz/taxease/internal/transform"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.TaxEngine
	Parser            *config.InputParser
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine using the engine's tax-year rules
func NewCompareEngine(calcEngine *calculation.TaxEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		Parser:            config.NewInputParserWithRules(calcEngine.Rules),
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(calcEngine.Rules),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Defaults to the file's base, then the first scenario
	Templates        []string // Template names applied to the base scenario
	Transforms       []string // Transform specs applied to the base scenario, one alternative each
}

// Compare computes every scenario in the file, plus one alternative per template
// and transform applied to the base, and compares each against the base.
func (ce *CompareEngine) Compare(ctx context.Context, file *domain.ScenarioFile, options CompareOptions) (*ComparisonSet, error) {
	if file == nil || len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = file.Base
	}
	if baseName == "" {
		baseName = file.Scenarios[0].Name
	}

	var baseScenario *domain.NamedRequest
	for i := range file.Scenarios {
		if file.Scenarios[i].Name == baseName {
			baseScenario = &file.Scenarios[i]
			break
		}
	}
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s: %w", baseName, domain.ErrScenarioNotFound)
	}

	baseResult, err := ce.runScenario(ctx, baseScenario.Name, baseScenario.Description, &baseScenario.Request)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	alternatives := []ComparisonResult{}
	addAlternative := func(name, description string, req *domain.TaxRequest) error {
		alt, err := ce.runScenario(ctx, name, description, req)
		if err != nil {
			return fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
		return nil
	}

	for i := range file.Scenarios {
		sc := &file.Scenarios[i]
		if sc.Name == baseName {
			continue
		}
		if err := addAlternative(sc.Name, sc.Description, &sc.Request); err != nil {
			return nil, err
		}
	}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(&baseScenario.Request, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		if err := addAlternative(baseName+"_"+template.Name, template.Description, modified); err != nil {
			return nil, err
		}
	}

	for _, spec := range options.Transforms {
		t, err := ce.TransformRegistry.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}

		modified, err := transform.ApplyTransforms(&baseScenario.Request, []transform.RequestTransform{t})
		if err != nil {
			return nil, err
		}
		if err := addAlternative(baseName+"_"+t.Name(), t.Description(), modified); err != nil {
			return nil, err
		}
	}

	compSet := &ComparisonSet{
		FinancialYear:      ce.CalcEngine.Rules.Metadata.FinancialYear,
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// runScenario validates, normalizes and computes one request
func (ce *CompareEngine) runScenario(ctx context.Context, name, description string, req *domain.TaxRequest) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}
	if err := ce.Parser.ValidateRequest(req); err != nil {
		return ComparisonResult{}, err
	}

	result := ce.CalcEngine.Compute(ce.Parser.Normalize(req))
	metrics := ce.MetricsCalculator.CalculateMetrics(name, result)
	metrics.Description = description
	return metrics, nil
}
