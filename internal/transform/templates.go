package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/taxease/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []RequestTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names in alphabetical order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common tax-planning moves.
// Limits come from the given tax-year rules.
func CreateBuiltInTemplates(rules domain.TaxRules) *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "max_80c",
		Description: fmt.Sprintf("Claim the full Chapter VI-A limit of %s", domain.FormatINR(rules.Chapter6ACap)),
		Transforms: []RequestTransform{
			&SetChapter6A{Amount: rules.Chapter6ACap},
		},
	})

	registry.Register(Template{
		Name:        "health_cover",
		Description: fmt.Sprintf("Buy health cover worth %s under 80D", domain.FormatINR(rules.Suggestions.Section80DLimit)),
		Transforms: []RequestTransform{
			&AddChapter6A{Amount: rules.Suggestions.Section80DLimit, Cap: rules.Chapter6ACap},
		},
	})

	registry.Register(Template{
		Name:        "employer_nps_10",
		Description: "Route 10% of salary through employer NPS",
		Transforms: []RequestTransform{
			&EmployerNPSShare{Share: decimal.NewFromFloat(0.10)},
		},
	})

	registry.Register(Template{
		Name:        "defer_gains",
		Description: "Defer all capital gains to a later year",
		Transforms: []RequestTransform{
			&ClearCapitalGains{},
		},
	})

	registry.Register(Template{
		Name:        "raise_10",
		Description: "Salary raise of 10%",
		Transforms: []RequestTransform{
			&RaiseSalary{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "tax_saver",
		Description: "Full Chapter VI-A limit + 10% employer NPS",
		Transforms: []RequestTransform{
			&SetChapter6A{Amount: rules.Chapter6ACap},
			&EmployerNPSShare{Share: decimal.NewFromFloat(0.10)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base request
func ApplyTemplate(base *domain.TaxRequest, template Template) (*domain.TaxRequest, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")
	for _, name := range registry.List() {
		t := registry.templates[name]
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", t.Name, t.Description))
	}
	return sb.String()
}
