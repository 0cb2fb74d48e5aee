package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/domain"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []FinanceTransform
}

// NewTemplateRegistry creates an empty registry
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

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTemplate applies a template's transforms to a base state.
func ApplyTemplate(base *domain.FinanceState, t Template) (*domain.FinanceState, error) {
	modified, err := ApplyTransforms(base, t.Transforms)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", t.Name, err)
	}
	return modified, nil
}

// CreateBuiltInTemplates builds the registry of common what-if scenarios.
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "postpone_1yr",
		Description: "Postpone retirement by 1 year",
		Transforms: []FinanceTransform{
			&PostponeRetirement{Years: 1},
		},
	})

	registry.Register(Template{
		Name:        "postpone_3yr",
		Description: "Postpone retirement by 3 years",
		Transforms: []FinanceTransform{
			&PostponeRetirement{Years: 3},
		},
	})

	registry.Register(Template{
		Name:        "postpone_5yr",
		Description: "Postpone retirement by 5 years",
		Transforms: []FinanceTransform{
			&PostponeRetirement{Years: 5},
		},
	})

	registry.Register(Template{
		Name:        "retire_55",
		Description: "Retire at age 55",
		Transforms: []FinanceTransform{
			&SetRetirementAge{Age: 55},
		},
	})

	registry.Register(Template{
		Name:        "retire_60",
		Description: "Retire at age 60",
		Transforms: []FinanceTransform{
			&SetRetirementAge{Age: 60},
		},
	})

	registry.Register(Template{
		Name:        "spend_less_10",
		Description: "Cut monthly expenses by 10%",
		Transforms: []FinanceTransform{
			&AdjustExpenses{Percent: decimal.NewFromInt(-10)},
		},
	})

	registry.Register(Template{
		Name:        "spend_less_20",
		Description: "Cut monthly expenses by 20%",
		Transforms: []FinanceTransform{
			&AdjustExpenses{Percent: decimal.NewFromInt(-20)},
		},
	})

	registry.Register(Template{
		Name:        "earn_more_10",
		Description: "Raise monthly income by 10%",
		Transforms: []FinanceTransform{
			&AdjustIncome{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "frugal_retirement",
		Description: "Retire at 60 while cutting expenses by 20%",
		Transforms: []FinanceTransform{
			&SetRetirementAge{Age: 60},
			&AdjustExpenses{Percent: decimal.NewFromInt(-20)},
		},
	})

	return registry
}
