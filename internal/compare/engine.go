package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/domain"
	"github.com/covergap/covergap/internal/transform"
)

// CompareEngine orchestrates what-if scenario comparison
type CompareEngine struct {
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a comparison engine with the built-in templates
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseName  string   // Display name for the base scenario
	Templates []string // Template names to apply against the base
}

// Compare projects the base state and each requested template variant.
func (ce *CompareEngine) Compare(base *domain.FinanceState, options CompareOptions) (*ComparisonSet, error) {
	if base == nil {
		return nil, fmt.Errorf("base finance state is required")
	}
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base finance state: %w", err)
	}

	baseName := options.BaseName
	if baseName == "" {
		baseName = "base"
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseName, "Current plan unchanged", base)

	alternatives := make([]ComparisonResult, 0, len(options.Templates))
	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found (available: %v)", templateName, ce.TemplateRegistry.List())
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		alt := ce.MetricsCalculator.CalculateMetrics(template.Name, template.Description, modified)
		ce.MetricsCalculator.DiffFromBase(&baseResult, &alt)
		alternatives = append(alternatives, alt)
	}

	set := &ComparisonSet{
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	set.Recommendations = buildRecommendations(set)
	return set, nil
}

// buildRecommendations derives plain-language takeaways from the deltas.
func buildRecommendations(set *ComparisonSet) []string {
	var recs []string

	var best *ComparisonResult
	for i := range set.AlternativeResults {
		alt := &set.AlternativeResults[i]
		if best == nil || alt.NetWorthAt90.GreaterThan(best.NetWorthAt90) {
			best = alt
		}
	}
	if best != nil && best.NetWorthDiffFromBase.GreaterThan(decimal.Zero) {
		recs = append(recs, fmt.Sprintf("%s improves net worth at 90 the most (%s man-won ahead of the base plan)",
			best.ScenarioName, best.NetWorthDiffFromBase.Round(0)))
	}

	if set.BaseResult.NetWorthAt90.IsNegative() {
		recs = append(recs, "The base plan runs out of money before age 90; consider one of the alternatives")
	}

	for _, alt := range set.AlternativeResults {
		if alt.FreedomReached && !set.BaseResult.FreedomReached {
			recs = append(recs, fmt.Sprintf("%s reaches financial freedom where the base plan does not", alt.ScenarioName))
		}
	}

	return recs
}
