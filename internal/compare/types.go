package compare

import (
	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/calculation"
	"github.com/covergap/covergap/internal/domain"
)

// ComparisonResult holds the projected outcome of one what-if scenario.
type ComparisonResult struct {
	ScenarioName string `json:"scenarioName"`
	Description  string `json:"description"`

	// Key metrics
	RetirementAge        int             `json:"retirementAge"`
	NetWorthAtRetirement decimal.Decimal `json:"netWorthAtRetirement"`
	NetWorthAt90         decimal.Decimal `json:"netWorthAt90"`
	FreedomAge           int             `json:"freedomAge"`
	FreedomReached       bool            `json:"freedomReached"`
	SavingsRate          decimal.Decimal `json:"savingsRate"` // percent

	// Comparison to base
	NetWorthDiffFromBase decimal.Decimal `json:"netWorthDiffFromBase"`
	NetWorthPctFromBase  decimal.Decimal `json:"netWorthPctFromBase"`

	Projection []domain.ProjectionPoint `json:"projection,omitempty"`
}

// ComparisonSet is one base scenario plus its alternatives.
type ComparisonSet struct {
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts comparison metrics from a projected state.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics projects a finance state and summarizes the outcome.
func (mc *MetricsCalculator) CalculateMetrics(name, description string, fs *domain.FinanceState) ComparisonResult {
	points := calculation.ProjectNetWorth(*fs)
	health := calculation.CalculateFinancialHealth(*fs)

	result := ComparisonResult{
		ScenarioName:   name,
		Description:    description,
		RetirementAge:  fs.RetirementAge,
		FreedomAge:     health.FreedomAge,
		FreedomReached: health.FreedomReached,
		SavingsRate:    health.SavingsRate,
		Projection:     points,
	}

	// An already-retired state has no sampled point at the retirement
	// age; the starting point stands in for it.
	found := false
	for _, p := range points {
		if p.Age == fs.RetirementAge {
			result.NetWorthAtRetirement = p.NetWorth
			found = true
		}
	}
	if len(points) > 0 {
		if !found {
			result.NetWorthAtRetirement = points[0].NetWorth
		}
		result.NetWorthAt90 = points[len(points)-1].NetWorth
	}

	return result
}

// DiffFromBase fills in the delta fields of alt relative to base.
func (mc *MetricsCalculator) DiffFromBase(base *ComparisonResult, alt *ComparisonResult) {
	alt.NetWorthDiffFromBase = alt.NetWorthAt90.Sub(base.NetWorthAt90)
	if !base.NetWorthAt90.IsZero() {
		alt.NetWorthPctFromBase = alt.NetWorthDiffFromBase.
			Div(base.NetWorthAt90.Abs()).
			Mul(decimal.NewFromInt(100))
	}
}
