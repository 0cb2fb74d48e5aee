package calculation

import (
	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalZero   = decimal.Zero
	decimalTwelve = decimal.NewFromInt(12)
	decimalTwenty = decimal.NewFromInt(20)
	gapThreshold  = decimal.NewFromFloat(0.7)
)

// CalculateGapScore compares a user's coverage vector against a standard
// vector. Each of the five categories contributes up to 20 points based on
// the coverage ratio, capped at 1 so over-coverage earns no bonus. A
// category counts as gapped when its ratio falls under 70%. The total is
// rounded to the nearest integer once, at the end.
//
// A standard amount of zero counts the category as fully covered; the
// fixed table never contains zeros, but arbitrary standards passed by
// callers must not divide by zero.
func CalculateGapScore(user, standard domain.CoverageVector) domain.AnalysisResult {
	totalScore := decimalZero
	gapCount := 0

	for _, cat := range domain.Categories() {
		stdVal := standard.Amount(cat)
		ratio := decimalOne
		if stdVal.GreaterThan(decimalZero) {
			ratio = user.Amount(cat).Div(stdVal)
			if ratio.GreaterThan(decimalOne) {
				ratio = decimalOne
			}
		}
		totalScore = totalScore.Add(ratio.Mul(decimalTwenty))
		if ratio.LessThan(gapThreshold) {
			gapCount++
		}
	}

	return domain.AnalysisResult{
		Score:    int(totalScore.Round(0).IntPart()),
		GapCount: gapCount,
	}
}
