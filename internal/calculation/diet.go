package calculation

import (
	"fmt"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	dietThreshold     = decimal.NewFromFloat(1.5) // recommend trimming above 150% of standard
	dietTarget        = decimal.NewFromFloat(1.1) // trim down to 110% of standard
	dietHighThreshold = decimal.NewFromInt(2)     // high priority above 200% of standard
	decimalHundred    = decimal.NewFromInt(100)
)

// CalculateDietRecommendations finds categories where coverage exceeds
// 150% of the standard and proposes reducing them to 110% of standard,
// with the estimated monthly premium saved. Categories whose standard is
// zero are skipped outright, which doubles as the divide-by-zero guard.
// An empty result means the portfolio is already lean.
func CalculateDietRecommendations(user, standard domain.CoverageVector) []domain.DietRecommendation {
	recommendations := []domain.DietRecommendation{}
	rates := domain.DefaultPremiumRates()

	for _, cat := range domain.Categories() {
		stdVal := standard.Amount(cat)
		if stdVal.LessThanOrEqual(decimalZero) {
			continue
		}

		amount := user.Amount(cat)
		if !amount.GreaterThan(stdVal.Mul(dietThreshold)) {
			continue
		}

		target := stdVal.Mul(dietTarget).Round(0)
		reduction := amount.Sub(target)

		// Premium rates are per 1,000,000 KRW of coverage; amounts are
		// man-won, so reduction/100 converts to millions.
		savings := reduction.Div(decimalHundred).Mul(rates[cat]).Round(0)

		priority := domain.DietPriorityMedium
		if amount.GreaterThan(stdVal.Mul(dietHighThreshold)) {
			priority = domain.DietPriorityHigh
		}

		pct := amount.Div(stdVal).Mul(decimalHundred).Round(0)
		recommendations = append(recommendations, domain.DietRecommendation{
			Category:         cat,
			CurrentAmount:    amount,
			TargetAmount:     target,
			SavingsPotential: savings,
			Reason: fmt.Sprintf("coverage sits at %s%% of the recommended level (%s man-won), well above the standard",
				pct.String(), stdVal.String()),
			Priority: priority,
		})
	}

	return recommendations
}
