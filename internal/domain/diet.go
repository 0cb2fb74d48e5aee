package domain

import "github.com/shopspring/decimal"

// DietPriority ranks how aggressively a coverage reduction should be
// pursued.
type DietPriority string

const (
	DietPriorityHigh   DietPriority = "high"   // coverage above 200% of standard
	DietPriorityMedium DietPriority = "medium" // coverage above 150% of standard
)

// DietRecommendation proposes trimming an over-purchased category down to
// 110% of the standard, with the estimated monthly premium saved.
type DietRecommendation struct {
	Category         Category        `json:"category"`
	CurrentAmount    decimal.Decimal `json:"currentAmount"`    // man-won
	TargetAmount     decimal.Decimal `json:"targetAmount"`     // man-won, rounded 110% of standard
	SavingsPotential decimal.Decimal `json:"savingsPotential"` // estimated monthly premium reduction, KRW
	Reason           string          `json:"reason"`
	Priority         DietPriority    `json:"priority"`
}

// DefaultPremiumRates returns the simplified per-category premium rate
// table: KRW of monthly premium per 1,000,000 KRW of coverage. Indemnity
// (medical) premiums are mostly flat in practice, hence the token rate.
func DefaultPremiumRates() map[Category]decimal.Decimal {
	return map[Category]decimal.Decimal{
		CategoryCancer:  decimal.NewFromInt(120),
		CategoryBrain:   decimal.NewFromInt(150),
		CategoryHeart:   decimal.NewFromInt(150),
		CategoryDeath:   decimal.NewFromInt(40),
		CategoryMedical: decimal.NewFromInt(2),
	}
}
