package domain

import "github.com/shopspring/decimal"

// InsuranceBenchmark compares a user's situation against the market:
// Average mirrors the standard table, Top10 is what the best-protected
// decile typically carries.
type InsuranceBenchmark struct {
	Average CoverageVector `json:"average"`
	Top10   CoverageVector `json:"top10"`
}

// FinanceTier is one comparison row of the financial benchmark. Amounts
// are man-won; the savings rate is a percentage.
type FinanceTier struct {
	TotalAssets    decimal.Decimal `json:"totalAssets"`
	MonthlySavings decimal.Decimal `json:"monthlySavings"`
	SavingsRatePct decimal.Decimal `json:"savingsRatePct"`
}

// FinanceBenchmark holds the two static financial comparison tiers used
// for narrative commentary. These are fixed reference figures, not
// derived from user data.
type FinanceBenchmark struct {
	Average FinanceTier `json:"average"`
	Top10   FinanceTier `json:"top10"`
}

// Benchmark is the mode-tagged union returned to report layers. Exactly
// one of Insurance or Finance is set, matching Mode.
type Benchmark struct {
	Mode      Mode                `json:"mode"`
	Insurance *InsuranceBenchmark `json:"insurance,omitempty"`
	Finance   *FinanceBenchmark   `json:"finance,omitempty"`
}

// DefaultFinanceBenchmark returns the fixed financial comparison tiers.
func DefaultFinanceBenchmark() FinanceBenchmark {
	return FinanceBenchmark{
		Average: FinanceTier{
			TotalAssets:    decimal.NewFromInt(25000),
			MonthlySavings: decimal.NewFromInt(80),
			SavingsRatePct: decimal.NewFromInt(20),
		},
		Top10: FinanceTier{
			TotalAssets:    decimal.NewFromInt(120000),
			MonthlySavings: decimal.NewFromInt(350),
			SavingsRatePct: decimal.NewFromInt(45),
		},
	}
}
