package domain

import "github.com/shopspring/decimal"

// FinancialHealth is the deep-dive finance diagnosis: savings rate,
// 4%-rule freedom age, and the narrative advice strings derived from
// asset allocation and savings behavior.
type FinancialHealth struct {
	SavingsRate      decimal.Decimal `json:"savingsRate"` // percent
	TargetNetWorth   decimal.Decimal `json:"targetNetWorth"`
	FreedomAge       int             `json:"freedomAge"`
	FreedomReached   bool            `json:"freedomReached"`
	AllocationAdvice string          `json:"allocationAdvice"`
	SavingsAdvice    string          `json:"savingsAdvice"`
}
