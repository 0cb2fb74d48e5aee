package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/domain"
)

// Target selects which knob the solver turns.
type Target string

const (
	// TargetExpenses finds the highest sustainable monthly spending.
	TargetExpenses Target = "expenses"
	// TargetRetirementAge finds the earliest retirement age that still works.
	TargetRetirementAge Target = "retirement_age"
)

// SolverOptions tunes the search.
type SolverOptions struct {
	MaxIterations int
	// Tolerance is the bisection window in man-won per month. The solver
	// stops once the bounds are closer than this.
	Tolerance decimal.Decimal
}

// DefaultSolverOptions returns sensible defaults
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 50,
		Tolerance:     decimal.NewFromInt(1),
	}
}

// Request describes one break-even question.
type Request struct {
	Target Target
	Base   *domain.FinanceState

	// MaxRetirementAge caps the retirement-age search (default 80).
	MaxRetirementAge int
}

// Result is the solver's answer.
type Result struct {
	Target  Target `json:"target"`
	Success bool   `json:"success"`

	// SustainableExpenses is set for TargetExpenses: the highest monthly
	// spending that keeps net worth non-negative through age 90.
	SustainableExpenses decimal.Decimal `json:"sustainableExpenses,omitempty"`

	// EarliestRetirementAge is set for TargetRetirementAge.
	EarliestRetirementAge int `json:"earliestRetirementAge,omitempty"`

	// NetWorthAt90 under the solved parameters.
	NetWorthAt90 decimal.Decimal `json:"netWorthAt90"`

	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo,omitempty"`
}

// BreakEvenError wraps solver failures with the operation that failed.
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("break-even %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("break-even %s: %s", e.Operation, e.Message)
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
