package breakeven

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/calculation"
	"github.com/covergap/covergap/internal/domain"
	"github.com/covergap/covergap/internal/transform"
)

// Solver answers break-even questions by probing what-if variants of a
// finance state through the projection engine.
type Solver struct {
	Options SolverOptions
}

// NewSolver creates a solver with the given options
func NewSolver(options SolverOptions) *Solver {
	return &Solver{Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultSolverOptions())
}

// Solve routes a request to the matching search. Solvency is judged
// over the projection's sampled points (every fifth age plus the start,
// retirement, and event ages), not every yearly tick; a dip confined to
// an unsampled year does not fail a probe.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.Base == nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "base finance state is required"}
	}
	if err := req.Base.Validate(); err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "invalid base state", Cause: err}
	}

	switch req.Target {
	case TargetExpenses:
		return s.solveSustainableExpenses(ctx, req)
	case TargetRetirementAge:
		return s.solveEarliestRetirement(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// solveSustainableExpenses bisects monthly spending between zero and twice
// the current level, looking for the highest value whose projection never
// goes below zero before age 90.
func (s *Solver) solveSustainableExpenses(ctx context.Context, req Request) (*Result, error) {
	low := decimal.Zero
	high := req.Base.CurrentExpenses.Mul(decimal.NewFromInt(2))
	if high.IsZero() {
		high = req.Base.CurrentIncome.Mul(decimal.NewFromInt(2))
	}
	if high.IsZero() {
		return nil, &BreakEvenError{
			Operation: "sustainable_expenses",
			Message:   "state has neither income nor expenses to bound the search",
		}
	}

	// The floor must itself be survivable, otherwise no spending level works.
	if worth := s.probeExpenses(req.Base, low); worth.IsNegative() {
		return &Result{
			Target:          TargetExpenses,
			Success:         false,
			NetWorthAt90:    worth,
			ConvergenceInfo: "plan is underwater even with zero spending",
		}, nil
	}

	iterations := 0
	for iterations < s.Options.MaxIterations && high.Sub(low).GreaterThan(s.Options.Tolerance) {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := low.Add(high).Div(decimal.NewFromInt(2))
		if worth := s.probeExpenses(req.Base, mid); worth.IsNegative() {
			high = mid
		} else {
			low = mid
		}
	}

	sustainable := low.Round(0)
	solved, err := transform.ApplyTransforms(req.Base, []transform.FinanceTransform{
		&transform.SetExpenses{Amount: sustainable},
	})
	if err != nil {
		return nil, &BreakEvenError{Operation: "sustainable_expenses", Message: "failed to apply solution", Cause: err}
	}
	return &Result{
		Target:              TargetExpenses,
		Success:             true,
		SustainableExpenses: sustainable,
		NetWorthAt90:        finalNetWorth(calculation.ProjectNetWorth(*solved)),
		Iterations:          iterations,
		ConvergenceInfo:     fmt.Sprintf("bisection converged within %s man-won", s.Options.Tolerance),
	}, nil
}

// probeExpenses projects the base with expenses replaced and returns the
// lowest sampled net worth.
func (s *Solver) probeExpenses(base *domain.FinanceState, amount decimal.Decimal) decimal.Decimal {
	modified, err := transform.ApplyTransforms(base, []transform.FinanceTransform{
		&transform.SetExpenses{Amount: amount},
	})
	if err != nil {
		return decimal.NewFromInt(-1)
	}
	return minNetWorth(calculation.ProjectNetWorth(*modified))
}

// solveEarliestRetirement scans retirement ages upward from the current age
// and returns the first one whose projection survives to 90.
func (s *Solver) solveEarliestRetirement(ctx context.Context, req Request) (*Result, error) {
	maxAge := req.MaxRetirementAge
	if maxAge == 0 {
		maxAge = 80
	}

	iterations := 0
	for age := req.Base.Age + 1; age <= maxAge; age++ {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		modified, err := transform.ApplyTransforms(req.Base, []transform.FinanceTransform{
			&transform.SetRetirementAge{Age: age},
		})
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "earliest_retirement",
				Message:   fmt.Sprintf("failed to probe age %d", age),
				Cause:     err,
			}
		}

		if worth := minNetWorth(calculation.ProjectNetWorth(*modified)); !worth.IsNegative() {
			return &Result{
				Target:                TargetRetirementAge,
				Success:               true,
				EarliestRetirementAge: age,
				NetWorthAt90:          finalNetWorth(calculation.ProjectNetWorth(*modified)),
				Iterations:            iterations,
			}, nil
		}
	}

	return &Result{
		Target:          TargetRetirementAge,
		Success:         false,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("no retirement age up to %d survives to 90", maxAge),
	}, nil
}

func minNetWorth(points []domain.ProjectionPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	min := points[0].NetWorth
	for _, p := range points[1:] {
		if p.NetWorth.LessThan(min) {
			min = p.NetWorth
		}
	}
	return min
}

func finalNetWorth(points []domain.ProjectionPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	return points[len(points)-1].NetWorth
}
