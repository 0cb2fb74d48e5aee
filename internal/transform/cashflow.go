package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/covergap/covergap/internal/domain"
)

// AdjustIncome scales monthly income by a percentage. Positive percent
// raises income, negative lowers it.
type AdjustIncome struct {
	Percent decimal.Decimal
}

func (ai *AdjustIncome) Name() string {
	return "adjust_income"
}

func (ai *AdjustIncome) Description() string {
	return fmt.Sprintf("Adjust monthly income by %s%%", ai.Percent.StringFixed(0))
}

func (ai *AdjustIncome) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(ai.Name(), "validate", "base state cannot be nil", nil)
	}
	if ai.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return NewTransformError(ai.Name(), "validate",
			fmt.Sprintf("percent must be above -100, got %s", ai.Percent), nil)
	}
	return nil
}

func (ai *AdjustIncome) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	modified.CurrentIncome = scaleByPercent(modified.CurrentIncome, ai.Percent)
	return &modified, nil
}

// AdjustExpenses scales monthly expenses by a percentage.
type AdjustExpenses struct {
	Percent decimal.Decimal
}

func (ae *AdjustExpenses) Name() string {
	return "adjust_expenses"
}

func (ae *AdjustExpenses) Description() string {
	return fmt.Sprintf("Adjust monthly expenses by %s%%", ae.Percent.StringFixed(0))
}

func (ae *AdjustExpenses) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(ae.Name(), "validate", "base state cannot be nil", nil)
	}
	if ae.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return NewTransformError(ae.Name(), "validate",
			fmt.Sprintf("percent must be above -100, got %s", ae.Percent), nil)
	}
	return nil
}

func (ae *AdjustExpenses) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	modified.CurrentExpenses = scaleByPercent(modified.CurrentExpenses, ae.Percent)
	return &modified, nil
}

// SetExpenses replaces monthly expenses with an absolute amount. The
// break-even solver uses this to probe candidate spending levels.
type SetExpenses struct {
	Amount decimal.Decimal
}

func (se *SetExpenses) Name() string {
	return "set_expenses"
}

func (se *SetExpenses) Description() string {
	return fmt.Sprintf("Set monthly expenses to %s man-won", se.Amount.StringFixed(0))
}

func (se *SetExpenses) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(se.Name(), "validate", "base state cannot be nil", nil)
	}
	if se.Amount.IsNegative() {
		return NewTransformError(se.Name(), "validate",
			fmt.Sprintf("amount cannot be negative, got %s", se.Amount), nil)
	}
	return nil
}

func (se *SetExpenses) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	modified.CurrentExpenses = se.Amount
	return &modified, nil
}

// AddLifeEvent appends a planned life event to the state.
type AddLifeEvent struct {
	Event domain.LifeEvent
}

func (al *AddLifeEvent) Name() string {
	return "add_life_event"
}

func (al *AddLifeEvent) Description() string {
	return fmt.Sprintf("Add life event %q at age %d", al.Event.Name, al.Event.Age)
}

func (al *AddLifeEvent) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(al.Name(), "validate", "base state cannot be nil", nil)
	}
	if al.Event.Age < 0 {
		return NewTransformError(al.Name(), "validate",
			fmt.Sprintf("event age cannot be negative, got %d", al.Event.Age), nil)
	}
	if al.Event.Cost.IsNegative() {
		return NewTransformError(al.Name(), "validate", "event cost cannot be negative", nil)
	}
	return nil
}

func (al *AddLifeEvent) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	event := al.Event
	if event.Cost.IsZero() && event.MonthlyCost.IsZero() {
		event.Cost = domain.DefaultLifeEventCost(event.Type)
	}
	modified.LifeEvents = append(modified.LifeEvents, event)
	return &modified, nil
}

func scaleByPercent(v, percent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(percent.Div(decimal.NewFromInt(100)))
	return v.Mul(factor)
}
