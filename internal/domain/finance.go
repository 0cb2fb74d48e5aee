package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TrackedAsset is a live-priced position (stock or crypto). Prices are
// sourced externally; the engine only multiplies quantity by the last
// known price when totaling assets.
type TrackedAsset struct {
	ID           string          `yaml:"id" json:"id"`
	Symbol       string          `yaml:"symbol" json:"symbol"`
	Name         string          `yaml:"name" json:"name"`
	Quantity     decimal.Decimal `yaml:"quantity" json:"quantity"`
	CurrentPrice decimal.Decimal `yaml:"current_price" json:"currentPrice"` // man-won per unit
}

// FinanceAssets enumerates the manual asset buckets plus the two tracked
// position lists. Totals always use the explicit field list below rather
// than struct reflection, so adding a non-monetary field can never leak
// into a sum.
type FinanceAssets struct {
	Cash       decimal.Decimal `yaml:"cash" json:"cash"`
	Stock      decimal.Decimal `yaml:"stock" json:"stock"`
	RealEstate decimal.Decimal `yaml:"real_estate" json:"realEstate"`
	Pension    decimal.Decimal `yaml:"pension" json:"pension"`     // private/occupational pension assets
	Insurance  decimal.Decimal `yaml:"insurance" json:"insurance"` // surrender/refund value
	Crypto     decimal.Decimal `yaml:"crypto" json:"crypto"`

	TrackedStocks []TrackedAsset `yaml:"tracked_stocks,omitempty" json:"trackedStocks,omitempty"`
	TrackedCrypto []TrackedAsset `yaml:"tracked_crypto,omitempty" json:"trackedCrypto,omitempty"`
}

// ManualTotal sums the six manual asset buckets.
func (fa FinanceAssets) ManualTotal() decimal.Decimal {
	return fa.Cash.Add(fa.Stock).Add(fa.RealEstate).Add(fa.Pension).Add(fa.Insurance).Add(fa.Crypto)
}

// TrackedTotal sums quantity x current price over both tracked lists.
func (fa FinanceAssets) TrackedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range fa.TrackedStocks {
		total = total.Add(a.Quantity.Mul(a.CurrentPrice))
	}
	for _, a := range fa.TrackedCrypto {
		total = total.Add(a.Quantity.Mul(a.CurrentPrice))
	}
	return total
}

// Total is manual buckets plus tracked positions, in man-won.
func (fa FinanceAssets) Total() decimal.Decimal {
	return fa.ManualTotal().Add(fa.TrackedTotal())
}

// LifeEventType classifies a planned future expense.
type LifeEventType string

const (
	LifeEventMarriage   LifeEventType = "marriage"
	LifeEventChildbirth LifeEventType = "childbirth"
	LifeEventHouse      LifeEventType = "house"
	LifeEventCar        LifeEventType = "car"
	LifeEventEducation  LifeEventType = "education"
	LifeEventOther      LifeEventType = "other"
)

// DefaultLifeEventCost returns the suggested one-time cost in man-won for
// an event type, used to pre-fill newly created events.
func DefaultLifeEventCost(t LifeEventType) decimal.Decimal {
	switch t {
	case LifeEventMarriage:
		return decimal.NewFromInt(3000)
	case LifeEventChildbirth:
		return decimal.NewFromInt(1000)
	case LifeEventHouse:
		return decimal.NewFromInt(50000)
	case LifeEventCar:
		return decimal.NewFromInt(4000)
	case LifeEventEducation:
		return decimal.NewFromInt(5000)
	}
	return decimal.NewFromInt(1000)
}

// LifeEvent is a discrete, user-scheduled future expense. Cost lands once
// at the exact Age tick; MonthlyCost, when set together with
// DurationYears, additionally drains MonthlyCost x 12 per year starting at
// Age for DurationYears years. Events are immutable once created except
// for deletion; ordering is by Age.
type LifeEvent struct {
	ID            string          `yaml:"id" json:"id"`
	Type          LifeEventType   `yaml:"type" json:"type"`
	Name          string          `yaml:"name" json:"name"`
	Age           int             `yaml:"age" json:"age"`
	Cost          decimal.Decimal `yaml:"cost" json:"cost"` // one-time, man-won
	MonthlyCost   decimal.Decimal `yaml:"monthly_cost,omitempty" json:"monthlyCost,omitempty"`
	DurationYears int             `yaml:"duration_years,omitempty" json:"durationYears,omitempty"`
}

// FinanceState is the complete financial snapshot a projection runs over.
// Income, expenses and the national pension are monthly man-won figures.
type FinanceState struct {
	Name            string          `yaml:"name" json:"name"`
	Age             int             `yaml:"age" json:"age"`
	RetirementAge   int             `yaml:"retirement_age" json:"retirementAge"`
	CurrentIncome   decimal.Decimal `yaml:"current_income" json:"currentIncome"`
	CurrentExpenses decimal.Decimal `yaml:"current_expenses" json:"currentExpenses"`
	NationalPension decimal.Decimal `yaml:"national_pension" json:"nationalPension"`
	Assets          FinanceAssets   `yaml:"assets" json:"assets"`
	LifeEvents      []LifeEvent     `yaml:"life_events,omitempty" json:"lifeEvents,omitempty"`
}

// AnnualSavings is (income - expenses) x 12. Negative when spending
// exceeds income.
func (fs FinanceState) AnnualSavings() decimal.Decimal {
	return fs.CurrentIncome.Sub(fs.CurrentExpenses).Mul(decimal.NewFromInt(12))
}

// SavingsRate is annual savings over annual income as a percentage.
// Returns zero for non-positive income rather than dividing by zero.
func (fs FinanceState) SavingsRate() decimal.Decimal {
	if fs.CurrentIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return fs.CurrentIncome.Sub(fs.CurrentExpenses).Div(fs.CurrentIncome).Mul(decimal.NewFromInt(100))
}

// Validate checks structural invariants on a finance state before it
// reaches the projector.
func (fs FinanceState) Validate() error {
	if fs.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if fs.RetirementAge < 0 {
		return fmt.Errorf("retirement age cannot be negative")
	}
	if fs.CurrentIncome.IsNegative() {
		return fmt.Errorf("current income cannot be negative")
	}
	if fs.CurrentExpenses.IsNegative() {
		return fmt.Errorf("current expenses cannot be negative")
	}
	if fs.NationalPension.IsNegative() {
		return fmt.Errorf("national pension cannot be negative")
	}
	for i, ev := range fs.LifeEvents {
		if ev.Age < 0 {
			return fmt.Errorf("life event %d (%s): age cannot be negative", i, ev.Name)
		}
		if ev.Cost.IsNegative() {
			return fmt.Errorf("life event %d (%s): cost cannot be negative", i, ev.Name)
		}
		if ev.MonthlyCost.IsNegative() {
			return fmt.Errorf("life event %d (%s): monthly cost cannot be negative", i, ev.Name)
		}
		if ev.DurationYears < 0 {
			return fmt.Errorf("life event %d (%s): duration cannot be negative", i, ev.Name)
		}
	}
	return nil
}

// DeepCopy returns an independent copy of the finance state. Slices are
// cloned so what-if mutations never leak into the original.
func (fs FinanceState) DeepCopy() FinanceState {
	out := fs
	if fs.LifeEvents != nil {
		out.LifeEvents = make([]LifeEvent, len(fs.LifeEvents))
		copy(out.LifeEvents, fs.LifeEvents)
	}
	if fs.Assets.TrackedStocks != nil {
		out.Assets.TrackedStocks = make([]TrackedAsset, len(fs.Assets.TrackedStocks))
		copy(out.Assets.TrackedStocks, fs.Assets.TrackedStocks)
	}
	if fs.Assets.TrackedCrypto != nil {
		out.Assets.TrackedCrypto = make([]TrackedAsset, len(fs.Assets.TrackedCrypto))
		copy(out.Assets.TrackedCrypto, fs.Assets.TrackedCrypto)
	}
	return out
}

// ProjectionPoint is one sampled year of the net-worth projection.
// Regenerated on every projection request, never persisted.
type ProjectionPoint struct {
	Age             int             `json:"age"`
	NetWorth        decimal.Decimal `json:"netWorth"` // man-won, rounded; may be negative
	TriggeredEvents []string        `json:"triggeredEvents,omitempty"`
}
