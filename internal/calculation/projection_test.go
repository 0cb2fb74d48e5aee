package calculation

import (
	"reflect"
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

func baseFinanceState() domain.FinanceState {
	return domain.FinanceState{
		Name:            "test",
		Age:             35,
		RetirementAge:   65,
		CurrentIncome:   decimal.NewFromInt(500),
		CurrentExpenses: decimal.NewFromInt(250),
		NationalPension: decimal.NewFromInt(150),
		Assets: domain.FinanceAssets{
			Cash:       decimal.NewFromInt(50000),
			Stock:      decimal.NewFromInt(60000),
			RealEstate: decimal.NewFromInt(30000),
			Pension:    decimal.NewFromInt(10000),
		},
	}
}

func pointAt(points []domain.ProjectionPoint, age int) *domain.ProjectionPoint {
	for i := range points {
		if points[i].Age == age {
			return &points[i]
		}
	}
	return nil
}

func TestProjectNetWorth_Deterministic(t *testing.T) {
	fs := baseFinanceState()
	fs.LifeEvents = []domain.LifeEvent{
		{ID: "e1", Type: domain.LifeEventHouse, Name: "home purchase", Age: 42, Cost: decimal.NewFromInt(20000)},
	}

	first := ProjectNetWorth(fs)
	second := ProjectNetWorth(fs)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical projection series")
	}
}

func TestProjectNetWorth_PositiveAccumulation(t *testing.T) {
	fs := baseFinanceState()
	startAssets := fs.Assets.Total()

	points := ProjectNetWorth(fs)

	at65 := pointAt(points, 65)
	if at65 == nil {
		t.Fatal("retirement age must always be sampled")
	}
	if !at65.NetWorth.GreaterThan(startAssets) {
		t.Errorf("30 years of positive real growth and savings should grow net worth: start %s, age 65 %s",
			startAssets, at65.NetWorth)
	}
}

func TestProjectNetWorth_RetirementTransitionFirstTick(t *testing.T) {
	fs := domain.FinanceState{
		Age:             60,
		RetirementAge:   60,
		CurrentIncome:   decimal.NewFromInt(500),
		CurrentExpenses: decimal.NewFromInt(250),
		NationalPension: decimal.NewFromInt(100),
	}

	points := ProjectNetWorth(fs)

	// Zero starting assets: the first tick is exactly the retired flow,
	// -(250x12) + 100x12 = -1800, never the working-age +3000.
	first := pointAt(points, 60)
	if first == nil {
		t.Fatal("starting age must always be sampled")
	}
	want := decimal.NewFromInt(-1800)
	if !first.NetWorth.Equal(want) {
		t.Errorf("first tick flow = %s, want retired flow %s", first.NetWorth, want)
	}
}

func TestProjectNetWorth_NegativeNetWorthAllowed(t *testing.T) {
	fs := domain.FinanceState{
		Age:             40,
		RetirementAge:   40,
		CurrentExpenses: decimal.NewFromInt(300),
	}

	points := ProjectNetWorth(fs)

	last := points[len(points)-1]
	if last.Age != 90 {
		t.Fatalf("projection must run to age 90 inclusive, last sampled age %d", last.Age)
	}
	if !last.NetWorth.IsNegative() {
		t.Error("a pensionless retiree burning 3600/year must end insolvent; no floor is applied")
	}
}

func TestProjectNetWorth_LifeEventDepressesCurve(t *testing.T) {
	fs := baseFinanceState()

	baseline := ProjectNetWorth(fs)

	fs.LifeEvents = []domain.LifeEvent{
		{ID: "e1", Type: domain.LifeEventHouse, Name: "home purchase", Age: 40, Cost: decimal.NewFromInt(50000)},
	}
	withEvent := ProjectNetWorth(fs)

	at40 := pointAt(withEvent, 40)
	if at40 == nil {
		t.Fatal("event age must be sampled")
	}
	base40 := pointAt(baseline, 40)
	if !at40.NetWorth.LessThan(base40.NetWorth) {
		t.Errorf("event year must show lower net worth: %s vs baseline %s", at40.NetWorth, base40.NetWorth)
	}
	if len(at40.TriggeredEvents) != 1 || at40.TriggeredEvents[0] != "home purchase" {
		t.Errorf("event name should be recorded on the sampled point, got %v", at40.TriggeredEvents)
	}

	// The hole compounds: every later sampled year stays below baseline,
	// and the gap keeps widening.
	prevGap := decimal.Zero
	for _, age := range []int{45, 50, 55, 60, 65, 70, 75, 80, 85, 90} {
		b := pointAt(baseline, age)
		w := pointAt(withEvent, age)
		if b == nil || w == nil {
			t.Fatalf("age %d missing from a projection series", age)
		}
		gap := b.NetWorth.Sub(w.NetWorth)
		if !gap.GreaterThan(prevGap) {
			t.Errorf("age %d: event gap %s did not compound past %s", age, gap, prevGap)
		}
		prevGap = gap
	}
}

func TestProjectNetWorth_EventOutsideHorizonNeverFires(t *testing.T) {
	fs := baseFinanceState()
	fs.LifeEvents = []domain.LifeEvent{
		{ID: "past", Name: "already happened", Age: 30, Cost: decimal.NewFromInt(99999)},
		{ID: "beyond", Name: "beyond horizon", Age: 95, Cost: decimal.NewFromInt(99999)},
	}

	baseline := ProjectNetWorth(baseFinanceState())
	withEvents := ProjectNetWorth(fs)

	if !reflect.DeepEqual(baseline, withEvents) {
		t.Error("events scheduled outside [current age, 90] must not affect the projection")
	}
}

func TestProjectNetWorth_RecurringEventCost(t *testing.T) {
	fs := baseFinanceState()
	fs.LifeEvents = []domain.LifeEvent{
		{
			ID:            "edu",
			Type:          domain.LifeEventEducation,
			Name:          "tuition",
			Age:           45,
			Cost:          decimal.NewFromInt(1000),
			MonthlyCost:   decimal.NewFromInt(100),
			DurationYears: 4,
		},
	}

	oneTimeOnly := baseFinanceState()
	oneTimeOnly.LifeEvents = []domain.LifeEvent{
		{ID: "edu", Type: domain.LifeEventEducation, Name: "tuition", Age: 45, Cost: decimal.NewFromInt(1000)},
	}

	recurring := ProjectNetWorth(fs)
	oneTime := ProjectNetWorth(oneTimeOnly)

	// Four years of 100/month drain 4800 more than the one-time cost
	// alone, visible at age 50 and beyond.
	r50 := pointAt(recurring, 50)
	o50 := pointAt(oneTime, 50)
	if !r50.NetWorth.LessThan(o50.NetWorth) {
		t.Errorf("recurring cost should drain more than one-time cost: %s vs %s", r50.NetWorth, o50.NetWorth)
	}
}

func TestProjectNetWorth_SparseSampling(t *testing.T) {
	fs := baseFinanceState()
	fs.Age = 37
	fs.RetirementAge = 63

	points := ProjectNetWorth(fs)

	sampled := map[int]bool{}
	for _, p := range points {
		sampled[p.Age] = true
	}

	for _, want := range []int{37, 40, 45, 50, 55, 60, 63, 65, 70, 75, 80, 85, 90} {
		if !sampled[want] {
			t.Errorf("age %d should be sampled (multiple of 5, start, or retirement)", want)
		}
	}
	for _, skip := range []int{38, 39, 41, 62, 64} {
		if sampled[skip] {
			t.Errorf("age %d should not be sampled", skip)
		}
	}
}
