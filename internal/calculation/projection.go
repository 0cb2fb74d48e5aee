package calculation

import (
	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

// Projection constants. The growth rate is real (inflation-adjusted):
// nominal 5% deflated by 3% inflation, roughly 1.94% a year, so the curve
// reads in today's purchasing power.
var (
	nominalInvestmentRate = decimal.NewFromFloat(0.05)
	inflationRate         = decimal.NewFromFloat(0.03)
)

// ProjectionEndAge is the fixed horizon all projections run to,
// inclusive.
const ProjectionEndAge = 90

func realRate() decimal.Decimal {
	return decimalOne.Add(nominalInvestmentRate).Div(decimalOne.Add(inflationRate)).Sub(decimalOne)
}

// ProjectNetWorth simulates net worth year by year from the current age
// to age 90. Each tick compounds the prior balance at the real rate
// first, then applies that year's cash flow and any life-event costs.
// While working the flow is (income - expenses) x 12; from retirement age
// onward income stops, the national pension starts, and expenses continue
// unchanged. Retirement at or before the current age applies the retired
// flow from the very first tick.
//
// The returned series is sparse: points land on every age divisible by 5,
// the starting age, the retirement age, and any age where an event fires.
// Intermediate years are computed but not emitted. Net worth may go
// negative; insolvency is a meaningful output, not an error.
func ProjectNetWorth(fs domain.FinanceState) []domain.ProjectionPoint {
	points := []domain.ProjectionPoint{}
	netWorth := fs.Assets.Total()
	growth := decimalOne.Add(realRate())
	annualSavings := fs.AnnualSavings()
	retiredFlow := fs.CurrentExpenses.Mul(decimalTwelve).Neg().Add(fs.NationalPension.Mul(decimalTwelve))

	for age := fs.Age; age <= ProjectionEndAge; age++ {
		yearlyFlow := annualSavings
		if age >= fs.RetirementAge {
			yearlyFlow = retiredFlow
		}

		eventCost := decimalZero
		var triggered []string
		for _, ev := range fs.LifeEvents {
			if ev.Age == age {
				eventCost = eventCost.Add(ev.Cost)
				triggered = append(triggered, ev.Name)
			}
			if ev.DurationYears > 0 && !ev.MonthlyCost.IsZero() && age >= ev.Age && age < ev.Age+ev.DurationYears {
				eventCost = eventCost.Add(ev.MonthlyCost.Mul(decimalTwelve))
			}
		}

		netWorth = netWorth.Mul(growth).Add(yearlyFlow).Sub(eventCost)

		if age%5 == 0 || age == fs.Age || age == fs.RetirementAge || len(triggered) > 0 {
			points = append(points, domain.ProjectionPoint{
				Age:             age,
				NetWorth:        netWorth.Round(0),
				TriggeredEvents: triggered,
			})
		}
	}

	return points
}
