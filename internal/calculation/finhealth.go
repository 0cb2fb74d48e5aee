package calculation

import (
	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	freedomMultiple = decimal.NewFromInt(25) // 4% rule: 25x annual expenses
	fiftyPercent    = decimal.NewFromInt(50)
	tenPercent      = decimal.NewFromInt(10)
	twentyPercent   = decimal.NewFromInt(20)
	seventyPercent  = decimal.NewFromInt(70)
)

// CalculateFinancialHealth produces the deep-dive finance diagnosis:
// savings rate, the 4%-rule financial-freedom age, and the allocation and
// savings advice strings. The freedom search compounds at the nominal 5%
// rate (not the real rate: the 25x target is also stated in nominal
// terms) and gives up at age 100.
func CalculateFinancialHealth(fs domain.FinanceState) domain.FinancialHealth {
	totalAssets := fs.Assets.Total()
	annualExpenses := fs.CurrentExpenses.Mul(decimalTwelve)
	annualSavings := fs.AnnualSavings()
	targetNetWorth := annualExpenses.Mul(freedomMultiple)

	growth := decimalOne.Add(nominalInvestmentRate)
	netWorth := totalAssets
	freedomAge := fs.Age
	reached := false
	for i := 0; i < 100-fs.Age; i++ {
		if netWorth.GreaterThanOrEqual(targetNetWorth) {
			reached = true
			break
		}
		netWorth = netWorth.Mul(growth).Add(annualSavings)
		freedomAge++
	}
	return domain.FinancialHealth{
		SavingsRate:      fs.SavingsRate(),
		TargetNetWorth:   targetNetWorth,
		FreedomAge:       freedomAge,
		FreedomReached:   reached,
		AllocationAdvice: allocationAdvice(fs.Assets),
		SavingsAdvice:    savingsAdvice(fs.SavingsRate()),
	}
}

func allocationAdvice(assets domain.FinanceAssets) string {
	total := assets.Total()
	if total.LessThanOrEqual(decimalZero) {
		total = decimalOne // avoid dividing by zero on an empty balance sheet
	}

	cashPct := assets.Cash.Div(total).Mul(decimalHundred)
	cryptoPct := assets.Crypto.Div(total).Mul(decimalHundred)
	stockPct := assets.Stock.Div(total).Mul(decimalHundred)

	switch {
	case cashPct.GreaterThan(fiftyPercent):
		return "Cash dominates the portfolio. Consider shifting part of it into productive assets to defend against inflation."
	case cryptoPct.GreaterThan(twentyPercent):
		return "High-volatility assets make up a large share. Diversify to stabilize the portfolio."
	case stockPct.GreaterThan(seventyPercent):
		return "The allocation is aggressive. Raise the weight of safe assets such as bonds as retirement approaches."
	default:
		return "The allocation is reasonably balanced. Rebalance on a regular schedule and review the target return."
	}
}

func savingsAdvice(savingsRate decimal.Decimal) string {
	switch {
	case savingsRate.LessThan(tenPercent):
		return "The savings rate is under 10%. Cutting discretionary spending to build seed money is the first priority."
	case savingsRate.GreaterThan(fiftyPercent):
		return "More than half of income is being saved or invested. Financial freedom is within rapid reach."
	default:
		return "Savings habits are sound. Direct future income growth toward a higher savings ratio."
	}
}
