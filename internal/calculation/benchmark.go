package calculation

import (
	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	benchmarkTop10Factor = decimal.NewFromFloat(1.5)
	benchmarkDeathFactor = decimal.NewFromInt(2)
)

// GetMarketBenchmark derives the comparison tiers for report commentary.
// Insurance mode reuses the standard table at a fixed male baseline:
// average equals the standard, top 10% is standard x1.5 except death,
// which doubles. Finance mode returns the static reference tiers. Both
// tiers are always present for the requested mode.
func GetMarketBenchmark(age int, mode domain.Mode) domain.Benchmark {
	if mode == domain.ModeFinance {
		fb := domain.DefaultFinanceBenchmark()
		return domain.Benchmark{Mode: mode, Finance: &fb}
	}

	standard := GetStandardCoverage(age, domain.GenderMale)
	top10 := domain.CoverageVector{
		Cancer:  standard.Cancer.Mul(benchmarkTop10Factor),
		Brain:   standard.Brain.Mul(benchmarkTop10Factor),
		Heart:   standard.Heart.Mul(benchmarkTop10Factor),
		Medical: standard.Medical.Mul(benchmarkTop10Factor),
		Death:   standard.Death.Mul(benchmarkDeathFactor),
	}

	return domain.Benchmark{
		Mode: domain.ModeInsurance,
		Insurance: &domain.InsuranceBenchmark{
			Average: standard,
			Top10:   top10,
		},
	}
}
