package calculation

import (
	"context"
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testProfile() *domain.Profile {
	fs := baseFinanceState()
	return &domain.Profile{
		User: domain.UserProfile{
			Name:      "Alice",
			Age:       35,
			Gender:    domain.GenderFemale,
			Coverages: domain.NewCoverageVector(3000, 1000, 1000, 10000, 10000),
			HealthMetrics: &domain.HealthMetrics{
				BMI:           decimal.NewFromFloat(26),
				BloodPressure: domain.BloodPressure{Systolic: 135, Diastolic: 85},
				Glucose:       100,
			},
		},
		Finance: &fs,
	}
}

func TestNewAnalysisEngine(t *testing.T) {
	engine := NewAnalysisEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
}

func TestAnalysisEngine_SetLogger(t *testing.T) {
	engine := NewAnalysisEngine()

	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestAnalysisEngine_RunAnalysis_Insurance(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), testProfile(), domain.ModeInsurance)

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, "Alice", report.GeneratedFor)
	assert.Equal(t, domain.ModeInsurance, report.Mode)
	assert.GreaterOrEqual(t, report.Analysis.Score, 0)
	assert.LessOrEqual(t, report.Analysis.Score, 100)
	assert.NotEmpty(t, report.HealthRisks, "Borderline BP and overweight BMI should surface risks")
	assert.NotNil(t, report.Benchmark.Insurance, "Insurance mode must carry the insurance benchmark")
	assert.Nil(t, report.Benchmark.Finance)
	assert.NotEmpty(t, report.Projection, "Profile with finance data should include a projection")
	assert.NotNil(t, report.Financial)
}

func TestAnalysisEngine_RunAnalysis_FinanceMode(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), testProfile(), domain.ModeFinance)

	assert.NoError(t, err)
	assert.NotNil(t, report.Benchmark.Finance, "Finance mode must carry the finance benchmark")
	assert.Nil(t, report.Benchmark.Insurance)
}

func TestAnalysisEngine_RunAnalysis_NoFinanceState(t *testing.T) {
	engine := NewAnalysisEngine()
	profile := testProfile()
	profile.Finance = nil

	report, err := engine.RunAnalysis(context.Background(), profile, domain.ModeInsurance)

	assert.NoError(t, err)
	assert.Empty(t, report.Projection, "No finance state means no projection")
	assert.Nil(t, report.Financial)
}

func TestAnalysisEngine_RunAnalysis_PolicyText(t *testing.T) {
	engine := NewAnalysisEngine()
	profile := testProfile()
	profile.User.PolicyText = "Coverage begins after 90 days from the contract date. Exclusion: the company shall not pay benefits for pre-existing conditions."

	report, err := engine.RunAnalysis(context.Background(), profile, domain.ModeInsurance)

	assert.NoError(t, err)
	assert.NotEmpty(t, report.PolicyRisks, "Policy text with clause keywords should surface findings")
	assert.Equal(t, domain.RiskLevelCritical, report.PolicyRisks[0].Level)
}

func TestAnalysisEngine_RunAnalysis_NoPolicyText(t *testing.T) {
	engine := NewAnalysisEngine()
	profile := testProfile()
	profile.User.PolicyText = "   "

	report, err := engine.RunAnalysis(context.Background(), profile, domain.ModeInsurance)

	assert.NoError(t, err)
	assert.Empty(t, report.PolicyRisks, "Blank policy text should not trigger a scan")
}

func TestAnalysisEngine_RunAnalysis_NilProfile(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), nil, domain.ModeInsurance)

	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestAnalysisEngine_RunAnalysis_UnknownMode(t *testing.T) {
	engine := NewAnalysisEngine()

	report, err := engine.RunAnalysis(context.Background(), testProfile(), domain.Mode("astrology"))

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestAnalysisEngine_RunAnalysis_CancelledContext(t *testing.T) {
	engine := NewAnalysisEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.RunAnalysis(ctx, testProfile(), domain.ModeInsurance)

	assert.Error(t, err)
	assert.Nil(t, report)
}
