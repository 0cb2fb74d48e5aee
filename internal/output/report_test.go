package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		GeneratedFor: "Alice",
		Mode:         domain.ModeInsurance,
		Standard:     domain.NewCoverageVector(7000, 5000, 5000, 10000, 20000),
		Analysis:     domain.AnalysisResult{Score: 38, GapCount: 4},
		HealthRisks: []domain.HealthRisk{
			{Category: domain.CategoryHeart, RiskLevel: 20, Reason: "borderline blood pressure range"},
		},
		DietAdvice: []domain.DietRecommendation{
			{
				Category:         domain.CategoryCancer,
				CurrentAmount:    decimal.NewFromInt(16000),
				TargetAmount:     decimal.NewFromInt(11000),
				SavingsPotential: decimal.NewFromInt(6000),
				Reason:           "coverage sits at 160% of the recommended level",
				Priority:         domain.DietPriorityMedium,
			},
		},
		LifeStage: domain.LifeStageAdvice{
			Title:      "Peak responsibility years",
			Advice:     "advice text",
			Priorities: []string{"one", "two"},
		},
		Plan: domain.ActionPlan{
			ShortTerm: []domain.Recommendation{
				{Title: "Close critical protection gaps", Description: "desc", Priority: domain.PlanPriorityHigh},
			},
			MidTerm:  []domain.Recommendation{},
			LongTerm: []domain.Recommendation{},
		},
		Benchmark: domain.Benchmark{
			Mode: domain.ModeInsurance,
			Insurance: &domain.InsuranceBenchmark{
				Average: domain.NewCoverageVector(7000, 5000, 5000, 10000, 20000),
				Top10:   domain.NewCoverageVector(10500, 7500, 7500, 15000, 40000),
			},
		},
		PolicyRisks: []domain.PolicyRisk{
			{
				ID:          "risk-exclusion-90",
				Title:       "Waiting period present (90 days)",
				Description: "Diagnoses within 90 days of enrollment may pay no benefit at all.",
				Level:       domain.RiskLevelCritical,
			},
		},
		Projection: []domain.ProjectionPoint{
			{Age: 35, NetWorth: decimal.NewFromInt(153000)},
			{Age: 40, NetWorth: decimal.NewFromInt(120000), TriggeredEvents: []string{"home purchase"}},
		},
	}
}

func TestGenerateReport_Console(t *testing.T) {
	buf := &bytes.Buffer{}
	rg := &ReportGenerator{Out: buf}

	err := rg.GenerateReport(sampleReport(), "console")

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "COVERAGE GAP ANALYSIS: Alice")
	assert.Contains(t, out, "Overall score: 38 / 100")
	assert.Contains(t, out, "borderline blood pressure range")
	assert.Contains(t, out, "SHORT TERM")
	assert.Contains(t, out, "POLICY CLAUSE FINDINGS")
	assert.Contains(t, out, "Waiting period present (90 days)")
	assert.Contains(t, out, "home purchase")
}

func TestGenerateReport_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rg := &ReportGenerator{Out: buf}

	err := rg.GenerateReport(sampleReport(), "json")

	require.NoError(t, err)
	var decoded domain.AnalysisReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Alice", decoded.GeneratedFor)
	assert.Equal(t, 38, decoded.Analysis.Score)
}

func TestGenerateReport_CSV(t *testing.T) {
	buf := &bytes.Buffer{}
	rg := &ReportGenerator{Out: buf}

	err := rg.GenerateReport(sampleReport(), "csv")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per projection point")
	assert.Equal(t, "Age,NetWorth,TriggeredEvents", lines[0])
	assert.Contains(t, lines[2], "home purchase")
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	rg := NewReportGenerator()

	err := rg.GenerateReport(sampleReport(), "pdf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestGenerateReport_NilReport(t *testing.T) {
	rg := NewReportGenerator()

	err := rg.GenerateReport(nil, "console")

	assert.Error(t, err)
}

func TestFormatManwon(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 man-won"},
		{950, "950 man-won"},
		{30000, "30,000 man-won"},
		{1234567, "1,234,567 man-won"},
		{-1800, "-1,800 man-won"},
	}
	for _, tt := range tests {
		got := FormatManwon(decimal.NewFromInt(tt.in))
		if got != tt.want {
			t.Errorf("FormatManwon(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "25.0%", FormatPercentage(decimal.NewFromInt(25)))
	assert.Equal(t, "33.3%", FormatPercentage(decimal.NewFromFloat(33.33)))
}
