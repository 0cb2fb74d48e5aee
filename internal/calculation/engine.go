package calculation

import (
	"context"
	"fmt"
	"strings"

	"github.com/covergap/covergap/internal/domain"
)

// Logger is the minimal logging surface the engine needs. The CLI plugs
// in a log-package adapter; library callers usually leave the default.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// AnalysisEngine orchestrates the gap, health, diet, projection and
// planning computations. Every computation is a pure function of its
// inputs; the engine only bundles them behind one entry point and
// carries the logger.
type AnalysisEngine struct {
	Logger Logger
}

// NewAnalysisEngine creates an engine with a no-op logger.
func NewAnalysisEngine() *AnalysisEngine {
	return &AnalysisEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger resets to no-op.
func (ae *AnalysisEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ae.Logger = l
}

// RunAnalysis produces the full report for a profile in the given mode.
// The profile is assumed to have passed boundary validation; every
// computation below is total, so the only error paths are a missing
// profile, an unknown mode, or a cancelled context.
func (ae *AnalysisEngine) RunAnalysis(ctx context.Context, profile *domain.Profile, mode domain.Mode) (*domain.AnalysisReport, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mode != domain.ModeInsurance && mode != domain.ModeFinance {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	user := profile.User
	standard := GetStandardCoverage(user.Age, user.Gender)
	analysis := CalculateGapScore(user.Coverages, standard)

	ae.Logger.Debugf("gap score for %s: %d (gaps: %d)", user.Name, analysis.Score, analysis.GapCount)

	report := &domain.AnalysisReport{
		GeneratedFor: user.Name,
		Mode:         mode,
		Standard:     standard,
		Analysis:     analysis,
		HealthRisks:  CalculateHealthRisks(user.HealthMetrics),
		DietAdvice:   CalculateDietRecommendations(user.Coverages, standard),
		LifeStage:    GetLifeStageAdvice(user.Age),
		Plan:         GetActionPlan(user, profile.Finance, analysis, mode),
		Benchmark:    GetMarketBenchmark(user.Age, mode),
	}

	if text := strings.TrimSpace(user.PolicyText); text != "" {
		report.PolicyRisks = AnalyzePolicyRisks(text)
		ae.Logger.Debugf("policy scan for %s: %d clause risks", user.Name, len(report.PolicyRisks))
	}

	if profile.Finance != nil {
		report.Projection = ProjectNetWorth(*profile.Finance)
		fh := CalculateFinancialHealth(*profile.Finance)
		report.Financial = &fh
	}

	return report, nil
}
