package domain

import "fmt"

// UserProfile is the insurance-side snapshot of one person: who they are,
// what they carry, and optionally their biometrics.
type UserProfile struct {
	Name          string         `yaml:"name" json:"name"`
	Age           int            `yaml:"age" json:"age"`
	Gender        Gender         `yaml:"gender" json:"gender"`
	Coverages     CoverageVector `yaml:"coverages" json:"coverages"`
	HealthMetrics *HealthMetrics `yaml:"health_metrics,omitempty" json:"healthMetrics,omitempty"`
	PolicyText    string         `yaml:"policy_text,omitempty" json:"policyText,omitempty"`
}

// Validate checks the profile's boundary invariants. An unrecognized
// gender is allowed through on purpose: the standard-table lookup absorbs
// it via the named fallback entry.
func (up UserProfile) Validate() error {
	if up.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if err := up.Coverages.Validate(); err != nil {
		return fmt.Errorf("coverages: %w", err)
	}
	if up.HealthMetrics != nil {
		if up.HealthMetrics.BMI.IsNegative() {
			return fmt.Errorf("health metrics: bmi cannot be negative")
		}
		if up.HealthMetrics.BloodPressure.Systolic < 0 || up.HealthMetrics.BloodPressure.Diastolic < 0 {
			return fmt.Errorf("health metrics: blood pressure cannot be negative")
		}
		if up.HealthMetrics.Glucose < 0 {
			return fmt.Errorf("health metrics: glucose cannot be negative")
		}
	}
	return nil
}

// Profile is the top-level input document: the insurance snapshot plus an
// optional finance snapshot for projection and finance-mode planning.
type Profile struct {
	User    UserProfile   `yaml:"user" json:"user"`
	Finance *FinanceState `yaml:"finance,omitempty" json:"finance,omitempty"`
}

// Validate validates both halves of the profile.
func (p Profile) Validate() error {
	if err := p.User.Validate(); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	if p.Finance != nil {
		if err := p.Finance.Validate(); err != nil {
			return fmt.Errorf("finance: %w", err)
		}
	}
	return nil
}

// AnalysisReport aggregates every engine output for one profile. This is
// what the output formatters and the API hand to presentation layers.
type AnalysisReport struct {
	GeneratedFor string               `json:"generatedFor"`
	Mode         Mode                 `json:"mode"`
	Standard     CoverageVector       `json:"standard"`
	Analysis     AnalysisResult       `json:"analysis"`
	HealthRisks  []HealthRisk         `json:"healthRisks,omitempty"`
	DietAdvice   []DietRecommendation `json:"dietAdvice,omitempty"`
	LifeStage    LifeStageAdvice      `json:"lifeStage"`
	Plan         ActionPlan           `json:"plan"`
	Benchmark    Benchmark            `json:"benchmark"`
	PolicyRisks  []PolicyRisk         `json:"policyRisks,omitempty"`
	Projection   []ProjectionPoint    `json:"projection,omitempty"`
	Financial    *FinancialHealth     `json:"financial,omitempty"`
}
