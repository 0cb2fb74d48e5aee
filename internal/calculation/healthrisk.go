package calculation

import (
	"strings"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	bmiObese      = decimal.NewFromInt(30)
	bmiOverweight = decimal.NewFromInt(25)
)

// Blood pressure thresholds in mmHg, fasting glucose in mg/dL.
const (
	systolicHigh       = 140
	diastolicHigh      = 90
	systolicBorderline = 130
	glucoseDiabetic    = 126
)

// CalculateHealthRisks maps biometric inputs to per-category risk scores
// with human-readable reasons. Rules are additive and independent per
// category; each total is clamped to 100 and categories that accumulate
// nothing are omitted. Reason fragments join in check order, so output is
// stable for identical inputs.
//
// Nil metrics mean no analysis was performed and yield an empty result,
// not a zero-risk one.
//
// Note the asymmetry in the borderline blood-pressure tier: both heart
// and brain take the +20, but only heart carries the reason string. That
// mirrors the product's messaging, which treats borderline hypertension
// as a cardiac talking point only.
func CalculateHealthRisks(metrics *domain.HealthMetrics) []domain.HealthRisk {
	if metrics == nil {
		return []domain.HealthRisk{}
	}

	risks := []domain.HealthRisk{}

	heartRisk := 0
	brainRisk := 0
	var heartReasons, brainReasons []string

	bp := metrics.BloodPressure
	if bp.Systolic >= systolicHigh || bp.Diastolic >= diastolicHigh {
		heartRisk += 40
		brainRisk += 50
		heartReasons = append(heartReasons, "hypertension signs observed (elevated cardiovascular risk)")
		brainReasons = append(brainReasons, "hypertension signs observed (elevated cerebrovascular risk)")
	} else if bp.Systolic >= systolicBorderline {
		heartRisk += 20
		brainRisk += 20
		heartReasons = append(heartReasons, "borderline blood pressure range")
	}

	if metrics.BMI.GreaterThanOrEqual(bmiObese) {
		heartRisk += 30
		heartReasons = append(heartReasons, "obese range (added cardiac load)")
	} else if metrics.BMI.GreaterThanOrEqual(bmiOverweight) {
		heartRisk += 15
		heartReasons = append(heartReasons, "overweight range")
	}

	if metrics.Smoking {
		heartRisk += 20
		brainRisk += 20
		heartReasons = append(heartReasons, "smoking (cardiovascular strain)")
		brainReasons = append(brainReasons, "smoking (elevated stroke risk)")
	}

	if metrics.HasFamilyHistory(domain.CategoryHeart) {
		heartRisk += 30
		heartReasons = append(heartReasons, "family history of heart disease")
	}
	if metrics.HasFamilyHistory(domain.CategoryBrain) {
		brainRisk += 30
		brainReasons = append(brainReasons, "family history of cerebrovascular disease")
	}

	if heartRisk > 0 {
		risks = append(risks, domain.HealthRisk{
			Category:  domain.CategoryHeart,
			RiskLevel: clampRisk(heartRisk),
			Reason:    strings.Join(heartReasons, ", "),
		})
	}
	if brainRisk > 0 {
		risks = append(risks, domain.HealthRisk{
			Category:  domain.CategoryBrain,
			RiskLevel: clampRisk(brainRisk),
			Reason:    strings.Join(brainReasons, ", "),
		})
	}

	cancerRisk := 0
	var cancerReasons []string
	if metrics.HasFamilyHistory(domain.CategoryCancer) {
		cancerRisk += 50
		cancerReasons = append(cancerReasons, "family history of cancer (hereditary factors to consider)")
	}
	if metrics.Smoking {
		cancerRisk += 20
		cancerReasons = append(cancerReasons, "smoking (elevated incidence of lung and other cancers)")
	}
	if cancerRisk > 0 {
		risks = append(risks, domain.HealthRisk{
			Category:  domain.CategoryCancer,
			RiskLevel: clampRisk(cancerRisk),
			Reason:    strings.Join(cancerReasons, ", "),
		})
	}

	if metrics.Glucose >= glucoseDiabetic {
		risks = append(risks, domain.HealthRisk{
			Category:  domain.CategoryMedical,
			RiskLevel: 40,
			Reason:    "elevated fasting glucose (watch for diabetes complications)",
		})
	}

	return risks
}

func clampRisk(level int) int {
	if level > 100 {
		return 100
	}
	return level
}
