package calculation

import (
	"strings"
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func riskFor(risks []domain.HealthRisk, cat domain.Category) *domain.HealthRisk {
	for i := range risks {
		if risks[i].Category == cat {
			return &risks[i]
		}
	}
	return nil
}

func TestCalculateHealthRisks_NilMetrics(t *testing.T) {
	risks := CalculateHealthRisks(nil)

	assert.NotNil(t, risks, "Should return an empty slice, not nil")
	assert.Empty(t, risks, "No metrics means no analysis, not zero-risk entries")
}

func TestCalculateHealthRisks_HealthySubject(t *testing.T) {
	metrics := &domain.HealthMetrics{
		BMI:           decimal.NewFromFloat(22.5),
		BloodPressure: domain.BloodPressure{Systolic: 118, Diastolic: 76},
		Glucose:       90,
	}

	risks := CalculateHealthRisks(metrics)

	assert.Empty(t, risks, "Zero-risk categories must be omitted entirely")
}

func TestCalculateHealthRisks_Hypertensive(t *testing.T) {
	metrics := &domain.HealthMetrics{
		BMI:           decimal.NewFromFloat(23),
		BloodPressure: domain.BloodPressure{Systolic: 145, Diastolic: 95},
		Glucose:       100,
	}

	risks := CalculateHealthRisks(metrics)

	heart := riskFor(risks, domain.CategoryHeart)
	if heart == nil {
		t.Fatal("expected a heart risk entry")
	}
	assert.Equal(t, 40, heart.RiskLevel)
	assert.Contains(t, heart.Reason, "hypertension")

	brain := riskFor(risks, domain.CategoryBrain)
	if brain == nil {
		t.Fatal("expected a brain risk entry")
	}
	assert.Equal(t, 50, brain.RiskLevel)
	assert.Contains(t, brain.Reason, "cerebrovascular")
}

func TestCalculateHealthRisks_BorderlineBPAsymmetry(t *testing.T) {
	// Systolic 130-139 adds +20 to both heart and brain, but only heart
	// carries the reason string.
	metrics := &domain.HealthMetrics{
		BMI:           decimal.NewFromFloat(22),
		BloodPressure: domain.BloodPressure{Systolic: 132, Diastolic: 82},
		Glucose:       95,
	}

	risks := CalculateHealthRisks(metrics)

	heart := riskFor(risks, domain.CategoryHeart)
	if heart == nil {
		t.Fatal("expected a heart risk entry")
	}
	assert.Equal(t, 20, heart.RiskLevel)
	assert.Contains(t, heart.Reason, "borderline blood pressure")

	brain := riskFor(risks, domain.CategoryBrain)
	if brain == nil {
		t.Fatal("expected a brain risk entry")
	}
	assert.Equal(t, 20, brain.RiskLevel)
	assert.Empty(t, brain.Reason, "Borderline BP contributes to brain risk without a reason string")
}

func TestCalculateHealthRisks_SmokerWithFamilyHistory(t *testing.T) {
	metrics := &domain.HealthMetrics{
		BMI:           decimal.NewFromFloat(31),
		BloodPressure: domain.BloodPressure{Systolic: 150, Diastolic: 92},
		Glucose:       130,
		FamilyHistory: []domain.Category{domain.CategoryCancer, domain.CategoryHeart, domain.CategoryBrain},
		Smoking:       true,
	}

	risks := CalculateHealthRisks(metrics)

	// heart: 40 + 30 (obese) + 20 (smoking) + 30 (family) = 120, clamped
	heart := riskFor(risks, domain.CategoryHeart)
	if heart == nil {
		t.Fatal("expected a heart risk entry")
	}
	assert.Equal(t, 100, heart.RiskLevel, "Accumulated risk must clamp at 100")

	// brain: 50 + 20 + 30 = 100 exactly
	brain := riskFor(risks, domain.CategoryBrain)
	if brain == nil {
		t.Fatal("expected a brain risk entry")
	}
	assert.Equal(t, 100, brain.RiskLevel)

	// cancer: 50 family + 20 smoking
	cancer := riskFor(risks, domain.CategoryCancer)
	if cancer == nil {
		t.Fatal("expected a cancer risk entry")
	}
	assert.Equal(t, 70, cancer.RiskLevel)

	// medical: flat 40 on diabetic glucose
	medical := riskFor(risks, domain.CategoryMedical)
	if medical == nil {
		t.Fatal("expected a medical risk entry")
	}
	assert.Equal(t, 40, medical.RiskLevel)
}

func TestCalculateHealthRisks_ReasonOrderMatchesCheckOrder(t *testing.T) {
	metrics := &domain.HealthMetrics{
		BMI:           decimal.NewFromFloat(27),
		BloodPressure: domain.BloodPressure{Systolic: 150, Diastolic: 95},
		FamilyHistory: []domain.Category{domain.CategoryHeart},
		Smoking:       true,
	}

	risks := CalculateHealthRisks(metrics)

	heart := riskFor(risks, domain.CategoryHeart)
	if heart == nil {
		t.Fatal("expected a heart risk entry")
	}
	parts := strings.Split(heart.Reason, ", ")
	if len(parts) != 4 {
		t.Fatalf("expected 4 reason fragments, got %d: %q", len(parts), heart.Reason)
	}
	assert.Contains(t, parts[0], "hypertension")
	assert.Contains(t, parts[1], "overweight")
	assert.Contains(t, parts[2], "smoking")
	assert.Contains(t, parts[3], "family history")
}

func TestCalculateHealthRisks_GlucoseThresholdEdge(t *testing.T) {
	below := CalculateHealthRisks(&domain.HealthMetrics{
		BMI: decimal.NewFromFloat(22), Glucose: 125,
	})
	assert.Nil(t, riskFor(below, domain.CategoryMedical), "125 mg/dL is under the diabetic threshold")

	at := CalculateHealthRisks(&domain.HealthMetrics{
		BMI: decimal.NewFromFloat(22), Glucose: 126,
	})
	medical := riskFor(at, domain.CategoryMedical)
	if medical == nil {
		t.Fatal("126 mg/dL should trigger the medical risk")
	}
	assert.Equal(t, 40, medical.RiskLevel)
}
