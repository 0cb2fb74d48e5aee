package domain

import "github.com/shopspring/decimal"

// BloodPressure is a single systolic/diastolic reading in mmHg.
type BloodPressure struct {
	Systolic  int `yaml:"systolic" json:"systolic"`
	Diastolic int `yaml:"diastolic" json:"diastolic"`
}

// HealthMetrics carries the biometric inputs for risk scoring. The struct
// is optional end to end: a nil *HealthMetrics means no health analysis was
// performed, which is distinct from a zero-risk result.
type HealthMetrics struct {
	BMI           decimal.Decimal `yaml:"bmi" json:"bmi"`
	BloodPressure BloodPressure   `yaml:"blood_pressure" json:"bloodPressure"`
	Glucose       int             `yaml:"glucose" json:"glucose"` // fasting, mg/dL
	FamilyHistory []Category      `yaml:"family_history" json:"familyHistory"`
	Smoking       bool            `yaml:"smoking" json:"smoking"`
}

// HasFamilyHistory reports whether the given category appears in the
// family history tags.
func (hm *HealthMetrics) HasFamilyHistory(cat Category) bool {
	if hm == nil {
		return false
	}
	for _, c := range hm.FamilyHistory {
		if c == cat {
			return true
		}
	}
	return false
}

// HealthRisk is an accumulated per-category risk finding. Categories with
// zero accumulated risk are omitted from results entirely.
type HealthRisk struct {
	Category  Category `json:"category"`
	RiskLevel int      `json:"riskLevel"` // clamped to 0-100
	Reason    string   `json:"reason"`    // comma-joined triggered rules, in check order
}
