package calculation

import (
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzePolicyRisks_CleanText(t *testing.T) {
	risks := AnalyzePolicyRisks("The insured amount is paid upon diagnosis of the covered condition.")

	assert.Empty(t, risks)
}

func TestAnalyzePolicyRisks_NinetyDayExclusion(t *testing.T) {
	text := "An exclusion applies: coverage begins after 90 days have passed from the contract date."

	risks := AnalyzePolicyRisks(text)

	if len(risks) != 1 {
		t.Fatalf("expected one finding, got %d", len(risks))
	}
	assert.Equal(t, "risk-exclusion-90", risks[0].ID)
	assert.Equal(t, domain.RiskLevelCritical, risks[0].Level)
}

func TestAnalyzePolicyRisks_GeneralExclusion(t *testing.T) {
	text := "The company shall not pay benefits for events listed in the exclusion table."

	risks := AnalyzePolicyRisks(text)

	if len(risks) != 1 {
		t.Fatalf("expected one finding, got %d", len(risks))
	}
	assert.Equal(t, "risk-exclusion-general", risks[0].ID)
	assert.Equal(t, domain.RiskLevelWarning, risks[0].Level)
}

func TestAnalyzePolicyRisks_ReductionAndRenewal(t *testing.T) {
	text := `For diagnoses confirmed less than one year after enrollment a reduced payout applies.
	This rider is renewable and premiums may increase at each renewal.`

	risks := AnalyzePolicyRisks(text)

	ids := map[string]domain.RiskLevel{}
	for _, r := range risks {
		ids[r.ID] = r.Level
	}
	assert.Equal(t, domain.RiskLevelWarning, ids["risk-reduction-year"])
	assert.Equal(t, domain.RiskLevelInfo, ids["risk-renewal"])
}

func TestAnalyzePolicyRisks_CriticalIllnessDefinition(t *testing.T) {
	text := "Critical illness benefits require a fatal or permanent condition as defined herein."

	risks := AnalyzePolicyRisks(text)

	if len(risks) != 1 {
		t.Fatalf("expected one finding, got %d", len(risks))
	}
	assert.Equal(t, "risk-ci-definition", risks[0].ID)
	assert.Equal(t, domain.RiskLevelCritical, risks[0].Level)
}

func TestAnalyzePolicyRisks_WhitespaceNormalized(t *testing.T) {
	text := "coverage\n\nstart    date applies. The company shall\tnot pay benefits in some cases."

	risks := AnalyzePolicyRisks(text)

	assert.NotEmpty(t, risks, "OCR line breaks and runs of spaces must not defeat matching")
}
