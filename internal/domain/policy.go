package domain

// RiskLevel grades how severely a detected policy clause can hurt a
// claimant.
type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "critical"
	RiskLevelWarning  RiskLevel = "warning"
	RiskLevelInfo     RiskLevel = "info"
)

// PolicyRisk is one finding from scanning policy clause text.
type PolicyRisk struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Level         RiskLevel `json:"level"`
	ClauseSnippet string    `json:"clauseSnippet,omitempty"` // the matched clause fragment
}
