package calculation

import (
	"strings"

	"github.com/covergap/covergap/internal/domain"
)

// AnalyzePolicyRisks scans policy clause text (typically OCR output) for
// clause patterns that commonly surprise claimants: waiting periods,
// reduced-payout windows, renewable riders, and strict critical-illness
// definitions. Matching is plain keyword containment over
// whitespace-normalized, lowercased text; this is a reading aid, not a
// legal parser.
func AnalyzePolicyRisks(text string) []domain.PolicyRisk {
	risks := []domain.PolicyRisk{}
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))

	contains := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(normalized, kw) {
				return true
			}
		}
		return false
	}

	if contains("exclusion", "not payable", "shall not pay", "coverage start date") {
		if contains("90 days", "90-day") {
			risks = append(risks, domain.PolicyRisk{
				ID:            "risk-exclusion-90",
				Title:         "Waiting period present (90 days)",
				Description:   "Diagnoses within 90 days of enrollment may pay no benefit at all.",
				Level:         domain.RiskLevelCritical,
				ClauseSnippet: "coverage begins on the day after 90 days have passed from the contract date",
			})
		} else {
			risks = append(risks, domain.PolicyRisk{
				ID:            "risk-exclusion-general",
				Title:         "Exclusion clauses present",
				Description:   "The terms include events for which no benefit is paid. Read the exclusion list carefully.",
				Level:         domain.RiskLevelWarning,
				ClauseSnippet: "the company shall not pay benefits when the insured event arises from any of the following",
			})
		}
	}

	if contains("reduced payout", "50% payout", "less than one year", "reduction period") {
		risks = append(risks, domain.PolicyRisk{
			ID:            "risk-reduction-year",
			Title:         "Reduced payout window (first year)",
			Description:   "Diagnoses within the first one or two years may pay only 50% of the insured amount.",
			Level:         domain.RiskLevelWarning,
			ClauseSnippet: "50% of the applicable benefit is paid for diagnoses confirmed within the first year",
		})
	}

	if contains("renewable", "premiums may increase", "rates may change") {
		risks = append(risks, domain.PolicyRisk{
			ID:            "risk-renewal",
			Title:         "Renewable rider included",
			Description:   "A renewable rider is included whose premium can rise with age and claims experience at each renewal.",
			Level:         domain.RiskLevelInfo,
			ClauseSnippet: "this rider is renewable and the premium may increase upon renewal",
		})
	}

	if contains("critical illness") && contains("fatal", "permanent") {
		risks = append(risks, domain.PolicyRisk{
			ID:            "risk-ci-definition",
			Title:         "Strict payout conditions (CI)",
			Description:   "Benefits require meeting the policy's 'critical' definition, a higher bar than an ordinary diagnosis.",
			Level:         domain.RiskLevelCritical,
			ClauseSnippet: "a critical cancer means...",
		})
	}

	return risks
}
