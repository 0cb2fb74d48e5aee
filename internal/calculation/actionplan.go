package calculation

import (
	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

var savingsRateTarget = decimal.NewFromInt(20) // percent

// GetLifeStageAdvice returns the static guidance triple for an age band.
// Three fixed bands: under 30, 30-49, 50 and up.
func GetLifeStageAdvice(age int) domain.LifeStageAdvice {
	switch {
	case age < 30:
		return domain.LifeStageAdvice{
			Title:  "Foundation building in your 20s",
			Advice: "Premiums are at their lifetime low. Lock in core protection cheaply with term products and put the difference into seed savings.",
			Priorities: []string{
				"medical indemnity first",
				"low-cost term cancer coverage",
				"build an emergency fund of 3-6 months of expenses",
			},
		}
	case age < 50:
		return domain.LifeStageAdvice{
			Title:  "Peak responsibility years",
			Advice: "Dependents and loans make income protection the core concern. Balance death benefit against the household's remaining obligations.",
			Priorities: []string{
				"death benefit sized to outstanding debts and family needs",
				"strengthen the three major disease coverages",
				"start or raise retirement pension contributions",
			},
		}
	default:
		return domain.LifeStageAdvice{
			Title:  "Pre-retirement consolidation",
			Advice: "Disease incidence climbs sharply from here. Shift the budget from death benefit toward living benefits and guaranteed-renewal health coverage.",
			Priorities: []string{
				"review brain and heart coverage before age-related premium jumps",
				"trim oversized death benefit once dependents are independent",
				"check pension payout timing and longevity risk",
			},
		}
	}
}

// GetActionPlan derives the bucketed roadmap from the gap analysis, the
// finance snapshot, and the requested mode. Insurance mode branches on
// the score and gap count; finance mode branches on the savings rate
// against a 20% target. Both add an age-conditioned secondary item. The
// finance snapshot may be nil, in which case finance mode falls back to
// the low-savings branch with zeroed figures.
func GetActionPlan(user domain.UserProfile, finance *domain.FinanceState, analysis domain.AnalysisResult, mode domain.Mode) domain.ActionPlan {
	if mode == domain.ModeFinance {
		return financeActionPlan(user.Age, finance)
	}
	return insuranceActionPlan(user.Age, analysis)
}

func insuranceActionPlan(age int, analysis domain.AnalysisResult) domain.ActionPlan {
	plan := domain.ActionPlan{
		ShortTerm: []domain.Recommendation{},
		MidTerm:   []domain.Recommendation{},
		LongTerm:  []domain.Recommendation{},
	}

	switch {
	case analysis.Score < 60:
		plan.ShortTerm = append(plan.ShortTerm, domain.Recommendation{
			Title:       "Close critical protection gaps",
			Description: "Overall coverage scores below 60. Prioritize the categories furthest under the standard before any other financial move.",
			Priority:    domain.PlanPriorityHigh,
		})
	case analysis.GapCount > 0:
		plan.MidTerm = append(plan.MidTerm, domain.Recommendation{
			Title:       "Rebalance thin categories",
			Description: "The overall score is adequate but some categories sit under 70% of the standard. Top them up at the next policy anniversary.",
			Priority:    domain.PlanPriorityMedium,
		})
	default:
		plan.LongTerm = append(plan.LongTerm, domain.Recommendation{
			Title:       "Maintain and review annually",
			Description: "Coverage meets the standard across the board. Re-run the analysis after each life event or at yearly renewal.",
			Priority:    domain.PlanPriorityLow,
		})
	}

	if age >= 40 {
		plan.MidTerm = append(plan.MidTerm, domain.Recommendation{
			Title:       "Add living-benefit riders",
			Description: "From the 40s on, diagnosis-payout riders for the three major diseases matter more than additional death benefit.",
			Priority:    domain.PlanPriorityMedium,
		})
	} else {
		plan.LongTerm = append(plan.LongTerm, domain.Recommendation{
			Title:       "Favor term over whole-life",
			Description: "Under 40, term products buy the same protection at a fraction of the premium. Invest the difference.",
			Priority:    domain.PlanPriorityLow,
		})
	}

	return plan
}

func financeActionPlan(age int, finance *domain.FinanceState) domain.ActionPlan {
	plan := domain.ActionPlan{
		ShortTerm: []domain.Recommendation{},
		MidTerm:   []domain.Recommendation{},
		LongTerm:  []domain.Recommendation{},
	}

	savingsRate := decimal.Zero
	if finance != nil {
		savingsRate = finance.SavingsRate()
	}

	if savingsRate.LessThan(savingsRateTarget) {
		plan.ShortTerm = append(plan.ShortTerm, domain.Recommendation{
			Title:       "Lift the savings rate above 20%",
			Description: "Current savings fall short of the 20% baseline. Audit fixed outgoings and automate a transfer on payday.",
			Priority:    domain.PlanPriorityHigh,
		})
	} else {
		plan.MidTerm = append(plan.MidTerm, domain.Recommendation{
			Title:       "Put surplus savings to work",
			Description: "Savings already clear the 20% baseline. Direct the surplus into a diversified investment allocation instead of cash.",
			Priority:    domain.PlanPriorityMedium,
		})
	}

	if age < 40 {
		plan.LongTerm = append(plan.LongTerm, domain.Recommendation{
			Title:       "Hold a growth-tilted allocation",
			Description: "With decades to retirement, a higher equity weight is the main driver of terminal wealth. Rebalance yearly.",
			Priority:    domain.PlanPriorityMedium,
		})
	} else {
		plan.LongTerm = append(plan.LongTerm, domain.Recommendation{
			Title:       "Begin pre-retirement de-risking",
			Description: "Within 20 years of retirement, glide the portfolio toward income assets and confirm the pension start age.",
			Priority:    domain.PlanPriorityMedium,
		})
	}

	return plan
}
