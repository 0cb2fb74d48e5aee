package domain

// Mode selects which advisory track a plan or benchmark is produced for.
type Mode string

const (
	ModeInsurance Mode = "insurance"
	ModeFinance   Mode = "finance"
)

// PlanPriority ranks a recommendation inside an action plan.
type PlanPriority string

const (
	PlanPriorityHigh   PlanPriority = "high"
	PlanPriorityMedium PlanPriority = "medium"
	PlanPriorityLow    PlanPriority = "low"
)

// Recommendation is one actionable item in a roadmap bucket.
type Recommendation struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    PlanPriority `json:"priority"`
}

// ActionPlan is the bucketed roadmap contract: every plan carries all
// three horizons, each possibly empty. Earlier revisions of the product
// also shipped a flat list shape; this engine standardizes on the
// bucketed form.
type ActionPlan struct {
	ShortTerm []Recommendation `json:"shortTerm"` // within 3 months
	MidTerm   []Recommendation `json:"midTerm"`   // within 1 year
	LongTerm  []Recommendation `json:"longTerm"`  // 1 year and beyond
}

// LifeStageAdvice is the static guidance triple for an age band.
type LifeStageAdvice struct {
	Title      string   `json:"title"`
	Advice     string   `json:"advice"`
	Priorities []string `json:"priorities"`
}
