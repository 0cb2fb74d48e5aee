package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Gender identifies which standard-table track applies to a person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Category identifies one of the five coverage categories tracked by the
// analyzer. All amounts are in man-won (10,000 KRW).
type Category string

const (
	CategoryCancer  Category = "cancer"
	CategoryBrain   Category = "brain"
	CategoryHeart   Category = "heart"
	CategoryMedical Category = "medical"
	CategoryDeath   Category = "death"
)

// Categories returns the five coverage categories in their canonical order.
// Scoring and reporting iterate in this order so output is deterministic.
func Categories() []Category {
	return []Category{CategoryCancer, CategoryBrain, CategoryHeart, CategoryMedical, CategoryDeath}
}

// CoverageVector holds the insured amount per category in man-won.
type CoverageVector struct {
	Cancer  decimal.Decimal `yaml:"cancer" json:"cancer"`
	Brain   decimal.Decimal `yaml:"brain" json:"brain"`
	Heart   decimal.Decimal `yaml:"heart" json:"heart"`
	Medical decimal.Decimal `yaml:"medical" json:"medical"`
	Death   decimal.Decimal `yaml:"death" json:"death"`
}

// NewCoverageVector builds a vector from integer man-won amounts.
func NewCoverageVector(cancer, brain, heart, medical, death int64) CoverageVector {
	return CoverageVector{
		Cancer:  decimal.NewFromInt(cancer),
		Brain:   decimal.NewFromInt(brain),
		Heart:   decimal.NewFromInt(heart),
		Medical: decimal.NewFromInt(medical),
		Death:   decimal.NewFromInt(death),
	}
}

// Amount returns the covered amount for a category. Unknown categories
// return zero.
func (cv CoverageVector) Amount(cat Category) decimal.Decimal {
	switch cat {
	case CategoryCancer:
		return cv.Cancer
	case CategoryBrain:
		return cv.Brain
	case CategoryHeart:
		return cv.Heart
	case CategoryMedical:
		return cv.Medical
	case CategoryDeath:
		return cv.Death
	}
	return decimal.Zero
}

// Validate checks the non-negativity invariant on every category. This is
// the boundary contract for OCR-extracted and manually entered coverage
// alike; the engine itself never re-checks.
func (cv CoverageVector) Validate() error {
	for _, cat := range Categories() {
		if cv.Amount(cat).IsNegative() {
			return fmt.Errorf("%s coverage cannot be negative", cat)
		}
	}
	return nil
}

// AnalysisResult is the gap score derived from a coverage vector and a
// standard vector. Always recomputed, never persisted on its own.
type AnalysisResult struct {
	Score    int `json:"score"`    // 0-100
	GapCount int `json:"gapCount"` // 0-5, categories under the 70% sufficiency line
}
