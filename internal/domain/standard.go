package domain

// StandardEntry is one row of the recommended-coverage table: the suggested
// coverage vector for an age decade and gender.
type StandardEntry struct {
	AgeGroup    int            `yaml:"age_group" json:"age_group"` // decade bucket: 20, 30, 40, 50
	Gender      Gender         `yaml:"gender" json:"gender"`
	Recommended CoverageVector `yaml:"recommended" json:"recommended"`
}

// DefaultStandardTable returns the fixed recommended-coverage table spanning
// decades 20-50 for both genders. Amounts are man-won.
func DefaultStandardTable() []StandardEntry {
	return []StandardEntry{
		{AgeGroup: 20, Gender: GenderMale, Recommended: NewCoverageVector(5000, 3000, 3000, 10000, 10000)},
		{AgeGroup: 30, Gender: GenderMale, Recommended: NewCoverageVector(7000, 5000, 5000, 10000, 20000)},
		{AgeGroup: 40, Gender: GenderMale, Recommended: NewCoverageVector(10000, 7000, 7000, 10000, 30000)},
		{AgeGroup: 50, Gender: GenderMale, Recommended: NewCoverageVector(10000, 10000, 10000, 10000, 30000)},
		{AgeGroup: 20, Gender: GenderFemale, Recommended: NewCoverageVector(5000, 3000, 3000, 10000, 5000)},
		{AgeGroup: 30, Gender: GenderFemale, Recommended: NewCoverageVector(7000, 5000, 5000, 10000, 10000)},
		{AgeGroup: 40, Gender: GenderFemale, Recommended: NewCoverageVector(10000, 7000, 7000, 10000, 15000)},
		{AgeGroup: 50, Gender: GenderFemale, Recommended: NewCoverageVector(10000, 10000, 10000, 10000, 15000)},
	}
}

// DefaultStandard is the fallback entry used when no table row matches:
// ages outside 20-59 and unrecognized genders all receive the 40s/male
// baseline. A deliberate simplification carried over from the product's
// reference tables, not an interpolation.
func DefaultStandard() StandardEntry {
	return StandardEntry{
		AgeGroup:    40,
		Gender:      GenderMale,
		Recommended: NewCoverageVector(10000, 7000, 7000, 10000, 30000),
	}
}
