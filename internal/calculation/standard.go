package calculation

import (
	"github.com/covergap/covergap/internal/domain"
)

// GetStandardCoverage looks up the recommended coverage vector for an age
// and gender. The bucket is the age decade (floor(age/10)*10). Any miss,
// whether the age falls outside the 20-50 decades or the gender value is
// unrecognized, returns the named default entry rather than an error.
func GetStandardCoverage(age int, gender domain.Gender) domain.CoverageVector {
	bucket := age / 10 * 10
	for _, entry := range domain.DefaultStandardTable() {
		if entry.AgeGroup == bucket && entry.Gender == gender {
			return entry.Recommended
		}
	}
	return domain.DefaultStandard().Recommended
}
