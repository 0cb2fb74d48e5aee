package calculation

import (
	"testing"

	"github.com/covergap/covergap/internal/domain"
	"github.com/shopspring/decimal"
)

func TestGetStandardCoverage_ExactBuckets(t *testing.T) {
	tests := []struct {
		name   string
		age    int
		gender domain.Gender
		want   domain.CoverageVector
	}{
		{"30s male", 35, domain.GenderMale, domain.NewCoverageVector(7000, 5000, 5000, 10000, 20000)},
		{"20s male lower edge", 20, domain.GenderMale, domain.NewCoverageVector(5000, 3000, 3000, 10000, 10000)},
		{"50s male upper edge", 59, domain.GenderMale, domain.NewCoverageVector(10000, 10000, 10000, 10000, 30000)},
		{"40s female", 44, domain.GenderFemale, domain.NewCoverageVector(10000, 7000, 7000, 10000, 15000)},
		{"30s female", 39, domain.GenderFemale, domain.NewCoverageVector(7000, 5000, 5000, 10000, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetStandardCoverage(tt.age, tt.gender)
			for _, cat := range domain.Categories() {
				if !got.Amount(cat).Equal(tt.want.Amount(cat)) {
					t.Errorf("age %d %s: %s = %s, want %s", tt.age, tt.gender, cat, got.Amount(cat), tt.want.Amount(cat))
				}
			}
		})
	}
}

func TestGetStandardCoverage_FallbackIs40sMale(t *testing.T) {
	fallback := domain.DefaultStandard().Recommended

	cases := []struct {
		name   string
		age    int
		gender domain.Gender
	}{
		{"under 20", 15, domain.GenderFemale},
		{"age 60", 60, domain.GenderMale},
		{"very old", 95, domain.GenderFemale},
		{"unrecognized gender", 35, domain.Gender("nonbinary")},
		{"empty gender", 35, domain.Gender("")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GetStandardCoverage(tc.age, tc.gender)
			for _, cat := range domain.Categories() {
				if !got.Amount(cat).Equal(fallback.Amount(cat)) {
					t.Errorf("%s: %s = %s, want fallback %s", tc.name, cat, got.Amount(cat), fallback.Amount(cat))
				}
			}
		})
	}
}

func TestGetStandardCoverage_TotalOverDomain(t *testing.T) {
	// No age/gender combination may ever produce a zero-value miss.
	for age := 0; age <= 150; age++ {
		for _, g := range []domain.Gender{domain.GenderMale, domain.GenderFemale} {
			got := GetStandardCoverage(age, g)
			if got.Cancer.LessThanOrEqual(decimal.Zero) {
				t.Fatalf("age %d gender %s: got non-positive cancer standard %s", age, g, got.Cancer)
			}
		}
	}
}
