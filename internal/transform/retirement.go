package transform

import (
	"fmt"

	"github.com/covergap/covergap/internal/domain"
)

// PostponeRetirement delays retirement by a number of years. Useful for
// "work one more year" scenarios.
type PostponeRetirement struct {
	Years int
}

func (pt *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pt *PostponeRetirement) Description() string {
	return fmt.Sprintf("Postpone retirement by %d years", pt.Years)
}

func (pt *PostponeRetirement) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(pt.Name(), "validate", "base state cannot be nil", nil)
	}
	if pt.Years < 0 {
		return NewTransformError(pt.Name(), "validate", fmt.Sprintf("years must be non-negative, got %d", pt.Years), nil)
	}
	return nil
}

func (pt *PostponeRetirement) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	modified.RetirementAge += pt.Years
	return &modified, nil
}

// SetRetirementAge sets retirement to an absolute age. Unlike
// PostponeRetirement this is not relative to the base state.
type SetRetirementAge struct {
	Age int
}

func (srt *SetRetirementAge) Name() string {
	return "set_retirement_age"
}

func (srt *SetRetirementAge) Description() string {
	return fmt.Sprintf("Set retirement age to %d", srt.Age)
}

func (srt *SetRetirementAge) Validate(base *domain.FinanceState) error {
	if base == nil {
		return NewTransformError(srt.Name(), "validate", "base state cannot be nil", nil)
	}
	if srt.Age <= 0 {
		return NewTransformError(srt.Name(), "validate", fmt.Sprintf("age must be positive, got %d", srt.Age), nil)
	}
	if srt.Age < base.Age {
		return NewTransformError(srt.Name(), "validate",
			fmt.Sprintf("retirement age %d is before current age %d", srt.Age, base.Age), nil)
	}
	return nil
}

func (srt *SetRetirementAge) Apply(base *domain.FinanceState) (*domain.FinanceState, error) {
	modified := base.DeepCopy()
	modified.RetirementAge = srt.Age
	return &modified, nil
}
