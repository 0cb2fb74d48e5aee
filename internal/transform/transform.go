package transform

import (
	"fmt"

	"github.com/covergap/covergap/internal/domain"
)

// FinanceTransform is a composable what-if mutation on a finance state.
// Transforms power scenario comparison, break-even analysis and the
// interactive explorer.
type FinanceTransform interface {
	// Apply transforms a base state and returns a new modified state.
	Apply(base *domain.FinanceState) (*domain.FinanceState, error)

	// Name returns a short identifier for this transform (e.g. "postpone_retirement").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters against the base state
	// without applying them.
	Validate(base *domain.FinanceState) error
}

// ApplyTransforms applies a sequence of transforms in order, each receiving
// the output of the previous one.
func ApplyTransforms(base *domain.FinanceState, transforms []FinanceTransform) (*domain.FinanceState, error) {
	if base == nil {
		return nil, fmt.Errorf("base finance state cannot be nil")
	}

	if len(transforms) == 0 {
		out := base.DeepCopy()
		return &out, nil
	}

	current := base
	for i, tr := range transforms {
		if tr == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}
		if err := tr.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", tr.Name(), err)
		}
		next, err := tr.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", tr.Name(), err)
		}
		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
