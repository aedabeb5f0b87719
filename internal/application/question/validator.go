package question

import (
	"fmt"

	"github.com/aescanero/theoryq/pkg/domain"
)

// Validator validates question/solution pairs
type Validator struct{}

// NewValidator creates a new pair validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates a single pair
func (v *Validator) Validate(p domain.Pair) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid pair: %w", err)
	}
	return nil
}

// ValidateBank validates every entry of a question bank
func (v *Validator) ValidateBank(bank []domain.Pair) error {
	if len(bank) == 0 {
		return fmt.Errorf("question bank must have at least one entry")
	}

	for i, p := range bank {
		if err := v.Validate(p); err != nil {
			return fmt.Errorf("bank entry %d: %w", i, err)
		}
	}

	return nil
}
