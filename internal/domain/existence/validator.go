// Package existence checks that every parent addressed by a nested path is
// present before a child is read or written.
package existence

import (
	"context"
	"errors"
	"fmt"
)

type Kind string

const (
	KindFamily       Kind = "Family"
	KindFamilyMember Kind = "FamilyMember"
	KindDonor        Kind = "Donor"
	KindDonation     Kind = "Donation"
)

// Step is one link of an ownership chain. An ID of 0 never resolves; handlers
// use it for path segments that are absent or not numeric.
type Step struct {
	Kind Kind
	ID   uint
}

func Family(id uint) Step       { return Step{Kind: KindFamily, ID: id} }
func FamilyMember(id uint) Step { return Step{Kind: KindFamilyMember, ID: id} }
func Donor(id uint) Step        { return Step{Kind: KindDonor, ID: id} }
func Donation(id uint) Step     { return Step{Kind: KindDonation, ID: id} }

var ErrMissing = errors.New("entity not found")

type MissingEntityError struct {
	Kind Kind
	ID   uint
}

func (e *MissingEntityError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *MissingEntityError) Is(target error) bool {
	return target == ErrMissing
}

// AsMissing reports the missing link when err came from VerifyChain.
func AsMissing(err error) (*MissingEntityError, bool) {
	var missing *MissingEntityError
	if errors.As(err, &missing) {
		return missing, true
	}
	return nil, false
}

// Store answers existence questions. parent is the previous step of the chain
// (nil for the first one); implementations scope the lookup to it when the
// pair is an ownership relation and ignore it otherwise.
type Store interface {
	Exists(ctx context.Context, step Step, parent *Step) (bool, error)
}

type Validator struct {
	store Store
}

func NewValidator(store Store) *Validator {
	return &Validator{store: store}
}

func (v *Validator) VerifyChain(ctx context.Context, steps ...Step) error {
	var parent *Step
	for i := range steps {
		step := steps[i]
		if step.ID == 0 {
			return &MissingEntityError{Kind: step.Kind}
		}

		ok, err := v.store.Exists(ctx, step, parent)
		if err != nil {
			return fmt.Errorf("check %s %d: %w", step.Kind, step.ID, err)
		}
		if !ok {
			return &MissingEntityError{Kind: step.Kind, ID: step.ID}
		}
		parent = &steps[i]
	}
	return nil
}

// Owns reports whether parent -> child is an ownership relation the store must
// scope by.
func Owns(parent Kind, child Kind) bool {
	switch {
	case parent == KindFamily && child == KindFamilyMember:
		return true
	case parent == KindDonor && child == KindDonation:
		return true
	default:
		return false
	}
}
