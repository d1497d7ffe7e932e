package inmemory

import (
	"context"
	"fmt"

	"charity-app-go/internal/domain/existence"
)

type ExistenceStore struct {
	s *Store
}

func (s *Store) Existence() *ExistenceStore {
	return &ExistenceStore{s: s}
}

func (e *ExistenceStore) Exists(_ context.Context, step existence.Step, parent *existence.Step) (bool, error) {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	owned := parent != nil && existence.Owns(parent.Kind, step.Kind)
	d := e.s.data

	switch step.Kind {
	case existence.KindFamily:
		_, ok := d.families[step.ID]
		return ok, nil
	case existence.KindFamilyMember:
		m, ok := d.members[step.ID]
		return ok && (!owned || m.FamilyID == parent.ID), nil
	case existence.KindDonor:
		_, ok := d.donors[step.ID]
		return ok, nil
	case existence.KindDonation:
		donation, ok := d.donations[step.ID]
		return ok && (!owned || donation.DonorID == parent.ID), nil
	default:
		return false, fmt.Errorf("unknown entity kind %q", step.Kind)
	}
}
