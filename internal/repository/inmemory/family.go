package inmemory

import (
	"context"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/family"
)

type FamilyRepository struct {
	s *Store
}

func (s *Store) Families() *FamilyRepository {
	return &FamilyRepository{s: s}
}

func (r *FamilyRepository) Transaction(_ context.Context, fn func(family.Repository) error) error {
	return r.s.transaction(func() error { return fn(r) })
}

func (r *FamilyRepository) CreateFamily(_ context.Context, f *family.Family) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f.ID = r.s.nextID()
	f.CreatedAt = r.s.now()
	f.UpdatedAt = f.CreatedAt
	row := *f
	row.Members = nil
	r.s.data.families[f.ID] = row
	return nil
}

func (r *FamilyRepository) GetFamily(_ context.Context, familyID uint) (*family.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.data.families[familyID]
	if !ok {
		return nil, family.ErrFamilyNotFound
	}
	return &f, nil
}

func (r *FamilyRepository) GetFamilyWithMembers(ctx context.Context, familyID uint) (*family.Family, error) {
	f, err := r.GetFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	f.Members, err = r.ListMembers(ctx, familyID)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FamilyRepository) ListFamilies(_ context.Context) ([]family.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedByID(r.s.data.families, nil), nil
}

func (r *FamilyRepository) ListFamiliesWithMembers(ctx context.Context) ([]family.Family, error) {
	families, err := r.ListFamilies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range families {
		families[i].Members, err = r.ListMembers(ctx, families[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return families, nil
}

func (r *FamilyRepository) UpdateFamily(_ context.Context, familyID uint, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.data.families[familyID]
	if !ok {
		return false, nil
	}
	if err := applyChanges(&f, changes, r.s.now()); err != nil {
		return false, err
	}
	r.s.data.families[familyID] = f
	return true, nil
}

func (r *FamilyRepository) SetPersonCharge(ctx context.Context, familyID uint, name string) error {
	_, err := r.UpdateFamily(ctx, familyID, common.Changes{"person_charge": name})
	return err
}

func (r *FamilyRepository) DeleteFamily(_ context.Context, familyID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.families[familyID]; !ok {
		return false, nil
	}
	delete(r.s.data.families, familyID)
	return true, nil
}

func (r *FamilyRepository) DeleteFamilyDependents(_ context.Context, familyID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d := &r.s.data
	for id, record := range d.records {
		if record.FamilyID == familyID {
			delete(d.records, id)
		}
	}
	for id, need := range d.needs {
		if need.FamilyID == familyID {
			delete(d.needs, id)
		}
	}
	for id, record := range d.health {
		if record.FamilyID == familyID {
			delete(d.health, id)
		}
	}
	for id, member := range d.members {
		if member.FamilyID == familyID {
			delete(d.members, id)
		}
	}
	return nil
}

func (r *FamilyRepository) CreateMember(_ context.Context, m *family.FamilyMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkMember(*m, 0); err != nil {
		return err
	}
	m.ID = r.s.nextID()
	m.CreatedAt = r.s.now()
	m.UpdatedAt = m.CreatedAt
	r.s.data.members[m.ID] = *m
	return nil
}

func (r *FamilyRepository) GetMember(_ context.Context, familyID, memberID uint) (*family.FamilyMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.members[memberID]
	if !ok || m.FamilyID != familyID {
		return nil, family.ErrMemberNotFound
	}
	return &m, nil
}

func (r *FamilyRepository) ListMembers(_ context.Context, familyID uint) ([]family.FamilyMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.members, func(m family.FamilyMember) bool {
		return m.FamilyID == familyID
	}), nil
}

func (r *FamilyRepository) FindPersonCharge(_ context.Context, familyID uint) (*family.FamilyMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	flagged := sortedByID(r.s.data.members, func(m family.FamilyMember) bool {
		return m.FamilyID == familyID && m.IsPersonCharge
	})
	if len(flagged) == 0 {
		return nil, family.ErrMemberNotFound
	}
	return &flagged[0], nil
}

func (r *FamilyRepository) UpdateMember(_ context.Context, familyID, memberID uint, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.members[memberID]
	if !ok || m.FamilyID != familyID {
		return false, nil
	}
	if err := applyChanges(&m, changes, r.s.now()); err != nil {
		return false, err
	}
	if err := r.checkMember(m, memberID); err != nil {
		return false, err
	}
	r.s.data.members[memberID] = m
	return true, nil
}

func (r *FamilyRepository) DeleteMember(_ context.Context, familyID, memberID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.members[memberID]
	if !ok || m.FamilyID != familyID {
		return false, nil
	}
	delete(r.s.data.members, memberID)
	return true, nil
}

func (r *FamilyRepository) DeleteMemberDependents(_ context.Context, familyID, memberID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d := &r.s.data
	for id, need := range d.needs {
		if need.FamilyID == familyID && need.FamilyMemberID == memberID {
			delete(d.needs, id)
		}
	}
	for id, record := range d.health {
		if record.FamilyID == familyID && record.FamilyMemberID == memberID {
			delete(d.health, id)
		}
	}
	return nil
}

// checkMember enforces the unique email and the one person in charge per
// family. Callers hold s.mu.
func (r *FamilyRepository) checkMember(m family.FamilyMember, self uint) error {
	for id, other := range r.s.data.members {
		if id == self {
			continue
		}
		if m.Email != nil && other.Email != nil && *m.Email == *other.Email {
			return family.ErrDuplicateEmail
		}
		if m.IsPersonCharge && other.IsPersonCharge && other.FamilyID == m.FamilyID {
			return family.ErrPersonChargeExists
		}
	}
	return nil
}
