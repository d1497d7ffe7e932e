package inmemory

import (
	"context"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/health"
	"charity-app-go/internal/domain/needs"
)

type HealthRepository struct {
	s *Store
}

func (s *Store) Health() *HealthRepository {
	return &HealthRepository{s: s}
}

func (r *HealthRepository) Create(_ context.Context, record *health.HealthHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record.ID = r.s.nextID()
	record.CreatedAt = r.s.now()
	record.UpdatedAt = record.CreatedAt
	r.s.data.health[record.ID] = *record
	return nil
}

func (r *HealthRepository) Get(_ context.Context, key health.Key) (*health.HealthHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.data.health[key.ID]
	if !ok || record.FamilyID != key.FamilyID || record.FamilyMemberID != key.FamilyMemberID {
		return nil, health.ErrHealthHistoryNotFound
	}
	return &record, nil
}

func (r *HealthRepository) ListByFamily(_ context.Context, familyID uint) ([]health.HealthHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.health, func(h health.HealthHistory) bool {
		return h.FamilyID == familyID
	}), nil
}

func (r *HealthRepository) ListByMember(_ context.Context, familyID, memberID uint) ([]health.HealthHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.health, func(h health.HealthHistory) bool {
		return h.FamilyID == familyID && h.FamilyMemberID == memberID
	}), nil
}

func (r *HealthRepository) Update(_ context.Context, key health.Key, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.data.health[key.ID]
	if !ok || record.FamilyID != key.FamilyID || record.FamilyMemberID != key.FamilyMemberID {
		return false, nil
	}
	if err := applyChanges(&record, changes, r.s.now()); err != nil {
		return false, err
	}
	r.s.data.health[key.ID] = record
	return true, nil
}

func (r *HealthRepository) Delete(_ context.Context, key health.Key) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.data.health[key.ID]
	if !ok || record.FamilyID != key.FamilyID || record.FamilyMemberID != key.FamilyMemberID {
		return false, nil
	}
	delete(r.s.data.health, key.ID)
	return true, nil
}

type NeedsRepository struct {
	s *Store
}

func (s *Store) Needs() *NeedsRepository {
	return &NeedsRepository{s: s}
}

func (r *NeedsRepository) Create(_ context.Context, need *needs.MemberNeed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	need.ID = r.s.nextID()
	need.CreatedAt = r.s.now()
	need.UpdatedAt = need.CreatedAt
	r.s.data.needs[need.ID] = *need
	return nil
}

func (r *NeedsRepository) Get(_ context.Context, key needs.Key) (*needs.MemberNeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	need, ok := r.s.data.needs[key.ID]
	if !ok || need.FamilyID != key.FamilyID || need.FamilyMemberID != key.FamilyMemberID {
		return nil, needs.ErrMemberNeedNotFound
	}
	return &need, nil
}

func (r *NeedsRepository) ListByFamily(_ context.Context, familyID uint) ([]needs.MemberNeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.needs, func(n needs.MemberNeed) bool {
		return n.FamilyID == familyID
	}), nil
}

func (r *NeedsRepository) ListByMember(_ context.Context, familyID, memberID uint) ([]needs.MemberNeed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.needs, func(n needs.MemberNeed) bool {
		return n.FamilyID == familyID && n.FamilyMemberID == memberID
	}), nil
}

func (r *NeedsRepository) Update(_ context.Context, key needs.Key, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	need, ok := r.s.data.needs[key.ID]
	if !ok || need.FamilyID != key.FamilyID || need.FamilyMemberID != key.FamilyMemberID {
		return false, nil
	}
	if err := applyChanges(&need, changes, r.s.now()); err != nil {
		return false, err
	}
	r.s.data.needs[key.ID] = need
	return true, nil
}

func (r *NeedsRepository) Delete(_ context.Context, key needs.Key) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	need, ok := r.s.data.needs[key.ID]
	if !ok || need.FamilyID != key.FamilyID || need.FamilyMemberID != key.FamilyMemberID {
		return false, nil
	}
	delete(r.s.data.needs, key.ID)
	return true, nil
}
