package existence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	families map[uint]bool
	members  map[uint]uint // member id -> family id
	calls    []Step
	err      error
}

func (s *fakeStore) Exists(ctx context.Context, step Step, parent *Step) (bool, error) {
	s.calls = append(s.calls, step)
	if s.err != nil {
		return false, s.err
	}
	switch step.Kind {
	case KindFamily:
		return s.families[step.ID], nil
	case KindFamilyMember:
		familyID, ok := s.members[step.ID]
		if !ok {
			return false, nil
		}
		if parent != nil && Owns(parent.Kind, step.Kind) {
			return familyID == parent.ID, nil
		}
		return true, nil
	}
	return false, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		families: map[uint]bool{1: true, 2: true},
		members:  map[uint]uint{10: 1, 20: 2},
	}
}

func TestVerifyChainSuccess(t *testing.T) {
	store := newFakeStore()
	v := NewValidator(store)

	require.NoError(t, v.VerifyChain(context.Background(), Family(1), FamilyMember(10)))
	assert.Len(t, store.calls, 2)
}

func TestVerifyChainMissingFamilyShortCircuits(t *testing.T) {
	store := newFakeStore()
	v := NewValidator(store)

	err := v.VerifyChain(context.Background(), Family(99), FamilyMember(10))
	missing, ok := AsMissing(err)
	require.True(t, ok)
	assert.Equal(t, KindFamily, missing.Kind)
	assert.Equal(t, uint(99), missing.ID)
	assert.True(t, errors.Is(err, ErrMissing))
	assert.Len(t, store.calls, 1)
}

func TestVerifyChainMemberOfAnotherFamily(t *testing.T) {
	v := NewValidator(newFakeStore())

	err := v.VerifyChain(context.Background(), Family(1), FamilyMember(20))
	missing, ok := AsMissing(err)
	require.True(t, ok)
	assert.Equal(t, KindFamilyMember, missing.Kind)
	assert.Equal(t, "FamilyMember 20 not found", err.Error())
}

func TestVerifyChainZeroIDNeverHitsStore(t *testing.T) {
	store := newFakeStore()
	v := NewValidator(store)

	err := v.VerifyChain(context.Background(), Family(1), FamilyMember(0))
	missing, ok := AsMissing(err)
	require.True(t, ok)
	assert.Equal(t, KindFamilyMember, missing.Kind)
	assert.Len(t, store.calls, 1)
}

func TestVerifyChainStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("connection reset")
	v := NewValidator(store)

	err := v.VerifyChain(context.Background(), Family(1))
	require.Error(t, err)
	_, ok := AsMissing(err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, store.err)
}

func TestOwns(t *testing.T) {
	assert.True(t, Owns(KindFamily, KindFamilyMember))
	assert.True(t, Owns(KindDonor, KindDonation))
	assert.False(t, Owns(KindDonation, KindFamily))
}
