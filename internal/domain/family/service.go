package family

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/existence"
)

type ChainVerifier interface {
	VerifyChain(ctx context.Context, steps ...existence.Step) error
}

type Service struct {
	repo  Repository
	chain ChainVerifier
}

func NewService(repo Repository, chain ChainVerifier) *Service {
	return &Service{repo: repo, chain: chain}
}

// CreateFamily stores a family together with its inline members in one
// transaction and mirrors the flagged member's name into PersonCharge.
// An empty member list is allowed.
func (s *Service) CreateFamily(ctx context.Context, input CreateFamilyInput) (*Family, error) {
	family, err := newFamily(input.Family)
	if err != nil {
		return nil, err
	}

	members := make([]FamilyMember, 0, len(input.Members))
	flagged := 0
	for _, fields := range input.Members {
		member, err := newMember(0, fields)
		if err != nil {
			return nil, err
		}
		if member.IsPersonCharge {
			flagged++
		}
		members = append(members, member)
	}
	if flagged > 1 {
		return nil, ErrMultiplePersonCharge
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateFamily(ctx, &family); err != nil {
			return err
		}

		for i := range members {
			members[i].FamilyID = family.ID
			if err := tx.CreateMember(ctx, &members[i]); err != nil {
				return err
			}
			if members[i].IsPersonCharge {
				if err := tx.SetPersonCharge(ctx, family.ID, members[i].FullName()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetFamilyWithMembers(ctx, family.ID)
}

func (s *Service) GetFamily(ctx context.Context, familyID uint) (*Family, error) {
	if familyID == 0 {
		return nil, ErrFamilyNotFound
	}
	return s.repo.GetFamilyWithMembers(ctx, familyID)
}

func (s *Service) ListFamilies(ctx context.Context) ([]Family, error) {
	return s.repo.ListFamilies(ctx)
}

func (s *Service) ListFamiliesWithMembers(ctx context.Context) ([]Family, error) {
	return s.repo.ListFamiliesWithMembers(ctx)
}

func (s *Service) UpdateFamily(ctx context.Context, familyID uint, patch FamilyPatch) (*Family, common.UpdateOutcome, error) {
	if familyID == 0 {
		return nil, 0, ErrFamilyNotFound
	}

	var outcome common.UpdateOutcome
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetFamily(ctx, familyID)
		if err != nil {
			return err
		}

		changes, err := patch.apply(current)
		if err != nil {
			return err
		}
		if changes.Empty() {
			outcome = common.OutcomeUnchanged
			return nil
		}

		updated, err := tx.UpdateFamily(ctx, familyID, changes)
		if err != nil {
			return err
		}
		if !updated {
			return ErrFamilyNotFound
		}
		outcome = common.OutcomeUpdated
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	family, err := s.repo.GetFamilyWithMembers(ctx, familyID)
	if err != nil {
		return nil, 0, err
	}
	return family, outcome, nil
}

// DeleteFamily removes the family with its members and everything recorded
// against them.
func (s *Service) DeleteFamily(ctx context.Context, familyID uint) error {
	if familyID == 0 {
		return ErrFamilyNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetFamily(ctx, familyID); err != nil {
			return err
		}
		if err := tx.DeleteFamilyDependents(ctx, familyID); err != nil {
			return err
		}
		deleted, err := tx.DeleteFamily(ctx, familyID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrFamilyNotFound
		}
		return nil
	})
}

func (s *Service) CreateMember(ctx context.Context, familyID uint, fields MemberFields) (*FamilyMember, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID)); err != nil {
		return nil, err
	}

	member, err := newMember(familyID, fields)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if member.IsPersonCharge {
			if err := ensureNoPersonCharge(ctx, tx, familyID, 0); err != nil {
				return err
			}
		}
		if err := tx.CreateMember(ctx, &member); err != nil {
			return err
		}
		if member.IsPersonCharge {
			return tx.SetPersonCharge(ctx, familyID, member.FullName())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) ListMembers(ctx context.Context, familyID uint) ([]FamilyMember, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID)); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, familyID)
}

func (s *Service) GetMember(ctx context.Context, familyID, memberID uint) (*FamilyMember, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID), existence.FamilyMember(memberID)); err != nil {
		return nil, err
	}
	return s.repo.GetMember(ctx, familyID, memberID)
}

// UpdateMember applies a partial update scoped to familyID and keeps
// Family.PersonCharge in sync with the flagged member's name.
func (s *Service) UpdateMember(ctx context.Context, familyID, memberID uint, patch MemberPatch) (*FamilyMember, common.UpdateOutcome, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID), existence.FamilyMember(memberID)); err != nil {
		return nil, 0, err
	}

	var outcome common.UpdateOutcome
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetMember(ctx, familyID, memberID)
		if err != nil {
			return err
		}
		wasInCharge := current.IsPersonCharge

		changes, err := patch.apply(current)
		if err != nil {
			return err
		}
		if changes.Empty() {
			outcome = common.OutcomeUnchanged
			return nil
		}

		if current.IsPersonCharge && !wasInCharge {
			if err := ensureNoPersonCharge(ctx, tx, familyID, memberID); err != nil {
				return err
			}
		}

		updated, err := tx.UpdateMember(ctx, familyID, memberID, changes)
		if err != nil {
			return err
		}
		if !updated {
			return ErrMemberNotFound
		}

		switch {
		case current.IsPersonCharge:
			if err := tx.SetPersonCharge(ctx, familyID, current.FullName()); err != nil {
				return err
			}
		case wasInCharge:
			if err := tx.SetPersonCharge(ctx, familyID, ""); err != nil {
				return err
			}
		}

		outcome = common.OutcomeUpdated
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	member, err := s.repo.GetMember(ctx, familyID, memberID)
	if err != nil {
		return nil, 0, err
	}
	return member, outcome, nil
}

// DeleteMember refuses to remove the person in charge; the family has to be
// deleted as a whole instead.
func (s *Service) DeleteMember(ctx context.Context, familyID, memberID uint) error {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID), existence.FamilyMember(memberID)); err != nil {
		return err
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		member, err := tx.GetMember(ctx, familyID, memberID)
		if err != nil {
			return err
		}
		if member.IsPersonCharge {
			return ErrPersonChargeProtected
		}

		if err := tx.DeleteMemberDependents(ctx, familyID, memberID); err != nil {
			return err
		}
		deleted, err := tx.DeleteMember(ctx, familyID, memberID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrMemberNotFound
		}
		return nil
	})
}

func ensureNoPersonCharge(ctx context.Context, tx Repository, familyID, exceptMemberID uint) error {
	holder, err := tx.FindPersonCharge(ctx, familyID)
	if errors.Is(err, ErrMemberNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.ID != exceptMemberID {
		return ErrPersonChargeExists
	}
	return nil
}
