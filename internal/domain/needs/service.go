package needs

import (
	"context"
	"fmt"
	"strings"

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

func (s *Service) Create(ctx context.Context, familyID, memberID uint, fields Fields) (*MemberNeed, error) {
	if err := s.verifyMember(ctx, familyID, memberID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(fields.NeedName)
	if name == "" {
		return nil, fmt.Errorf("%w: needName is required", common.ErrInvalidInput)
	}
	priority := common.DefaultPriority
	if fields.MemberPriority != nil {
		var err error
		if priority, err = common.ParsePriority("memberPriority", *fields.MemberPriority); err != nil {
			return nil, err
		}
	}

	need := MemberNeed{
		FamilyID:       familyID,
		FamilyMemberID: memberID,
		NeedName:       name,
		MemberPriority: priority,
	}
	if err := s.repo.Create(ctx, &need); err != nil {
		return nil, err
	}
	return &need, nil
}

func (s *Service) ListByFamily(ctx context.Context, familyID uint) ([]MemberNeed, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID)); err != nil {
		return nil, err
	}
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) ListByMember(ctx context.Context, familyID, memberID uint) ([]MemberNeed, error) {
	if err := s.verifyMember(ctx, familyID, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, familyID, memberID)
}

func (s *Service) Get(ctx context.Context, key Key) (*MemberNeed, error) {
	if err := s.verifyMember(ctx, key.FamilyID, key.FamilyMemberID); err != nil {
		return nil, err
	}
	if key.ID == 0 {
		return nil, ErrMemberNeedNotFound
	}
	return s.repo.Get(ctx, key)
}

func (s *Service) Update(ctx context.Context, key Key, patch Patch) (*MemberNeed, common.UpdateOutcome, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}

	changes := common.Changes{}
	if patch.NeedName != nil {
		if strings.TrimSpace(*patch.NeedName) == "" {
			return nil, 0, fmt.Errorf("%w: needName cannot be empty", common.ErrInvalidInput)
		}
		common.SetTrimmed(changes, "need_name", &current.NeedName, patch.NeedName)
	}
	if patch.MemberPriority != nil {
		priority, err := common.ParsePriority("memberPriority", *patch.MemberPriority)
		if err != nil {
			return nil, 0, err
		}
		common.Set(changes, "member_priority", &current.MemberPriority, &priority)
	}
	if changes.Empty() {
		return current, common.OutcomeUnchanged, nil
	}

	updated, err := s.repo.Update(ctx, key, changes)
	if err != nil {
		return nil, 0, err
	}
	if !updated {
		return nil, 0, ErrMemberNeedNotFound
	}

	need, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	return need, common.OutcomeUpdated, nil
}

func (s *Service) Delete(ctx context.Context, key Key) error {
	if err := s.verifyMember(ctx, key.FamilyID, key.FamilyMemberID); err != nil {
		return err
	}
	if key.ID == 0 {
		return ErrMemberNeedNotFound
	}

	deleted, err := s.repo.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNeedNotFound
	}
	return nil
}

func (s *Service) verifyMember(ctx context.Context, familyID, memberID uint) error {
	return s.chain.VerifyChain(ctx, existence.Family(familyID), existence.FamilyMember(memberID))
}
