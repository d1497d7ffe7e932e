package health

import (
	"context"
	"fmt"
	"strings"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/existence"
	"gorm.io/datatypes"
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

func (s *Service) Create(ctx context.Context, familyID, memberID uint, fields Fields) (*HealthHistory, error) {
	if err := s.verifyMember(ctx, familyID, memberID); err != nil {
		return nil, err
	}

	disease := Disease{
		DiseaseName:  strings.TrimSpace(fields.DiseaseName),
		MedicineName: strings.TrimSpace(fields.MedicineName),
	}
	if disease.DiseaseName == "" {
		return nil, fmt.Errorf("%w: disease.diseaseName is required", common.ErrInvalidInput)
	}

	record := HealthHistory{
		FamilyID:       familyID,
		FamilyMemberID: memberID,
		Disease:        datatypes.NewJSONType(disease),
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) ListByFamily(ctx context.Context, familyID uint) ([]HealthHistory, error) {
	if err := s.chain.VerifyChain(ctx, existence.Family(familyID)); err != nil {
		return nil, err
	}
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) ListByMember(ctx context.Context, familyID, memberID uint) ([]HealthHistory, error) {
	if err := s.verifyMember(ctx, familyID, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, familyID, memberID)
}

func (s *Service) Get(ctx context.Context, key Key) (*HealthHistory, error) {
	if err := s.verifyMember(ctx, key.FamilyID, key.FamilyMemberID); err != nil {
		return nil, err
	}
	if key.ID == 0 {
		return nil, ErrHealthHistoryNotFound
	}
	return s.repo.Get(ctx, key)
}

func (s *Service) Update(ctx context.Context, key Key, patch Patch) (*HealthHistory, common.UpdateOutcome, error) {
	current, err := s.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}

	if patch.DiseaseName != nil && strings.TrimSpace(*patch.DiseaseName) == "" {
		return nil, 0, fmt.Errorf("%w: disease.diseaseName cannot be empty", common.ErrInvalidInput)
	}

	disease := current.Disease.Data()
	scratch := common.Changes{}
	common.SetTrimmed(scratch, "diseaseName", &disease.DiseaseName, patch.DiseaseName)
	common.SetTrimmed(scratch, "medicineName", &disease.MedicineName, patch.MedicineName)
	if scratch.Empty() {
		return current, common.OutcomeUnchanged, nil
	}

	updated, err := s.repo.Update(ctx, key, common.Changes{"disease": datatypes.NewJSONType(disease)})
	if err != nil {
		return nil, 0, err
	}
	if !updated {
		return nil, 0, ErrHealthHistoryNotFound
	}

	record, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	return record, common.OutcomeUpdated, nil
}

func (s *Service) Delete(ctx context.Context, key Key) error {
	if err := s.verifyMember(ctx, key.FamilyID, key.FamilyMemberID); err != nil {
		return err
	}
	if key.ID == 0 {
		return ErrHealthHistoryNotFound
	}

	deleted, err := s.repo.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHealthHistoryNotFound
	}
	return nil
}

func (s *Service) verifyMember(ctx context.Context, familyID, memberID uint) error {
	return s.chain.VerifyChain(ctx, existence.Family(familyID), existence.FamilyMember(memberID))
}
