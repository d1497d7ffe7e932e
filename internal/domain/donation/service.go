package donation

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

func (s *Service) Create(ctx context.Context, fields Fields) (*Donation, error) {
	if err := s.chain.VerifyChain(ctx, existence.Donor(fields.DonorID)); err != nil {
		return nil, err
	}
	if fields.DonationDate == nil {
		return nil, fmt.Errorf("%w: donationDate is required", common.ErrInvalidInput)
	}
	if fields.DonationTook == nil {
		return nil, fmt.Errorf("%w: donationTook is required", common.ErrInvalidInput)
	}
	took, err := ParseContribution("donationTook", *fields.DonationTook)
	if err != nil {
		return nil, err
	}

	donation := Donation{
		DonorID:      fields.DonorID,
		DonationDate: *fields.DonationDate,
		DonationTook: datatypes.NewJSONType(took),
		Properties:   strings.TrimSpace(fields.Properties),
	}
	if err := s.repo.Create(ctx, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (s *Service) Get(ctx context.Context, donationID uint) (*Donation, error) {
	if donationID == 0 {
		return nil, ErrDonationNotFound
	}
	return s.repo.Get(ctx, donationID)
}

func (s *Service) List(ctx context.Context) ([]Donation, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByDonor(ctx context.Context, donorID uint) ([]Donation, error) {
	if err := s.chain.VerifyChain(ctx, existence.Donor(donorID)); err != nil {
		return nil, err
	}
	return s.repo.ListByDonor(ctx, donorID)
}

// Update rejects a new donationTook that no longer covers what the donation's
// records already handed out.
func (s *Service) Update(ctx context.Context, donationID uint, patch Patch) (*Donation, common.UpdateOutcome, error) {
	if donationID == 0 {
		return nil, 0, ErrDonationNotFound
	}

	var outcome common.UpdateOutcome
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		current, err := tx.GetForUpdate(ctx, donationID)
		if err != nil {
			return err
		}

		changes := common.Changes{}
		if patch.DonorID != nil && *patch.DonorID != current.DonorID {
			if err := s.chain.VerifyChain(ctx, existence.Donor(*patch.DonorID)); err != nil {
				return err
			}
			common.Set(changes, "donor_id", &current.DonorID, patch.DonorID)
		}
		common.SetDate(changes, "donation_date", &current.DonationDate, patch.DonationDate)
		common.SetTrimmed(changes, "properties", &current.Properties, patch.Properties)

		if patch.DonationTook != nil {
			took, err := ParseContribution("donationTook", *patch.DonationTook)
			if err != nil {
				return err
			}
			if !took.Equal(current.DonationTook.Data()) {
				records, err := tx.ListRecordsByDonation(ctx, donationID)
				if err != nil {
					return err
				}
				if !coversAll(took, records) {
					return ErrExceedsDonation
				}
				changes["donation_took"] = datatypes.NewJSONType(took)
			}
		}

		if changes.Empty() {
			outcome = common.OutcomeUnchanged
			return nil
		}
		updated, err := tx.Update(ctx, donationID, changes)
		if err != nil {
			return err
		}
		if !updated {
			return ErrDonationNotFound
		}
		outcome = common.OutcomeUpdated
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	donation, err := s.repo.Get(ctx, donationID)
	if err != nil {
		return nil, 0, err
	}
	return donation, outcome, nil
}

func (s *Service) Delete(ctx context.Context, donationID uint) error {
	if donationID == 0 {
		return ErrDonationNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.Get(ctx, donationID); err != nil {
			return err
		}
		if err := tx.DeleteRecordsByDonation(ctx, donationID); err != nil {
			return err
		}
		deleted, err := tx.Delete(ctx, donationID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrDonationNotFound
		}
		return nil
	})
}

// Remaining is what is left of a donation after its records.
func (s *Service) Remaining(ctx context.Context, donationID uint) (Contribution, error) {
	donation, err := s.Get(ctx, donationID)
	if err != nil {
		return Contribution{}, err
	}
	records, err := s.repo.ListRecordsByDonation(ctx, donationID)
	if err != nil {
		return Contribution{}, err
	}
	return donation.DonationTook.Data().Remaining(given(records)...), nil
}

func (s *Service) CreateRecord(ctx context.Context, fields RecordFields) (*Record, error) {
	if err := s.chain.VerifyChain(ctx, existence.Donation(fields.DonationID), existence.Family(fields.FamilyID)); err != nil {
		return nil, err
	}
	if fields.DonationDate == nil {
		return nil, fmt.Errorf("%w: donationDate is required", common.ErrInvalidInput)
	}
	if fields.DonationGiven == nil {
		return nil, fmt.Errorf("%w: donationGiven is required", common.ErrInvalidInput)
	}
	want, err := ParseContribution("donationGiven", *fields.DonationGiven)
	if err != nil {
		return nil, err
	}

	record := Record{
		DonationID:    fields.DonationID,
		FamilyID:      fields.FamilyID,
		DonationDate:  *fields.DonationDate,
		DonationGiven: datatypes.NewJSONType(want),
	}
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		donation, err := tx.GetForUpdate(ctx, fields.DonationID)
		if err != nil {
			return err
		}
		records, err := tx.ListRecordsByDonation(ctx, fields.DonationID)
		if err != nil {
			return err
		}
		if !donation.DonationTook.Data().Remaining(given(records)...).Covers(want) {
			return ErrExceedsDonation
		}
		return tx.CreateRecord(ctx, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) GetRecord(ctx context.Context, recordID uint) (*Record, error) {
	if recordID == 0 {
		return nil, ErrRecordNotFound
	}
	return s.repo.GetRecord(ctx, recordID)
}

// ListRecords lists every record, or only the family's when familyID is set.
func (s *Service) ListRecords(ctx context.Context, familyID uint) ([]Record, error) {
	if familyID != 0 {
		if err := s.chain.VerifyChain(ctx, existence.Family(familyID)); err != nil {
			return nil, err
		}
	}
	return s.repo.ListRecords(ctx, familyID)
}

func (s *Service) DeleteRecord(ctx context.Context, recordID uint) error {
	if recordID == 0 {
		return ErrRecordNotFound
	}
	deleted, err := s.repo.DeleteRecord(ctx, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

func given(records []Record) []Contribution {
	out := make([]Contribution, 0, len(records))
	for _, record := range records {
		out = append(out, record.DonationGiven.Data())
	}
	return out
}

func coversAll(took Contribution, records []Record) bool {
	left := took
	for _, g := range given(records) {
		if !left.Covers(g) {
			return false
		}
		left = left.Remaining(g)
	}
	return true
}
