package donor

import (
	"context"
	"fmt"
	"strings"

	"charity-app-go/internal/domain/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, fields Fields) (*Donor, error) {
	donor, err := newDonor(fields)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &donor); err != nil {
		return nil, err
	}
	return &donor, nil
}

func (s *Service) Get(ctx context.Context, donorID uint) (*Donor, error) {
	if donorID == 0 {
		return nil, ErrDonorNotFound
	}
	return s.repo.Get(ctx, donorID)
}

func (s *Service) List(ctx context.Context) ([]Donor, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, donorID uint, patch Patch) (*Donor, common.UpdateOutcome, error) {
	current, err := s.Get(ctx, donorID)
	if err != nil {
		return nil, 0, err
	}

	changes, err := patch.apply(current)
	if err != nil {
		return nil, 0, err
	}
	if changes.Empty() {
		return current, common.OutcomeUnchanged, nil
	}

	updated, err := s.repo.Update(ctx, donorID, changes)
	if err != nil {
		return nil, 0, err
	}
	if !updated {
		return nil, 0, ErrDonorNotFound
	}

	donor, err := s.repo.Get(ctx, donorID)
	if err != nil {
		return nil, 0, err
	}
	return donor, common.OutcomeUpdated, nil
}

// Delete refuses donors that still have donations so the ledger keeps its
// attribution.
func (s *Service) Delete(ctx context.Context, donorID uint) error {
	if donorID == 0 {
		return ErrDonorNotFound
	}

	return s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.Get(ctx, donorID); err != nil {
			return err
		}
		count, err := tx.CountDonations(ctx, donorID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDonorHasDonations
		}

		deleted, err := tx.Delete(ctx, donorID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrDonorNotFound
		}
		return nil
	})
}

func newDonor(fields Fields) (Donor, error) {
	firstName := strings.TrimSpace(fields.FirstName)
	lastName := strings.TrimSpace(fields.LastName)
	if firstName == "" || lastName == "" {
		return Donor{}, fmt.Errorf("%w: firstName and lastName are required", common.ErrInvalidInput)
	}

	email, err := common.ParseEmail("email", fields.Email)
	if err != nil {
		return Donor{}, err
	}
	if email == "" {
		return Donor{}, fmt.Errorf("%w: email is required", common.ErrInvalidInput)
	}

	gender := common.GenderMale
	if strings.TrimSpace(fields.Gender) != "" {
		if gender, err = common.ParseGender(fields.Gender); err != nil {
			return Donor{}, err
		}
	}

	category := common.DonorOneTime
	if strings.TrimSpace(fields.DonorCategory) != "" {
		if category, err = common.ParseDonorCategory(fields.DonorCategory); err != nil {
			return Donor{}, err
		}
	}

	return Donor{
		IDCopy:            strings.TrimSpace(fields.IDCopy),
		NationalNumber:    strings.TrimSpace(fields.NationalNumber),
		FirstName:         firstName,
		LastName:          lastName,
		Gender:            gender,
		Email:             email,
		BankAccountNumber: strings.TrimSpace(fields.BankAccountNumber),
		Address:           strings.TrimSpace(fields.Address),
		PhoneNumber:       strings.TrimSpace(fields.PhoneNumber),
		DateOfBirth:       fields.DateOfBirth,
		DonorCategory:     category,
	}, nil
}

func (p Patch) apply(d *Donor) (common.Changes, error) {
	changes := common.Changes{}

	for _, name := range []*string{p.FirstName, p.LastName} {
		if name != nil && strings.TrimSpace(*name) == "" {
			return nil, fmt.Errorf("%w: firstName and lastName cannot be empty", common.ErrInvalidInput)
		}
	}
	if p.Email != nil {
		email, err := common.ParseEmail("email", *p.Email)
		if err != nil {
			return nil, err
		}
		if email == "" {
			return nil, fmt.Errorf("%w: email cannot be empty", common.ErrInvalidInput)
		}
		common.Set(changes, "email", &d.Email, &email)
	}
	if p.Gender != nil {
		gender, err := common.ParseGender(*p.Gender)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "gender", &d.Gender, &gender)
	}
	if p.DonorCategory != nil {
		category, err := common.ParseDonorCategory(*p.DonorCategory)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "donor_category", &d.DonorCategory, &category)
	}

	common.SetTrimmed(changes, "id_copy", &d.IDCopy, p.IDCopy)
	common.SetTrimmed(changes, "national_number", &d.NationalNumber, p.NationalNumber)
	common.SetTrimmed(changes, "first_name", &d.FirstName, p.FirstName)
	common.SetTrimmed(changes, "last_name", &d.LastName, p.LastName)
	common.SetTrimmed(changes, "bank_account_number", &d.BankAccountNumber, p.BankAccountNumber)
	common.SetTrimmed(changes, "address", &d.Address, p.Address)
	common.SetTrimmed(changes, "phone_number", &d.PhoneNumber, p.PhoneNumber)
	common.SetOptionalDate(changes, "date_of_birth", &d.DateOfBirth, p.DateOfBirth)
	return changes, nil
}
