package donor

import (
	"context"
	"errors"
	"testing"

	"charity-app-go/internal/domain/common"
)

type fakeDonorRepo struct {
	donors    map[uint]*Donor
	donations map[uint]int64
	nextID    uint
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{donors: make(map[uint]*Donor), donations: make(map[uint]int64)}
}

func (r *fakeDonorRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeDonorRepo) Create(ctx context.Context, donor *Donor) error {
	for _, existing := range r.donors {
		if existing.Email == donor.Email {
			return ErrDuplicateEmail
		}
	}
	r.nextID++
	donor.ID = r.nextID
	copied := *donor
	r.donors[donor.ID] = &copied
	return nil
}

func (r *fakeDonorRepo) Get(ctx context.Context, donorID uint) (*Donor, error) {
	donor, ok := r.donors[donorID]
	if !ok {
		return nil, ErrDonorNotFound
	}
	copied := *donor
	return &copied, nil
}

func (r *fakeDonorRepo) List(ctx context.Context) ([]Donor, error) {
	result := make([]Donor, 0, len(r.donors))
	for id := uint(1); id <= r.nextID; id++ {
		if donor, ok := r.donors[id]; ok {
			result = append(result, *donor)
		}
	}
	return result, nil
}

func (r *fakeDonorRepo) Update(ctx context.Context, donorID uint, changes common.Changes) (bool, error) {
	donor, ok := r.donors[donorID]
	if !ok {
		return false, nil
	}
	if value, ok := changes["address"]; ok {
		donor.Address = value.(string)
	}
	if value, ok := changes["donor_category"]; ok {
		donor.DonorCategory = value.(common.DonorCategory)
	}
	return true, nil
}

func (r *fakeDonorRepo) Delete(ctx context.Context, donorID uint) (bool, error) {
	if _, ok := r.donors[donorID]; !ok {
		return false, nil
	}
	delete(r.donors, donorID)
	return true, nil
}

func (r *fakeDonorRepo) CountDonations(ctx context.Context, donorID uint) (int64, error) {
	return r.donations[donorID], nil
}

func validFields() Fields {
	return Fields{
		FirstName:      "Sami",
		LastName:       "Khoury",
		Email:          "Sami@Example.org",
		NationalNumber: "00123456789",
	}
}

func TestCreateDonorDefaults(t *testing.T) {
	svc := NewService(newFakeDonorRepo())

	donor, err := svc.Create(context.Background(), validFields())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if donor.Email != "sami@example.org" {
		t.Fatalf("expected normalized email, got %q", donor.Email)
	}
	if donor.Gender != common.GenderMale || donor.DonorCategory != common.DonorOneTime {
		t.Fatalf("expected defaults, got %+v", donor)
	}
	if donor.NationalNumber != "00123456789" {
		t.Fatalf("expected leading zeros kept, got %q", donor.NationalNumber)
	}
}

func TestCreateDonorValidation(t *testing.T) {
	svc := NewService(newFakeDonorRepo())

	noEmail := validFields()
	noEmail.Email = ""
	badCategory := validFields()
	badCategory.DonorCategory = "weekly"
	noName := validFields()
	noName.LastName = " "

	for _, fields := range []Fields{noEmail, badCategory, noName} {
		if _, err := svc.Create(context.Background(), fields); !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", fields, err)
		}
	}
}

func TestUpdateDonor(t *testing.T) {
	svc := NewService(newFakeDonorRepo())
	donor, _ := svc.Create(context.Background(), validFields())

	category := "Committed"
	updated, outcome, err := svc.Update(context.Background(), donor.ID, Patch{DonorCategory: &category})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != common.OutcomeUpdated || updated.DonorCategory != common.DonorCommitted {
		t.Fatalf("unexpected result %s %+v", outcome, updated)
	}

	_, outcome, err = svc.Update(context.Background(), donor.ID, Patch{DonorCategory: &category})
	if err != nil || outcome != common.OutcomeUnchanged {
		t.Fatalf("expected unchanged, got %s %v", outcome, err)
	}

	if _, _, err := svc.Update(context.Background(), 42, Patch{DonorCategory: &category}); !errors.Is(err, ErrDonorNotFound) {
		t.Fatalf("expected ErrDonorNotFound, got %v", err)
	}
}

func TestDeleteDonorWithDonations(t *testing.T) {
	repo := newFakeDonorRepo()
	svc := NewService(repo)
	donor, _ := svc.Create(context.Background(), validFields())
	repo.donations[donor.ID] = 2

	if err := svc.Delete(context.Background(), donor.ID); !errors.Is(err, ErrDonorHasDonations) {
		t.Fatalf("expected ErrDonorHasDonations, got %v", err)
	}

	repo.donations[donor.ID] = 0
	if err := svc.Delete(context.Background(), donor.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.Delete(context.Background(), donor.ID); !errors.Is(err, ErrDonorNotFound) {
		t.Fatalf("expected ErrDonorNotFound, got %v", err)
	}
}
