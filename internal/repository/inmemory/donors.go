package inmemory

import (
	"context"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
)

type DonorRepository struct {
	s *Store
}

func (s *Store) Donors() *DonorRepository {
	return &DonorRepository{s: s}
}

func (r *DonorRepository) Transaction(_ context.Context, fn func(donor.Repository) error) error {
	return r.s.transaction(func() error { return fn(r) })
}

func (r *DonorRepository) Create(_ context.Context, d *donor.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(d.Email, 0) {
		return donor.ErrDuplicateEmail
	}
	d.ID = r.s.nextID()
	d.CreatedAt = r.s.now()
	d.UpdatedAt = d.CreatedAt
	r.s.data.donors[d.ID] = *d
	return nil
}

func (r *DonorRepository) Get(_ context.Context, donorID uint) (*donor.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.data.donors[donorID]
	if !ok {
		return nil, donor.ErrDonorNotFound
	}
	return &d, nil
}

func (r *DonorRepository) List(_ context.Context) ([]donor.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedByID(r.s.data.donors, nil), nil
}

func (r *DonorRepository) Update(_ context.Context, donorID uint, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.data.donors[donorID]
	if !ok {
		return false, nil
	}
	if err := applyChanges(&d, changes, r.s.now()); err != nil {
		return false, err
	}
	if r.emailTaken(d.Email, donorID) {
		return false, donor.ErrDuplicateEmail
	}
	r.s.data.donors[donorID] = d
	return true, nil
}

func (r *DonorRepository) Delete(_ context.Context, donorID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.donors[donorID]; !ok {
		return false, nil
	}
	delete(r.s.data.donors, donorID)
	return true, nil
}

func (r *DonorRepository) CountDonations(_ context.Context, donorID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, d := range r.s.data.donations {
		if d.DonorID == donorID {
			n++
		}
	}
	return n, nil
}

func (r *DonorRepository) emailTaken(email string, self uint) bool {
	for id, other := range r.s.data.donors {
		if id != self && other.Email == email {
			return true
		}
	}
	return false
}

type DonationRepository struct {
	s *Store
}

func (s *Store) Donations() *DonationRepository {
	return &DonationRepository{s: s}
}

func (r *DonationRepository) Transaction(_ context.Context, fn func(donation.Repository) error) error {
	return r.s.transaction(func() error { return fn(r) })
}

func (r *DonationRepository) Create(_ context.Context, d *donation.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.nextID()
	d.CreatedAt = r.s.now()
	d.UpdatedAt = d.CreatedAt
	r.s.data.donations[d.ID] = *d
	return nil
}

func (r *DonationRepository) Get(_ context.Context, donationID uint) (*donation.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.data.donations[donationID]
	if !ok {
		return nil, donation.ErrDonationNotFound
	}
	return &d, nil
}

// GetForUpdate needs no row lock here: transactions already hold txMu.
func (r *DonationRepository) GetForUpdate(ctx context.Context, donationID uint) (*donation.Donation, error) {
	return r.Get(ctx, donationID)
}

func (r *DonationRepository) List(_ context.Context) ([]donation.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedByID(r.s.data.donations, nil), nil
}

func (r *DonationRepository) ListByDonor(_ context.Context, donorID uint) ([]donation.Donation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.donations, func(d donation.Donation) bool {
		return d.DonorID == donorID
	}), nil
}

func (r *DonationRepository) Update(_ context.Context, donationID uint, changes common.Changes) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.data.donations[donationID]
	if !ok {
		return false, nil
	}
	if err := applyChanges(&d, changes, r.s.now()); err != nil {
		return false, err
	}
	r.s.data.donations[donationID] = d
	return true, nil
}

func (r *DonationRepository) Delete(_ context.Context, donationID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.donations[donationID]; !ok {
		return false, nil
	}
	delete(r.s.data.donations, donationID)
	return true, nil
}

func (r *DonationRepository) CreateRecord(_ context.Context, record *donation.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record.ID = r.s.nextID()
	record.CreatedAt = r.s.now()
	r.s.data.records[record.ID] = *record
	return nil
}

func (r *DonationRepository) GetRecord(_ context.Context, recordID uint) (*donation.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record, ok := r.s.data.records[recordID]
	if !ok {
		return nil, donation.ErrRecordNotFound
	}
	return &record, nil
}

func (r *DonationRepository) ListRecords(_ context.Context, familyID uint) ([]donation.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.records, func(rec donation.Record) bool {
		return familyID == 0 || rec.FamilyID == familyID
	}), nil
}

func (r *DonationRepository) ListRecordsByDonation(_ context.Context, donationID uint) ([]donation.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedByID(r.s.data.records, func(rec donation.Record) bool {
		return rec.DonationID == donationID
	}), nil
}

func (r *DonationRepository) DeleteRecord(_ context.Context, recordID uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.records[recordID]; !ok {
		return false, nil
	}
	delete(r.s.data.records, recordID)
	return true, nil
}

func (r *DonationRepository) DeleteRecordsByDonation(_ context.Context, donationID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, record := range r.s.data.records {
		if record.DonationID == donationID {
			delete(r.s.data.records, id)
		}
	}
	return nil
}
