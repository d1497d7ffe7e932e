package donation

import (
	"context"

	"charity-app-go/internal/domain/common"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, donation *Donation) error
	Get(ctx context.Context, donationID uint) (*Donation, error)
	// GetForUpdate reads the donation and holds it until the surrounding
	// transaction ends, serializing allocations against it.
	GetForUpdate(ctx context.Context, donationID uint) (*Donation, error)
	List(ctx context.Context) ([]Donation, error)
	ListByDonor(ctx context.Context, donorID uint) ([]Donation, error)
	Update(ctx context.Context, donationID uint, changes common.Changes) (bool, error)
	Delete(ctx context.Context, donationID uint) (bool, error)

	CreateRecord(ctx context.Context, record *Record) error
	GetRecord(ctx context.Context, recordID uint) (*Record, error)
	// ListRecords returns every record when familyID is 0.
	ListRecords(ctx context.Context, familyID uint) ([]Record, error)
	ListRecordsByDonation(ctx context.Context, donationID uint) ([]Record, error)
	DeleteRecord(ctx context.Context, recordID uint) (bool, error)
	DeleteRecordsByDonation(ctx context.Context, donationID uint) error
}
