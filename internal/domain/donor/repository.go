package donor

import (
	"context"

	"charity-app-go/internal/domain/common"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	Create(ctx context.Context, donor *Donor) error
	Get(ctx context.Context, donorID uint) (*Donor, error)
	List(ctx context.Context) ([]Donor, error)
	Update(ctx context.Context, donorID uint, changes common.Changes) (bool, error)
	Delete(ctx context.Context, donorID uint) (bool, error)
	CountDonations(ctx context.Context, donorID uint) (int64, error)
}
