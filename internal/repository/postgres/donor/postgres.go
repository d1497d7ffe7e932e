package donor

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	donordomain "charity-app-go/internal/domain/donor"
	"charity-app-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

const donorEmailKey = "donors_email_key"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(donordomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, donor *donordomain.Donor) error {
	return translateError(r.db.WithContext(ctx).Create(donor).Error)
}

func (r *PostgresRepository) Get(ctx context.Context, donorID uint) (*donordomain.Donor, error) {
	var donor donordomain.Donor
	if err := r.db.WithContext(ctx).Where("id = ?", donorID).First(&donor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donordomain.ErrDonorNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]donordomain.Donor, error) {
	donors := make([]donordomain.Donor, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *PostgresRepository) Update(ctx context.Context, donorID uint, changes common.Changes) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&donordomain.Donor{}).
		Where("id = ?", donorID).
		Updates(map[string]any(changes))
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, donorID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&donordomain.Donor{}, "id = ?", donorID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) CountDonations(ctx context.Context, donorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("donations").Where("donor_id = ?", donorID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func translateError(err error) error {
	if pgerr.IsUniqueViolation(err, donorEmailKey) {
		return donordomain.ErrDuplicateEmail
	}
	return err
}
