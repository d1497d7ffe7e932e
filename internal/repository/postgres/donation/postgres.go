package donation

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	donationdomain "charity-app-go/internal/domain/donation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(donationdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Create(ctx context.Context, donation *donationdomain.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *PostgresRepository) Get(ctx context.Context, donationID uint) (*donationdomain.Donation, error) {
	var donation donationdomain.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", donationID).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donationdomain.ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, donationID uint) (*donationdomain.Donation, error) {
	var donation donationdomain.Donation
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", donationID).
		First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donationdomain.ErrDonationNotFound
		}
		return nil, err
	}
	return &donation, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]donationdomain.Donation, error) {
	donations := make([]donationdomain.Donation, 0)
	if err := r.db.WithContext(ctx).Order("donation_date asc, id asc").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *PostgresRepository) ListByDonor(ctx context.Context, donorID uint) ([]donationdomain.Donation, error) {
	donations := make([]donationdomain.Donation, 0)
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("donation_date asc, id asc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *PostgresRepository) Update(ctx context.Context, donationID uint, changes common.Changes) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&donationdomain.Donation{}).
		Where("id = ?", donationID).
		Updates(map[string]any(changes))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, donationID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&donationdomain.Donation{}, "id = ?", donationID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) CreateRecord(ctx context.Context, record *donationdomain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) GetRecord(ctx context.Context, recordID uint) (*donationdomain.Record, error) {
	var record donationdomain.Record
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, donationdomain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) ListRecords(ctx context.Context, familyID uint) ([]donationdomain.Record, error) {
	records := make([]donationdomain.Record, 0)
	query := r.db.WithContext(ctx).Order("id asc")
	if familyID != 0 {
		query = query.Where("family_id = ?", familyID)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) ListRecordsByDonation(ctx context.Context, donationID uint) ([]donationdomain.Record, error) {
	records := make([]donationdomain.Record, 0)
	if err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) DeleteRecord(ctx context.Context, recordID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&donationdomain.Record{}, "id = ?", recordID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteRecordsByDonation(ctx context.Context, donationID uint) error {
	return r.db.WithContext(ctx).Where("donation_id = ?", donationID).Delete(&donationdomain.Record{}).Error
}
