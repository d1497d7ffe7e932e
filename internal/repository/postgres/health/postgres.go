package health

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	healthdomain "charity-app-go/internal/domain/health"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, record *healthdomain.HealthHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) Get(ctx context.Context, key healthdomain.Key) (*healthdomain.HealthHistory, error) {
	var record healthdomain.HealthHistory
	if err := r.scoped(ctx, key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, healthdomain.ErrHealthHistoryNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID uint) ([]healthdomain.HealthHistory, error) {
	records := make([]healthdomain.HealthHistory, 0)
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) ListByMember(ctx context.Context, familyID, memberID uint) ([]healthdomain.HealthHistory, error) {
	records := make([]healthdomain.HealthHistory, 0)
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND family_member_id = ?", familyID, memberID).
		Order("id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) Update(ctx context.Context, key healthdomain.Key, changes common.Changes) (bool, error) {
	result := r.scoped(ctx, key).Model(&healthdomain.HealthHistory{}).Updates(map[string]any(changes))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key healthdomain.Key) (bool, error) {
	result := r.scoped(ctx, key).Delete(&healthdomain.HealthHistory{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) scoped(ctx context.Context, key healthdomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("id = ? AND family_id = ? AND family_member_id = ?", key.ID, key.FamilyID, key.FamilyMemberID)
}
