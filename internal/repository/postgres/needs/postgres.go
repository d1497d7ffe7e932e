package needs

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	needsdomain "charity-app-go/internal/domain/needs"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, need *needsdomain.MemberNeed) error {
	return r.db.WithContext(ctx).Create(need).Error
}

func (r *PostgresRepository) Get(ctx context.Context, key needsdomain.Key) (*needsdomain.MemberNeed, error) {
	var need needsdomain.MemberNeed
	if err := r.scoped(ctx, key).First(&need).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, needsdomain.ErrMemberNeedNotFound
		}
		return nil, err
	}
	return &need, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID uint) ([]needsdomain.MemberNeed, error) {
	needs := make([]needsdomain.MemberNeed, 0)
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

func (r *PostgresRepository) ListByMember(ctx context.Context, familyID, memberID uint) ([]needsdomain.MemberNeed, error) {
	needs := make([]needsdomain.MemberNeed, 0)
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND family_member_id = ?", familyID, memberID).
		Order("id asc").
		Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

func (r *PostgresRepository) Update(ctx context.Context, key needsdomain.Key, changes common.Changes) (bool, error) {
	result := r.scoped(ctx, key).Model(&needsdomain.MemberNeed{}).Updates(map[string]any(changes))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key needsdomain.Key) (bool, error) {
	result := r.scoped(ctx, key).Delete(&needsdomain.MemberNeed{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) scoped(ctx context.Context, key needsdomain.Key) *gorm.DB {
	return r.db.WithContext(ctx).Where("id = ? AND family_id = ? AND family_member_id = ?", key.ID, key.FamilyID, key.FamilyMemberID)
}
