package family

import (
	"context"
	"errors"

	"charity-app-go/internal/domain/common"
	familydomain "charity-app-go/internal/domain/family"
	"charity-app-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

const (
	memberEmailKey        = "family_members_email_key"
	memberPersonChargeKey = "family_members_person_charge_key"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(familydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateFamily(ctx context.Context, family *familydomain.Family) error {
	return r.db.WithContext(ctx).Omit("Members").Create(family).Error
}

func (r *PostgresRepository) GetFamily(ctx context.Context, familyID uint) (*familydomain.Family, error) {
	var family familydomain.Family
	if err := r.db.WithContext(ctx).Where("id = ?", familyID).First(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &family, nil
}

func (r *PostgresRepository) GetFamilyWithMembers(ctx context.Context, familyID uint) (*familydomain.Family, error) {
	var family familydomain.Family
	if err := r.db.WithContext(ctx).
		Preload("Members", orderByID).
		Where("id = ?", familyID).
		First(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &family, nil
}

func (r *PostgresRepository) ListFamilies(ctx context.Context) ([]familydomain.Family, error) {
	families := make([]familydomain.Family, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *PostgresRepository) ListFamiliesWithMembers(ctx context.Context) ([]familydomain.Family, error) {
	families := make([]familydomain.Family, 0)
	if err := r.db.WithContext(ctx).
		Preload("Members", orderByID).
		Order("id asc").
		Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *PostgresRepository) UpdateFamily(ctx context.Context, familyID uint, changes common.Changes) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&familydomain.Family{}).
		Where("id = ?", familyID).
		Updates(map[string]any(changes))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) SetPersonCharge(ctx context.Context, familyID uint, name string) error {
	return r.db.WithContext(ctx).
		Model(&familydomain.Family{}).
		Where("id = ?", familyID).
		Update("person_charge", name).Error
}

func (r *PostgresRepository) DeleteFamily(ctx context.Context, familyID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&familydomain.Family{}, "id = ?", familyID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteFamilyDependents clears every row that references the family, children
// first, so the family row itself can go.
func (r *PostgresRepository) DeleteFamilyDependents(ctx context.Context, familyID uint) error {
	db := r.db.WithContext(ctx)
	for _, stmt := range []string{
		"DELETE FROM donation_records WHERE family_id = ?",
		"DELETE FROM member_needs WHERE family_id = ?",
		"DELETE FROM health_histories WHERE family_id = ?",
		"DELETE FROM family_members WHERE family_id = ?",
	} {
		if err := db.Exec(stmt, familyID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *familydomain.FamilyMember) error {
	return translateMemberError(r.db.WithContext(ctx).Create(member).Error)
}

func (r *PostgresRepository) GetMember(ctx context.Context, familyID, memberID uint) (*familydomain.FamilyMember, error) {
	var member familydomain.FamilyMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND family_id = ?", memberID, familyID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, familyID uint) ([]familydomain.FamilyMember, error) {
	members := make([]familydomain.FamilyMember, 0)
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("id asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) FindPersonCharge(ctx context.Context, familyID uint) (*familydomain.FamilyMember, error) {
	var member familydomain.FamilyMember
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND is_person_charge = ?", familyID, true).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, familyID, memberID uint, changes common.Changes) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&familydomain.FamilyMember{}).
		Where("id = ? AND family_id = ?", memberID, familyID).
		Updates(map[string]any(changes))
	if result.Error != nil {
		return false, translateMemberError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, familyID, memberID uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&familydomain.FamilyMember{}, "id = ? AND family_id = ?", memberID, familyID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteMemberDependents(ctx context.Context, familyID, memberID uint) error {
	db := r.db.WithContext(ctx)
	for _, stmt := range []string{
		"DELETE FROM member_needs WHERE family_id = ? AND family_member_id = ?",
		"DELETE FROM health_histories WHERE family_id = ? AND family_member_id = ?",
	} {
		if err := db.Exec(stmt, familyID, memberID).Error; err != nil {
			return err
		}
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

func translateMemberError(err error) error {
	switch {
	case err == nil:
		return nil
	case pgerr.IsUniqueViolation(err, memberEmailKey):
		return familydomain.ErrDuplicateEmail
	case pgerr.IsUniqueViolation(err, memberPersonChargeKey):
		return familydomain.ErrPersonChargeExists
	default:
		return err
	}
}
