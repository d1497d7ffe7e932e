package existence

import (
	"context"
	"fmt"

	"charity-app-go/internal/domain/existence"
	"gorm.io/gorm"
)

var tables = map[existence.Kind]string{
	existence.KindFamily:       "families",
	existence.KindFamilyMember: "family_members",
	existence.KindDonor:        "donors",
	existence.KindDonation:     "donations",
}

// parentColumns names the foreign key a child is scoped by when its parent is
// the previous step of a chain.
var parentColumns = map[existence.Kind]string{
	existence.KindFamily: "family_id",
	existence.KindDonor:  "donor_id",
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Exists(ctx context.Context, step existence.Step, parent *existence.Step) (bool, error) {
	table, ok := tables[step.Kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind %q", step.Kind)
	}

	query := s.db.WithContext(ctx).Table(table).Where("id = ?", step.ID)
	if parent != nil && existence.Owns(parent.Kind, step.Kind) {
		query = query.Where(parentColumns[parent.Kind]+" = ?", parent.ID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
