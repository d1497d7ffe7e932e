package health

import (
	"context"

	"charity-app-go/internal/domain/common"
)

// Key addresses one record through its full ownership chain.
type Key struct {
	FamilyID       uint
	FamilyMemberID uint
	ID             uint
}

type Repository interface {
	Create(ctx context.Context, record *HealthHistory) error
	Get(ctx context.Context, key Key) (*HealthHistory, error)
	ListByFamily(ctx context.Context, familyID uint) ([]HealthHistory, error)
	ListByMember(ctx context.Context, familyID, memberID uint) ([]HealthHistory, error)
	Update(ctx context.Context, key Key, changes common.Changes) (bool, error)
	Delete(ctx context.Context, key Key) (bool, error)
}
