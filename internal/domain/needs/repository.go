package needs

import (
	"context"

	"charity-app-go/internal/domain/common"
)

type Key struct {
	FamilyID       uint
	FamilyMemberID uint
	ID             uint
}

type Repository interface {
	Create(ctx context.Context, need *MemberNeed) error
	Get(ctx context.Context, key Key) (*MemberNeed, error)
	ListByFamily(ctx context.Context, familyID uint) ([]MemberNeed, error)
	ListByMember(ctx context.Context, familyID, memberID uint) ([]MemberNeed, error)
	Update(ctx context.Context, key Key, changes common.Changes) (bool, error)
	Delete(ctx context.Context, key Key) (bool, error)
}
