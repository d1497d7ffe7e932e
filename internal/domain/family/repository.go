package family

import (
	"context"

	"charity-app-go/internal/domain/common"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	CreateFamily(ctx context.Context, family *Family) error
	GetFamily(ctx context.Context, familyID uint) (*Family, error)
	GetFamilyWithMembers(ctx context.Context, familyID uint) (*Family, error)
	ListFamilies(ctx context.Context) ([]Family, error)
	ListFamiliesWithMembers(ctx context.Context) ([]Family, error)
	UpdateFamily(ctx context.Context, familyID uint, changes common.Changes) (bool, error)
	SetPersonCharge(ctx context.Context, familyID uint, name string) error
	DeleteFamily(ctx context.Context, familyID uint) (bool, error)
	DeleteFamilyDependents(ctx context.Context, familyID uint) error

	CreateMember(ctx context.Context, member *FamilyMember) error
	GetMember(ctx context.Context, familyID, memberID uint) (*FamilyMember, error)
	ListMembers(ctx context.Context, familyID uint) ([]FamilyMember, error)
	// FindPersonCharge returns ErrMemberNotFound when no member is flagged.
	FindPersonCharge(ctx context.Context, familyID uint) (*FamilyMember, error)
	UpdateMember(ctx context.Context, familyID, memberID uint, changes common.Changes) (bool, error)
	DeleteMember(ctx context.Context, familyID, memberID uint) (bool, error)
	DeleteMemberDependents(ctx context.Context, familyID, memberID uint) error
}
