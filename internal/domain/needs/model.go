package needs

import (
	"time"

	"charity-app-go/internal/domain/common"
)

type MemberNeed struct {
	ID             uint            `gorm:"primaryKey"`
	FamilyID       uint            `gorm:"not null;index"`
	FamilyMemberID uint            `gorm:"not null;index"`
	NeedName       string          `gorm:"not null"`
	MemberPriority common.Priority `gorm:"not null;default:5"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

type Fields struct {
	NeedName       string
	MemberPriority *int
}

type Patch struct {
	NeedName       *string
	MemberPriority *int
}
