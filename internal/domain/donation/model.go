package donation

import (
	"time"

	"gorm.io/datatypes"
)

type Donation struct {
	ID           uint                             `gorm:"primaryKey"`
	DonorID      uint                             `gorm:"not null;index"`
	DonationDate time.Time                        `gorm:"type:date;not null"`
	DonationTook datatypes.JSONType[Contribution] `gorm:"type:jsonb;not null"`
	Properties   string                           `gorm:"not null;default:''"`
	CreatedAt    time.Time                        `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                        `gorm:"autoUpdateTime"`
}

// Record is the part of a donation handed to a family.
type Record struct {
	ID            uint                             `gorm:"primaryKey"`
	DonationID    uint                             `gorm:"not null;index"`
	FamilyID      uint                             `gorm:"not null;index"`
	DonationDate  time.Time                        `gorm:"type:date;not null"`
	DonationGiven datatypes.JSONType[Contribution] `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time                        `gorm:"autoCreateTime"`
}

func (Record) TableName() string {
	return "donation_records"
}

type Fields struct {
	DonorID      uint
	DonationDate *time.Time
	DonationTook *ContributionFields
	Properties   string
}

type Patch struct {
	DonorID      *uint
	DonationDate *time.Time
	DonationTook *ContributionFields
	Properties   *string
}

type RecordFields struct {
	DonationID    uint
	FamilyID      uint
	DonationDate  *time.Time
	DonationGiven *ContributionFields
}
