package health

import (
	"time"

	"gorm.io/datatypes"
)

type Disease struct {
	DiseaseName  string `json:"diseaseName"`
	MedicineName string `json:"medicineName"`
}

type HealthHistory struct {
	ID             uint                        `gorm:"primaryKey"`
	FamilyID       uint                        `gorm:"not null;index"`
	FamilyMemberID uint                        `gorm:"not null;index"`
	Disease        datatypes.JSONType[Disease] `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
}

type Fields struct {
	DiseaseName  string
	MedicineName string
}

type Patch struct {
	DiseaseName  *string
	MedicineName *string
}
