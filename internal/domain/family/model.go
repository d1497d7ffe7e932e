package family

import (
	"strings"
	"time"

	"charity-app-go/internal/domain/common"
)

type Family struct {
	ID             uint                  `gorm:"primaryKey"`
	PersonCharge   string                `gorm:"not null;default:''"`
	Email          string                `gorm:"not null;default:''"`
	Address        string                `gorm:"not null;default:''"`
	ContactNumber  string                `gorm:"not null;default:''"`
	HouseCondition string                `gorm:"not null;default:''"`
	Notes          string                `gorm:"not null;default:''"`
	FamilyCategory common.FamilyCategory `gorm:"type:varchar(16);not null"`
	FamilyPriority common.Priority       `gorm:"not null;default:5"`
	CreatedAt      time.Time             `gorm:"autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"autoUpdateTime"`

	Members []FamilyMember `gorm:"foreignKey:FamilyID;references:ID;constraint:OnDelete:CASCADE"`
}

type FamilyMember struct {
	ID             uint                 `gorm:"primaryKey"`
	FamilyID       uint                 `gorm:"not null;index"`
	FirstName      string               `gorm:"not null"`
	LastName       string               `gorm:"not null"`
	Gender         common.Gender        `gorm:"type:varchar(16);not null;default:'male'"`
	MaritalStatus  common.MaritalStatus `gorm:"type:varchar(16);not null;default:'single'"`
	Address        string               `gorm:"not null;default:''"`
	Email          *string              `gorm:"uniqueIndex:family_members_email_key"`
	DateOfBirth    *time.Time           `gorm:"type:date"`
	PhoneNumber    string               `gorm:"not null;default:''"`
	IsWorking      bool                 `gorm:"not null;default:false"`
	IsPersonCharge bool                 `gorm:"not null;default:false"`
	Proficient     string               `gorm:"not null;default:''"`
	TotalIncome    float64              `gorm:"not null;default:0"`
	EducationLevel string               `gorm:"not null;default:''"`
	CreatedAt      time.Time            `gorm:"autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"autoUpdateTime"`
}

// FullName is the value mirrored into Family.PersonCharge.
func (m FamilyMember) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// FamilyFields are the caller-writable columns of a Family. PersonCharge is
// derived from the members and is never accepted from callers.
type FamilyFields struct {
	Email          string
	Address        string
	ContactNumber  string
	HouseCondition string
	Notes          string
	FamilyCategory string
	FamilyPriority *int
}

type MemberFields struct {
	FirstName      string
	LastName       string
	Gender         string
	MaritalStatus  string
	Address        string
	Email          string
	DateOfBirth    *time.Time
	PhoneNumber    string
	IsWorking      bool
	IsPersonCharge bool
	Proficient     string
	TotalIncome    float64
	EducationLevel string
}

type CreateFamilyInput struct {
	Family  FamilyFields
	Members []MemberFields
}

type FamilyPatch struct {
	Email          *string
	Address        *string
	ContactNumber  *string
	HouseCondition *string
	Notes          *string
	FamilyCategory *string
	FamilyPriority *int
}

type MemberPatch struct {
	FirstName      *string
	LastName       *string
	Gender         *string
	MaritalStatus  *string
	Address        *string
	Email          *string
	DateOfBirth    *time.Time
	PhoneNumber    *string
	IsWorking      *bool
	IsPersonCharge *bool
	Proficient     *string
	TotalIncome    *float64
	EducationLevel *string
}
