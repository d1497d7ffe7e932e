package donor

import (
	"time"

	"charity-app-go/internal/domain/common"
)

// Donor keeps national and bank account numbers as text: they are
// identifiers and may carry leading zeros.
type Donor struct {
	ID                uint                 `gorm:"primaryKey"`
	IDCopy            string               `gorm:"column:id_copy;not null;default:''"`
	NationalNumber    string               `gorm:"not null;default:''"`
	FirstName         string               `gorm:"not null"`
	LastName          string               `gorm:"not null"`
	Gender            common.Gender        `gorm:"type:varchar(16);not null;default:'male'"`
	Email             string               `gorm:"not null;uniqueIndex:donors_email_key"`
	BankAccountNumber string               `gorm:"not null;default:''"`
	Address           string               `gorm:"not null;default:''"`
	PhoneNumber       string               `gorm:"not null;default:''"`
	DateOfBirth       *time.Time           `gorm:"type:date"`
	DonorCategory     common.DonorCategory `gorm:"type:varchar(16);not null;default:'one_time'"`
	CreatedAt         time.Time            `gorm:"autoCreateTime"`
	UpdatedAt         time.Time            `gorm:"autoUpdateTime"`
}

func (d Donor) FullName() string {
	return d.FirstName + " " + d.LastName
}

type Fields struct {
	IDCopy            string
	NationalNumber    string
	FirstName         string
	LastName          string
	Gender            string
	Email             string
	BankAccountNumber string
	Address           string
	PhoneNumber       string
	DateOfBirth       *time.Time
	DonorCategory     string
}

type Patch struct {
	IDCopy            *string
	NationalNumber    *string
	FirstName         *string
	LastName          *string
	Gender            *string
	Email             *string
	BankAccountNumber *string
	Address           *string
	PhoneNumber       *string
	DateOfBirth       *time.Time
	DonorCategory     *string
}
