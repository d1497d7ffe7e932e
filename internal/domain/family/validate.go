package family

import (
	"fmt"
	"strings"

	"charity-app-go/internal/domain/common"
)

func newFamily(fields FamilyFields) (Family, error) {
	if strings.TrimSpace(fields.FamilyCategory) == "" {
		return Family{}, fmt.Errorf("%w: familyCategory is required", common.ErrInvalidInput)
	}
	category, err := common.ParseFamilyCategory(fields.FamilyCategory)
	if err != nil {
		return Family{}, err
	}

	priority := common.DefaultPriority
	if fields.FamilyPriority != nil {
		priority, err = common.ParsePriority("familyPriority", *fields.FamilyPriority)
		if err != nil {
			return Family{}, err
		}
	}

	return Family{
		Email:          strings.TrimSpace(fields.Email),
		Address:        strings.TrimSpace(fields.Address),
		ContactNumber:  strings.TrimSpace(fields.ContactNumber),
		HouseCondition: strings.TrimSpace(fields.HouseCondition),
		Notes:          strings.TrimSpace(fields.Notes),
		FamilyCategory: category,
		FamilyPriority: priority,
	}, nil
}

func newMember(familyID uint, fields MemberFields) (FamilyMember, error) {
	firstName := strings.TrimSpace(fields.FirstName)
	lastName := strings.TrimSpace(fields.LastName)
	if firstName == "" || lastName == "" {
		return FamilyMember{}, fmt.Errorf("%w: firstName and lastName are required", common.ErrInvalidInput)
	}

	gender := common.GenderMale
	if strings.TrimSpace(fields.Gender) != "" {
		parsed, err := common.ParseGender(fields.Gender)
		if err != nil {
			return FamilyMember{}, err
		}
		gender = parsed
	}

	marital := common.MaritalSingle
	if strings.TrimSpace(fields.MaritalStatus) != "" {
		parsed, err := common.ParseMaritalStatus(fields.MaritalStatus)
		if err != nil {
			return FamilyMember{}, err
		}
		marital = parsed
	}

	email, err := normalizeEmail(fields.Email)
	if err != nil {
		return FamilyMember{}, err
	}

	if fields.TotalIncome < 0 {
		return FamilyMember{}, fmt.Errorf("%w: totalIncome must not be negative", common.ErrInvalidInput)
	}

	return FamilyMember{
		FamilyID:       familyID,
		FirstName:      firstName,
		LastName:       lastName,
		Gender:         gender,
		MaritalStatus:  marital,
		Address:        strings.TrimSpace(fields.Address),
		Email:          email,
		DateOfBirth:    fields.DateOfBirth,
		PhoneNumber:    strings.TrimSpace(fields.PhoneNumber),
		IsWorking:      fields.IsWorking,
		IsPersonCharge: fields.IsPersonCharge,
		Proficient:     strings.TrimSpace(fields.Proficient),
		TotalIncome:    fields.TotalIncome,
		EducationLevel: strings.TrimSpace(fields.EducationLevel),
	}, nil
}

// normalizeEmail returns nil for an empty address so the unique index only
// applies to members that have one.
func normalizeEmail(value string) (*string, error) {
	email, err := common.ParseEmail("email", value)
	if err != nil || email == "" {
		return nil, err
	}
	return &email, nil
}

func (p FamilyPatch) apply(f *Family) (common.Changes, error) {
	changes := common.Changes{}
	common.SetTrimmed(changes, "email", &f.Email, p.Email)
	common.SetTrimmed(changes, "address", &f.Address, p.Address)
	common.SetTrimmed(changes, "contact_number", &f.ContactNumber, p.ContactNumber)
	common.SetTrimmed(changes, "house_condition", &f.HouseCondition, p.HouseCondition)
	common.SetTrimmed(changes, "notes", &f.Notes, p.Notes)

	if p.FamilyCategory != nil {
		category, err := common.ParseFamilyCategory(*p.FamilyCategory)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "family_category", &f.FamilyCategory, &category)
	}
	if p.FamilyPriority != nil {
		priority, err := common.ParsePriority("familyPriority", *p.FamilyPriority)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "family_priority", &f.FamilyPriority, &priority)
	}
	return changes, nil
}

func (p MemberPatch) apply(m *FamilyMember) (common.Changes, error) {
	changes := common.Changes{}

	for _, name := range []*string{p.FirstName, p.LastName} {
		if name != nil && strings.TrimSpace(*name) == "" {
			return nil, fmt.Errorf("%w: firstName and lastName cannot be empty", common.ErrInvalidInput)
		}
	}
	common.SetTrimmed(changes, "first_name", &m.FirstName, p.FirstName)
	common.SetTrimmed(changes, "last_name", &m.LastName, p.LastName)

	if p.Gender != nil {
		gender, err := common.ParseGender(*p.Gender)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "gender", &m.Gender, &gender)
	}
	if p.MaritalStatus != nil {
		marital, err := common.ParseMaritalStatus(*p.MaritalStatus)
		if err != nil {
			return nil, err
		}
		common.Set(changes, "marital_status", &m.MaritalStatus, &marital)
	}
	if p.Email != nil {
		email, err := normalizeEmail(*p.Email)
		if err != nil {
			return nil, err
		}
		if !sameEmail(m.Email, email) {
			m.Email = email
			changes["email"] = email
		}
	}
	if p.TotalIncome != nil && *p.TotalIncome < 0 {
		return nil, fmt.Errorf("%w: totalIncome must not be negative", common.ErrInvalidInput)
	}

	common.SetTrimmed(changes, "address", &m.Address, p.Address)
	common.SetOptionalDate(changes, "date_of_birth", &m.DateOfBirth, p.DateOfBirth)
	common.SetTrimmed(changes, "phone_number", &m.PhoneNumber, p.PhoneNumber)
	common.Set(changes, "is_working", &m.IsWorking, p.IsWorking)
	common.Set(changes, "is_person_charge", &m.IsPersonCharge, p.IsPersonCharge)
	common.SetTrimmed(changes, "proficient", &m.Proficient, p.Proficient)
	common.Set(changes, "total_income", &m.TotalIncome, p.TotalIncome)
	common.SetTrimmed(changes, "education_level", &m.EducationLevel, p.EducationLevel)
	return changes, nil
}

func sameEmail(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
