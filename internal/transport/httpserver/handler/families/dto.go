package families

import (
	"time"

	familydomain "charity-app-go/internal/domain/family"
	commonhandler "charity-app-go/internal/transport/httpserver/handler/common"
)

type memberRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Gender         string  `json:"gender"`
	MaritalStatus  string  `json:"maritalStatus"`
	Address        string  `json:"address"`
	Email          string  `json:"email"`
	DateOfBirth    *string `json:"dateOfBirth"`
	PhoneNumber    string  `json:"phoneNumber"`
	IsWorking      bool    `json:"isWorking"`
	IsPersonCharge bool    `json:"isPersonCharge"`
	Proficient     string  `json:"proficient"`
	TotalIncome    float64 `json:"totalIncome"`
	EducationLevel string  `json:"educationLevel"`
}

func (req memberRequest) toFields() (familydomain.MemberFields, error) {
	dateOfBirth, err := commonhandler.ParseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return familydomain.MemberFields{}, err
	}
	return familydomain.MemberFields{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         req.Gender,
		MaritalStatus:  req.MaritalStatus,
		Address:        req.Address,
		Email:          req.Email,
		DateOfBirth:    dateOfBirth,
		PhoneNumber:    req.PhoneNumber,
		IsWorking:      req.IsWorking,
		IsPersonCharge: req.IsPersonCharge,
		Proficient:     req.Proficient,
		TotalIncome:    req.TotalIncome,
		EducationLevel: req.EducationLevel,
	}, nil
}

type createFamilyRequest struct {
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	ContactNumber  string          `json:"contactNumber"`
	HouseCondition string          `json:"houseCondition"`
	Notes          string          `json:"notes"`
	FamilyCategory string          `json:"familyCategory"`
	FamilyPriority *int            `json:"familyPriority"`
	Members        []memberRequest `json:"members"`
}

func (req createFamilyRequest) toInput() (familydomain.CreateFamilyInput, error) {
	input := familydomain.CreateFamilyInput{
		Family: familydomain.FamilyFields{
			Email:          req.Email,
			Address:        req.Address,
			ContactNumber:  req.ContactNumber,
			HouseCondition: req.HouseCondition,
			Notes:          req.Notes,
			FamilyCategory: req.FamilyCategory,
			FamilyPriority: req.FamilyPriority,
		},
		Members: make([]familydomain.MemberFields, 0, len(req.Members)),
	}
	for _, member := range req.Members {
		fields, err := member.toFields()
		if err != nil {
			return familydomain.CreateFamilyInput{}, err
		}
		input.Members = append(input.Members, fields)
	}
	return input, nil
}

type updateFamilyRequest struct {
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	ContactNumber  *string `json:"contactNumber"`
	HouseCondition *string `json:"houseCondition"`
	Notes          *string `json:"notes"`
	FamilyCategory *string `json:"familyCategory"`
	FamilyPriority *int    `json:"familyPriority"`
}

func (req updateFamilyRequest) toPatch() familydomain.FamilyPatch {
	return familydomain.FamilyPatch{
		Email:          req.Email,
		Address:        req.Address,
		ContactNumber:  req.ContactNumber,
		HouseCondition: req.HouseCondition,
		Notes:          req.Notes,
		FamilyCategory: req.FamilyCategory,
		FamilyPriority: req.FamilyPriority,
	}
}

type updateMemberRequest struct {
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Gender         *string  `json:"gender"`
	MaritalStatus  *string  `json:"maritalStatus"`
	Address        *string  `json:"address"`
	Email          *string  `json:"email"`
	DateOfBirth    *string  `json:"dateOfBirth"`
	PhoneNumber    *string  `json:"phoneNumber"`
	IsWorking      *bool    `json:"isWorking"`
	IsPersonCharge *bool    `json:"isPersonCharge"`
	Proficient     *string  `json:"proficient"`
	TotalIncome    *float64 `json:"totalIncome"`
	EducationLevel *string  `json:"educationLevel"`
}

func (req updateMemberRequest) toPatch() (familydomain.MemberPatch, error) {
	dateOfBirth, err := commonhandler.ParseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return familydomain.MemberPatch{}, err
	}
	return familydomain.MemberPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         req.Gender,
		MaritalStatus:  req.MaritalStatus,
		Address:        req.Address,
		Email:          req.Email,
		DateOfBirth:    dateOfBirth,
		PhoneNumber:    req.PhoneNumber,
		IsWorking:      req.IsWorking,
		IsPersonCharge: req.IsPersonCharge,
		Proficient:     req.Proficient,
		TotalIncome:    req.TotalIncome,
		EducationLevel: req.EducationLevel,
	}, nil
}

type familyResponse struct {
	ID             uint      `json:"id"`
	PersonCharge   string    `json:"personCharge"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	ContactNumber  string    `json:"contactNumber"`
	HouseCondition string    `json:"houseCondition"`
	Notes          string    `json:"notes"`
	FamilyCategory string    `json:"familyCategory"`
	FamilyPriority int       `json:"familyPriority"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type familyWithMembersResponse struct {
	familyResponse
	FamilyMember []memberResponse `json:"FamilyMember"`
}

type memberResponse struct {
	ID             uint      `json:"id"`
	FamilyID       uint      `json:"familyId"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Gender         string    `json:"gender"`
	MaritalStatus  string    `json:"maritalStatus"`
	Address        string    `json:"address"`
	Email          *string   `json:"email"`
	DateOfBirth    *string   `json:"dateOfBirth"`
	PhoneNumber    string    `json:"phoneNumber"`
	IsWorking      bool      `json:"isWorking"`
	IsPersonCharge bool      `json:"isPersonCharge"`
	Proficient     string    `json:"proficient"`
	TotalIncome    float64   `json:"totalIncome"`
	EducationLevel string    `json:"educationLevel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toFamilyResponse(f *familydomain.Family) familyResponse {
	return familyResponse{
		ID:             f.ID,
		PersonCharge:   f.PersonCharge,
		Email:          f.Email,
		Address:        f.Address,
		ContactNumber:  f.ContactNumber,
		HouseCondition: f.HouseCondition,
		Notes:          f.Notes,
		FamilyCategory: string(f.FamilyCategory),
		FamilyPriority: int(f.FamilyPriority),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

func toFamilyWithMembersResponse(f *familydomain.Family) familyWithMembersResponse {
	members := make([]memberResponse, 0, len(f.Members))
	for i := range f.Members {
		members = append(members, toMemberResponse(&f.Members[i]))
	}
	return familyWithMembersResponse{familyResponse: toFamilyResponse(f), FamilyMember: members}
}

func toMemberResponse(m *familydomain.FamilyMember) memberResponse {
	return memberResponse{
		ID:             m.ID,
		FamilyID:       m.FamilyID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Gender:         string(m.Gender),
		MaritalStatus:  string(m.MaritalStatus),
		Address:        m.Address,
		Email:          m.Email,
		DateOfBirth:    commonhandler.FormatDate(m.DateOfBirth),
		PhoneNumber:    m.PhoneNumber,
		IsWorking:      m.IsWorking,
		IsPersonCharge: m.IsPersonCharge,
		Proficient:     m.Proficient,
		TotalIncome:    m.TotalIncome,
		EducationLevel: m.EducationLevel,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
