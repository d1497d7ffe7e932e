package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	"charity-app-go/internal/domain/family"
)

type stubFamilies struct {
	families []family.Family
	err      error
}

func (s stubFamilies) ListFamiliesWithMembers(ctx context.Context) ([]family.Family, error) {
	return s.families, s.err
}

type stubDonors []donor.Donor

func (s stubDonors) List(ctx context.Context) ([]donor.Donor, error) {
	return s, nil
}

type stubDonations []donation.Donation

func (s stubDonations) List(ctx context.Context) ([]donation.Donation, error) {
	return s, nil
}

func TestWriteFamilyRoster(t *testing.T) {
	born := time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(stubFamilies{families: []family.Family{{
		ID:             3,
		PersonCharge:   "Jane Doe",
		FamilyCategory: common.FamilyCategoryOrphans,
		FamilyPriority: 1,
		Members: []family.FamilyMember{
			{ID: 7, FamilyID: 3, FirstName: "Jane", LastName: "Doe", Gender: common.GenderFemale, IsPersonCharge: true, DateOfBirth: &born},
			{ID: 8, FamilyID: 3, FirstName: "Tom", LastName: "Doe", Gender: common.GenderMale},
		},
	}}}, stubDonors{}, stubDonations{})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteFamilyRoster(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Families", "Members"}, f.GetSheetList())

	families, err := f.GetRows("Families")
	require.NoError(t, err)
	require.Len(t, families, 2)
	assert.Equal(t, "Person in Charge", families[0][1])
	assert.Equal(t, []string{"3", "Jane Doe", "orphans", "1"}, families[1][:4])

	members, err := f.GetRows("Members")
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "1985-06-01", members[1][6])
	assert.Equal(t, "Tom", members[2][2])
}

func TestWriteFamilyRosterSourceError(t *testing.T) {
	svc := NewService(stubFamilies{err: errors.New("db down")}, stubDonors{}, stubDonations{})

	err := svc.WriteFamilyRoster(context.Background(), &bytes.Buffer{})
	assert.EqualError(t, err, "db down")
}

func TestWriteDonationLedger(t *testing.T) {
	svc := NewService(stubFamilies{},
		stubDonors{{ID: 1, FirstName: "Sami", LastName: "Khoury"}},
		stubDonations{{
			ID:           4,
			DonorID:      1,
			DonationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DonationTook: datatypes.NewJSONType(donation.Contribution{
				IsMoney:     true,
				Money:       &donation.Money{Source: common.MoneyBank, Amount: 250},
				IsFurniture: true,
				Furniture:   &donation.Furniture{Name: common.FurnitureBed, Amount: 2},
			}),
			Properties: "winter",
		}},
	)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteDonationLedger(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Donations")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"4", "Sami Khoury", "2024-03-01", "250", "bank", "", "", "bed", "2", "winter"}, rows[1])
}
