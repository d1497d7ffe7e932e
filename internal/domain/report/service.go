// Package report renders families and donations as XLSX workbooks.
package report

import (
	"context"
	"io"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/donation"
	"charity-app-go/internal/domain/donor"
	"charity-app-go/internal/domain/family"
)

type FamilySource interface {
	ListFamiliesWithMembers(ctx context.Context) ([]family.Family, error)
}

type DonorSource interface {
	List(ctx context.Context) ([]donor.Donor, error)
}

type DonationSource interface {
	List(ctx context.Context) ([]donation.Donation, error)
}

type Service struct {
	families  FamilySource
	donors    DonorSource
	donations DonationSource
}

func NewService(families FamilySource, donors DonorSource, donations DonationSource) *Service {
	return &Service{families: families, donors: donors, donations: donations}
}

// WriteFamilyRoster writes a "Families" sheet and a "Members" sheet keyed by
// family id.
func (s *Service) WriteFamilyRoster(ctx context.Context, w io.Writer) error {
	families, err := s.families.ListFamiliesWithMembers(ctx)
	if err != nil {
		return err
	}

	familyRows := make([][]any, 0, len(families))
	memberRows := make([][]any, 0)
	for _, f := range families {
		familyRows = append(familyRows, []any{
			f.ID, f.PersonCharge, string(f.FamilyCategory), int(f.FamilyPriority),
			f.Address, f.ContactNumber, f.Email, f.HouseCondition, len(f.Members), f.Notes,
		})
		for _, m := range f.Members {
			memberRows = append(memberRows, []any{
				f.ID, m.ID, m.FirstName, m.LastName, string(m.Gender), string(m.MaritalStatus),
				formatDate(m.DateOfBirth), m.IsPersonCharge, m.IsWorking, m.TotalIncome,
				m.EducationLevel, m.PhoneNumber,
			})
		}
	}

	return writeWorkbook(w,
		sheet{
			name:   "Families",
			header: []string{"Family ID", "Person in Charge", "Category", "Priority", "Address", "Contact Number", "Email", "House Condition", "Members", "Notes"},
			rows:   familyRows,
			widths: []float64{10, 24, 12, 10, 30, 18, 26, 20, 10, 40},
		},
		sheet{
			name:   "Members",
			header: []string{"Family ID", "Member ID", "First Name", "Last Name", "Gender", "Marital Status", "Date of Birth", "Person in Charge", "Working", "Total Income", "Education", "Phone"},
			rows:   memberRows,
			widths: []float64{10, 10, 16, 16, 10, 14, 14, 16, 10, 14, 18, 18},
		},
	)
}

// WriteDonationLedger writes one "Donations" row per donation with the
// donor's name resolved.
func (s *Service) WriteDonationLedger(ctx context.Context, w io.Writer) error {
	donors, err := s.donors.List(ctx)
	if err != nil {
		return err
	}
	donations, err := s.donations.List(ctx)
	if err != nil {
		return err
	}

	names := make(map[uint]string, len(donors))
	for _, d := range donors {
		names[d.ID] = d.FullName()
	}

	rows := make([][]any, 0, len(donations))
	for _, d := range donations {
		took := d.DonationTook.Data()
		row := []any{d.ID, names[d.DonorID], d.DonationDate.Format(common.DateLayout), "", "", "", "", "", "", d.Properties}
		if took.IsMoney {
			row[3], row[4] = took.Money.Amount, string(took.Money.Source)
		}
		if took.IsClothes {
			row[5], row[6] = string(took.Clothes.Name), took.Clothes.Amount
		}
		if took.IsFurniture {
			row[7], row[8] = string(took.Furniture.Name), took.Furniture.Amount
		}
		rows = append(rows, row)
	}

	return writeWorkbook(w, sheet{
		name:   "Donations",
		header: []string{"Donation ID", "Donor", "Date", "Money", "Money Source", "Clothes", "Clothes Amount", "Furniture", "Furniture Amount", "Properties"},
		rows:   rows,
		widths: []float64{12, 24, 12, 12, 14, 12, 14, 14, 16, 40},
	})
}
