package family

import (
	"context"
	"errors"
	"sort"
	"testing"

	"charity-app-go/internal/domain/common"
	"charity-app-go/internal/domain/existence"
)

type fakeFamilyRepo struct {
	families map[uint]*Family
	members  map[uint]*FamilyMember
	nextID   uint

	dependentsCleared []uint
	failMemberCreate  bool
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{
		families: make(map[uint]*Family),
		members:  make(map[uint]*FamilyMember),
	}
}

func (r *fakeFamilyRepo) id() uint {
	r.nextID++
	return r.nextID
}

// Transaction snapshots both maps and restores them when fn fails.
func (r *fakeFamilyRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	families := make(map[uint]*Family, len(r.families))
	for id, f := range r.families {
		copied := *f
		families[id] = &copied
	}
	members := make(map[uint]*FamilyMember, len(r.members))
	for id, m := range r.members {
		copied := *m
		members[id] = &copied
	}

	if err := fn(r); err != nil {
		r.families = families
		r.members = members
		return err
	}
	return nil
}

func (r *fakeFamilyRepo) CreateFamily(ctx context.Context, family *Family) error {
	family.ID = r.id()
	copied := *family
	r.families[family.ID] = &copied
	return nil
}

func (r *fakeFamilyRepo) GetFamily(ctx context.Context, familyID uint) (*Family, error) {
	family, ok := r.families[familyID]
	if !ok {
		return nil, ErrFamilyNotFound
	}
	copied := *family
	return &copied, nil
}

func (r *fakeFamilyRepo) GetFamilyWithMembers(ctx context.Context, familyID uint) (*Family, error) {
	family, err := r.GetFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	family.Members, _ = r.ListMembers(ctx, familyID)
	return family, nil
}

func (r *fakeFamilyRepo) ListFamilies(ctx context.Context) ([]Family, error) {
	result := make([]Family, 0, len(r.families))
	for _, family := range r.families {
		result = append(result, *family)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeFamilyRepo) ListFamiliesWithMembers(ctx context.Context) ([]Family, error) {
	result, _ := r.ListFamilies(ctx)
	for i := range result {
		result[i].Members, _ = r.ListMembers(ctx, result[i].ID)
	}
	return result, nil
}

func (r *fakeFamilyRepo) UpdateFamily(ctx context.Context, familyID uint, changes common.Changes) (bool, error) {
	family, ok := r.families[familyID]
	if !ok {
		return false, nil
	}
	for column, value := range changes {
		switch column {
		case "address":
			family.Address = value.(string)
		case "notes":
			family.Notes = value.(string)
		case "family_category":
			family.FamilyCategory = value.(common.FamilyCategory)
		case "family_priority":
			family.FamilyPriority = value.(common.Priority)
		}
	}
	return true, nil
}

func (r *fakeFamilyRepo) SetPersonCharge(ctx context.Context, familyID uint, name string) error {
	family, ok := r.families[familyID]
	if !ok {
		return ErrFamilyNotFound
	}
	family.PersonCharge = name
	return nil
}

func (r *fakeFamilyRepo) DeleteFamily(ctx context.Context, familyID uint) (bool, error) {
	if _, ok := r.families[familyID]; !ok {
		return false, nil
	}
	delete(r.families, familyID)
	return true, nil
}

func (r *fakeFamilyRepo) DeleteFamilyDependents(ctx context.Context, familyID uint) error {
	for id, member := range r.members {
		if member.FamilyID == familyID {
			delete(r.members, id)
		}
	}
	r.dependentsCleared = append(r.dependentsCleared, familyID)
	return nil
}

func (r *fakeFamilyRepo) CreateMember(ctx context.Context, member *FamilyMember) error {
	if r.failMemberCreate {
		return ErrDuplicateEmail
	}
	member.ID = r.id()
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeFamilyRepo) GetMember(ctx context.Context, familyID, memberID uint) (*FamilyMember, error) {
	member, ok := r.members[memberID]
	if !ok || member.FamilyID != familyID {
		return nil, ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeFamilyRepo) ListMembers(ctx context.Context, familyID uint) ([]FamilyMember, error) {
	result := make([]FamilyMember, 0)
	for _, member := range r.members {
		if member.FamilyID == familyID {
			result = append(result, *member)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeFamilyRepo) FindPersonCharge(ctx context.Context, familyID uint) (*FamilyMember, error) {
	for _, member := range r.members {
		if member.FamilyID == familyID && member.IsPersonCharge {
			copied := *member
			return &copied, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *fakeFamilyRepo) UpdateMember(ctx context.Context, familyID, memberID uint, changes common.Changes) (bool, error) {
	member, ok := r.members[memberID]
	if !ok || member.FamilyID != familyID {
		return false, nil
	}
	for column, value := range changes {
		switch column {
		case "first_name":
			member.FirstName = value.(string)
		case "last_name":
			member.LastName = value.(string)
		case "is_person_charge":
			member.IsPersonCharge = value.(bool)
		case "total_income":
			member.TotalIncome = value.(float64)
		}
	}
	return true, nil
}

func (r *fakeFamilyRepo) DeleteMember(ctx context.Context, familyID, memberID uint) (bool, error) {
	member, ok := r.members[memberID]
	if !ok || member.FamilyID != familyID {
		return false, nil
	}
	delete(r.members, memberID)
	return true, nil
}

func (r *fakeFamilyRepo) DeleteMemberDependents(ctx context.Context, familyID, memberID uint) error {
	return nil
}

// repoChain resolves existence against the fake repository so the service
// sees the same ordering of not-found errors as in production.
type repoChain struct {
	repo *fakeFamilyRepo
}

func (c repoChain) Exists(ctx context.Context, step existence.Step, parent *existence.Step) (bool, error) {
	switch step.Kind {
	case existence.KindFamily:
		_, ok := c.repo.families[step.ID]
		return ok, nil
	case existence.KindFamilyMember:
		member, ok := c.repo.members[step.ID]
		return ok && (parent == nil || member.FamilyID == parent.ID), nil
	}
	return false, nil
}

func newTestService() (*Service, *fakeFamilyRepo) {
	repo := newFakeFamilyRepo()
	return NewService(repo, existence.NewValidator(repoChain{repo: repo})), repo
}

func seedFamily(t *testing.T, svc *Service, members ...MemberFields) *Family {
	t.Helper()
	family, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Family:  FamilyFields{Address: "Main street 4", FamilyCategory: "poor"},
		Members: members,
	})
	if err != nil {
		t.Fatalf("seed family: %v", err)
	}
	return family
}

func TestCreateFamilyWithPersonInCharge(t *testing.T) {
	svc, _ := newTestService()

	family, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Family: FamilyFields{Address: "  Main street 4 ", FamilyCategory: "Orphans"},
		Members: []MemberFields{
			{FirstName: "Maha", LastName: "Saleh", Gender: "female", IsPersonCharge: true},
			{FirstName: "Omar", LastName: "Saleh"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if family.PersonCharge != "Maha Saleh" {
		t.Fatalf("expected person in charge mirrored, got %q", family.PersonCharge)
	}
	if family.FamilyPriority != common.DefaultPriority {
		t.Fatalf("expected default priority, got %d", family.FamilyPriority)
	}
	if family.Address != "Main street 4" {
		t.Fatalf("expected address trimmed, got %q", family.Address)
	}
	if len(family.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(family.Members))
	}
	second := family.Members[1]
	if second.Gender != common.GenderMale || second.MaritalStatus != common.MaritalSingle {
		t.Fatalf("expected member defaults, got %+v", second)
	}
	if second.FamilyID != family.ID {
		t.Fatalf("expected member family %d, got %d", family.ID, second.FamilyID)
	}
}

func TestCreateFamilyWithoutMembers(t *testing.T) {
	svc, _ := newTestService()

	family, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Family: FamilyFields{FamilyCategory: "other"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if family.PersonCharge != "" || len(family.Members) != 0 {
		t.Fatalf("expected empty family, got %+v", family)
	}
}

func TestCreateFamilyRejectsTwoPersonsInCharge(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Family: FamilyFields{FamilyCategory: "poor"},
		Members: []MemberFields{
			{FirstName: "A", LastName: "B", IsPersonCharge: true},
			{FirstName: "C", LastName: "D", IsPersonCharge: true},
		},
	})
	if !errors.Is(err, ErrMultiplePersonCharge) {
		t.Fatalf("expected ErrMultiplePersonCharge, got %v", err)
	}
	if len(repo.families) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestCreateFamilyValidation(t *testing.T) {
	svc, _ := newTestService()
	badPriority := 9

	cases := []CreateFamilyInput{
		{Family: FamilyFields{}},
		{Family: FamilyFields{FamilyCategory: "rich"}},
		{Family: FamilyFields{FamilyCategory: "poor", FamilyPriority: &badPriority}},
		{Family: FamilyFields{FamilyCategory: "poor"}, Members: []MemberFields{{FirstName: "only"}}},
		{Family: FamilyFields{FamilyCategory: "poor"}, Members: []MemberFields{{FirstName: "A", LastName: "B", Email: "not-an-email"}}},
		{Family: FamilyFields{FamilyCategory: "poor"}, Members: []MemberFields{{FirstName: "A", LastName: "B", TotalIncome: -1}}},
	}
	for i, input := range cases {
		if _, err := svc.CreateFamily(context.Background(), input); !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestCreateFamilyRollsBackOnMemberFailure(t *testing.T) {
	svc, repo := newTestService()
	repo.failMemberCreate = true

	_, err := svc.CreateFamily(context.Background(), CreateFamilyInput{
		Family:  FamilyFields{FamilyCategory: "poor"},
		Members: []MemberFields{{FirstName: "A", LastName: "B", Email: "a@b.org"}},
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.families) != 0 {
		t.Fatalf("expected family creation rolled back")
	}
}

func TestGetFamilyNotFound(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetFamily(context.Background(), 42); !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
	if _, err := svc.GetFamily(context.Background(), 0); !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound for id 0, got %v", err)
	}
}

func TestUpdateFamilyOutcomes(t *testing.T) {
	svc, _ := newTestService()
	family := seedFamily(t, svc)

	notes := "needs winter clothes"
	priority := 2
	updated, outcome, err := svc.UpdateFamily(context.Background(), family.ID, FamilyPatch{Notes: &notes, FamilyPriority: &priority})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != common.OutcomeUpdated {
		t.Fatalf("expected updated, got %s", outcome)
	}
	if updated.Notes != notes || updated.FamilyPriority != 2 {
		t.Fatalf("unexpected family %+v", updated)
	}

	_, outcome, err = svc.UpdateFamily(context.Background(), family.ID, FamilyPatch{Notes: &notes})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != common.OutcomeUnchanged {
		t.Fatalf("expected unchanged, got %s", outcome)
	}

	if _, _, err := svc.UpdateFamily(context.Background(), 999, FamilyPatch{Notes: &notes}); !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
}

func TestDeleteFamilyCascades(t *testing.T) {
	svc, repo := newTestService()
	family := seedFamily(t, svc, MemberFields{FirstName: "A", LastName: "B", IsPersonCharge: true})

	if err := svc.DeleteFamily(context.Background(), family.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.families) != 0 || len(repo.members) != 0 {
		t.Fatalf("expected family and members removed")
	}
	if len(repo.dependentsCleared) != 1 || repo.dependentsCleared[0] != family.ID {
		t.Fatalf("expected dependents cleared for %d, got %v", family.ID, repo.dependentsCleared)
	}

	if err := svc.DeleteFamily(context.Background(), family.ID); !errors.Is(err, ErrFamilyNotFound) {
		t.Fatalf("expected ErrFamilyNotFound, got %v", err)
	}
}

func TestCreateMemberSecondPersonInCharge(t *testing.T) {
	svc, _ := newTestService()
	family := seedFamily(t, svc, MemberFields{FirstName: "A", LastName: "B", IsPersonCharge: true})

	_, err := svc.CreateMember(context.Background(), family.ID, MemberFields{FirstName: "C", LastName: "D", IsPersonCharge: true})
	if !errors.Is(err, ErrPersonChargeExists) {
		t.Fatalf("expected ErrPersonChargeExists, got %v", err)
	}
}

func TestCreateMemberBecomesPersonInCharge(t *testing.T) {
	svc, repo := newTestService()
	family := seedFamily(t, svc)

	member, err := svc.CreateMember(context.Background(), family.ID, MemberFields{FirstName: "Lina", LastName: "Haddad", IsPersonCharge: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if member.ID == 0 {
		t.Fatalf("expected member id assigned")
	}
	if repo.families[family.ID].PersonCharge != "Lina Haddad" {
		t.Fatalf("expected person in charge set, got %q", repo.families[family.ID].PersonCharge)
	}
}

func TestCreateMemberUnknownFamily(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateMember(context.Background(), 77, MemberFields{FirstName: "A", LastName: "B"})
	missing, ok := existence.AsMissing(err)
	if !ok || missing.Kind != existence.KindFamily || missing.ID != 77 {
		t.Fatalf("expected missing family 77, got %v", err)
	}
}

func TestGetMemberOfOtherFamily(t *testing.T) {
	svc, _ := newTestService()
	first := seedFamily(t, svc, MemberFields{FirstName: "A", LastName: "B"})
	second := seedFamily(t, svc)

	_, err := svc.GetMember(context.Background(), second.ID, first.Members[0].ID)
	missing, ok := existence.AsMissing(err)
	if !ok || missing.Kind != existence.KindFamilyMember {
		t.Fatalf("expected missing member, got %v", err)
	}
}

func TestUpdateMemberRenamesPersonInCharge(t *testing.T) {
	svc, repo := newTestService()
	family := seedFamily(t, svc, MemberFields{FirstName: "Maha", LastName: "Saleh", IsPersonCharge: true})
	memberID := family.Members[0].ID

	name := "Mona"
	member, outcome, err := svc.UpdateMember(context.Background(), family.ID, memberID, MemberPatch{FirstName: &name})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if outcome != common.OutcomeUpdated || member.FirstName != "Mona" {
		t.Fatalf("unexpected result %s %+v", outcome, member)
	}
	if repo.families[family.ID].PersonCharge != "Mona Saleh" {
		t.Fatalf("expected person in charge renamed, got %q", repo.families[family.ID].PersonCharge)
	}

	_, outcome, err = svc.UpdateMember(context.Background(), family.ID, memberID, MemberPatch{FirstName: &name})
	if err != nil || outcome != common.OutcomeUnchanged {
		t.Fatalf("expected unchanged, got %s %v", outcome, err)
	}
}

func TestUpdateMemberFlagConflicts(t *testing.T) {
	svc, repo := newTestService()
	family := seedFamily(t, svc,
		MemberFields{FirstName: "A", LastName: "B", IsPersonCharge: true},
		MemberFields{FirstName: "C", LastName: "D"},
	)

	flag := true
	_, _, err := svc.UpdateMember(context.Background(), family.ID, family.Members[1].ID, MemberPatch{IsPersonCharge: &flag})
	if !errors.Is(err, ErrPersonChargeExists) {
		t.Fatalf("expected ErrPersonChargeExists, got %v", err)
	}

	unflag := false
	if _, _, err := svc.UpdateMember(context.Background(), family.ID, family.Members[0].ID, MemberPatch{IsPersonCharge: &unflag}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.families[family.ID].PersonCharge != "" {
		t.Fatalf("expected person in charge cleared, got %q", repo.families[family.ID].PersonCharge)
	}

	if _, _, err := svc.UpdateMember(context.Background(), family.ID, family.Members[1].ID, MemberPatch{IsPersonCharge: &flag}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.families[family.ID].PersonCharge != "C D" {
		t.Fatalf("expected C D in charge, got %q", repo.families[family.ID].PersonCharge)
	}
}

func TestUpdateMemberRejectsNegativeIncome(t *testing.T) {
	svc, _ := newTestService()
	family := seedFamily(t, svc, MemberFields{FirstName: "A", LastName: "B"})

	income := -10.0
	_, _, err := svc.UpdateMember(context.Background(), family.ID, family.Members[0].ID, MemberPatch{TotalIncome: &income})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteMember(t *testing.T) {
	svc, repo := newTestService()
	family := seedFamily(t, svc,
		MemberFields{FirstName: "A", LastName: "B", IsPersonCharge: true},
		MemberFields{FirstName: "C", LastName: "D"},
	)

	err := svc.DeleteMember(context.Background(), family.ID, family.Members[0].ID)
	if !errors.Is(err, ErrPersonChargeProtected) {
		t.Fatalf("expected ErrPersonChargeProtected, got %v", err)
	}

	if err := svc.DeleteMember(context.Background(), family.ID, family.Members[1].ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.members[family.Members[1].ID]; ok {
		t.Fatalf("expected member removed")
	}

	err = svc.DeleteMember(context.Background(), family.ID, family.Members[1].ID)
	if _, ok := existence.AsMissing(err); !ok {
		t.Fatalf("expected missing member, got %v", err)
	}
}
