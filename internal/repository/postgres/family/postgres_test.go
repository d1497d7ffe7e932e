package family

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity-app-go/internal/domain/common"
	familydomain "charity-app-go/internal/domain/family"
	"charity-app-go/internal/repository/postgres/pgtest"
)

func TestGetFamilyNotFound(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectQuery(`SELECT \* FROM "families" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetFamily(context.Background(), 7)
	assert.ErrorIs(t, err, familydomain.ErrFamilyNotFound)
}

func TestGetMemberScopedToFamily(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectQuery(`SELECT \* FROM "family_members" WHERE id = \$1 AND family_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "family_id", "first_name", "last_name", "is_person_charge"}).
			AddRow(3, 1, "Jane", "Doe", true))

	member, err := repo.GetMember(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", member.FullName())
	assert.True(t, member.IsPersonCharge)
}

func TestCreateMemberDuplicateEmail(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectQuery(`INSERT INTO "family_members"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: memberEmailKey})

	email := "jane@example.org"
	err := repo.CreateMember(context.Background(), &familydomain.FamilyMember{FamilyID: 1, FirstName: "Jane", LastName: "Doe", Email: &email})
	assert.ErrorIs(t, err, familydomain.ErrDuplicateEmail)
}

func TestUpdateMemberPersonChargeConflict(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectExec(`UPDATE "family_members" SET .* WHERE id = \$\d+ AND family_id = \$\d+`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: memberPersonChargeKey})

	_, err := repo.UpdateMember(context.Background(), 1, 2, common.Changes{"is_person_charge": true})
	assert.ErrorIs(t, err, familydomain.ErrPersonChargeExists)
}

func TestUpdateFamilyReportsMissingRow(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectExec(`UPDATE "families" SET .*"notes"=\$\d+.* WHERE id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateFamily(context.Background(), 9, common.Changes{"notes": "x"})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteFamilyDependents(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	for _, table := range []string{"donation_records", "member_needs", "health_histories", "family_members"} {
		mock.ExpectExec(`DELETE FROM ` + table + ` WHERE family_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.DeleteFamilyDependents(context.Background(), 4))
}

func TestDeleteMember(t *testing.T) {
	db, mock := pgtest.NewMock(t)
	repo := NewPostgres(db)

	mock.ExpectExec(`DELETE FROM "family_members" WHERE id = \$1 AND family_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteMember(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.True(t, deleted)
}
