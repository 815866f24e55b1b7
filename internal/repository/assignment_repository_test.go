package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAssignmentMock(t *testing.T) (sqlmock.Sqlmock, AssignmentRepository, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       db,
		DriverName: "postgres",
	}), &gorm.Config{})
	require.NoError(t, err)

	return mock, NewAssignmentRepository(gdb), func() { db.Close() }
}

func userRows(id uint, roomID *uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "assigned_room_id", "created_at", "updated_at"})
	if roomID != nil {
		rows.AddRow(id, "Asha", "asha@hostel.test", "hash", "student", *roomID, time.Now(), time.Now())
	} else {
		rows.AddRow(id, "Asha", "asha@hostel.test", "hash", "student", nil, time.Now(), time.Now())
	}
	return rows
}

func TestAssignmentRepository_AssignStudent(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(5, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AssignStudent(9, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_AssignStudent_NoFreeSlot(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	// Full, under maintenance, or missing rooms all affect zero rows
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.AssignStudent(9, 5)
	assert.ErrorIs(t, err, ErrNoFreeSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_AssignStudent_AlreadyAssigned(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	// Slot reservation succeeds but the student already has a room, so the
	// whole transaction rolls back and the counter is untouched
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(5, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.AssignStudent(9, 5)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_AssignStudent_StudentDeleted(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	// Zero rows on the user update with no surviving row means the account
	// was deleted, not that it already had a room
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(5, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	err := repo.AssignStudent(9, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_UnassignStudent(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	assigned := uint(5)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(9, &assigned))
	mock.ExpectExec(`UPDATE users`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	roomID, err := repo.UnassignStudent(9)
	require.NoError(t, err)
	assert.Equal(t, uint(5), roomID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_UnassignStudent_NotAssigned(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRows(9, nil))
	mock.ExpectRollback()

	_, err := repo.UnassignStudent(9)
	assert.ErrorIs(t, err, ErrNotAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_ListOccupancyDrift(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"room_id", "number", "recorded", "actual"}).
		AddRow(5, "101", 2, 1)
	mock.ExpectQuery(`LEFT JOIN users`).WillReturnRows(rows)

	drifts, err := repo.ListOccupancyDrift()
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, uint(5), drifts[0].RoomID)
	assert.Equal(t, 2, drifts[0].Recorded)
	assert.Equal(t, 1, drifts[0].Actual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_RepairOccupancy(t *testing.T) {
	mock, repo, cleanup := setupAssignmentMock(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE rooms`).
		WithArgs(1, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RepairOccupancy(5, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
