package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-svc/internal/models"
)

func setupAssignmentTest() (AssignmentService, *fakeStore) {
	store := newFakeStore()
	svc := NewAssignmentService(
		&fakeAssignmentRepo{store: store},
		&fakeRoomRepo{store: store},
		&fakeUserRepo{store: store},
		newTestLogger(),
	)
	return svc, store
}

func addStudent(store *fakeStore, email string) *models.User {
	return store.addUser(&models.User{
		Name:  "Student " + email,
		Email: email,
		Role:  models.RoleStudent,
	})
}

func TestAvailable(t *testing.T) {
	assert.True(t, Available(&models.Room{Capacity: 2, CurrentOccupancy: 1}))
	assert.False(t, Available(&models.Room{Capacity: 2, CurrentOccupancy: 2}))

	// Maintenance wins even when slots remain
	assert.False(t, Available(&models.Room{Capacity: 2, CurrentOccupancy: 0, UnderMaintenance: true}))
}

func TestAssignmentService_Assign(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	student := addStudent(store, "a@hostel.test")

	require.NoError(t, svc.Assign(student.ID, room.ID))

	assert.Equal(t, 1, store.rooms[room.ID].CurrentOccupancy)
	require.NotNil(t, store.users[student.ID].AssignedRoomID)
	assert.Equal(t, room.ID, *store.users[student.ID].AssignedRoomID)
}

func TestAssignmentService_Assign_FillsRoomToCapacity(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	first := addStudent(store, "a@hostel.test")
	second := addStudent(store, "b@hostel.test")
	third := addStudent(store, "c@hostel.test")

	require.NoError(t, svc.Assign(first.ID, room.ID))
	require.NoError(t, svc.Assign(second.ID, room.ID))
	assert.Equal(t, 2, store.rooms[room.ID].CurrentOccupancy)

	err := svc.Assign(third.ID, room.ID)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Equal(t, 2, store.rooms[room.ID].CurrentOccupancy)
	assert.Nil(t, store.users[third.ID].AssignedRoomID)
}

func TestAssignmentService_Assign_UnderMaintenance(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 4, UnderMaintenance: true})
	student := addStudent(store, "a@hostel.test")

	err := svc.Assign(student.ID, room.ID)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Equal(t, 0, store.rooms[room.ID].CurrentOccupancy)
}

func TestAssignmentService_Assign_AlreadyAssigned(t *testing.T) {
	svc, store := setupAssignmentTest()
	first := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	second := store.addRoom(&models.Room{Number: "102", Capacity: 2})
	student := addStudent(store, "a@hostel.test")

	require.NoError(t, svc.Assign(student.ID, first.ID))

	err := svc.Assign(student.ID, second.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Equal(t, 0, store.rooms[second.ID].CurrentOccupancy)
}

func TestAssignmentService_Assign_NotAStudent(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	warden := store.addUser(&models.User{Name: "Warden", Email: "w@hostel.test", Role: models.RoleWarden})

	err := svc.Assign(warden.ID, room.ID)
	assert.ErrorIs(t, err, ErrNotAStudent)
}

func TestAssignmentService_Assign_NotFound(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	student := addStudent(store, "a@hostel.test")

	assert.ErrorIs(t, svc.Assign(9999, room.ID), ErrUserNotFound)
	assert.ErrorIs(t, svc.Assign(student.ID, 9999), ErrRoomNotFound)
}

func TestAssignmentService_Assign_StudentDeletedMidway(t *testing.T) {
	store := newFakeStore()
	users := &hookedUserRepo{fakeUserRepo: &fakeUserRepo{store: store}}
	svc := NewAssignmentService(
		&fakeAssignmentRepo{store: store},
		&fakeRoomRepo{store: store},
		users,
		newTestLogger(),
	)

	room := store.addRoom(&models.Room{Number: "101", Capacity: 2})
	student := addStudent(store, "a@hostel.test")

	// The account is removed after the pre-check but before the write
	users.afterFirstGet = func() {
		store.mu.Lock()
		defer store.mu.Unlock()
		delete(store.users, student.ID)
	}

	err := svc.Assign(student.ID, room.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, store.rooms[room.ID].CurrentOccupancy)
}

func TestAssignmentService_UnassignRoundTrip(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 1})
	first := addStudent(store, "a@hostel.test")
	second := addStudent(store, "b@hostel.test")

	require.NoError(t, svc.Assign(first.ID, room.ID))
	require.NoError(t, svc.Unassign(first.ID))

	assert.Equal(t, 0, store.rooms[room.ID].CurrentOccupancy)
	assert.Nil(t, store.users[first.ID].AssignedRoomID)

	// The released slot is immediately reusable
	require.NoError(t, svc.Assign(second.ID, room.ID))
	assert.Equal(t, 1, store.rooms[room.ID].CurrentOccupancy)
}

func TestAssignmentService_Unassign_NotAssigned(t *testing.T) {
	svc, store := setupAssignmentTest()
	student := addStudent(store, "a@hostel.test")

	err := svc.Unassign(student.ID)
	assert.ErrorIs(t, err, ErrNotAssigned)
}

// Two assigns racing for the last slot: exactly one wins, the counter never
// exceeds capacity.
func TestAssignmentService_Assign_LastSlotRace(t *testing.T) {
	svc, store := setupAssignmentTest()
	room := store.addRoom(&models.Room{Number: "101", Capacity: 1})
	first := addStudent(store, "a@hostel.test")
	second := addStudent(store, "b@hostel.test")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, studentID uint) {
			defer wg.Done()
			errs[i] = svc.Assign(studentID, room.ID)
		}(i, id)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, ErrRoomUnavailable)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Equal(t, 1, store.rooms[room.ID].CurrentOccupancy)
}
