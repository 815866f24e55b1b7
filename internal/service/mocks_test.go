package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"hostel-admin-svc/internal/mailer"
	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

// fakeStore holds users and rooms behind one mutex so the assignment fake can
// apply both sides of an assignment atomically, the way the real repository's
// transaction does.
type fakeStore struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	rooms  map[uint]*models.Room
	nextID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[uint]*models.User),
		rooms: make(map[uint]*models.Room),
	}
}

func (s *fakeStore) addUser(user *models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return user
}

func (s *fakeStore) addRoom(room *models.Room) *models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	room.ID = s.nextID
	copied := *room
	s.rooms[room.ID] = &copied
	return room
}

// ── UserRepository fake ──

type fakeUserRepo struct {
	store *fakeStore
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.store.addUser(user)
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	user, ok := f.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, user := range f.store.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListByRole(role string) ([]*models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var users []*models.User
	for _, user := range f.store.users {
		if user.Role == role {
			copied := *user
			users = append(users, &copied)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) UpdateProfile(id uint, name, email string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if user, ok := f.store.users[id]; ok {
		user.Name = name
		user.Email = email
	}
	return nil
}

func (f *fakeUserRepo) Delete(id uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.users, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	users, _ := f.ListByRole(role)
	return int64(len(users)), nil
}

// ── RoomRepository fake ──

type fakeRoomRepo struct {
	store *fakeStore
}

func (f *fakeRoomRepo) Create(room *models.Room) error {
	f.store.addRoom(room)
	return nil
}

func (f *fakeRoomRepo) GetByID(id uint) (*models.Room, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	room, ok := f.store.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) GetByNumber(number string) (*models.Room, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, room := range f.store.rooms {
		if room.Number == number {
			copied := *room
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoomRepo) List() ([]*models.Room, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var rooms []*models.Room
	for _, room := range f.store.rooms {
		copied := *room
		rooms = append(rooms, &copied)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
	return rooms, nil
}

func (f *fakeRoomRepo) UpdateDetails(id uint, number string, capacity int, underMaintenance bool) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	room, ok := f.store.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if room.CurrentOccupancy > capacity {
		return repository.ErrCapacityConflict
	}
	room.Number = number
	room.Capacity = capacity
	room.UnderMaintenance = underMaintenance
	return nil
}

func (f *fakeRoomRepo) Delete(id uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	room, ok := f.store.rooms[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if room.CurrentOccupancy != 0 {
		return repository.ErrRoomOccupied
	}
	delete(f.store.rooms, id)
	return nil
}

func (f *fakeRoomRepo) CountOccupants(roomID uint) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var count int64
	for _, user := range f.store.users {
		if user.AssignedRoomID != nil && *user.AssignedRoomID == roomID {
			count++
		}
	}
	return count, nil
}

// ── AssignmentRepository fake ──

// fakeAssignmentRepo mirrors the real repository's conditional-update
// semantics: the capacity and maintenance checks and both writes happen under
// one lock, so concurrent assigns for the last slot cannot both succeed.
type fakeAssignmentRepo struct {
	store *fakeStore
}

func (f *fakeAssignmentRepo) AssignStudent(studentID, roomID uint) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	room, ok := f.store.rooms[roomID]
	if !ok || room.UnderMaintenance || room.CurrentOccupancy >= room.Capacity {
		return repository.ErrNoFreeSlot
	}

	user, ok := f.store.users[studentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if user.AssignedRoomID != nil {
		return repository.ErrAlreadyAssigned
	}

	room.CurrentOccupancy++
	id := roomID
	user.AssignedRoomID = &id
	return nil
}

func (f *fakeAssignmentRepo) UnassignStudent(studentID uint) (uint, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	user, ok := f.store.users[studentID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	if user.AssignedRoomID == nil {
		return 0, repository.ErrNotAssigned
	}

	roomID := *user.AssignedRoomID
	user.AssignedRoomID = nil
	if room, ok := f.store.rooms[roomID]; ok && room.CurrentOccupancy > 0 {
		room.CurrentOccupancy--
	}
	return roomID, nil
}

func (f *fakeAssignmentRepo) ListOccupancyDrift() ([]*repository.OccupancyDrift, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	var drifts []*repository.OccupancyDrift
	for _, room := range f.store.rooms {
		actual := 0
		for _, user := range f.store.users {
			if user.AssignedRoomID != nil && *user.AssignedRoomID == room.ID {
				actual++
			}
		}
		if actual != room.CurrentOccupancy {
			drifts = append(drifts, &repository.OccupancyDrift{
				RoomID:   room.ID,
				Number:   room.Number,
				Recorded: room.CurrentOccupancy,
				Actual:   actual,
			})
		}
	}
	return drifts, nil
}

func (f *fakeAssignmentRepo) RepairOccupancy(roomID uint, actual int) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if room, ok := f.store.rooms[roomID]; ok {
		room.CurrentOccupancy = actual
	}
	return nil
}

// ── BookRepository fake ──

type fakeBookRepo struct {
	mu     sync.Mutex
	books  map[uint]*models.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*models.Book)}
}

func (f *fakeBookRepo) Create(book *models.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	book.ID = f.nextID
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBookRepo) GetByID(id uint) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	book, ok := f.books[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBookRepo) GetByBookID(bookID string) (*models.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, book := range f.books {
		if book.BookID == bookID {
			copied := *book
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) List(search string, page, limit int) ([]*models.Book, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*models.Book
	needle := strings.ToLower(search)
	for _, book := range f.books {
		if search == "" ||
			strings.Contains(strings.ToLower(book.Title), needle) ||
			strings.Contains(strings.ToLower(book.Author), needle) {
			copied := *book
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BookID < matched[j].BookID })

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeBookRepo) Update(book *models.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBookRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) Upsert(book *models.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.books {
		if existing.BookID == book.BookID {
			existing.Title = book.Title
			existing.Author = book.Author
			existing.Price = book.Price
			book.ID = existing.ID
			return nil
		}
	}
	f.nextID++
	book.ID = f.nextID
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

// ── PlacementRepository fake ──

type fakePlacementRepo struct {
	placements map[uint]*models.Placement
	nextID     uint
}

func newFakePlacementRepo() *fakePlacementRepo {
	return &fakePlacementRepo{placements: make(map[uint]*models.Placement)}
}

func (f *fakePlacementRepo) Create(placement *models.Placement) error {
	f.nextID++
	placement.ID = f.nextID
	copied := *placement
	f.placements[placement.ID] = &copied
	return nil
}

func (f *fakePlacementRepo) GetByID(id uint) (*models.Placement, error) {
	placement, ok := f.placements[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *placement
	return &copied, nil
}

func (f *fakePlacementRepo) Search(search string, page, limit int) ([]*models.Placement, int64, error) {
	var matched []*models.Placement
	needle := strings.ToLower(search)
	for _, placement := range f.placements {
		if search == "" ||
			strings.Contains(strings.ToLower(placement.Company), needle) ||
			strings.Contains(strings.ToLower(placement.RoleTitle), needle) {
			copied := *placement
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch {
		case a.Deadline == nil && b.Deadline == nil:
			return a.ID < b.ID
		case a.Deadline == nil:
			return false
		case b.Deadline == nil:
			return true
		case a.Deadline.Equal(*b.Deadline):
			return a.ID < b.ID
		default:
			return a.Deadline.Before(*b.Deadline)
		}
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakePlacementRepo) Update(placement *models.Placement) error {
	copied := *placement
	f.placements[placement.ID] = &copied
	return nil
}

func (f *fakePlacementRepo) Delete(id uint) error {
	delete(f.placements, id)
	return nil
}

// ── FeedbackRepository fake ──

type fakeFeedbackRepo struct {
	entries []*models.Feedback
	nextID  uint
}

func (f *fakeFeedbackRepo) Create(feedback *models.Feedback) error {
	f.nextID++
	feedback.ID = f.nextID
	copied := *feedback
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeFeedbackRepo) List(page, limit int) ([]*models.Feedback, int64, error) {
	total := int64(len(f.entries))
	var out []*models.Feedback
	for i := len(f.entries) - 1; i >= 0; i-- {
		copied := *f.entries[i]
		out = append(out, &copied)
	}
	start := (page - 1) * limit
	if start > len(out) {
		start = len(out)
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

// ── Mailer fake ──

type sentMail struct {
	email    string
	name     string
	password string
}

type bulkMail struct {
	recipients []string
	subject    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	bulk []bulkMail
	err  error
}

func (f *fakeMailer) SendCredentials(_ context.Context, email, name, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{email: email, name: name, password: password})
	return nil
}

func (f *fakeMailer) SendBulk(_ context.Context, recipients []string, subject, _, _ string) *mailer.BulkResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, bulkMail{recipients: append([]string(nil), recipients...), subject: subject})
	if f.err != nil {
		return &mailer.BulkResult{Failed: len(recipients), Total: len(recipients)}
	}
	return &mailer.BulkResult{Sent: len(recipients), Total: len(recipients)}
}
