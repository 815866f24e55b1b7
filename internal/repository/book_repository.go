package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-admin-svc/internal/models"
)

// BookRepository defines the interface for library book data operations
type BookRepository interface {
	Create(book *models.Book) error
	GetByID(id uint) (*models.Book, error)
	GetByBookID(bookID string) (*models.Book, error)
	List(search string, page, limit int) ([]*models.Book, int64, error)
	Update(book *models.Book) error
	Delete(id uint) error
	Upsert(book *models.Book) error
}

// bookRepository implements BookRepository
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new instance of BookRepository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create inserts a new book record
func (r *bookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book by primary key
func (r *bookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByBookID retrieves a book by catalog code
func (r *bookRepository) GetByBookID(bookID string) (*models.Book, error) {
	var book models.Book
	if err := r.db.Where("book_id = ?", bookID).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List retrieves books with optional title/author search and pagination
func (r *bookRepository) List(search string, page, limit int) ([]*models.Book, int64, error) {
	var books []*models.Book
	var total int64

	query := r.db.Model(&models.Book{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR author ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("book_id").Offset(offset).Limit(limit).Find(&books).Error
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// Update saves changes to an existing book record
func (r *bookRepository) Update(book *models.Book) error {
	return r.db.Save(book).Error
}

// Delete removes a book by primary key
func (r *bookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Book{}, id).Error
}

// Upsert inserts a book or updates the existing record with the same catalog code
func (r *bookRepository) Upsert(book *models.Book) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "author", "price", "updated_at"}),
	}).Create(book).Error
}
