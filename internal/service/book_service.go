package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/repository"
	"hostel-admin-svc/pkg/logger"
)

// ImportBooksResponse summarizes a catalog import
type ImportBooksResponse struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// BookService defines the interface for library book operations
type BookService interface {
	Create(book *models.Book) error
	GetByID(id uint) (*models.Book, error)
	List(search string, page, limit int) ([]*models.Book, int64, error)
	Update(id uint, title, author string, price float64) (*models.Book, error)
	Delete(id uint) error
	ImportBooks(filename string, content []byte) (*ImportBooksResponse, error)
}

// bookService implements BookService
type bookService struct {
	bookRepo repository.BookRepository
	logger   *logger.Logger
}

// NewBookService creates a new book service
func NewBookService(bookRepo repository.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepo: bookRepo,
		logger:   logger,
	}
}

// Create inserts a new catalog entry
func (s *bookService) Create(book *models.Book) error {
	if _, err := s.bookRepo.GetByBookID(book.BookID); err == nil {
		return fmt.Errorf("book %s already exists", book.BookID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.bookRepo.Create(book)
}

// GetByID retrieves a book by id
func (s *bookService) GetByID(id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// List retrieves books with optional search and pagination
func (s *bookService) List(search string, page, limit int) ([]*models.Book, int64, error) {
	return s.bookRepo.List(search, page, limit)
}

// Update edits a book's catalog fields. The catalog code itself is fixed.
func (s *bookService) Update(id uint, title, author string, price float64) (*models.Book, error) {
	book, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	book.Title = title
	book.Author = author
	book.Price = price
	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}

	return book, nil
}

// Delete removes a book by id
func (s *bookService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.bookRepo.Delete(id)
}

// ImportBooks loads a catalog file (XLSX or CSV) and upserts each valid row
// by catalog code. Rows missing required columns are skipped, not fatal.
// Headers are matched case-insensitively; "book_id" is accepted as an alias
// for "bookid".
func (s *bookService) ImportBooks(filename string, content []byte) (*ImportBooksResponse, error) {
	var rows [][]string
	var err error

	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		rows, err = readExcelRows(content)
	} else {
		rows, err = readCSVRows(content)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(rows) < 2 {
		return &ImportBooksResponse{}, nil
	}

	headers := make(map[string]int)
	for i, h := range rows[0] {
		headers[strings.ToLower(strings.TrimSpace(h))] = i
	}
	// book_id is accepted as an alias for bookid
	if _, ok := headers["bookid"]; !ok {
		if idx, ok := headers["book_id"]; ok {
			headers["bookid"] = idx
		}
	}
	for _, required := range []string{"bookid", "title", "author", "price"} {
		if _, ok := headers[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &ImportBooksResponse{Total: len(rows) - 1}
	for i, row := range rows[1:] {
		book, err := normalizeBookRow(row, headers)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		if err := s.bookRepo.Upsert(book); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			continue
		}
		result.Imported++
	}

	s.logger.WithFields(map[string]interface{}{
		"filename": filename,
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Book catalog imported")

	return result, nil
}

func readExcelRows(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheet)
}

func readCSVRows(content []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func normalizeBookRow(row []string, headers map[string]int) (*models.Book, error) {
	field := func(name string) string {
		idx := headers[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	bookID := field("bookid")
	title := field("title")
	author := field("author")
	if bookID == "" || title == "" || author == "" {
		return nil, fmt.Errorf("missing bookid, title, or author")
	}

	price := 0.0
	if raw := field("price"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", raw)
		}
		price = parsed
	}

	return &models.Book{
		BookID: bookID,
		Title:  title,
		Author: author,
		Price:  price,
	}, nil
}
