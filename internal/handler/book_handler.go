package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"hostel-admin-svc/internal/models"
	"hostel-admin-svc/internal/service"
	"hostel-admin-svc/pkg/logger"
	"hostel-admin-svc/pkg/utils"
)

// maxImportFileSize caps uploaded catalog files at 10 MiB
const maxImportFileSize = 10 << 20

// BookHandler handles library book HTTP requests
type BookHandler struct {
	bookService service.BookService
	logger      *logger.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService service.BookService, logger *logger.Logger) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// BookRequest is the create/update book payload
type BookRequest struct {
	BookID string  `json:"book_id" binding:"required" example:"BK-1042"`
	Title  string  `json:"title" binding:"required" example:"The Go Programming Language"`
	Author string  `json:"author" binding:"required" example:"Donovan & Kernighan"`
	Price  float64 `json:"price" example:"450"`
}

// CreateBook handles POST /api/v1/admin/books
// @Summary Add a book to the library catalog
// @Tags books
// @Accept json
// @Produce json
// @Param request body BookRequest true "Book details"
// @Success 201 {object} utils.APIResponse "Book created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Router /api/v1/admin/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	book := &models.Book{
		BookID: req.BookID,
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
	}
	if err := h.bookService.Create(book); err != nil {
		h.logger.WithError(err).WithField("book_id", req.BookID).Error("Failed to create book")
		RespondError(c, "Failed to create book", err)
		return
	}

	utils.CreatedResponse(c, "Book created successfully", book)
}

// ListBooks handles GET /api/v1/admin/books and GET /api/v1/student/books
// @Summary List library books
// @Description List books with optional title/author search and pagination
// @Tags books
// @Produce json
// @Param search query string false "Search by title or author"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.APIResponse "Books retrieved successfully"
// @Router /api/v1/admin/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page, limit := utils.GetPaginationParams(c)
	search := c.Query("search")

	books, total, err := h.bookService.List(search, page, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list books")
		utils.InternalServerErrorResponse(c, "Failed to list books", err)
		return
	}

	utils.SuccessResponse(c, "Books retrieved successfully", gin.H{
		"books": books,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// UpdateBook handles PUT /api/v1/admin/books/:id
// @Summary Update a library book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body BookRequest true "Book details"
// @Success 200 {object} utils.APIResponse "Book updated successfully"
// @Failure 404 {object} utils.APIResponse "Book not found"
// @Router /api/v1/admin/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", err)
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	book, err := h.bookService.Update(id, req.Title, req.Author, req.Price)
	if err != nil {
		h.logger.WithError(err).WithField("book_id", id).Error("Failed to update book")
		RespondError(c, "Failed to update book", err)
		return
	}

	utils.SuccessResponse(c, "Book updated successfully", book)
}

// DeleteBook handles DELETE /api/v1/admin/books/:id
// @Summary Delete a library book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} utils.APIResponse "Book deleted successfully"
// @Failure 404 {object} utils.APIResponse "Book not found"
// @Router /api/v1/admin/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid book ID", err)
		return
	}

	if err := h.bookService.Delete(id); err != nil {
		h.logger.WithError(err).WithField("book_id", id).Error("Failed to delete book")
		RespondError(c, "Failed to delete book", err)
		return
	}

	utils.SuccessResponse(c, "Book deleted successfully", nil)
}

// ImportBooks handles POST /api/v1/admin/books/import
// @Summary Import the book catalog from a file
// @Description Upload an XLSX or CSV catalog. Rows with missing required columns are skipped.
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Catalog file (xlsx or csv)"
// @Success 200 {object} utils.APIResponse{data=service.ImportBooksResponse} "Catalog imported"
// @Failure 400 {object} utils.APIResponse "Invalid file"
// @Router /api/v1/admin/books/import [post]
func (h *BookHandler) ImportBooks(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Missing catalog file", err)
		return
	}
	if fileHeader.Size > maxImportFileSize {
		utils.BadRequestResponse(c, "Catalog file too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to open catalog file", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read catalog file", err)
		return
	}

	result, err := h.bookService.ImportBooks(fileHeader.Filename, content)
	if err != nil {
		h.logger.WithError(err).WithField("filename", fileHeader.Filename).Error("Failed to import book catalog")
		utils.BadRequestResponse(c, "Failed to import book catalog", err)
		return
	}

	utils.SuccessResponse(c, "Catalog imported", result)
}
