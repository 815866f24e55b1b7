package models

import (
	"time"
)

// Book represents the books table
type Book struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	BookID    string    `json:"book_id" gorm:"column:book_id;uniqueIndex"`
	Title     string    `json:"title" gorm:"column:title"`
	Author    string    `json:"author" gorm:"column:author"`
	Price     float64   `json:"price" gorm:"column:price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Book
func (Book) TableName() string {
	return "books"
}
