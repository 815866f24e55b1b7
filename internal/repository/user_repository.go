package repository

import (
	"gorm.io/gorm"

	"hostel-admin-svc/internal/models"
)

// UserRepository defines the interface for user data operations. Profile
// edits write only name and email; assigned_room_id belongs to the
// assignment repository and must never be rewritten from a stale row.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListByRole(role string) ([]*models.User, error)
	UpdateProfile(id uint, name, email string) error
	Delete(id uint) error
	CountByRole(role string) (int64, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user record
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by primary key
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByRole retrieves all users with the given role
func (r *userRepository) ListByRole(role string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.Where("role = ?", role).Order("id").Find(&users).Error
	return users, err
}

// UpdateProfile writes only the editable profile fields
func (r *userRepository) UpdateProfile(id uint, name, email string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  name,
			"email": email,
		}).Error
}

// Delete removes a user by primary key
func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// CountByRole counts users with the given role
func (r *userRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
