package repository

import (
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSpocs retrieves all users with the SPOC role regardless of verification state
func (r *UserRepository) GetSpocs() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", models.RoleSpoc).Order("created_at DESC").Find(&users).Error
	return users, err
}

// Verify flips the verified flag for a user and reports how many rows changed
func (r *UserRepository) Verify(id uuid.UUID) (int64, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("verified", true)
	return result.RowsAffected, result.Error
}
