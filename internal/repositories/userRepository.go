package repositories

import (
	"CryptoFolio/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create adds a new User record to the database
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if user.Username == "" {
		return errors.New("username cannot be empty")
	}
	return r.db.Create(user).Error
}

// FindByUsername retrieves a User record by username
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, errors.New("invalid username")
	}
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &user, err
}

// GetOrCreate returns the user with the given username, creating it on first use
func (r *UserRepository) GetOrCreate(username string) (*models.User, error) {
	user, err := r.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	user = &models.User{Username: username, Settings: "{}"}
	if err := r.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// TouchLastLogin stamps the user's last login time
func (r *UserRepository) TouchLastLogin(userID uint) error {
	if userID == 0 {
		return errors.New("invalid user id")
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).Error
}

// SaveSettings replaces the user's settings blob
func (r *UserRepository) SaveSettings(userID uint, settings string) error {
	if userID == 0 {
		return errors.New("invalid user id")
	}
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("settings", settings).Error
}
