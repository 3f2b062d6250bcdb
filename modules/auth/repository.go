package auth

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/example/taskboard/domain/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user persistence using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID finds a user by ID.
func (r *UserRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByProviderAccount finds a user by their provider account identity.
func (r *UserRepository) FindByProviderAccount(provider, accountID string) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, "provider = ? AND provider_account_id = ?", provider, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Upsert creates the user row for a provider account, or refreshes the name
// and email on an existing one. The user ID is stable across sign-ins.
func (r *UserRepository) Upsert(provider, accountID, name, email string) (*domain.User, error) {
	user, err := r.FindByProviderAccount(provider, accountID)
	if err == nil {
		user.Name = name
		user.Email = email
		user.UpdatedAt = time.Now()
		if err := r.db.Save(user).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user = &domain.User{
		ID:                uuid.New().String(),
		Name:              name,
		Email:             email,
		Provider:          provider,
		ProviderAccountID: accountID,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
