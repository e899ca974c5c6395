package repository

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/barangayan/brgyems/internal/database"
	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/utils"
	"gorm.io/gorm"
)

// UserRepository owns the Users table
type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser registers an account. Blank names, a malformed email and an
// email that is already registered come back as *ValidationError; anything
// else is a data-access failure.
func (r *UserRepository) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	normalizedEmail := NormalizeEmail(email)

	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrNameRequired
	}
	if !validEmail(normalizedEmail) {
		return nil, ErrEmailInvalid
	}

	exists, err := r.emailExists(ctx, normalizedEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, salt, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        normalizedEmail,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    models.Now(),
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// Lost a race with another create for the same address.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns the account matching email and password. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPassword(password, user.PasswordHash, user.PasswordSalt) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByEmail looks an account up by its normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	normalizedEmail := NormalizeEmail(email)
	if normalizedEmail == "" {
		return nil, ErrNotFound
	}

	var user models.User
	err := r.db.WithContext(ctx).Where(`"Email" = ?`, normalizedEmail).Limit(1).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) emailExists(ctx context.Context, normalizedEmail string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(`"Email" = ?`, normalizedEmail).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// NormalizeEmail trims and lowercases an address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(normalizedEmail string) bool {
	if normalizedEmail == "" {
		return false
	}
	addr, err := mail.ParseAddress(normalizedEmail)
	return err == nil && addr.Address == normalizedEmail
}
