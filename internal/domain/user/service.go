// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/store-backend/internal/config"
	"github.com/your-org/store-backend/internal/domain/product"
	"github.com/your-org/store-backend/internal/pkg/apperrors"
	"github.com/your-org/store-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles user business logic
type Service struct {
	db        *gorm.DB
	config    *config.Config
	jwt       *auth.JWTManager
	passwords *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		jwt:       auth.NewJWTManager(cfg),
		passwords: auth.NewPasswordManager(cfg),
	}
}

// RegisterRequest represents account creation data
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     Role   `json:"role" binding:"omitempty,oneof=customer admin"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// Register creates a new active account with a hashed password
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	email := strings.ToLower(req.Email)

	var existing User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.E(apperrors.KindConflict, "email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, err.Error(), err)
	}

	role := req.Role
	if role == "" {
		role = RoleCustomer
	}

	newUser := User{
		Username: req.Username,
		Email:    email,
		Password: hash,
		Role:     role,
		Status:   StatusActive,
	}

	if err := s.db.WithContext(ctx).Create(&newUser).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &newUser, nil
}

// Login verifies credentials and issues a session token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (string, *User, error) {
	var u User
	err := s.db.WithContext(ctx).
		Where("email = ? AND status = ?", strings.ToLower(req.Email), StatusActive).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperrors.E(apperrors.KindUnauthorized, "invalid credentials")
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := s.passwords.VerifyPassword(req.Password, u.Password); err != nil {
		return "", nil, apperrors.E(apperrors.KindUnauthorized, "invalid credentials")
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, &u, nil
}

// List retrieves all active users
func (s *Service) List(ctx context.Context) ([]User, error) {
	var users []User
	err := s.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	return users, nil
}

// Get retrieves a single active user by id
func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, StatusActive).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "user does not exist with given id")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return &u, nil
}

// Update applies a partial update to the caller's own account
func (s *Service) Update(ctx context.Context, callerID, id uint, req *UpdateUserRequest) (*User, error) {
	u, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(*req.Email)
	}

	if len(updates) == 0 {
		return u, nil
	}

	if err := s.db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// Delete soft-deletes the caller's own account
func (s *Service) Delete(ctx context.Context, callerID, id uint) error {
	u, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Model(u).Update("status", StatusDeleted).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// Products retrieves the active products the user is selling
func (s *Service) Products(ctx context.Context, userID uint) ([]product.Product, error) {
	var products []product.Product
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, product.StatusActive).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user products: %w", err)
	}

	return products, nil
}

func (s *Service) findOwned(ctx context.Context, callerID, id uint) (*User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.ID != callerID {
		return nil, apperrors.E(apperrors.KindForbidden, "you do not own this account")
	}

	return u, nil
}
