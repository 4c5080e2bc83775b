// Package services contains server-side business logic. This file implements
// UserService, which handles account registration and credential verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/common"
	"todoapp/internal/server/models"
	"todoapp/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create an account with a bcrypt-hashed password
// - Login: verify credentials and return the account summary
//
// No session or token is issued; the caller keeps the returned
// {id, username} as its identity for subsequent requests.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService over the given connection and
// repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. Usernames are unique case-insensitively;
// a clash yields common.ErrorDuplicateUsername. The password is stored only
// as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.UserSummary, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &models.UserSummary{ID: user.ID, Username: user.Username}, nil
}

// Login verifies the password against the stored hash for a case-insensitive
// username match. Unknown user and wrong password both yield the same
// common.ErrorUnauthorized so callers cannot probe for usernames.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.UserSummary, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return &models.UserSummary{ID: user.ID, Username: user.Username}, nil
}
