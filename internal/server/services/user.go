// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login with JWT issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avolkovs/benfordapp/internal/common"
	"github.com/avolkovs/benfordapp/internal/server/auth"
	"github.com/avolkovs/benfordapp/internal/server/config"
	"github.com/avolkovs/benfordapp/internal/server/models"
	"github.com/avolkovs/benfordapp/internal/server/repositories/repomanager"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt-hashed credential
// - Login: verify credentials and mint an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with the given username and password.
// A taken username yields common.ErrInvalidInput.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", common.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: username already taken", common.ErrInvalidInput)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed access token. An unknown username yields
// common.ErrNotFound; a wrong password yields common.ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("%w: no such user", common.ErrNotFound)
		}
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", fmt.Errorf("%w: password incorrect", common.ErrUnauthorized)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}
