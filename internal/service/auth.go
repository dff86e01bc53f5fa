package service

import (
	"context"
	"errors"

	"github.com/clansite/api/internal/auth"
	"github.com/clansite/api/internal/domain"
	"github.com/clansite/api/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

// dummyHash is compared against when the username is unknown so that lookups
// for missing and existing admins take comparable time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// AuthService handles admin registration and login.
type AuthService struct {
	db     repository.DBTX
	admins repository.AdminRepository
	tokens *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(db repository.DBTX, admins repository.AdminRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{db: db, admins: admins, tokens: tokens}
}

// CredentialsInput holds the register/login request fields.
type CredentialsInput struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register creates a new admin account and returns a session token.
func (s *AuthService) Register(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if len(input.Password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	id, err := s.admins.Create(ctx, s.db, input.Username, string(hash))
	if err != nil {
		// Two concurrent registrations race on the uniqueness
		// constraint; the loser lands here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrConflict("username already taken")
		}
		return nil, domain.ErrInternal("create admin", err)
	}

	token, err := s.tokens.GenerateToken(id, input.Username)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Message: "administrator created", Token: token}, nil
}

// Login authenticates an admin and returns a session token. Unknown
// usernames and wrong passwords produce the same error so the two cases
// cannot be told apart from the response.
func (s *AuthService) Login(ctx context.Context, input CredentialsInput) (*AuthResult, error) {
	admin, err := s.admins.FindByUsername(ctx, s.db, input.Username)
	if err != nil {
		return nil, domain.ErrInternal("find admin", err)
	}
	if admin == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
		return nil, domain.ErrUnauthorized("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid username or password")
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{Message: "login successful", Token: token}, nil
}
