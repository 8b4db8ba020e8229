package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"copilot_accounts/internal/common"
	"copilot_accounts/internal/common/security"
	"copilot_accounts/internal/domain/model"
	"copilot_accounts/internal/domain/repository"

	"github.com/google/uuid"
)

// dummyHash is a syntactically valid bcrypt hash compared against when a
// login names an unknown username, so that the miss costs one bcrypt
// verification just like a wrong password does.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	accountRepo repository.AccountRepository
	tokens      *security.TokenService
}

func NewAuthService(accountRepo repository.AccountRepository, tokens *security.TokenService) *AuthService {
	return &AuthService{accountRepo: accountRepo, tokens: tokens}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	Account     *model.Account `json:"user"`
}

// Signup registers a new account. Both identities are pre-checked for
// duplicates, but the authoritative guard is the unique index behind
// AccountRepository.Create: losing a concurrent race surfaces as the same
// ErrDuplicateIdentity.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.Account, error) {
	if req.Username == "" || req.Password == "" || !emailRe.MatchString(req.Email) {
		return nil, common.ErrBadRequest
	}
	if len(req.Password) < 8 {
		return nil, common.ErrBadRequest
	}

	if _, err := s.accountRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.ErrDuplicateIdentity
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.accountRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, common.ErrDuplicateIdentity
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Active:         true,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, common.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account.Snapshot(), nil
}

// Login verifies the presented credentials and issues a bearer token.
// An unknown username and a wrong password return the same error; the
// disabled-account check runs only after the password verified, so it can
// be distinct without leaking anything to a guesser.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	account, err := s.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			security.CheckPasswordHash(req.Password, dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, account.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	if !account.Active {
		return nil, common.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(account.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Account:     account.Snapshot(),
	}, nil
}

// ResolveToken maps a bearer token back to the owning account. Every
// failure mode collapses to common.ErrUnauthorized for the caller; the
// specific cause only reaches the log.
func (s *AuthService) ResolveToken(ctx context.Context, tokenString string) (*model.Account, error) {
	if tokenString == "" {
		return nil, common.ErrUnauthorized
	}

	username, err := s.tokens.Validate(tokenString)
	if err != nil {
		log.Printf("token rejected: %v", err)
		return nil, common.ErrUnauthorized
	}

	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			log.Printf("token rejected: subject %q has no account", username)
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	if !account.Active {
		log.Printf("token rejected: subject %q is disabled", username)
		return nil, common.ErrUnauthorized
	}

	return account.Snapshot(), nil
}

// Logout acknowledges the client's intent and nothing more. Tokens are
// stateless, the server keeps no session to invalidate, and the client is
// expected to discard its copy.
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}
