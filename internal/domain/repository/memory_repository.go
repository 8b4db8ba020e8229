package repository

import (
	"context"
	"sync"
	"time"

	"copilot_accounts/internal/common"
	"copilot_accounts/internal/domain/model"
)

// memoryAccountRepository keeps accounts in process memory. It backs tests
// and local runs without postgres, and enforces the same uniqueness
// contract as the real directory: under the lock, a duplicate insert fails
// even when the caller's pre-check saw nothing.
type memoryAccountRepository struct {
	mu         sync.Mutex
	byID       map[string]*model.Account
	byUsername map[string]*model.Account
	byEmail    map[string]*model.Account
}

func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		byID:       make(map[string]*model.Account),
		byUsername: make(map[string]*model.Account),
		byEmail:    make(map[string]*model.Account),
	}
}

func (r *memoryAccountRepository) Create(ctx context.Context, account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[account.Username]; exists {
		return common.ErrDuplicateIdentity
	}
	if _, exists := r.byEmail[account.Email]; exists {
		return common.ErrDuplicateIdentity
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	stored := *account
	r.byID[stored.ID] = &stored
	r.byUsername[stored.Username] = &stored
	r.byEmail[stored.Email] = &stored
	return nil
}

func (r *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyOf(r.byEmail[email])
}

func (r *memoryAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyOf(r.byUsername[username])
}

func (r *memoryAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyOf(r.byID[id])
}

func copyOf(account *model.Account) (*model.Account, error) {
	if account == nil {
		return nil, common.ErrNotFound
	}
	copied := *account
	return &copied, nil
}
