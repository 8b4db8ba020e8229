package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"copilot_accounts/internal/common"
	"copilot_accounts/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// AccountRepository is the durable directory of accounts. The backing store
// owns uniqueness: a concurrent insert racing past the service's pre-check
// still loses here, with exactly one winner.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
}

type pgAccountRepository struct {
	db *sql.DB
}

func NewPgAccountRepository(db *sql.DB) AccountRepository {
	return &pgAccountRepository{db: db}
}

// Create inserts the account and fills in the database-assigned timestamps.
// A unique-index violation on username or email maps to
// common.ErrDuplicateIdentity.
func (r *pgAccountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `INSERT INTO accounts (id, username, email, hashed_password, is_active)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Username, account.Email, account.HashedPassword, account.Active,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("account with given username or email already exists: %w", common.ErrDuplicateIdentity)
		}
		return fmt.Errorf("pgAccountRepository.Create: %w", err)
	}
	return nil
}

func (r *pgAccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT id, username, email, hashed_password, is_active, created_at, updated_at
	          FROM accounts WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email), "FindByEmail")
}

func (r *pgAccountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := `SELECT id, username, email, hashed_password, is_active, created_at, updated_at
	          FROM accounts WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username), "FindByUsername")
}

func (r *pgAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT id, username, email, hashed_password, is_active, created_at, updated_at
	          FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgAccountRepository) scanOne(row *sql.Row, op string) (*model.Account, error) {
	account := &model.Account{}
	err := row.Scan(
		&account.ID, &account.Username, &account.Email, &account.HashedPassword,
		&account.Active, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgAccountRepository.%s: %w", op, err)
	}
	return account, nil
}
