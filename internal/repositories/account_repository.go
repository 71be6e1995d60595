package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"luxe-estates/internal/models"
)

var (
	// ErrDuplicateEmail is returned when an account of the same kind already
	// holds the email. Raced inserts resolve here via the unique index.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateUsername is returned when a user account already holds the username.
	ErrDuplicateUsername = errors.New("username already taken")
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	account.Prepare()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now()

	query := `
		INSERT INTO accounts (id, kind, username, name, email, phone, location, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Kind,
		account.Username,
		account.Name,
		account.Email,
		account.Phone,
		account.Location,
		account.Role,
		account.PasswordHash,
		account.CreatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "idx_accounts_username" {
			return ErrDuplicateUsername
		}
		return ErrDuplicateEmail
	}

	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, kind models.AccountKind, email string) (*models.Account, error) {
	query := `SELECT id, kind, username, name, email, phone, location, role, password_hash, created_at
		FROM accounts WHERE kind = $1 AND email = $2`

	return r.scanOne(r.pool.QueryRow(ctx, query, kind, email))
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	query := `SELECT id, kind, username, name, email, phone, location, role, password_hash, created_at
		FROM accounts WHERE kind = $1 AND username = $2`

	return r.scanOne(r.pool.QueryRow(ctx, query, models.KindUser, username))
}

func (r *AccountRepository) FindByID(ctx context.Context, kind models.AccountKind, id uuid.UUID) (*models.Account, error) {
	query := `SELECT id, kind, username, name, email, phone, location, role, password_hash, created_at
		FROM accounts WHERE kind = $1 AND id = $2`

	return r.scanOne(r.pool.QueryRow(ctx, query, kind, id))
}

func (r *AccountRepository) scanOne(row pgx.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Kind,
		&account.Username,
		&account.Name,
		&account.Email,
		&account.Phone,
		&account.Location,
		&account.Role,
		&account.PasswordHash,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}
