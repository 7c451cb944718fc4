package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/platform/logger"
	"github.com/BennoAlif/cats-social/internal/store"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should
// be initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate email address.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// Create implements store.UserStore.Create.
// It inserts the user and fills in the store-assigned id and creation
// timestamp. Returns store.ErrEmailExists on a duplicate email.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, user.Name, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate email during user creation",
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: %s", store.ErrEmailExists, user.Email)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()))
		return err
	}

	log.Info("user created successfully",
		slog.Int("user_id", int(user.ID)))
	return nil
}

// FindOne implements store.UserStore.FindOne.
// It executes a lookup built from the filter's present predicates and
// returns store.ErrUserNotFound when no row matches.
func (s *UserStore) FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildUserLookupQuery(filter)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to look up user",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &user, nil
}
