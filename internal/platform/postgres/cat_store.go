package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/platform/logger"
	"github.com/BennoAlif/cats-social/internal/store"
)

// pgTypeMap provides codecs for PostgreSQL array types (img_urls is
// text[]) when scanning through database/sql.
var pgTypeMap = pgtype.NewMap()

// CatStore implements the store.CatStore interface using a PostgreSQL
// database as the storage backend.
type CatStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCatStore creates a new PostgreSQL implementation of the CatStore
// interface. It accepts a database connection or transaction that should
// be initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewCatStore(db store.DBTX, logger *slog.Logger) *CatStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatStore{
		db:     db,
		logger: logger.With(slog.String("component", "cat_store")),
	}
}

// Ensure CatStore implements store.CatStore
var _ store.CatStore = (*CatStore)(nil)

// Create implements store.CatStore.Create.
// The cat is validated before touching the database so a bad entity
// never reaches the insert.
func (s *CatStore) Create(ctx context.Context, cat *domain.Cat) (store.CatRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cat.Validate(); err != nil {
		log.Warn("invalid cat data", slog.String("error", err.Error()))
		return store.CatRecord{}, err
	}

	query := `
		INSERT INTO cats (name, race, sex, age_in_month, description, img_urls, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	var rec store.CatRecord
	err := s.db.QueryRowContext(
		ctx,
		query,
		cat.Name,
		cat.Race,
		cat.Sex,
		cat.AgeInMonth,
		cat.Description,
		cat.ImageURLs,
		cat.UserID,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		log.Error("failed to create cat",
			slog.String("error", err.Error()),
			slog.Int("user_id", int(cat.UserID)))
		return store.CatRecord{}, err
	}

	log.Info("cat created successfully",
		slog.Int("cat_id", int(rec.ID)),
		slog.Int("user_id", int(cat.UserID)))
	return rec, nil
}

// List implements store.CatStore.List.
// It executes the search query built from the filter and maps each row
// into a cat. Zero matches yield an empty slice, not nil.
func (s *CatStore) List(ctx context.Context, filter domain.CatFilter, callerID int32) ([]domain.Cat, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildCatListQuery(filter, callerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query cats",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cats := []domain.Cat{}
	for rows.Next() {
		var cat domain.Cat
		err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.Race,
			&cat.Sex,
			&cat.AgeInMonth,
			&cat.Description,
			pgTypeMap.SQLScanner(&cat.ImageURLs),
			&cat.CreatedAt,
			&cat.UserID,
		)
		if err != nil {
			log.Error("failed to scan cat row",
				slog.String("error", err.Error()))
			return nil, err
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("cats listed", slog.Int("count", len(cats)))
	return cats, nil
}

// GetByID implements store.CatStore.GetByID.
// Returns store.ErrCatNotFound if the cat does not exist.
func (s *CatStore) GetByID(ctx context.Context, id int32) (*domain.Cat, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, race, sex, age_in_month, description, img_urls, created_at, user_id
		FROM cats
		WHERE id = $1
	`

	var cat domain.Cat
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Race,
		&cat.Sex,
		&cat.AgeInMonth,
		&cat.Description,
		pgTypeMap.SQLScanner(&cat.ImageURLs),
		&cat.CreatedAt,
		&cat.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cat not found", slog.Int("cat_id", int(id)))
			return nil, store.ErrCatNotFound
		}
		log.Error("failed to get cat by ID",
			slog.String("error", err.Error()),
			slog.Int("cat_id", int(id)))
		return nil, err
	}

	return &cat, nil
}

// Update implements store.CatStore.Update.
// It replaces all mutable fields in a single statement and returns
// store.ErrCatNotFound when the id is absent.
func (s *CatStore) Update(ctx context.Context, id int32, cat *domain.Cat) (store.CatRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cat.Validate(); err != nil {
		log.Warn("invalid cat data", slog.String("error", err.Error()))
		return store.CatRecord{}, err
	}

	query := `
		UPDATE cats
		SET name = $2, race = $3, sex = $4, age_in_month = $5, description = $6, img_urls = $7
		WHERE id = $1
		RETURNING id, created_at
	`

	var rec store.CatRecord
	err := s.db.QueryRowContext(
		ctx,
		query,
		id,
		cat.Name,
		cat.Race,
		cat.Sex,
		cat.AgeInMonth,
		cat.Description,
		cat.ImageURLs,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cat not found for update", slog.Int("cat_id", int(id)))
			return store.CatRecord{}, store.ErrCatNotFound
		}
		log.Error("failed to update cat",
			slog.String("error", err.Error()),
			slog.Int("cat_id", int(id)))
		return store.CatRecord{}, err
	}

	log.Info("cat updated successfully", slog.Int("cat_id", int(rec.ID)))
	return rec, nil
}

// Delete implements store.CatStore.Delete.
// Deleting an absent id affects zero rows; the handler layer pre-checks
// existence and reports not-found itself.
func (s *CatStore) Delete(ctx context.Context, id int32) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM cats WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		log.Error("failed to delete cat",
			slog.String("error", err.Error()),
			slog.Int("cat_id", int(id)))
		return err
	}

	log.Info("cat deleted", slog.Int("cat_id", int(id)))
	return nil
}
