package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BennoAlif/cats-social/internal/api/shared"
	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/service/auth"
	"github.com/BennoAlif/cats-social/internal/store"
)

// stubUserStore is a configurable in-memory stand-in for store.UserStore.
type stubUserStore struct {
	createFn  func(ctx context.Context, user *domain.User) error
	findOneFn func(ctx context.Context, filter domain.UserFilter) (*domain.User, error)
}

func (s *stubUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
	user.CreatedAt = time.Now()
	return nil
}

func (s *stubUserStore) FindOne(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	if s.findOneFn != nil {
		return s.findOneFn(ctx, filter)
	}
	return nil, store.ErrUserNotFound
}

// stubCatStore is a configurable in-memory stand-in for store.CatStore.
type stubCatStore struct {
	createFn func(ctx context.Context, cat *domain.Cat) (store.CatRecord, error)
	listFn   func(ctx context.Context, filter domain.CatFilter, callerID int32) ([]domain.Cat, error)
	getFn    func(ctx context.Context, id int32) (*domain.Cat, error)
	updateFn func(ctx context.Context, id int32, cat *domain.Cat) (store.CatRecord, error)
	deleteFn func(ctx context.Context, id int32) error
}

func (s *stubCatStore) Create(ctx context.Context, cat *domain.Cat) (store.CatRecord, error) {
	if s.createFn != nil {
		return s.createFn(ctx, cat)
	}
	return store.CatRecord{ID: 1, CreatedAt: time.Now()}, nil
}

func (s *stubCatStore) List(ctx context.Context, filter domain.CatFilter, callerID int32) ([]domain.Cat, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter, callerID)
	}
	return []domain.Cat{}, nil
}

func (s *stubCatStore) GetByID(ctx context.Context, id int32) (*domain.Cat, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, store.ErrCatNotFound
}

func (s *stubCatStore) Update(ctx context.Context, id int32, cat *domain.Cat) (store.CatRecord, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, cat)
	}
	return store.CatRecord{ID: id, CreatedAt: time.Now()}, nil
}

func (s *stubCatStore) Delete(ctx context.Context, id int32) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTokenService() auth.TokenService {
	return auth.NewTestTokenService(strings.Repeat("k", 32), 8*time.Hour, nil)
}

// authedContext returns ctx carrying an authenticated identity, the way
// the authentication middleware would populate it.
func authedContext(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, shared.IdentityContextKey, identity)
}

// decodeEnvelope unpacks the response envelope, unmarshaling the data
// portion into dataPtr when it is non-nil.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, dataPtr interface{}) string {
	t.Helper()

	var envelope struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	if dataPtr != nil && string(envelope.Data) != "null" {
		require.NoError(t, json.Unmarshal(envelope.Data, dataPtr))
	}
	return envelope.Message
}
