package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BennoAlif/cats-social/internal/api/shared"
	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/service/auth"
	"github.com/BennoAlif/cats-social/internal/store"
)

// UserHandler handles user registration and login.
type UserHandler struct {
	userStore    store.UserStore
	tokenService auth.TokenService
	hasher       auth.PasswordHasher
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, tokenService auth.TokenService, hasher auth.PasswordHasher, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userStore:    userStore,
		tokenService: tokenService,
		hasher:       hasher,
		validate:     newValidator(),
		logger:       logger.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /v1/user/register. A successful registration
// returns 201 with a fresh access token, so the client is logged in
// immediately.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		respondMappedError(w, r, err, "Failed to register user")
		return
	}

	user := &domain.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashed,
	}
	if err := h.userStore.Create(r.Context(), user); err != nil {
		// Duplicate emails surface here as well; the insert is the
		// uniqueness check, and the mapper leaves duplicates at 500.
		respondMappedError(w, r, err, "Failed to register user")
		return
	}

	token, err := h.tokenService.Generate(r.Context(), auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		respondMappedError(w, r, err, "Failed to generate token")
		return
	}

	h.logger.Debug("user registered", slog.Int("user_id", int(user.ID)))
	shared.RespondWithJSON(w, r, http.StatusCreated, "User registered successfully", UserResponse{
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	})
}

// Login handles POST /v1/user/login. An unknown email yields 404, a
// wrong password 400.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	user, err := h.userStore.FindOne(r.Context(), domain.UserFilter{Email: req.Email})
	if err != nil {
		respondMappedError(w, r, err, "Failed to log in")
		return
	}

	// A mismatch maps to 400, a hash that cannot be decoded to 500.
	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		respondMappedError(w, r, err, "Failed to log in")
		return
	}

	token, err := h.tokenService.Generate(r.Context(), auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		respondMappedError(w, r, err, "Failed to generate token")
		return
	}

	h.logger.Debug("user logged in", slog.Int("user_id", int(user.ID)))
	shared.RespondWithJSON(w, r, http.StatusOK, "User logged in successfully", UserResponse{
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
	})
}
