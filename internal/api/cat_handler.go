package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/BennoAlif/cats-social/internal/api/middleware"
	"github.com/BennoAlif/cats-social/internal/api/shared"
	"github.com/BennoAlif/cats-social/internal/domain"
	"github.com/BennoAlif/cats-social/internal/store"
)

// CatHandler handles the cat listing endpoints.
type CatHandler struct {
	catStore store.CatStore
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatHandler creates a new CatHandler with the given dependencies.
func NewCatHandler(catStore store.CatStore, logger *slog.Logger) *CatHandler {
	return &CatHandler{
		catStore: catStore,
		validate: newValidator(),
		logger:   logger.With(slog.String("component", "cat_handler")),
	}
}

// List handles GET /v1/cat. Query parameters are combined with AND;
// absent parameters are ignored. The hasMatched parameter is accepted
// but does not narrow the result.
func (h *CatHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		respondMappedError(w, r, domain.ErrUnauthorized, "")
		return
	}

	filter, err := parseCatFilter(r.URL.Query())
	if err != nil {
		respondMappedError(w, r, err, "")
		return
	}

	cats, err := h.catStore.List(r.Context(), filter, identity.UserID)
	if err != nil {
		respondMappedError(w, r, err, "Failed to fetch cats")
		return
	}

	out := make([]CatResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, catToResponse(cat))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, "Cats fetched successfully", out)
}

// Create handles POST /v1/cat.
func (h *CatHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		respondMappedError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CatPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	rec, err := h.catStore.Create(r.Context(), req.Cat(identity.UserID))
	if err != nil {
		respondMappedError(w, r, err, "Failed to create cat")
		return
	}

	h.logger.Debug("cat created",
		slog.Int("cat_id", int(rec.ID)),
		slog.Int("user_id", int(identity.UserID)))
	shared.RespondWithJSON(w, r, http.StatusCreated, "Cat created successfully", CatRecordResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	})
}

// Update handles PUT /v1/cat/{id}. The body replaces all mutable fields.
func (h *CatHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r)
	if !ok {
		respondMappedError(w, r, domain.ErrUnauthorized, "")
		return
	}

	id, err := parsePathID(r)
	if err != nil {
		respondMappedError(w, r, err, "")
		return
	}

	var req CatPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	if _, err := h.catStore.GetByID(r.Context(), id); err != nil {
		respondMappedError(w, r, err, "Failed to update cat")
		return
	}

	rec, err := h.catStore.Update(r.Context(), id, req.Cat(identity.UserID))
	if err != nil {
		respondMappedError(w, r, err, "Failed to update cat")
		return
	}

	h.logger.Debug("cat updated", slog.Int("cat_id", int(rec.ID)))
	shared.RespondWithJSON(w, r, http.StatusOK, "Cat updated successfully", CatRecordResponse{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	})
}

// Delete handles DELETE /v1/cat/{id}. A missing id yields 404; a
// successful delete returns 200 with null data.
func (h *CatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		respondMappedError(w, r, err, "")
		return
	}

	if _, err := h.catStore.GetByID(r.Context(), id); err != nil {
		respondMappedError(w, r, err, "Failed to delete cat")
		return
	}

	if err := h.catStore.Delete(r.Context(), id); err != nil {
		respondMappedError(w, r, err, "Failed to delete cat")
		return
	}

	h.logger.Debug("cat deleted", slog.Int("cat_id", int(id)))
	shared.RespondWithJSON(w, r, http.StatusOK, "Cat deleted successfully", nil)
}

func parsePathID(r *http.Request) (int32, error) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}
	return int32(n), nil
}

// parseCatFilter decodes listing query parameters. Every parameter uses
// presence-then-parse: a present key with an unparsable value rejects
// the whole request, including an empty value on a typed parameter. The
// owned parameter must still be a boolean even though only its presence
// is applied.
func parseCatFilter(q url.Values) (domain.CatFilter, error) {
	filter := domain.DefaultCatFilter()

	if q.Has("id") {
		raw := q.Get("id")
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
		}
		id := int32(n)
		filter.ID = &id
	}
	if q.Has("limit") {
		raw := q.Get("limit")
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("%w: limit %q", domain.ErrValidation, raw)
		}
		filter.Limit = int32(n)
	}
	if q.Has("offset") {
		raw := q.Get("offset")
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return filter, fmt.Errorf("%w: offset %q", domain.ErrValidation, raw)
		}
		filter.Offset = int32(n)
	}
	if q.Has("search") {
		search := q.Get("search")
		filter.Search = &search
	}
	if q.Has("race") {
		race := q.Get("race")
		filter.Race = &race
	}
	if q.Has("sex") {
		sex := q.Get("sex")
		filter.Sex = &sex
	}
	if q.Has("ageInMonth") {
		age := q.Get("ageInMonth")
		filter.AgeInMonth = &age
	}
	if q.Has("hasMatched") {
		raw := q.Get("hasMatched")
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: hasMatched %q", domain.ErrValidation, raw)
		}
		filter.HasMatched = &b
	}
	if q.Has("owned") {
		raw := q.Get("owned")
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: owned %q", domain.ErrValidation, raw)
		}
		filter.Owned = &b
	}

	return filter, nil
}
