package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennoAlif/cats-social/internal/domain"
)

func int32Ptr(v int32) *int32 { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestBuildCatListQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		filter       domain.CatFilter
		callerID     int32
		wantContains []string
		wantSuffix   string
		wantArgs     []any
	}{
		{
			name:       "no predicates",
			filter:     domain.DefaultCatFilter(),
			callerID:   1,
			wantSuffix: " ORDER BY created_at DESC LIMIT $1 OFFSET $2",
			wantArgs:   []any{int32(5), int32(0)},
		},
		{
			name: "all predicates in declared order",
			filter: domain.CatFilter{
				ID:         int32Ptr(7),
				Search:     strPtr("Whiskers"),
				Race:       strPtr("Bengal"),
				Sex:        strPtr("female"),
				AgeInMonth: strPtr(">12"),
				Owned:      boolPtr(true),
				Limit:      10,
				Offset:     20,
			},
			callerID: 99,
			wantContains: []string{
				" AND id = $1",
				" AND name = $2",
				" AND race = $3",
				" AND sex = $4",
				" AND age_in_month > $5",
				" AND user_id = $6",
			},
			wantSuffix: " ORDER BY created_at DESC LIMIT $7 OFFSET $8",
			wantArgs: []any{
				int32(7), "Whiskers", "Bengal", "female", int32(12), int32(99),
				int32(10), int32(20),
			},
		},
		{
			name: "zero id is treated as absent",
			filter: domain.CatFilter{
				ID:    int32Ptr(0),
				Limit: 5,
			},
			callerID:   1,
			wantSuffix: " ORDER BY created_at DESC LIMIT $1 OFFSET $2",
			wantArgs:   []any{int32(5), int32(0)},
		},
		{
			name: "owned false still restricts to the caller",
			filter: domain.CatFilter{
				Owned: boolPtr(false),
				Limit: 5,
			},
			callerID: 42,
			wantContains: []string{
				" AND user_id = $1",
			},
			wantSuffix: " ORDER BY created_at DESC LIMIT $2 OFFSET $3",
			wantArgs:   []any{int32(42), int32(5), int32(0)},
		},
		{
			name: "exact age match",
			filter: domain.CatFilter{
				AgeInMonth: strPtr("24"),
				Limit:      5,
			},
			callerID: 1,
			wantContains: []string{
				" AND age_in_month = $1",
			},
			wantSuffix: " ORDER BY created_at DESC LIMIT $2 OFFSET $3",
			wantArgs:   []any{int32(24), int32(5), int32(0)},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := buildCatListQuery(tc.filter, tc.callerID)
			require.NoError(t, err)

			assert.Contains(t, sql, "FROM cats WHERE 1=1")
			for _, fragment := range tc.wantContains {
				assert.Contains(t, sql, fragment)
			}
			assert.True(t, strings.HasSuffix(sql, tc.wantSuffix),
				"query %q does not end with %q", sql, tc.wantSuffix)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildCatListQueryInvalidAge(t *testing.T) {
	t.Parallel()

	filter := domain.DefaultCatFilter()
	filter.AgeInMonth = strPtr("twelve")

	_, _, err := buildCatListQuery(filter, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidAgeFilter)
}

func TestBuildUserLookupQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filter     domain.UserFilter
		wantSuffix string
		wantArgs   []any
	}{
		{
			name:       "by email",
			filter:     domain.UserFilter{Email: "owner@example.com"},
			wantSuffix: " AND email = $1 LIMIT 1",
			wantArgs:   []any{"owner@example.com"},
		},
		{
			name:       "by id",
			filter:     domain.UserFilter{ID: 3},
			wantSuffix: " AND id = $1 LIMIT 1",
			wantArgs:   []any{int32(3)},
		},
		{
			name:       "no predicates",
			filter:     domain.UserFilter{},
			wantSuffix: "WHERE 1=1 LIMIT 1",
			wantArgs:   nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sql, args := buildUserLookupQuery(tc.filter)
			assert.True(t, strings.HasSuffix(sql, tc.wantSuffix),
				"query %q does not end with %q", sql, tc.wantSuffix)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
