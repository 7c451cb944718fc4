package postgres

import (
	"fmt"
	"strings"

	"github.com/BennoAlif/cats-social/internal/domain"
)

// queryBuilder folds an ordered list of present predicates into a
// statement plus a parallel argument vector. The base query ends in an
// always-true anchor (WHERE 1=1) so every predicate can be prefixed
// unconditionally with AND; values are always bound, never interpolated.
type queryBuilder struct {
	sb   strings.Builder
	args []any
}

func newQueryBuilder(base string) *queryBuilder {
	b := &queryBuilder{}
	b.sb.WriteString(base)
	return b
}

// And appends " AND <column> <op> $n" and binds value as $n.
func (b *queryBuilder) And(column, op string, value any) {
	b.args = append(b.args, value)
	fmt.Fprintf(&b.sb, " AND %s %s $%d", column, op, len(b.args))
}

// Bind appends the clause with a trailing placeholder for value.
// The clause must not contain placeholders of its own.
func (b *queryBuilder) Bind(clause string, value any) {
	b.args = append(b.args, value)
	fmt.Fprintf(&b.sb, "%s$%d", clause, len(b.args))
}

// Raw appends the clause verbatim. Only for fixed query text.
func (b *queryBuilder) Raw(clause string) {
	b.sb.WriteString(clause)
}

func (b *queryBuilder) SQL() string { return b.sb.String() }
func (b *queryBuilder) Args() []any { return b.args }

// buildCatListQuery translates a sparse cat filter into a parameterized
// search query. Predicates are applied in a fixed declared order; the
// ordering and pagination clauses are always appended, with the
// caller-supplied limit carrying no implicit upper cap.
func buildCatListQuery(f domain.CatFilter, callerID int32) (string, []any, error) {
	b := newQueryBuilder(
		`SELECT id, name, race, sex, age_in_month, description, img_urls, created_at, user_id
		 FROM cats WHERE 1=1`)

	if f.ID != nil && *f.ID > 0 {
		b.And("id", "=", *f.ID)
	}
	if f.Search != nil {
		b.And("name", "=", *f.Search)
	}
	if f.Race != nil {
		b.And("race", "=", *f.Race)
	}
	if f.Sex != nil {
		b.And("sex", "=", *f.Sex)
	}
	if f.AgeInMonth != nil {
		cmp, err := domain.ParseAgeComparison(*f.AgeInMonth)
		if err != nil {
			return "", nil, err
		}
		b.And("age_in_month", cmp.Operator, cmp.Value)
	}
	// Presence-only: any owned value restricts to the caller's own cats.
	if f.Owned != nil {
		b.And("user_id", "=", callerID)
	}

	b.Raw(" ORDER BY created_at DESC")
	b.Bind(" LIMIT ", f.Limit)
	b.Bind(" OFFSET ", f.Offset)

	return b.SQL(), b.Args(), nil
}

// buildUserLookupQuery translates a sparse user filter into a
// parameterized single-row lookup.
func buildUserLookupQuery(f domain.UserFilter) (string, []any) {
	b := newQueryBuilder(
		`SELECT id, name, email, password, created_at FROM users WHERE 1=1`)

	if f.ID > 0 {
		b.And("id", "=", f.ID)
	}
	if f.Email != "" {
		b.And("email", "=", f.Email)
	}
	if f.Name != "" {
		b.And("name", "=", f.Name)
	}

	b.Raw(" LIMIT 1")

	return b.SQL(), b.Args()
}
