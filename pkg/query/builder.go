package query

import (
	"fmt"
	"strings"
)

// SortField represents a single column in an ORDER BY clause.
// Field is the logical field name (mapped via ProjectionMap).
type SortField struct {
	Field      string
	Descending bool
}

// Builder constructs SELECT statements over a projection.
type Builder struct {
	projection *ProjectionMap
	sort       []SortField
}

// NewBuilder creates a Builder for the given projection with optional sort fields.
// A builder without sort fields emits no ORDER BY and rows come back in storage order.
func NewBuilder(projection *ProjectionMap, sort ...SortField) *Builder {
	return &Builder{projection: projection, sort: sort}
}

// Build returns a SELECT over every row of the projection's table.
func (b *Builder) Build() string {
	return fmt.Sprintf(
		"SELECT %s FROM %s%s",
		b.projection.Columns(),
		b.projection.From(),
		b.buildOrderBy(),
	)
}

// BuildSingle returns a SELECT query for a single record by ID.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.From(),
		b.projection.Column(idField),
	)
	return sql, []any{id}
}

// BuildSingleForUpdate is BuildSingle with a row lock held until the
// surrounding transaction ends.
func (b *Builder) BuildSingleForUpdate(idField string, id any) (string, []any) {
	sql, args := b.BuildSingle(idField, id)
	return sql + " FOR UPDATE", args
}

func (b *Builder) buildOrderBy() string {
	if len(b.sort) == 0 {
		return ""
	}

	parts := make([]string, len(b.sort))
	for i, f := range b.sort {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", b.projection.Column(f.Field), dir)
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}
