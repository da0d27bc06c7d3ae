package query_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/assay/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "evaluations", "e").
		Project("id", "ID").
		Project("client_email", "ClientEmail").
		Project("created_at", "CreatedAt")
}

func TestProjectionMap(t *testing.T) {
	p := testProjection()

	assert.Equal(t, "public.evaluations", p.Table())
	assert.Equal(t, "public.evaluations e", p.From())
	assert.Equal(t, "e.id, e.client_email, e.created_at", p.Columns())
	assert.Equal(t, "id, client_email, created_at", p.Returning())
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "ClientEmail", "e.client_email"},
		{"mapped timestamp", "CreatedAt", "e.created_at"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Column(tt.viewName))
		})
	}
}

func TestBuildWithoutSortHasNoOrderBy(t *testing.T) {
	sql := query.NewBuilder(testProjection()).Build()
	assert.Equal(t, "SELECT e.id, e.client_email, e.created_at FROM public.evaluations e", sql)
}

func TestBuildSort(t *testing.T) {
	tests := []struct {
		name string
		sort []query.SortField
		want string
	}{
		{"ascending", []query.SortField{{Field: "ClientEmail"}}, " ORDER BY e.client_email ASC"},
		{"descending", []query.SortField{{Field: "CreatedAt", Descending: true}}, " ORDER BY e.created_at DESC"},
		{"multiple", []query.SortField{{Field: "ClientEmail"}, {Field: "ID", Descending: true}}, " ORDER BY e.client_email ASC, e.id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql := query.NewBuilder(testProjection(), tt.sort...).Build()
			assert.True(t, strings.HasSuffix(sql, tt.want), sql)
		})
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", 42)

	assert.Equal(t, "SELECT e.id, e.client_email, e.created_at FROM public.evaluations e WHERE e.id = $1", sql)
	assert.Equal(t, []any{42}, args)
}

func TestBuildSingleForUpdate(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingleForUpdate("ID", 42)

	assert.Equal(t, "SELECT e.id, e.client_email, e.created_at FROM public.evaluations e WHERE e.id = $1 FOR UPDATE", sql)
	assert.Equal(t, []any{42}, args)
}
