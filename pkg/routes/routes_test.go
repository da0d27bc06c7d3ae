package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/pkg/openapi"
	"github.com/JaimeStill/assay/pkg/routes"
)

func status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}

func testGroup() routes.Group {
	return routes.Group{
		Prefix: "/evaluations",
		Tags:   []string{"Evaluations"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: status(http.StatusOK), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: status(http.StatusOK)},
			{Method: "PUT", Pattern: "/{id}/categories", Handler: status(http.StatusAccepted), OpenAPI: &openapi.Operation{Summary: "Update", Tags: []string{"Scoring"}}},
		},
		Children: []routes.Group{
			{
				Prefix: "/export",
				Routes: []routes.Route{
					{Method: "POST", Pattern: "", Handler: status(http.StatusCreated), OpenAPI: &openapi.Operation{Summary: "Export"}},
				},
			},
		},
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, testGroup())

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list", "GET", "/evaluations", http.StatusOK},
		{"find", "GET", "/evaluations/123", http.StatusOK},
		{"update categories", "PUT", "/evaluations/123/categories", http.StatusAccepted},
		{"nested child", "POST", "/evaluations/export", http.StatusCreated},
		{"wrong method", "DELETE", "/evaluations/123/categories", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/clients", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDescribe(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	routes.Describe(spec, "/api", testGroup())

	list := spec.Paths["/api/evaluations"]
	require.NotNil(t, list)
	require.NotNil(t, list.Get)
	assert.Equal(t, []string{"Evaluations"}, list.Get.Tags, "group tags apply by default")

	update := spec.Paths["/api/evaluations/{id}/categories"]
	require.NotNil(t, update)
	assert.Equal(t, []string{"Scoring"}, update.Put.Tags, "operation tags win")

	assert.NotContains(t, spec.Paths, "/api/evaluations/{id}", "undocumented routes are skipped")

	export := spec.Paths["/api/evaluations/export"]
	require.NotNil(t, export)
	assert.NotNil(t, export.Post)
}

func TestRegisterGuarded(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	group := routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: status(http.StatusOK), Public: true},
			{Method: "GET", Pattern: "/me", Handler: status(http.StatusOK)},
		},
	}

	mux := http.NewServeMux()
	routes.RegisterGuarded(mux, deny, group)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDescribeMarksPublic(t *testing.T) {
	op := &openapi.Operation{Summary: "Login"}
	group := routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: status(http.StatusOK), OpenAPI: op, Public: true},
		},
	}

	spec := openapi.NewSpec("Test", "1.0.0")
	routes.Describe(spec, "", group)

	assert.True(t, spec.Paths["/auth/login"].Post.Public)
	assert.False(t, op.Public, "shared operation vars are copied, not mutated")
}
