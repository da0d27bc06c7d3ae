package clients_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/internal/clients"
	"github.com/JaimeStill/assay/pkg/routes"
)

type mockSystem struct {
	clients map[uuid.UUID]clients.Client
	err     error
}

func newMockSystem() *mockSystem {
	return &mockSystem{clients: make(map[uuid.UUID]clients.Client)}
}

func (m *mockSystem) Handler() *clients.Handler {
	return clients.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
}

func (m *mockSystem) List(ctx context.Context) ([]clients.Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]clients.Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*clients.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, clients.ErrNotFound
	}
	return &c, nil
}

func (m *mockSystem) Create(ctx context.Context, cmd clients.CreateCommand) (*clients.Client, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}
	for _, c := range m.clients {
		if c.Email == cmd.Email {
			return nil, clients.ErrDuplicate
		}
	}

	c := clients.Client{
		ID:        uuid.New(),
		Name:      cmd.Name,
		Email:     cmd.Email,
		Website:   cmd.Website,
		CreatedAt: time.Now(),
	}
	m.clients[c.ID] = c
	return &c, nil
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.clients[id]; !ok {
		return clients.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

func serve(sys clients.System, method, path, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"name":"Acme","email":"ops@acme.test","website":"https://acme.test"}`, http.StatusCreated},
		{"no website", `{"name":"Globex","email":"hi@globex.test"}`, http.StatusCreated},
		{"missing name", `{"email":"x@y.test"}`, http.StatusBadRequest},
		{"empty email", `{"name":"Acme","email":""}`, http.StatusBadRequest},
		{"malformed", `{"name":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newMockSystem(), "POST", "/clients", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateResponseBody(t *testing.T) {
	rec := serve(newMockSystem(), "POST", "/clients", `{"name":"Acme","email":"ops@acme.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp clients.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Client added successfully!", resp.Msg)
	require.NotNil(t, resp.Client)
	assert.Equal(t, "Acme", resp.Client.Name)
	assert.Nil(t, resp.Client.Website)
}

func TestCreateDuplicateEmail(t *testing.T) {
	sys := newMockSystem()
	body := `{"name":"Acme","email":"ops@acme.test"}`

	require.Equal(t, http.StatusCreated, serve(sys, "POST", "/clients", body).Code)

	rec := serve(sys, "POST", "/clients", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"client email already exists"}`, rec.Body.String())
}

func TestFindAndDelete(t *testing.T) {
	sys := newMockSystem()
	c, err := sys.Create(context.Background(), clients.CreateCommand{Name: "Acme", Email: "ops@acme.test"})
	require.NoError(t, err)
	path := "/clients/" + c.ID.String()

	assert.Equal(t, http.StatusOK, serve(sys, "GET", path, "").Code)
	bad := serve(sys, "GET", "/clients/nope", "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.JSONEq(t, `{"error":"invalid client id"}`, bad.Body.String())

	del := serve(sys, "DELETE", path, "")
	require.Equal(t, http.StatusOK, del.Code)
	assert.JSONEq(t, `{"msg":"Client deleted successfully!"}`, del.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(sys, "DELETE", path, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(sys, "GET", path, "").Code)
}

func TestListFailure(t *testing.T) {
	sys := newMockSystem()
	sys.err = assert.AnError

	rec := serve(sys, "GET", "/clients", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, clients.MapHTTPStatus(clients.ErrNotFound))
	assert.Equal(t, http.StatusConflict, clients.MapHTTPStatus(clients.ErrDuplicate))
	assert.Equal(t, http.StatusBadRequest, clients.MapHTTPStatus(clients.ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, clients.MapHTTPStatus(assert.AnError))
}
