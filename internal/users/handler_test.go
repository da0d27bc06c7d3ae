package users_test

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
	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/internal/users"
	"github.com/JaimeStill/assay/pkg/routes"
)

// mockSystem stores users in memory and hashes with the minimum bcrypt cost.
type mockSystem struct {
	users  map[string]users.User
	tokens *users.Tokens
}

func newMockSystem() *mockSystem {
	return &mockSystem{
		users:  make(map[string]users.User),
		tokens: users.NewTokens("secret", "assay", time.Hour, scoring.FixedClock{T: issuedAt}),
	}
}

func (m *mockSystem) Handler() *users.Handler {
	return users.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)), 1024)
}

func (m *mockSystem) Register(ctx context.Context, cmd users.RegisterCommand) (*users.User, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}
	if _, ok := m.users[cmd.Username]; ok {
		return nil, users.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	u := users.User{ID: uuid.New(), Username: cmd.Username, Email: cmd.Email, PasswordHash: string(hash)}
	m.users[u.Username] = u
	return &u, nil
}

func (m *mockSystem) Login(ctx context.Context, cmd users.LoginCommand) (*users.Token, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	u, ok := m.users[cmd.Username]
	if !ok {
		return nil, users.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}
	tok, err := m.tokens.Issue(u.ID)
	return &tok, err
}

func post(sys users.System, path, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", path, strings.NewReader(body)))
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	sys := newMockSystem()

	reg := post(sys, "/auth/register", `{"username":"ada","email":"ada@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, reg.Code, reg.Body.String())
	assert.JSONEq(t, `{"msg":"User created successfully"}`, reg.Body.String())

	login := post(sys, "/auth/login", `{"username":"ada","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, login.Code, login.Body.String())

	var tok users.Token
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &tok))

	id, err := sys.tokens.Verify(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, sys.users["ada"].ID, id)
}

func TestRegisterDuplicate(t *testing.T) {
	sys := newMockSystem()
	body := `{"username":"ada","email":"ada@example.com","password":"correct horse"}`

	require.Equal(t, http.StatusCreated, post(sys, "/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, post(sys, "/auth/register", body).Code)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"username":"ada","email":"ada@example.com","password":"short"}`},
		{"missing email", `{"username":"ada","password":"correct horse"}`},
		{"bad email", `{"username":"ada","email":"ada","password":"correct horse"}`},
		{"malformed", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(newMockSystem(), "/auth/register", tt.body).Code)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	sys := newMockSystem()
	post(sys, "/auth/register", `{"username":"ada","email":"ada@example.com","password":"correct horse"}`)

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"ada","password":"battery staple"}`},
		{"unknown user", `{"username":"bob","password":"correct horse"}`},
	}

	assert.Equal(t, http.StatusBadRequest, post(sys, "/auth/login", `{"username":"ada"}`).Code)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(sys, "/auth/login", tt.body)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"invalid credentials"}`, rec.Body.String())
		})
	}
}

func TestUserJSONOmitsHash(t *testing.T) {
	out, err := json.Marshal(users.User{Username: "ada", PasswordHash: "$2a$10$..."})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "2a$10")
	assert.NotContains(t, string(out), "password")
}

func TestRegisterCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  users.RegisterCommand
		want string
	}{
		{"bad email", users.RegisterCommand{Username: "ada", Email: "nope", Password: "correct horse"}, "email must be a valid email address"},
		{"long password", users.RegisterCommand{Username: "ada", Email: "a@b.co", Password: strings.Repeat("x", 73)}, "password must be at most 72 bytes"},
		{"multibyte password", users.RegisterCommand{Username: "ada", Email: "a@b.co", Password: strings.Repeat("é", 40)}, "password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(context.Background())
			require.ErrorIs(t, err, users.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegisterMultibytePasswordIsBadRequest(t *testing.T) {
	sys := users.New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, scoring.FixedClock{T: issuedAt}, bcrypt.MinCost, 1024)

	_, err := sys.Register(context.Background(), users.RegisterCommand{
		Username: "ada",
		Email:    "ada@example.com",
		Password: strings.Repeat("é", 40),
	})
	require.ErrorIs(t, err, users.ErrValidation)
	assert.Equal(t, http.StatusBadRequest, users.MapHTTPStatus(err))

	body := `{"username":"ada","email":"ada@example.com","password":"` + strings.Repeat("é", 40) + `"}`
	assert.Equal(t, http.StatusBadRequest, post(sys, "/auth/register", body).Code)
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, users.MapHTTPStatus(users.ErrInvalidCredentials))
	assert.Equal(t, http.StatusUnauthorized, users.MapHTTPStatus(users.ErrInvalidToken))
	assert.Equal(t, http.StatusConflict, users.MapHTTPStatus(users.ErrDuplicate))
	assert.Equal(t, http.StatusBadRequest, users.MapHTTPStatus(users.ErrValidation))
	assert.Equal(t, http.StatusInternalServerError, users.MapHTTPStatus(assert.AnError))
}
