package users_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/internal/users"
)

var issuedAt = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func TestTokensRoundTrip(t *testing.T) {
	tokens := users.NewTokens("secret", "assay", time.Hour, scoring.FixedClock{T: issuedAt})
	id := uuid.New()

	tok, err := tokens.Issue(id)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), tok.ExpiresAt)

	got, err := tokens.Verify(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokensRejects(t *testing.T) {
	id := uuid.New()
	signer := users.NewTokens("secret", "assay", time.Hour, scoring.FixedClock{T: issuedAt})
	tok, err := signer.Issue(id)
	require.NoError(t, err)

	tests := []struct {
		name     string
		verifier *users.Tokens
		token    string
	}{
		{"expired", users.NewTokens("secret", "assay", time.Hour, scoring.FixedClock{T: issuedAt.Add(2 * time.Hour)}), tok.Token},
		{"wrong secret", users.NewTokens("other", "assay", time.Hour, scoring.FixedClock{T: issuedAt}), tok.Token},
		{"wrong issuer", users.NewTokens("secret", "someone-else", time.Hour, scoring.FixedClock{T: issuedAt}), tok.Token},
		{"garbage", signer, "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verifier.Verify(tt.token)
			assert.ErrorIs(t, err, users.ErrInvalidToken)
		})
	}
}
