package storage_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/pkg/storage"
)

const azuriteConnString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(t *testing.T) storage.System {
	t.Helper()
	sys, err := storage.New(&storage.Config{
		ContainerName:    "assay",
		ConnectionString: azuriteConnString,
		MaxListSize:      100,
	}, discard())
	require.NoError(t, err)
	return sys
}

func TestNewReturnsSystem(t *testing.T) {
	sys := newSystem(t)
	assert.False(t, sys.Ready(), "not ready before the container is initialized")
}

func TestNewInvalidConnectionString(t *testing.T) {
	_, err := storage.New(&storage.Config{
		ContainerName:    "assay",
		ConnectionString: "not-a-connection-string",
	}, discard())
	assert.Error(t, err)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key  string
		want error
	}{
		{"exports/20261018T120000.000Z.json", nil},
		{"", storage.ErrEmptyKey},
		{"/exports/a.json", storage.ErrInvalidKey},
		{`exports\a.json`, storage.ErrInvalidKey},
		{"exports/../secrets", storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := storage.ValidateKey(tt.key)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKeyValidation(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"empty key", "", storage.ErrEmptyKey},
		{"path traversal", "exports/../secrets/key", storage.ErrInvalidKey},
		{"double dot in middle", "exports/..hidden.json", storage.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, sys.Upload(ctx, tt.key, bytes.NewReader(nil), "application/json"), tt.wantErr)

			_, err := sys.Download(ctx, tt.key)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.ErrorIs(t, sys.Delete(ctx, tt.key), tt.wantErr)

			_, err = sys.Exists(ctx, tt.key)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
