package infrastructure_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/internal/config"
	"github.com/JaimeStill/assay/internal/infrastructure"
)

func TestNewLoggerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{config.LogFormatText, "msg=hello"},
		{config.LogFormatJSON, `"msg":"hello"`},
		{config.LogFormatTint, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := infrastructure.NewLogger(&config.LogConfig{Level: "info", Format: tt.format}, &buf)

			logger.Info("hello", "k", "v")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := infrastructure.NewLogger(&config.LogConfig{Level: "warn", Format: config.LogFormatText}, &buf)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewWithoutStorage(t *testing.T) {
	t.Setenv("ASSAY_AUTH_TOKEN_SECRET", "secret")
	t.Setenv("ASSAY_DB_USER", "assay")
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.Storage.Enabled())

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	assert.Nil(t, infra.Storage)
	assert.NotNil(t, infra.Metrics)
	assert.NotNil(t, infra.Clock)
	assert.False(t, infra.Database.Ready(), "not ready before startup")
}
