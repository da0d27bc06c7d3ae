package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/assay/pkg/validation"
)

type command struct {
	Name     *string  `json:"name" validate:"required"`
	Score    *float64 `json:"score" validate:"required"`
	Password string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Internal string   `json:"-"`
}

func ptr[T any](v T) *T { return &v }

func TestStructMissingPointersFail(t *testing.T) {
	err := validation.Struct(context.Background(), command{})
	require.Error(t, err)
	assert.Equal(t, "name is required; score is required", err.Error())
}

func TestStructZeroValuesArePresent(t *testing.T) {
	err := validation.Struct(context.Background(), command{
		Name:  ptr(""),
		Score: ptr(0.0),
	})
	assert.NoError(t, err)
}

func TestStructMin(t *testing.T) {
	err := validation.Struct(context.Background(), command{
		Name:     ptr("a"),
		Score:    ptr(1.0),
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 8 characters", err.Error())
}

func TestStructNonStructInput(t *testing.T) {
	assert.Error(t, validation.Struct(context.Background(), "not a struct"))
}

func TestStructMaxBytes(t *testing.T) {
	type secret struct {
		Value string `json:"value" validate:"maxbytes=8"`
	}

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"ascii at limit", "abcdefgh", true},
		{"ascii over limit", "abcdefghi", false},
		{"multibyte under rune count", "éééé", true},
		{"multibyte over byte count", "ééééé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(context.Background(), secret{Value: tt.value})
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "value must be at most 8 bytes", err.Error())
		})
	}
}
