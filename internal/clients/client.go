// Package clients implements the client registry: the companies that
// evaluations are recorded against.
package clients

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/pkg/validation"
)

// Client is a registered company.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Website   *string   `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommand carries the data needed to register a client.
type CreateCommand struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required"`
	Website *string `json:"website"`
}

// Validate rejects a command with an empty name or email.
func (c CreateCommand) Validate(ctx context.Context) error {
	if err := validation.Struct(ctx, c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
