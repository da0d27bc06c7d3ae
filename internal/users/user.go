// Package users implements account registration and password login
// with signed bearer tokens.
package users

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/pkg/validation"
)

// User is a registered account. The password hash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterCommand carries a new account. Passwords longer than 72 bytes
// are rejected because bcrypt ignores everything past that.
type RegisterCommand struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// LoginCommand carries credentials to exchange for a token.
type LoginCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Token is the login response.
type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Validate reports missing or malformed fields as ErrValidation.
func (c RegisterCommand) Validate(ctx context.Context) error {
	return validate(ctx, c)
}

// Validate reports missing fields as ErrValidation.
func (c LoginCommand) Validate(ctx context.Context) error {
	return validate(ctx, c)
}

func validate(ctx context.Context, cmd any) error {
	if err := validation.Struct(ctx, cmd); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
