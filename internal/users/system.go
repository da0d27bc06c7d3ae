package users

import "context"

// System defines the public contract for account operations.
type System interface {
	Handler() *Handler

	Register(ctx context.Context, cmd RegisterCommand) (*User, error)
	Login(ctx context.Context, cmd LoginCommand) (*Token, error)
}
