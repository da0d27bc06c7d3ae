package clients

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for client domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Client, error)
	Find(ctx context.Context, id uuid.UUID) (*Client, error)
	Create(ctx context.Context, cmd CreateCommand) (*Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
