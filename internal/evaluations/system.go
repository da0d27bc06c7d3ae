package evaluations

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for evaluation domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Evaluation, error)
	Find(ctx context.Context, id uuid.UUID) (*Evaluation, error)
	Create(ctx context.Context, cmd CreateCommand) (*Evaluation, error)
	UpdateCategories(ctx context.Context, id uuid.UUID, cmd UpdateCategoriesCommand) (*Evaluation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
