package exports

import (
	"context"
	"io"

	"github.com/JaimeStill/assay/internal/clients"
	"github.com/JaimeStill/assay/internal/evaluations"
)

// System defines the public contract for export operations.
type System interface {
	Handler() *Handler

	Create(ctx context.Context) (*Export, error)
	List(ctx context.Context) ([]Export, error)
	Download(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// ClientSource lists the clients included in a snapshot.
type ClientSource interface {
	List(ctx context.Context) ([]clients.Client, error)
}

// EvaluationSource lists the evaluations included in a snapshot.
type EvaluationSource interface {
	List(ctx context.Context) ([]evaluations.Evaluation, error)
}
