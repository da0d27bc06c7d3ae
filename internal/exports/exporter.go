package exports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/formatting"
	"github.com/JaimeStill/assay/pkg/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type exporter struct {
	store       storage.System
	clients     ClientSource
	evaluations EvaluationSource
	clock       scoring.Clock
	logger      *slog.Logger
}

// New creates an export system writing to store.
func New(
	store storage.System,
	clients ClientSource,
	evaluations EvaluationSource,
	clock scoring.Clock,
	logger *slog.Logger,
) System {
	return &exporter{
		store:       store,
		clients:     clients,
		evaluations: evaluations,
		clock:       clock,
		logger:      logger.With("system", "exports"),
	}
}

func (e *exporter) Handler() *Handler {
	return NewHandler(e, e.logger)
}

func (e *exporter) Create(ctx context.Context) (*Export, error) {
	now := e.clock.Now()
	snap := Snapshot{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cs, err := e.clients.List(gctx)
		if err != nil {
			return fmt.Errorf("load clients: %w", err)
		}
		snap.Clients = cs
		return nil
	})
	g.Go(func() error {
		evals, err := e.evaluations.List(gctx)
		if err != nil {
			return fmt.Errorf("load evaluations: %w", err)
		}
		snap.Evaluations = evals
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	name := NameFor(now)
	key := Prefix + name

	exists, err := e.store.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	if err := e.store.Upload(ctx, key, bytes.NewReader(body), contentType); err != nil {
		return nil, err
	}

	e.logger.Info(
		"export created",
		"name", name,
		"clients", len(snap.Clients),
		"evaluations", len(snap.Evaluations),
		"size", formatting.FormatBytes(int64(len(body)), 1),
	)

	return &Export{
		Name:         name,
		Size:         int64(len(body)),
		LastModified: now,
	}, nil
}

func (e *exporter) List(ctx context.Context) ([]Export, error) {
	blobs, err := e.store.List(ctx, Prefix)
	if err != nil {
		return nil, err
	}

	out := make([]Export, len(blobs))
	for i, b := range blobs {
		out[i] = fromBlob(b)
	}
	return out, nil
}

func (e *exporter) Download(ctx context.Context, name string) (io.ReadCloser, error) {
	key, err := keyFor(name)
	if err != nil {
		return nil, err
	}

	body, err := e.store.Download(ctx, key)
	if err != nil {
		return nil, mapStorageError(err)
	}
	return body, nil
}

func (e *exporter) Delete(ctx context.Context, name string) error {
	key, err := keyFor(name)
	if err != nil {
		return err
	}

	if err := e.store.Delete(ctx, key); err != nil {
		return mapStorageError(err)
	}

	e.logger.Info("export deleted", "name", name)
	return nil
}

func mapStorageError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
