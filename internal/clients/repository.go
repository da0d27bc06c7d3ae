package clients

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/query"
	"github.com/JaimeStill/assay/pkg/repository"
)

type repo struct {
	db      *sql.DB
	logger  *slog.Logger
	clock   scoring.Clock
	maxBody int64
}

// New creates a client repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, clock scoring.Clock, maxBody int64) System {
	return &repo{
		db:      db,
		logger:  logger.With("system", "clients"),
		clock:   clock,
		maxBody: maxBody,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxBody)
}

func (r *repo) List(ctx context.Context) ([]Client, error) {
	q := query.NewBuilder(projection, defaultSort).Build()

	clients, err := repository.QueryMany(ctx, r.db, q, nil, scanClient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return clients, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Client, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanClient)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Client, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	q := `
		INSERT INTO clients(name, email, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + projection.Returning()

	args := []any{cmd.Name, cmd.Email, cmd.Website, now}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Client, error) {
		return repository.QueryOne(ctx, tx, q, args, scanClient)
	})
	if err != nil {
		if constraint, ok := repository.UniqueConstraint(err); ok {
			r.logger.Warn("client conflict", "constraint", constraint)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("client created", "id", c.ID, "name", c.Name)
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM clients WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("client deleted", "id", id)
	return nil
}
