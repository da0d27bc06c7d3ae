package evaluations

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/metrics"
	"github.com/JaimeStill/assay/pkg/query"
	"github.com/JaimeStill/assay/pkg/repository"
)

type repo struct {
	db      *sql.DB
	logger  *slog.Logger
	clock   scoring.Clock
	metrics *metrics.Metrics
	maxBody int64
}

// New creates an evaluation repository implementing the System interface.
// The clock stamps creation and update instants; metrics may be nil.
func New(
	db *sql.DB,
	logger *slog.Logger,
	clock scoring.Clock,
	m *metrics.Metrics,
	maxBody int64,
) System {
	return &repo{
		db:      db,
		logger:  logger.With("system", "evaluations"),
		clock:   clock,
		metrics: m,
		maxBody: maxBody,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxBody)
}

func (r *repo) List(ctx context.Context) ([]Evaluation, error) {
	q := query.NewBuilder(projection).Build()

	evals, err := repository.QueryMany(ctx, r.db, q, nil, scanEvaluation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return evals, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvaluation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &e, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Evaluation, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	record := cmd.Evaluation(r.clock.Now())
	notes, categories, err := documents(record)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO evaluations(
			client_name, client_email, client_website,
			score, precise_score, total_score,
			tier, is_evaluation_finished, recommendation_notes,
			priority, last_evaluation, categories,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12::jsonb, $13, $14)
		RETURNING ` + projection.Returning()

	args := []any{
		record.ClientName, record.ClientEmail, record.ClientWebsite,
		record.Score, record.PreciseScore, record.TotalScore,
		record.Tier, record.IsEvaluationFinished, notes,
		record.Priority, record.LastEvaluation, categories,
		record.CreatedAt, record.UpdatedAt,
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Evaluation, error) {
		return repository.QueryOne(ctx, tx, q, args, scanEvaluation)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.metrics.EvaluationScored("create", string(e.Tier))
	r.logger.Info("evaluation created", "id", e.ID, "client", e.ClientName, "tier", e.Tier)
	return &e, nil
}

func (r *repo) UpdateCategories(
	ctx context.Context,
	id uuid.UUID,
	cmd UpdateCategoriesCommand,
) (*Evaluation, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	e, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Evaluation, error) {
		lockQ, lockArgs := query.NewBuilder(projection).BuildSingleForUpdate("ID", id)
		current, err := repository.QueryOne(ctx, tx, lockQ, lockArgs, scanEvaluation)
		if err != nil {
			return Evaluation{}, err
		}

		next := current.ApplyCategories(*cmd.Categories, r.clock.Now())
		notes, categories, err := documents(next)
		if err != nil {
			return Evaluation{}, err
		}

		updateQ := `
			UPDATE evaluations
			SET score = $1, precise_score = $2, tier = $3,
				is_evaluation_finished = $4, recommendation_notes = $5::jsonb,
				priority = $6, last_evaluation = $7, categories = $8::jsonb,
				updated_at = $9
			WHERE id = $10
			RETURNING ` + projection.Returning()

		args := []any{
			next.Score, next.PreciseScore, next.Tier,
			next.IsEvaluationFinished, notes,
			next.Priority, next.LastEvaluation, categories,
			next.UpdatedAt, id,
		}
		return repository.QueryOne(ctx, tx, updateQ, args, scanEvaluation)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.metrics.EvaluationScored("update", string(e.Tier))
	r.logger.Info(
		"evaluation categories updated",
		"id", e.ID,
		"categories", cmd.Categories.Present(),
		"score", e.Score,
		"tier", e.Tier,
		"priority", e.Priority,
	)
	return &e, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM evaluations WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("evaluation deleted", "id", id)
	return nil
}
