package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/query"
	"github.com/JaimeStill/assay/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	tokens     *Tokens
	clock      scoring.Clock
	bcryptCost int
	maxBody    int64
}

// New creates a user repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	tokens *Tokens,
	clock scoring.Clock,
	bcryptCost int,
	maxBody int64,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "users"),
		tokens:     tokens,
		clock:      clock,
		bcryptCost: bcryptCost,
		maxBody:    maxBody,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxBody)
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), r.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := `
		INSERT INTO users(username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + projection.Returning()

	args := []any{cmd.Username, cmd.Email, string(hash), r.clock.Now()}

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, args, scanUser)
	})
	if err != nil {
		if constraint, ok := repository.UniqueConstraint(err); ok {
			r.logger.Warn("user conflict", "constraint", constraint)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID, "username", u.Username)
	return &u, nil
}

func (r *repo) Login(ctx context.Context, cmd LoginCommand) (*Token, error) {
	if err := cmd.Validate(ctx); err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection).BuildSingle("Username", cmd.Username)
	u, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		if errors.Is(repository.MapError(err, ErrNotFound, ErrDuplicate), ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		r.logger.Warn("login rejected", "username", cmd.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := r.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	r.logger.Info("user logged in", "id", u.ID)
	return &token, nil
}
