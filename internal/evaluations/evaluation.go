// Package evaluations implements the client evaluation domain: creating
// scored evaluations, merging category updates and rescoring them,
// and listing or removing stored records.
package evaluations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/validation"
)

// Evaluation is one scored client assessment.
type Evaluation struct {
	ID                   uuid.UUID          `json:"id"`
	ClientName           string             `json:"clientName"`
	ClientEmail          string             `json:"clientEmail"`
	ClientWebsite        *string            `json:"clientWebsite,omitempty"`
	Score                float64            `json:"score"`
	PreciseScore         float64            `json:"preciseScore"`
	TotalScore           float64            `json:"totalScore"`
	Tier                 scoring.Tier       `json:"tier"`
	IsEvaluationFinished bool               `json:"isEvaluationFinished"`
	RecommendationNotes  []string           `json:"recommendationNotes"`
	Priority             scoring.Priority   `json:"priority"`
	LastEvaluation       string             `json:"lastEvaluation"`
	Categories           scoring.Categories `json:"categories"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// CreateCommand carries a new evaluation. Required fields are pointers so
// that a missing key is distinguishable from an empty string or zero.
type CreateCommand struct {
	ClientName    *string            `json:"clientName" validate:"required"`
	ClientEmail   *string            `json:"clientEmail" validate:"required"`
	ClientWebsite *string            `json:"clientWebsite"`
	Score         *float64           `json:"score" validate:"required"`
	PreciseScore  *float64           `json:"preciseScore" validate:"required"`
	TotalScore    *float64           `json:"totalScore" validate:"required"`
	Categories    scoring.Categories `json:"categories"`
}

// Validate reports every missing required field as ErrValidation.
func (c CreateCommand) Validate(ctx context.Context) error {
	if err := validation.Struct(ctx, c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Evaluation derives the record to persist for c as of now. The caller's
// scores are stored as given; tier and notes follow from Score.
func (c CreateCommand) Evaluation(now time.Time) Evaluation {
	assessment := scoring.Assess(*c.Score)

	return Evaluation{
		ClientName:          *c.ClientName,
		ClientEmail:         *c.ClientEmail,
		ClientWebsite:       c.ClientWebsite,
		Score:               *c.Score,
		PreciseScore:        *c.PreciseScore,
		TotalScore:          *c.TotalScore,
		Tier:                assessment.Tier,
		RecommendationNotes: assessment.RecommendationNotes,
		Priority:            scoring.PriorityFor(now, now),
		LastEvaluation:      scoring.DateStamp(now),
		Categories:          scoring.Categories{}.Merge(c.Categories),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// UpdateCategoriesCommand carries a partial category mapping.
type UpdateCategoriesCommand struct {
	Categories *scoring.Categories `json:"categories" validate:"required"`
}

// Validate rejects a command without a categories object.
func (c UpdateCategoriesCommand) Validate(ctx context.Context) error {
	if err := validation.Struct(ctx, c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ApplyCategories merges partial into e and rescores the whole merged
// mapping. The result is always marked finished. TotalScore is left as
// supplied at creation.
func (e Evaluation) ApplyCategories(partial scoring.Categories, now time.Time) Evaluation {
	out := e
	out.Categories = e.Categories.Merge(partial)
	out.Score, out.PreciseScore = scoring.Aggregate(out.Categories)

	assessment := scoring.Assess(out.Score)
	out.Tier = assessment.Tier
	out.RecommendationNotes = assessment.RecommendationNotes

	out.IsEvaluationFinished = true
	out.LastEvaluation = scoring.DateStamp(now)
	out.Priority = scoring.PriorityFor(e.CreatedAt, now)
	out.UpdatedAt = now
	return out
}
