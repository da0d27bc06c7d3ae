package evaluations

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/JaimeStill/assay/pkg/query"
	"github.com/JaimeStill/assay/pkg/repository"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var projection = query.
	NewProjectionMap("public", "evaluations", "e").
	Project("id", "ID").
	Project("client_name", "ClientName").
	Project("client_email", "ClientEmail").
	Project("client_website", "ClientWebsite").
	Project("score", "Score").
	Project("precise_score", "PreciseScore").
	Project("total_score", "TotalScore").
	Project("tier", "Tier").
	Project("is_evaluation_finished", "IsEvaluationFinished").
	Project("recommendation_notes", "RecommendationNotes").
	Project("priority", "Priority").
	Project("last_evaluation", "LastEvaluation").
	Project("categories", "Categories").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

func scanEvaluation(s repository.Scanner) (Evaluation, error) {
	var (
		e          Evaluation
		notes      []byte
		categories []byte
	)

	err := s.Scan(
		&e.ID,
		&e.ClientName,
		&e.ClientEmail,
		&e.ClientWebsite,
		&e.Score,
		&e.PreciseScore,
		&e.TotalScore,
		&e.Tier,
		&e.IsEvaluationFinished,
		&notes,
		&e.Priority,
		&e.LastEvaluation,
		&categories,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return e, err
	}

	if err := json.Unmarshal(notes, &e.RecommendationNotes); err != nil {
		return e, fmt.Errorf("decode recommendation notes: %w", err)
	}
	if e.RecommendationNotes == nil {
		e.RecommendationNotes = []string{}
	}
	if err := json.Unmarshal(categories, &e.Categories); err != nil {
		return e, fmt.Errorf("decode categories: %w", err)
	}
	return e, nil
}

// documents returns the JSONB columns of e as strings.
func documents(e Evaluation) (notes, categories string, err error) {
	n, err := json.Marshal(e.RecommendationNotes)
	if err != nil {
		return "", "", fmt.Errorf("encode recommendation notes: %w", err)
	}
	c, err := json.Marshal(e.Categories)
	if err != nil {
		return "", "", fmt.Errorf("encode categories: %w", err)
	}
	return string(n), string(c), nil
}
