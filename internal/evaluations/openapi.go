package evaluations

import (
	"reflect"
	"strings"

	"github.com/JaimeStill/assay/internal/scoring"
	"github.com/JaimeStill/assay/pkg/openapi"
)

var idParam = openapi.PathParam("id", "Evaluation ID")

var listOp = &openapi.Operation{
	Summary:     "List evaluations",
	Description: "Returns every stored evaluation in storage order.",
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Evaluations",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: openapi.ArrayOf("Evaluation")},
			},
		},
		500: openapi.ResponseRef("InternalError"),
	},
}

var findOp = &openapi.Operation{
	Summary:    "Find evaluation",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Evaluation", "Evaluation"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var createOp = &openapi.Operation{
	Summary:     "Create evaluation",
	Description: "Stores the supplied scores and derives tier, recommendation notes, priority, and last evaluation date.",
	RequestBody: openapi.RequestBodyJSON("CreateEvaluation", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Evaluation created", "EvaluationCreated"),
		400: openapi.ResponseRef("BadRequest"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var updateCategoriesOp = &openapi.Operation{
	Summary:     "Update evaluation categories",
	Description: "Merges a partial category mapping, recomputes score and precise score over all categories, and marks the evaluation finished.",
	Parameters:  []*openapi.Parameter{idParam},
	RequestBody: openapi.RequestBodyJSON("UpdateCategories", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Evaluation rescored", "EvaluationUpdated"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var deleteOp = &openapi.Operation{
	Summary:    "Delete evaluation",
	Parameters: []*openapi.Parameter{idParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Evaluation deleted", "Message"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

// Schemas returns the component schemas referenced by evaluation operations.
func Schemas() map[string]*openapi.Schema {
	categories := make(map[string]*openapi.Schema, len(scoring.Names))
	for _, name := range scoring.Names {
		categories[name] = openapi.SchemaRef("Category")
	}

	tiers := []any{scoring.Tier1, scoring.Tier2, scoring.Tier3, scoring.Tier4}
	priorities := []any{
		scoring.PriorityHigh,
		scoring.PriorityMedium,
		scoring.PriorityLow,
		scoring.PriorityUpdate,
		scoring.PriorityUnknown,
	}

	return map[string]*openapi.Schema{
		"Category": {
			Type:        "object",
			Description: "Optional sub-metrics and scores of one category",
			Properties:  categoryProperties(),
		},
		"Categories": {
			Type:       "object",
			Properties: categories,
		},
		"Evaluation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                   {Type: "string", Format: "uuid"},
				"clientName":           {Type: "string"},
				"clientEmail":          {Type: "string"},
				"clientWebsite":        {Type: "string"},
				"score":                openapi.Number("Aggregate score"),
				"preciseScore":         openapi.Number("Aggregate precise score"),
				"totalScore":           openapi.Number("Caller supplied total"),
				"tier":                 {Type: "string", Enum: tiers},
				"isEvaluationFinished": {Type: "boolean"},
				"recommendationNotes":  {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"priority":             {Type: "string", Enum: priorities},
				"lastEvaluation":       {Type: "string", Format: "date"},
				"categories":           openapi.SchemaRef("Categories"),
				"createdAt":            {Type: "string", Format: "date-time"},
				"updatedAt":            {Type: "string", Format: "date-time"},
			},
		},
		"CreateEvaluation": {
			Type:     "object",
			Required: []string{"clientName", "clientEmail", "score", "preciseScore", "totalScore"},
			Properties: map[string]*openapi.Schema{
				"clientName":    {Type: "string"},
				"clientEmail":   {Type: "string"},
				"clientWebsite": {Type: "string"},
				"score":         openapi.Number("Aggregate score, stored as given"),
				"preciseScore":  openapi.Number("Aggregate precise score, stored as given"),
				"totalScore":    openapi.Number("Total score, stored as given"),
				"categories":    openapi.SchemaRef("Categories"),
			},
		},
		"UpdateCategories": {
			Type:     "object",
			Required: []string{"categories"},
			Properties: map[string]*openapi.Schema{
				"categories": openapi.SchemaRef("Categories"),
			},
		},
		"EvaluationCreated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"msg":        {Type: "string"},
				"evaluation": openapi.SchemaRef("Evaluation"),
			},
		},
		"EvaluationUpdated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"msg":               {Type: "string"},
				"updatedEvaluation": openapi.SchemaRef("Evaluation"),
			},
		},
	}
}

func categoryProperties() map[string]*openapi.Schema {
	t := reflect.TypeFor[scoring.Category]()
	props := make(map[string]*openapi.Schema, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		props[name] = &openapi.Schema{Type: "number"}
	}
	return props
}
