package exports

import "github.com/JaimeStill/assay/pkg/openapi"

var nameParam = openapi.NamePathParam("name", "Export file name", "20261018T093000.000Z.json")

var createOp = &openapi.Operation{
	Summary:     "Create export",
	Description: "Writes a JSON snapshot of every client and evaluation to blob storage.",
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Export written", "Export"),
		409: openapi.ResponseRef("Conflict"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var listOp = &openapi.Operation{
	Summary: "List exports",
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Stored exports",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: openapi.ArrayOf("Export")},
			},
		},
		500: openapi.ResponseRef("InternalError"),
	},
}

var downloadOp = &openapi.Operation{
	Summary:    "Download export",
	Parameters: []*openapi.Parameter{nameParam},
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Snapshot document",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: &openapi.Schema{Type: "object"}},
			},
		},
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var deleteOp = &openapi.Operation{
	Summary:    "Delete export",
	Parameters: []*openapi.Parameter{nameParam},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Export deleted", "Message"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

// Schemas returns the component schemas referenced by export operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Export": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":         {Type: "string"},
				"size":         {Type: "integer", Format: "int64"},
				"lastModified": {Type: "string", Format: "date-time"},
			},
		},
	}
}
