package clients

import "github.com/JaimeStill/assay/pkg/openapi"

var listOp = &openapi.Operation{
	Summary: "List clients",
	Responses: map[int]*openapi.Response{
		200: {
			Description: "Clients ordered by name",
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: openapi.ArrayOf("Client")},
			},
		},
		500: openapi.ResponseRef("InternalError"),
	},
}

var findOp = &openapi.Operation{
	Summary:    "Find client",
	Parameters: []*openapi.Parameter{openapi.PathParam("id", "Client ID")},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Client", "Client"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var createOp = &openapi.Operation{
	Summary:     "Register client",
	RequestBody: openapi.RequestBodyJSON("CreateClient", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Client registered", "ClientCreated"),
		400: openapi.ResponseRef("BadRequest"),
		409: openapi.ResponseRef("Conflict"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var deleteOp = &openapi.Operation{
	Summary:    "Delete client",
	Parameters: []*openapi.Parameter{openapi.PathParam("id", "Client ID")},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Client deleted", "Message"),
		400: openapi.ResponseRef("BadRequest"),
		404: openapi.ResponseRef("NotFound"),
		500: openapi.ResponseRef("InternalError"),
	},
}

// Schemas returns the component schemas referenced by client operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Client": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Format: "uuid"},
				"name":      {Type: "string"},
				"email":     {Type: "string"},
				"website":   {Type: "string"},
				"createdAt": {Type: "string", Format: "date-time"},
				"updatedAt": {Type: "string", Format: "date-time"},
			},
		},
		"CreateClient": {
			Type:     "object",
			Required: []string{"name", "email"},
			Properties: map[string]*openapi.Schema{
				"name":    {Type: "string"},
				"email":   {Type: "string", Description: "Unique contact address"},
				"website": {Type: "string"},
			},
		},
		"ClientCreated": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"msg":    {Type: "string"},
				"client": openapi.SchemaRef("Client"),
			},
		},
	}
}
