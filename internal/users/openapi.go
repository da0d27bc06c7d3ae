package users

import "github.com/JaimeStill/assay/pkg/openapi"

var registerOp = &openapi.Operation{
	Summary:     "Register user",
	RequestBody: openapi.RequestBodyJSON("RegisterUser", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("User created", "Message"),
		400: openapi.ResponseRef("BadRequest"),
		409: openapi.ResponseRef("Conflict"),
		500: openapi.ResponseRef("InternalError"),
	},
}

var loginOp = &openapi.Operation{
	Summary:     "Log in",
	Description: "Exchanges a username and password for a signed bearer token.",
	RequestBody: openapi.RequestBodyJSON("Login", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Token issued", "Token"),
		400: openapi.ResponseRef("BadRequest"),
		401: openapi.ResponseRef("Unauthorized"),
		500: openapi.ResponseRef("InternalError"),
	},
}

// Schemas returns the component schemas referenced by auth operations.
func Schemas() map[string]*openapi.Schema {
	minPassword, maxPassword := 8, 72

	return map[string]*openapi.Schema{
		"RegisterUser": {
			Type:     "object",
			Required: []string{"username", "email", "password"},
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string"},
				"email":    {Type: "string", Format: "email"},
				"password": {
					Type:        "string",
					Format:      "password",
					Description: "At most 72 bytes once UTF-8 encoded.",
					MinLength:   &minPassword,
					MaxLength:   &maxPassword,
				},
			},
		},
		"Login": {
			Type:     "object",
			Required: []string{"username", "password"},
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string"},
				"password": {Type: "string", Format: "password"},
			},
		},
		"Token": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"token":     {Type: "string", Description: "HS256 bearer token"},
				"expiresAt": {Type: "string", Format: "date-time"},
			},
		},
	}
}
