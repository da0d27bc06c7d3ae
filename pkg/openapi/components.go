package openapi

import "maps"

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}

// NewComponents creates Components with the shared error and message
// schemas and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
			"Message": {
				Type:     "object",
				Required: []string{"msg"},
				Properties: map[string]*Schema{
					"msg": {Type: "string", Description: "Acknowledgement message"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":    errorResponse("Invalid request"),
			"Unauthorized":  errorResponse("Invalid credentials"),
			"NotFound":      errorResponse("Resource not found"),
			"Conflict":      errorResponse("Resource conflict"),
			"InternalError": errorResponse("Storage or server failure"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

// AddSecurityScheme registers scheme under name.
func (c *Components) AddSecurityScheme(name string, scheme *SecurityScheme) {
	if c.SecuritySchemes == nil {
		c.SecuritySchemes = make(map[string]*SecurityScheme)
	}
	c.SecuritySchemes[name] = scheme
}
