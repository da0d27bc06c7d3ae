// Package routes declares handler groups and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/assay/pkg/openapi"
)

// Group organizes routes under a common prefix with shared tags.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	RegisterGuarded(mux, nil, groups...)
}

// RegisterGuarded is Register with guard wrapped around every non-public
// route. A nil guard leaves every route open.
func RegisterGuarded(mux *http.ServeMux, guard func(http.Handler) http.Handler, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group, guard)
	}
}

// Describe adds every documented route in groups to spec under basePath.
// Routes without an OpenAPI operation are skipped.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, basePath, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group, guard func(http.Handler) http.Handler) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.Handle(route.Method+" "+fullPrefix+route.Pattern, route.handler(guard))
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child, guard)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		op.Public = route.Public
		spec.AddOperation(route.Method, fullPrefix+route.Pattern, &op)
	}
	for _, child := range group.Children {
		describeGroup(spec, fullPrefix, child)
	}
}
