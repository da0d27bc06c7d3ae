package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/assay/pkg/middleware"
)

// Module serves a single-level path prefix (e.g. "/api", "/docs"). Requests
// reach the inner router with the prefix removed, wrapped by the module's
// own middleware chain.
type Module struct {
	prefix string
	router http.Handler
	chain  middleware.Chain
}

// New creates a Module for prefix. It panics on an empty, relative, or
// multi-level prefix since modules are wired once at startup.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, router: router}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's chain.
func (m *Module) Use(fns ...middleware.Func) {
	m.chain.Use(fns...)
}

// Handler returns the inner router wrapped with the module's chain.
// Paths seen by the handler are relative to the module prefix.
func (m *Module) Handler() http.Handler {
	return m.chain.Then(m.router)
}

// ServeHTTP strips the prefix and dispatches to Handler.
func (m *Module) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path, _ := strings.CutPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	r := new(http.Request)
	*r = *req
	u := *req.URL
	u.Path = path
	u.RawPath = ""
	r.URL = &u
	return r
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix cannot be empty")
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("module prefix must be single-level sub-path: %s", prefix)
	}
	return nil
}
