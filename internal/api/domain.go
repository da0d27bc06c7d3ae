package api

import (
	"github.com/JaimeStill/assay/internal/clients"
	"github.com/JaimeStill/assay/internal/evaluations"
	"github.com/JaimeStill/assay/internal/exports"
	"github.com/JaimeStill/assay/internal/users"
)

// Domain holds all domain systems that comprise the API.
// Exports is nil when storage is not configured.
type Domain struct {
	Clients     clients.System
	Evaluations evaluations.System
	Users       users.System
	Exports     exports.System
	Tokens      *users.Tokens
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	clientsSystem := clients.New(
		db,
		runtime.Logger,
		runtime.Clock,
		runtime.MaxBodySize,
	)

	evaluationsSystem := evaluations.New(
		db,
		runtime.Logger,
		runtime.Clock,
		runtime.Metrics,
		runtime.MaxBodySize,
	)

	tokens := users.NewTokens(
		runtime.Auth.TokenSecret,
		runtime.Auth.Issuer,
		runtime.Auth.TokenTTLDuration(),
		runtime.Clock,
	)

	usersSystem := users.New(
		db,
		runtime.Logger,
		tokens,
		runtime.Clock,
		runtime.Auth.BcryptCost,
		runtime.MaxBodySize,
	)

	domain := &Domain{
		Clients:     clientsSystem,
		Evaluations: evaluationsSystem,
		Users:       usersSystem,
		Tokens:      tokens,
	}

	if runtime.Storage != nil {
		domain.Exports = exports.New(
			runtime.Storage,
			clientsSystem,
			evaluationsSystem,
			runtime.Clock,
			runtime.Logger,
		)
	}

	return domain
}
