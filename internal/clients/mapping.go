package clients

import (
	"github.com/JaimeStill/assay/pkg/query"
	"github.com/JaimeStill/assay/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "clients", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("website", "Website").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Name",
}

func scanClient(s repository.Scanner) (Client, error) {
	var c Client
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Website,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
