// Package exports writes JSON snapshots of every client and evaluation
// to blob storage and serves them back.
package exports

import (
	"fmt"
	"strings"
	"time"

	"github.com/JaimeStill/assay/internal/clients"
	"github.com/JaimeStill/assay/internal/evaluations"
	"github.com/JaimeStill/assay/pkg/storage"
)

const (
	// Prefix is the blob key prefix under which snapshots are stored.
	Prefix      = "exports/"
	nameLayout  = "20060102T150405.000Z"
	contentType = "application/json"
)

// Snapshot is the document written for one export.
type Snapshot struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Clients     []clients.Client         `json:"clients"`
	Evaluations []evaluations.Evaluation `json:"evaluations"`
}

// Export describes a stored snapshot.
type Export struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// NameFor returns the snapshot name for an export taken at t.
func NameFor(t time.Time) string {
	return t.UTC().Format(nameLayout) + ".json"
}

func keyFor(name string) (string, error) {
	if strings.Contains(name, "/") || !strings.HasSuffix(name, ".json") {
		return "", ErrInvalidName
	}
	key := Prefix + name
	if err := storage.ValidateKey(key); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return key, nil
}

func fromBlob(b storage.BlobInfo) Export {
	return Export{
		Name:         strings.TrimPrefix(b.Name, Prefix),
		Size:         b.Size,
		LastModified: b.LastModified,
	}
}
