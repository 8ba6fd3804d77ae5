// Package share persists saved layer sets behind shareable links.
//
// A share is an id pointing at an encoded layers parameter value, so a
// link like /s/{id} reproduces the exact active layer set, inline
// definitions included. Three storage backends are provided:
//   - memory: in-memory storage for development/testing
//   - file: file-based storage for single-instance deployments
//   - mongo: MongoDB-backed storage for multi-instance deployments
package share

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/alansaviolobo/atlaskit/pkg/errors"
	"github.com/alansaviolobo/atlaskit/pkg/permalink"
)

// ErrNotFound is returned when a share does not exist.
var ErrNotFound = errors.New("share not found")

// Set is a saved layer set.
type Set struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Layers    string    `json:"layers" bson:"layers"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New creates a Set for the given encoded layers parameter value.
// The value must decode to at least one reference.
func New(name, layersParam string) (*Set, error) {
	if err := apperrors.ValidateShareName(name); err != nil {
		return nil, err
	}

	layersParam = strings.TrimSpace(layersParam)
	if len(permalink.Decode(layersParam)) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidReference, "layer list is empty")
	}

	now := time.Now().UTC()
	return &Set{
		ID:        uuid.NewString(),
		Name:      name,
		Layers:    layersParam,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// References decodes the saved layer list.
func (s *Set) References() []permalink.Reference {
	return permalink.Decode(s.Layers)
}

// Store is the interface for share storage backends.
type Store interface {
	// Get retrieves a share by id. Returns ErrNotFound when it does not
	// exist.
	Get(ctx context.Context, id string) (*Set, error)

	// Put stores a share, replacing any existing one with the same id
	// and bumping UpdatedAt.
	Put(ctx context.Context, set *Set) error

	// Delete removes a share. Deleting a missing share is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
