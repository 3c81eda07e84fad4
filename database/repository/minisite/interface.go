package minisiteRepo

import (
	"errors"

	"ongkit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no configuration document exists.
var ErrNotFound = errors.New("mini-site configuration not found")

// MiniSiteRepository defines data access for the per-organization mini-site
// configuration document.
type MiniSiteRepository interface {
	// GetByOrgID retrieves the configuration for an organization.
	GetByOrgID(orgID string) (*models.MiniSiteConfig, error)
	// GetBySlug retrieves the configuration by its public slug.
	GetBySlug(slug string) (*models.MiniSiteConfig, error)
	// Create inserts a new configuration document.
	Create(cfg *models.MiniSiteConfig) error
	// ApplyPatch writes exactly the supplied keys with $set and returns the
	// updated document. Keys absent from the patch are never touched, so
	// concurrent saves to disjoint field sets both survive. Saves racing on
	// the same field are last-writer-wins; there is no record-level locking.
	ApplyPatch(orgID string, patch bson.M) (*models.MiniSiteConfig, error)
	// SlugTaken reports whether another organization already uses the slug.
	SlugTaken(slug, excludeOrgID string) (bool, error)
}
