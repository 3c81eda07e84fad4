package organizationRepo

import (
	"errors"
	"time"

	"ongkit/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no organization matches.
var ErrNotFound = errors.New("organization not found")

// OrganizationRepository defines data access for tenant organizations.
type OrganizationRepository interface {
	// GetByID retrieves an organization by its unique ID.
	GetByID(id string) (*models.Organization, error)
	// GetBySlug retrieves an organization by its public slug.
	GetBySlug(slug string) (*models.Organization, error)
	// Create inserts a new organization record.
	Create(org *models.Organization) error
	// UpdateWithDocument patches an organization with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// ListExpiring returns organizations with paid, still-active subscriptions
	// expiring before the cutoff that have not been reminded yet.
	ListExpiring(cutoff time.Time) ([]models.Organization, error)
}
