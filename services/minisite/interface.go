package minisite

import (
	minisiteRepo "ongkit/database/repository/minisite"
	organizationRepo "ongkit/database/repository/organization"
	"ongkit/models"
)

// MiniSiteService is the dashboard-facing API over the configuration store.
type MiniSiteService interface {
	// GetConfig returns the organization's configuration, creating it with
	// defaults on first access.
	GetConfig(orgID string) (*models.MiniSiteConfig, error)
	// UpdateConfig applies a generic partial update. Only the supplied keys
	// are written.
	UpdateConfig(orgID string, raw map[string]any) (*models.MiniSiteConfig, error)
	// UpdateEditorSection applies a partial update restricted to one editor
	// surface's owned fields.
	UpdateEditorSection(orgID, editor string, raw map[string]any) (*models.MiniSiteConfig, error)
	// ApplyAIResult additively persists an AI tool's returned fields: keys
	// the tool did not return, and keys it returned empty, are not touched.
	ApplyAIResult(orgID, tool string, result map[string]any) (*models.MiniSiteConfig, error)
	// PublicSite resolves a published mini-site and its organization by slug.
	PublicSite(slug string) (*models.MiniSiteConfig, *models.Organization, error)
}

// DefaultMiniSiteService is the production implementation.
type DefaultMiniSiteService struct {
	Repo minisiteRepo.MiniSiteRepository
	Orgs organizationRepo.OrganizationRepository
}
