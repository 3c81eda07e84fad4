package minisite

import (
	"errors"
	"fmt"
	"regexp"

	minisiteRepo "ongkit/database/repository/minisite"
	organizationRepo "ongkit/database/repository/organization"
	"ongkit/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func (s *DefaultMiniSiteService) GetConfig(orgID string) (*models.MiniSiteConfig, error) {
	cfg, err := s.getOrCreate(orgID)
	if err != nil {
		return nil, err
	}
	return ApplyDefaults(cfg), nil
}

// getOrCreate fetches the configuration, creating it from defaults on first
// access. A lost race on creation falls back to re-reading the winner's
// document.
func (s *DefaultMiniSiteService) getOrCreate(orgID string) (*models.MiniSiteConfig, error) {
	cfg, err := s.Repo.GetByOrgID(orgID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, minisiteRepo.ErrNotFound) {
		return nil, err
	}

	org, err := s.Orgs.GetByID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization %s: %w", orgID, err)
	}
	cfg = NewDefaultConfig(org)
	if err := s.Repo.Create(cfg); err != nil {
		if existing, getErr := s.Repo.GetByOrgID(orgID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return cfg, nil
}

func (s *DefaultMiniSiteService) UpdateConfig(orgID string, raw map[string]any) (*models.MiniSiteConfig, error) {
	patch, err := NormalizePatch(raw)
	if err != nil {
		return nil, err
	}
	return s.applyPatch(orgID, patch)
}

func (s *DefaultMiniSiteService) UpdateEditorSection(orgID, editor string, raw map[string]any) (*models.MiniSiteConfig, error) {
	patch, err := NormalizePatch(raw)
	if err != nil {
		return nil, err
	}
	if err := restrictToEditor(editor, patch); err != nil {
		return nil, err
	}
	return s.applyPatch(orgID, patch)
}

func (s *DefaultMiniSiteService) applyPatch(orgID string, patch map[string]any) (*models.MiniSiteConfig, error) {
	// Ensure the document exists so editors can save before ever loading the
	// settings page, and so slug rules can be checked against current state.
	current, err := s.getOrCreate(orgID)
	if err != nil {
		return nil, err
	}

	if raw, present := patch["slug"]; present {
		slug, _ := raw.(string)
		if err := s.validateSlugChange(current, slug); err != nil {
			return nil, err
		}
	}
	if raw, present := patch["name"]; present {
		if name, _ := raw.(string); name == "" {
			return nil, validationErrorf("organization name cannot be empty")
		}
	}

	updated, err := s.Repo.ApplyPatch(orgID, patch)
	if err != nil {
		return nil, err
	}
	return ApplyDefaults(updated), nil
}

// validateSlugChange enforces slug shape, uniqueness and stability: once the
// site is published the slug is the public URL key and cannot change.
func (s *DefaultMiniSiteService) validateSlugChange(current *models.MiniSiteConfig, slug string) error {
	if slug == current.Slug {
		return nil
	}
	if current.Published {
		return validationErrorf("slug cannot change after publication")
	}
	if !slugPattern.MatchString(slug) {
		return validationErrorf("slug %q must contain only lowercase letters, digits and hyphens", slug)
	}
	taken, err := s.Repo.SlugTaken(slug, current.OrgID)
	if err != nil {
		return err
	}
	if taken {
		return validationErrorf("slug %q is already in use", slug)
	}
	return nil
}

func (s *DefaultMiniSiteService) ApplyAIResult(orgID, tool string, result map[string]any) (*models.MiniSiteConfig, error) {
	owned, ok := aiToolFields[tool]
	if !ok {
		return nil, validationErrorf("unknown AI tool %q", tool)
	}

	// Additive merge: write only fields the tool returned with a non-empty
	// value, so a partial AI response never erases manual edits.
	filtered := make(map[string]any)
	for key, value := range result {
		if !owned[key] {
			continue
		}
		if value == nil {
			continue
		}
		if s, isString := value.(string); isString && s == "" {
			continue
		}
		filtered[key] = value
	}
	if len(filtered) == 0 {
		return s.GetConfig(orgID)
	}
	return s.UpdateConfig(orgID, filtered)
}

func (s *DefaultMiniSiteService) PublicSite(slug string) (*models.MiniSiteConfig, *models.Organization, error) {
	cfg, err := s.Repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, minisiteRepo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !cfg.Published {
		return nil, nil, ErrNotFound
	}
	org, err := s.Orgs.GetByID(cfg.OrgID)
	if err != nil {
		if errors.Is(err, organizationRepo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if !org.Active {
		return nil, nil, ErrNotFound
	}
	return ApplyDefaults(cfg), org, nil
}
