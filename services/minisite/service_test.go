package minisite

import (
	"testing"
	"time"

	minisiteRepo "ongkit/database/repository/minisite"
	organizationRepo "ongkit/database/repository/organization"
	"ongkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeMiniSiteRepo applies patches the same way Mongo does: per supplied key,
// via a bson round-trip, leaving every other field untouched.
type fakeMiniSiteRepo struct {
	byOrg map[string]*models.MiniSiteConfig
}

func newFakeMiniSiteRepo() *fakeMiniSiteRepo {
	return &fakeMiniSiteRepo{byOrg: map[string]*models.MiniSiteConfig{}}
}

func (f *fakeMiniSiteRepo) GetByOrgID(orgID string) (*models.MiniSiteConfig, error) {
	cfg, ok := f.byOrg[orgID]
	if !ok {
		return nil, minisiteRepo.ErrNotFound
	}
	out := *cfg
	return &out, nil
}

func (f *fakeMiniSiteRepo) GetBySlug(slug string) (*models.MiniSiteConfig, error) {
	for _, cfg := range f.byOrg {
		if cfg.Slug == slug {
			out := *cfg
			return &out, nil
		}
	}
	return nil, minisiteRepo.ErrNotFound
}

func (f *fakeMiniSiteRepo) Create(cfg *models.MiniSiteConfig) error {
	stored := *cfg
	f.byOrg[cfg.OrgID] = &stored
	return nil
}

func (f *fakeMiniSiteRepo) ApplyPatch(orgID string, patch bson.M) (*models.MiniSiteConfig, error) {
	cfg, ok := f.byOrg[orgID]
	if !ok {
		return nil, minisiteRepo.ErrNotFound
	}
	raw, err := bson.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range patch {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now()
	merged, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var updated models.MiniSiteConfig
	if err := bson.Unmarshal(merged, &updated); err != nil {
		return nil, err
	}
	f.byOrg[orgID] = &updated
	out := updated
	return &out, nil
}

func (f *fakeMiniSiteRepo) SlugTaken(slug, excludeOrgID string) (bool, error) {
	for _, cfg := range f.byOrg {
		if cfg.Slug == slug && cfg.OrgID != excludeOrgID {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrgRepo struct {
	byID map[string]*models.Organization
}

func (f *fakeOrgRepo) GetByID(id string) (*models.Organization, error) {
	org, ok := f.byID[id]
	if !ok {
		return nil, organizationRepo.ErrNotFound
	}
	out := *org
	return &out, nil
}

func (f *fakeOrgRepo) GetBySlug(slug string) (*models.Organization, error) {
	for _, org := range f.byID {
		if org.Slug == slug {
			out := *org
			return &out, nil
		}
	}
	return nil, organizationRepo.ErrNotFound
}

func (f *fakeOrgRepo) Create(org *models.Organization) error {
	stored := *org
	f.byID[org.ID] = &stored
	return nil
}

func (f *fakeOrgRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := f.byID[id]; !ok {
		return organizationRepo.ErrNotFound
	}
	return nil
}

func (f *fakeOrgRepo) ListExpiring(cutoff time.Time) ([]models.Organization, error) {
	return nil, nil
}

func newTestService() (*DefaultMiniSiteService, *fakeMiniSiteRepo) {
	repo := newFakeMiniSiteRepo()
	orgs := &fakeOrgRepo{byID: map[string]*models.Organization{
		"org-1": {
			ID: "org-1", Name: "ONG Test", Slug: "ong-test", Active: true,
			Subscription: models.Subscription{Plan: models.PlanBasic, Status: models.SubscriptionActive},
			CreatedAt:    time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	return &DefaultMiniSiteService{Repo: repo, Orgs: orgs}, repo
}

func TestGetConfigCreatesDefaultsOnFirstAccess(t *testing.T) {
	svc, repo := newTestService()

	cfg, err := svc.GetConfig("org-1")
	require.NoError(t, err)

	assert.Equal(t, "ong-test", cfg.Slug)
	assert.Equal(t, "ONG Test", cfg.Name)
	assert.Equal(t, DefaultLegalRepRole, cfg.LegalRepRole)
	assert.Equal(t, DefaultPrimaryColor, cfg.PrimaryColor)
	assert.True(t, cfg.ShowAbout)
	assert.False(t, cfg.Published)
	assert.NotNil(t, cfg.FAQItems)

	_, err = repo.GetByOrgID("org-1")
	assert.NoError(t, err, "document persisted")
}

func TestUpdateConfigNonInterference(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{
		"teamMembers": []any{
			map[string]any{"name": "Ana Pop", "role": "Director"},
		},
	})
	require.NoError(t, err)

	// A later save touching only heroTitle must leave teamMembers alone.
	updated, err := svc.UpdateConfig("org-1", map[string]any{"heroTitle": "Împreună"})
	require.NoError(t, err)

	assert.Equal(t, "Împreună", updated.HeroTitle)
	require.Len(t, updated.TeamMembers, 1)
	assert.Equal(t, "Ana Pop", updated.TeamMembers[0].Name)
}

func TestUpdateConfigIdempotent(t *testing.T) {
	svc, _ := newTestService()

	patch := map[string]any{
		"heroTitle": "Salvează pădurea",
		"showFaq":   true,
		"faqItems":  []any{map[string]any{"itemId": "f-1", "question": "Q1", "answer": "A1"}},
	}
	first, err := svc.UpdateConfig("org-1", patch)
	require.NoError(t, err)
	second, err := svc.UpdateConfig("org-1", patch)
	require.NoError(t, err)

	// Same stored record either way, modulo the update timestamp.
	first.UpdatedAt = second.UpdatedAt
	assert.Equal(t, first, second)
}

func TestFAQRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{
		"faqItems": []any{map[string]any{"question": "Q1", "answer": "A1"}},
	})
	require.NoError(t, err)

	cfg, err := svc.GetConfig("org-1")
	require.NoError(t, err)

	require.Len(t, cfg.FAQItems, 1)
	assert.Equal(t, "Q1", cfg.FAQItems[0].Question)
	assert.Equal(t, "A1", cfg.FAQItems[0].Answer)
	assert.NotEmpty(t, cfg.FAQItems[0].ItemID, "list items get editing handles")
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultLegalRepRole, cfg.LegalRepRole)
	assert.True(t, cfg.ShowAbout)
}

func TestPresentEmptyClearsAbsentDoesNot(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{"aboutText": "Povestea noastră", "missionText": "Misiunea"})
	require.NoError(t, err)

	// aboutText present-but-empty clears it; missionText absent stays.
	updated, err := svc.UpdateConfig("org-1", map[string]any{"aboutText": ""})
	require.NoError(t, err)

	assert.Equal(t, "", updated.AboutText)
	assert.Equal(t, "Misiunea", updated.MissionText)
}

func TestUpdateConfigRejectsUnknownField(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{"heroTitel": "typo"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUpdateConfigRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{"name": ""})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCampaignNumberCoercion(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateConfig("org-1", map[string]any{
		"campaigns": []any{
			map[string]any{"title": "Împădurire", "goalAmount": "abc", "raisedAmount": "2500.50", "active": true},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Campaigns, 1)
	assert.Zero(t, updated.Campaigns[0].GoalAmount, "invalid amount coerces to zero")
	assert.InDelta(t, 2500.50, updated.Campaigns[0].RaisedAmount, 0.001)
}

func TestSlugRules(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.GetConfig("org-1")
	require.NoError(t, err)

	t.Run("invalid shape rejected", func(t *testing.T) {
		_, err := svc.UpdateConfig("org-1", map[string]any{"slug": "ONG Test!"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		require.NoError(t, repo.Create(&models.MiniSiteConfig{OrgID: "org-2", Slug: "alt-ong"}))
		_, err := svc.UpdateConfig("org-1", map[string]any{"slug": "alt-ong"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("change allowed before publication", func(t *testing.T) {
		updated, err := svc.UpdateConfig("org-1", map[string]any{"slug": "ong-test-nou"})
		require.NoError(t, err)
		assert.Equal(t, "ong-test-nou", updated.Slug)
	})

	t.Run("frozen after publication", func(t *testing.T) {
		_, err := svc.UpdateConfig("org-1", map[string]any{"published": true})
		require.NoError(t, err)
		_, err = svc.UpdateConfig("org-1", map[string]any{"slug": "altceva"})
		assert.True(t, IsValidationError(err))
	})
}

func TestEditorOwnership(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateEditorSection("org-1", EditorIdentity, map[string]any{"heroTitle": "X"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	updated, err := svc.UpdateEditorSection("org-1", EditorContent, map[string]any{"heroTitle": "X"})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.HeroTitle)

	_, err = svc.UpdateEditorSection("org-1", "marketing", map[string]any{"heroTitle": "X"})
	assert.True(t, IsValidationError(err))
}

func TestApplyAIResultIsAdditive(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateConfig("org-1", map[string]any{
		"heroTitle":       "Titlu manual",
		"heroDescription": "Descriere manuală",
	})
	require.NoError(t, err)

	// The tool returned only heroDescription plus noise: heroTitle survives,
	// empty and foreign keys are discarded.
	updated, err := svc.ApplyAIResult("org-1", "hero_copy", map[string]any{
		"heroDescription": "Descriere generată",
		"heroCtaText":     "",
		"aboutText":       "nu e al tău",
	})
	require.NoError(t, err)

	assert.Equal(t, "Titlu manual", updated.HeroTitle)
	assert.Equal(t, "Descriere generată", updated.HeroDescription)
	assert.Equal(t, DefaultHeroCTA, updated.HeroCTAText)
	assert.Equal(t, "", updated.AboutText)
}

func TestPublicSiteVisibility(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetConfig("org-1")
	require.NoError(t, err)

	t.Run("unpublished site is not found", func(t *testing.T) {
		_, _, err := svc.PublicSite("ong-test")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("published site resolves with its organization", func(t *testing.T) {
		_, err := svc.UpdateConfig("org-1", map[string]any{"published": true})
		require.NoError(t, err)

		cfg, org, err := svc.PublicSite("ong-test")
		require.NoError(t, err)
		assert.Equal(t, "org-1", cfg.OrgID)
		assert.Equal(t, "org-1", org.ID)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, _, err := svc.PublicSite("nimic")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
