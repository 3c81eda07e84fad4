package render

import (
	"html/template"
	"testing"
	"time"

	"ongkit/models"
	"ongkit/services/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFixture(planName string, expiresAt *time.Time) (*models.MiniSiteConfig, *models.Organization) {
	cfg := &models.MiniSiteConfig{
		OrgID:     "org-1",
		Name:      "Asociația Verde",
		Slug:      "asociatia-verde",
		AboutText: "Plantăm păduri.",
		Email:     "contact@verde.ro",
		Facebook:  "https://facebook.com/verde",
		Published: true,
		ShowAbout: true, ShowContact: true, ShowSocial: true, ShowDonation: true,
		ShowTeam: true, ShowFAQ: true, ShowEvents: true, ShowCampaigns: true,
		TeamMembers: []models.TeamMember{{Name: "Ana Pop", Role: "Director"}},
		FAQItems:    []models.FAQItem{{Question: "Q", Answer: "A"}},
		Events:      []models.Event{{Title: "Gala anuală", Date: "2026-05-01"}},
		Campaigns: []models.Campaign{
			{Title: "Împădurire", GoalAmount: 10000, RaisedAmount: 2500, Active: true},
			{Title: "Veche", GoalAmount: 100, RaisedAmount: 100, Active: false},
		},
	}
	org := &models.Organization{
		ID: "org-1", Slug: "asociatia-verde", Active: true,
		Subscription: models.Subscription{Plan: planName, Status: models.SubscriptionActive, ExpiresAt: expiresAt},
	}
	return cfg, org
}

func TestBuildViewPlanGating(t *testing.T) {
	now := time.Now()

	t.Run("basic plan hides gated sections despite flags", func(t *testing.T) {
		cfg, org := siteFixture(models.PlanBasic, nil)
		view := BuildView(cfg, org, now)

		assert.False(t, view.Has(plan.SectionTeam))
		assert.False(t, view.Has(plan.SectionFAQ))
		assert.False(t, view.Has(plan.SectionEvents))
		assert.False(t, view.Has(plan.SectionCampaigns))
		// Base sections stay up.
		assert.True(t, view.Has(plan.SectionAbout))
		assert.True(t, view.Has(plan.SectionContact))
		assert.True(t, view.Has(plan.SectionSocial))
		assert.True(t, view.Has(plan.SectionDonation))
	})

	t.Run("pro plan unlocks pro sections but not elite", func(t *testing.T) {
		cfg, org := siteFixture(models.PlanPro, nil)
		view := BuildView(cfg, org, now)

		assert.True(t, view.Has(plan.SectionTeam))
		assert.True(t, view.Has(plan.SectionFAQ))
		assert.True(t, view.Has(plan.SectionCampaigns))
		assert.False(t, view.Has(plan.SectionEvents))
	})

	t.Run("elite plan unlocks everything with data", func(t *testing.T) {
		cfg, org := siteFixture(models.PlanElite, nil)
		view := BuildView(cfg, org, now)

		assert.True(t, view.Has(plan.SectionTeam))
		assert.True(t, view.Has(plan.SectionEvents))
	})

	t.Run("expired elite renders like basic", func(t *testing.T) {
		past := now.Add(-time.Hour)
		cfg, org := siteFixture(models.PlanElite, &past)
		view := BuildView(cfg, org, now)

		assert.Equal(t, models.PlanBasic, view.Plan)
		assert.False(t, view.Has(plan.SectionTeam))
		assert.True(t, view.Has(plan.SectionAbout))
	})

	t.Run("nil org fails closed to basic", func(t *testing.T) {
		cfg, _ := siteFixture(models.PlanElite, nil)
		view := BuildView(cfg, nil, now)

		assert.Equal(t, models.PlanBasic, view.Plan)
		assert.False(t, view.Has(plan.SectionTeam))
	})
}

func TestBuildViewMissingPayloads(t *testing.T) {
	now := time.Now()
	cfg, org := siteFixture(models.PlanElite, nil)
	cfg.TeamMembers = nil
	cfg.AboutText = ""
	cfg.Events = []models.Event{}

	view := BuildView(cfg, org, now)

	// Flag on but payload empty: the section is simply absent.
	assert.False(t, view.Has(plan.SectionTeam))
	assert.False(t, view.Has(plan.SectionAbout))
	assert.False(t, view.Has(plan.SectionEvents))
}

func TestBuildViewCampaigns(t *testing.T) {
	now := time.Now()
	cfg, org := siteFixture(models.PlanPro, nil)
	view := BuildView(cfg, org, now)

	require.Len(t, view.Campaigns, 1, "inactive campaigns are excluded")
	c := view.Campaigns[0]
	assert.Equal(t, "Împădurire", c.Title)
	assert.InDelta(t, 25.0, c.Progress, 0.001)
	assert.Equal(t, "10.000 RON", c.GoalDisplay)
	assert.Equal(t, "2.500 RON", c.RaisedDisplay)
}

func TestBuildViewCarriesEmbedsAsMarkup(t *testing.T) {
	cfg, org := siteFixture(models.PlanElite, nil)
	cfg.TaxFormEmbed = `<iframe src="https://formular230.ro/asociatia-verde"></iframe>`
	cfg.GoogleMapsEmbed = `<iframe src="https://maps.google.com/embed?x=1"></iframe>`
	cfg.CustomCSS = ".hero{color:#fff}"

	view := BuildView(cfg, org, time.Now())

	// Typed as HTML/CSS so the template engine renders them verbatim instead
	// of escaping them into visible text.
	assert.Equal(t, template.HTML(cfg.TaxFormEmbed), view.TaxFormEmbed)
	assert.Equal(t, template.HTML(cfg.GoogleMapsEmbed), view.MapsEmbed)
	assert.Equal(t, template.CSS(cfg.CustomCSS), view.CustomCSS)
}

func TestBuildViewSocialLinks(t *testing.T) {
	cfg, org := siteFixture(models.PlanBasic, nil)
	view := BuildView(cfg, org, time.Now())

	require.Len(t, view.SocialLinks, 1)
	assert.Equal(t, "Facebook", view.SocialLinks[0].Name)
}
