package plan

import (
	"testing"
	"time"

	"ongkit/models"

	"github.com/stretchr/testify/assert"
)

func TestIsSectionAllowed(t *testing.T) {
	tests := []struct {
		name    string
		plan    string
		section string
		want    bool
	}{
		{"basic gets base section", models.PlanBasic, SectionAbout, true},
		{"basic gets donation", models.PlanBasic, SectionDonation, true},
		{"basic denied team", models.PlanBasic, SectionTeam, false},
		{"basic denied faq", models.PlanBasic, SectionFAQ, false},
		{"basic denied blog", models.PlanBasic, SectionBlog, false},
		{"pro gets team", models.PlanPro, SectionTeam, true},
		{"pro gets campaigns", models.PlanPro, SectionCampaigns, true},
		{"pro denied events", models.PlanPro, SectionEvents, false},
		{"pro denied urgent banner", models.PlanPro, SectionUrgentBanner, false},
		{"elite gets everything gated", models.PlanElite, SectionTransparencyDocs, true},
		{"elite gets base section", models.PlanElite, SectionContact, true},
		{"unknown section denied for elite", models.PlanElite, "adminPanel", false},
		{"unknown section denied for basic", models.PlanBasic, "teem", false},
		{"empty plan denied gated section", "", SectionTeam, false},
		{"garbage plan denied gated section", "PLATINUM", SectionVideo, false},
		{"garbage plan still gets base section", "PLATINUM", SectionAbout, true},
		{"lowercase plan accepted", "pro", SectionTeam, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSectionAllowed(tt.plan, tt.section))
		})
	}
}

func TestEffective(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		sub  *models.Subscription
		want string
	}{
		{"nil subscription fails closed", nil, models.PlanBasic},
		{"empty plan fails closed", &models.Subscription{}, models.PlanBasic},
		{"unknown plan fails closed", &models.Subscription{Plan: "GOLD", Status: models.SubscriptionActive}, models.PlanBasic},
		{"basic stays basic", &models.Subscription{Plan: models.PlanBasic, Status: models.SubscriptionActive}, models.PlanBasic},
		{
			"active pro with future expiry",
			&models.Subscription{Plan: models.PlanPro, Status: models.SubscriptionActive, ExpiresAt: &future},
			models.PlanPro,
		},
		{
			"active elite without expiry date",
			&models.Subscription{Plan: models.PlanElite, Status: models.SubscriptionActive},
			models.PlanElite,
		},
		{
			"expired pro degrades to basic",
			&models.Subscription{Plan: models.PlanPro, Status: models.SubscriptionActive, ExpiresAt: &past},
			models.PlanBasic,
		},
		{
			"elite expiring exactly now degrades",
			&models.Subscription{Plan: models.PlanElite, Status: models.SubscriptionActive, ExpiresAt: &now},
			models.PlanBasic,
		},
		{
			"canceled elite degrades despite future expiry",
			&models.Subscription{Plan: models.PlanElite, Status: models.SubscriptionCanceled, ExpiresAt: &future},
			models.PlanBasic,
		},
		{
			"expired status degrades regardless of date",
			&models.Subscription{Plan: models.PlanPro, Status: models.SubscriptionExpired, ExpiresAt: &future},
			models.PlanBasic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Effective(tt.sub, now))
		})
	}
}

// Expired paid plans must lose gated sections end to end.
func TestExpiredPlanLosesGatedSections(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	sub := &models.Subscription{Plan: models.PlanElite, Status: models.SubscriptionActive, ExpiresAt: &past}

	effective := Effective(sub, now)
	assert.Equal(t, models.PlanBasic, effective)
	assert.False(t, IsSectionAllowed(effective, SectionTeam))
	assert.False(t, IsSectionAllowed(effective, SectionBlog))
	assert.True(t, IsSectionAllowed(effective, SectionAbout))
}
