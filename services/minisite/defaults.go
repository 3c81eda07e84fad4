package minisite

import (
	"time"

	"ongkit/models"
)

// Default values applied both when the configuration document is created and
// when null/empty stored fields are served to editors or the renderer. This
// table is the only place defaults live; editors and the renderer never carry
// their own.
const (
	DefaultLegalRepRole = "Președinte"
	DefaultPrimaryColor = "#1e6fd9"
	DefaultAccentColor  = "#f59e0b"
	DefaultTheme        = "classic"
	DefaultHeroCTA      = "Donează acum"
	DefaultPopupDelay   = 8
)

// NewDefaultConfig builds the configuration created implicitly on first
// access. Base sections start visible; gated sections start hidden until the
// organization turns them on.
func NewDefaultConfig(org *models.Organization) *models.MiniSiteConfig {
	now := time.Now()
	return &models.MiniSiteConfig{
		OrgID:        org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		LegalRepRole: DefaultLegalRepRole,
		PrimaryColor: DefaultPrimaryColor,
		AccentColor:  DefaultAccentColor,
		Theme:        DefaultTheme,
		HeroCTAText:  DefaultHeroCTA,
		FoundedAt:    org.CreatedAt,

		Published:    false,
		ShowAbout:    true,
		ShowMission:  true,
		ShowDonation: true,
		ShowContact:  true,
		ShowSocial:   true,

		TeamMembers:      []models.TeamMember{},
		Testimonials:     []models.Testimonial{},
		FAQItems:         []models.FAQItem{},
		Partners:         []models.Partner{},
		Events:           []models.Event{},
		CounterStats:     []models.CounterStat{},
		TransparencyDocs: []models.TransparencyDoc{},
		Campaigns:        []models.Campaign{},
		BlogPosts:        []models.BlogPost{},
		PressMentions:    []models.PressMention{},
		DonationPopup:    models.DonationPopup{DelaySeconds: DefaultPopupDelay},

		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyDefaults substitutes defaults for cleared or never-set fields before a
// configuration is served. It never writes back; cleared stays cleared in
// storage.
func ApplyDefaults(cfg *models.MiniSiteConfig) *models.MiniSiteConfig {
	if cfg.LegalRepRole == "" {
		cfg.LegalRepRole = DefaultLegalRepRole
	}
	if cfg.PrimaryColor == "" {
		cfg.PrimaryColor = DefaultPrimaryColor
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = DefaultAccentColor
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.HeroCTAText == "" {
		cfg.HeroCTAText = DefaultHeroCTA
	}
	if cfg.HeroTitle == "" {
		cfg.HeroTitle = cfg.Name
	}
	if cfg.SEOTitle == "" {
		cfg.SEOTitle = cfg.Name
	}
	if cfg.SEODescription == "" {
		cfg.SEODescription = cfg.ShortDescription
	}
	if cfg.DonationPopup.DelaySeconds <= 0 {
		cfg.DonationPopup.DelaySeconds = DefaultPopupDelay
	}

	// Decoded documents can carry nil payload slices; serve them as empty so
	// clients and templates can range without nil checks.
	if cfg.TeamMembers == nil {
		cfg.TeamMembers = []models.TeamMember{}
	}
	if cfg.Testimonials == nil {
		cfg.Testimonials = []models.Testimonial{}
	}
	if cfg.FAQItems == nil {
		cfg.FAQItems = []models.FAQItem{}
	}
	if cfg.Partners == nil {
		cfg.Partners = []models.Partner{}
	}
	if cfg.Events == nil {
		cfg.Events = []models.Event{}
	}
	if cfg.CounterStats == nil {
		cfg.CounterStats = []models.CounterStat{}
	}
	if cfg.TransparencyDocs == nil {
		cfg.TransparencyDocs = []models.TransparencyDoc{}
	}
	if cfg.Campaigns == nil {
		cfg.Campaigns = []models.Campaign{}
	}
	if cfg.BlogPosts == nil {
		cfg.BlogPosts = []models.BlogPost{}
	}
	if cfg.PressMentions == nil {
		cfg.PressMentions = []models.PressMention{}
	}
	return cfg
}
