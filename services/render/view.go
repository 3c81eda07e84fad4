// Package render composes the public mini-site view from one configuration
// fetch. It is read-only: building a view performs no writes and no caching,
// so plan expiry always reflects the current clock.
package render

import (
	"html/template"
	"time"

	"ongkit/models"
	"ongkit/services/plan"
)

// SocialLink is one outbound social profile shown in the social section.
type SocialLink struct {
	Name string
	URL  string
}

// CampaignView decorates a campaign with display-ready progress figures.
type CampaignView struct {
	models.Campaign
	Progress      float64
	GoalDisplay   string
	RaisedDisplay string
}

// SiteView is everything the public template needs, computed up front so the
// template stays logic-free beyond visibility checks.
type SiteView struct {
	Cfg         *models.MiniSiteConfig
	Org         *models.Organization
	Plan        string
	YearsActive int
	Campaigns   []CampaignView
	SocialLinks []SocialLink

	// Org-owner-authored markup rendered verbatim. These fields exist so the
	// template does not escape embed snippets into literal text; they carry
	// the same trust level as every other stored config field.
	TaxFormEmbed template.HTML
	MapsEmbed    template.HTML
	CustomCSS    template.CSS

	visible map[string]bool
}

// Has reports whether a section passed visibility ∧ plan gating. Templates
// call this per block.
func (v *SiteView) Has(section string) bool {
	return v.visible[section]
}

// BuildView computes the effective plan and per-section visibility for one
// render. Sections whose payload is missing or empty are treated as absent
// rather than rendered broken.
func BuildView(cfg *models.MiniSiteConfig, org *models.Organization, now time.Time) *SiteView {
	var sub *models.Subscription
	if org != nil {
		sub = &org.Subscription
	}
	effective := plan.Effective(sub, now)

	view := &SiteView{
		Cfg:          cfg,
		Org:          org,
		Plan:         effective,
		YearsActive:  YearsActive(cfg.FoundedAt, now),
		TaxFormEmbed: template.HTML(cfg.TaxFormEmbed),
		MapsEmbed:    template.HTML(cfg.GoogleMapsEmbed),
		CustomCSS:    template.CSS(cfg.CustomCSS),
		visible:      map[string]bool{},
	}

	allowed := func(section string) bool {
		return plan.IsSectionAllowed(effective, section)
	}
	show := func(section string, flag, hasData bool) {
		view.visible[section] = flag && hasData && allowed(section)
	}

	view.SocialLinks = socialLinks(cfg)

	activeCampaigns := make([]CampaignView, 0, len(cfg.Campaigns))
	for _, c := range cfg.Campaigns {
		if !c.Active {
			continue
		}
		activeCampaigns = append(activeCampaigns, CampaignView{
			Campaign:      c,
			Progress:      CampaignProgress(c.GoalAmount, c.RaisedAmount),
			GoalDisplay:   FormatRON(c.GoalAmount),
			RaisedDisplay: FormatRON(c.RaisedAmount),
		})
	}
	view.Campaigns = activeCampaigns

	show(plan.SectionTaxForm, cfg.ShowTaxForm, cfg.TaxFormEmbed != "" || cfg.TaxFormPDFURL != "")
	show(plan.SectionCampaigns, cfg.ShowCampaigns, len(activeCampaigns) > 0)
	show(plan.SectionAbout, cfg.ShowAbout, cfg.AboutText != "")
	show(plan.SectionMission, cfg.ShowMission, cfg.MissionText != "")
	show(plan.SectionVideo, cfg.ShowVideo, cfg.VideoURL != "")
	show(plan.SectionTeam, cfg.ShowTeam, len(cfg.TeamMembers) > 0)
	show(plan.SectionTestimonials, cfg.ShowTestimonials, len(cfg.Testimonials) > 0)
	show(plan.SectionPartners, cfg.ShowPartners, len(cfg.Partners) > 0)
	show(plan.SectionImpact, cfg.ShowImpact, cfg.ImpactText != "")
	show(plan.SectionCounterStats, cfg.ShowCounterStats, len(cfg.CounterStats) > 0)
	show(plan.SectionEvents, cfg.ShowEvents, len(cfg.Events) > 0)
	show(plan.SectionFAQ, cfg.ShowFAQ, len(cfg.FAQItems) > 0)
	show(plan.SectionTransparencyDocs, cfg.ShowTransparencyDocs, len(cfg.TransparencyDocs) > 0)
	show(plan.SectionVolunteerForm, cfg.ShowVolunteerForm, true)
	show(plan.SectionSponsorshipContract, cfg.ShowSponsorshipContract, true)
	show(plan.SectionGoogleMaps, cfg.ShowGoogleMaps, cfg.GoogleMapsEmbed != "")
	show(plan.SectionPressMentions, cfg.ShowPressMentions, len(cfg.PressMentions) > 0)
	show(plan.SectionBlog, cfg.ShowBlog, len(cfg.BlogPosts) > 0)
	show(plan.SectionNewsletter, cfg.ShowNewsletter, true)
	show(plan.SectionContact, cfg.ShowContact, cfg.Email != "" || cfg.Phone != "" || cfg.Address != "")
	show(plan.SectionSocial, cfg.ShowSocial, len(view.SocialLinks) > 0)
	show(plan.SectionDonation, cfg.ShowDonation, true)
	show(plan.SectionUrgentBanner, cfg.ShowUrgentBanner, cfg.UrgentBanner.Active && cfg.UrgentBanner.Text != "")
	show(plan.SectionDonationPopup, cfg.ShowDonationPopup, cfg.DonationPopup.Active && cfg.DonationPopup.Text != "")

	return view
}

func socialLinks(cfg *models.MiniSiteConfig) []SocialLink {
	candidates := []SocialLink{
		{"Facebook", cfg.Facebook},
		{"Instagram", cfg.Instagram},
		{"LinkedIn", cfg.LinkedIn},
		{"YouTube", cfg.YouTube},
		{"TikTok", cfg.TikTok},
		{"X", cfg.Twitter},
	}
	links := make([]SocialLink, 0, len(candidates))
	for _, l := range candidates {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}
