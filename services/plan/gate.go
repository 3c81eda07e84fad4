// Package plan decides which mini-site sections an organization may render,
// based on its effective subscription tier.
package plan

import (
	"strings"
	"time"

	"ongkit/models"
)

// Section names form a closed set. A name not listed in either table below is
// denied for every plan: a typo must never expose a paid feature.
const (
	SectionAbout               = "about"
	SectionMission             = "mission"
	SectionImpact              = "impact"
	SectionDonation            = "donation"
	SectionNewsletter          = "newsletter"
	SectionContact             = "contact"
	SectionSocial              = "social"
	SectionTaxForm             = "taxForm"
	SectionSponsorshipContract = "sponsorshipContract"
	SectionVolunteerForm       = "volunteerForm"
	SectionVideo               = "video"
	SectionTeam                = "team"
	SectionTestimonials        = "testimonials"
	SectionFAQ                 = "faq"
	SectionPartners            = "partners"
	SectionEvents              = "events"
	SectionCounterStats        = "counterStats"
	SectionTransparencyDocs    = "transparencyDocs"
	SectionGoogleMaps          = "googleMaps"
	SectionUrgentBanner        = "urgentBanner"
	SectionDonationPopup       = "donationPopup"
	SectionCampaigns           = "campaigns"
	SectionBlog                = "blog"
	SectionPressMentions       = "pressMentions"
)

// planRank orders tiers for gating comparisons. Unknown plans rank below
// BASIC so a corrupted plan string fails closed.
var planRank = map[string]int{
	models.PlanBasic: 1,
	models.PlanPro:   2,
	models.PlanElite: 3,
}

// baseSections are always available, on any plan.
var baseSections = map[string]bool{
	SectionAbout:               true,
	SectionMission:             true,
	SectionImpact:              true,
	SectionDonation:            true,
	SectionNewsletter:          true,
	SectionContact:             true,
	SectionSocial:              true,
	SectionTaxForm:             true,
	SectionSponsorshipContract: true,
	SectionVolunteerForm:       true,
}

// sectionMinPlan maps each gated section to the minimum tier that unlocks it.
var sectionMinPlan = map[string]string{
	SectionVideo:            models.PlanPro,
	SectionTeam:             models.PlanPro,
	SectionTestimonials:     models.PlanPro,
	SectionFAQ:              models.PlanPro,
	SectionPartners:         models.PlanPro,
	SectionCounterStats:     models.PlanPro,
	SectionGoogleMaps:       models.PlanPro,
	SectionCampaigns:        models.PlanPro,
	SectionEvents:           models.PlanElite,
	SectionTransparencyDocs: models.PlanElite,
	SectionUrgentBanner:     models.PlanElite,
	SectionDonationPopup:    models.PlanElite,
	SectionBlog:             models.PlanElite,
	SectionPressMentions:    models.PlanElite,
}

// IsSectionAllowed reports whether a plan tier may render a section. Unknown
// section names are denied unless whitelisted as base-tier.
func IsSectionAllowed(plan, section string) bool {
	if min, gated := sectionMinPlan[section]; gated {
		return planRank[normalize(plan)] >= planRank[min]
	}
	return baseSections[section]
}

// Effective returns the plan tier to use for gating right now. An expired or
// non-active paid subscription degrades to BASIC even though the stored plan
// string still names the paid tier. Expiry is a function of wall-clock time,
// so callers must invoke this per render and never cache the result across
// requests.
func Effective(sub *models.Subscription, now time.Time) string {
	if sub == nil {
		return models.PlanBasic
	}
	p := normalize(sub.Plan)
	if _, ok := planRank[p]; !ok {
		return models.PlanBasic
	}
	if p == models.PlanBasic {
		return models.PlanBasic
	}
	if sub.Status == models.SubscriptionCanceled || sub.Status == models.SubscriptionExpired {
		return models.PlanBasic
	}
	if sub.ExpiresAt != nil && !sub.ExpiresAt.After(now) {
		return models.PlanBasic
	}
	return p
}

func normalize(plan string) string {
	return strings.ToUpper(strings.TrimSpace(plan))
}
