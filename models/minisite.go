package models

import (
	"time"
)

// MiniSiteConfig is the single per-organization document driving the public
// mini-site. Dashboard editors each own a slice of these fields and save
// partial updates; the stored document is only ever patched field by field,
// never replaced whole.
type MiniSiteConfig struct {
	OrgID string `bson:"orgId" json:"orgId"`

	// Identity.
	Name             string `bson:"name" json:"name"`
	Slug             string `bson:"slug" json:"slug"`
	LogoURL          string `bson:"logoUrl" json:"logoUrl"`
	ShortDescription string `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string `bson:"longDescription" json:"longDescription"`
	Category         string `bson:"category" json:"category"`
	Website          string `bson:"website" json:"website"`
	CoverImageURL    string `bson:"coverImageUrl" json:"coverImageUrl"`

	// Legal and banking.
	TaxID              string `bson:"taxId" json:"taxId"`
	RegistrationNumber string `bson:"registrationNumber" json:"registrationNumber"`
	BankAccount        string `bson:"bankAccount" json:"bankAccount"`
	LegalRepName       string `bson:"legalRepName" json:"legalRepName"`
	LegalRepRole       string `bson:"legalRepRole" json:"legalRepRole"`

	// Contact.
	Address   string `bson:"address" json:"address"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
	YouTube   string `bson:"youtube" json:"youtube"`
	TikTok    string `bson:"tiktok" json:"tiktok"`
	Twitter   string `bson:"twitter" json:"twitter"`

	// Design.
	PrimaryColor string `bson:"primaryColor" json:"primaryColor"`
	AccentColor  string `bson:"accentColor" json:"accentColor"`
	Theme        string `bson:"theme" json:"theme"`
	CustomCSS    string `bson:"customCss" json:"customCss"`

	// Content.
	HeroTitle       string    `bson:"heroTitle" json:"heroTitle"`
	HeroDescription string    `bson:"heroDescription" json:"heroDescription"`
	HeroCTAText     string    `bson:"heroCtaText" json:"heroCtaText"`
	AboutText       string    `bson:"aboutText" json:"aboutText"`
	AboutImageURL   string    `bson:"aboutImageUrl" json:"aboutImageUrl"`
	MissionText     string    `bson:"missionText" json:"missionText"`
	ImpactText      string    `bson:"impactText" json:"impactText"`
	SEOTitle        string    `bson:"seoTitle" json:"seoTitle"`
	SEODescription  string    `bson:"seoDescription" json:"seoDescription"`
	SEOKeywords     string    `bson:"seoKeywords" json:"seoKeywords"`
	TaxFormEmbed    string    `bson:"taxFormEmbed" json:"taxFormEmbed"`
	TaxFormPDFURL   string    `bson:"taxFormPdfUrl" json:"taxFormPdfUrl"`
	VideoURL        string    `bson:"videoUrl" json:"videoUrl"`
	GoogleMapsEmbed string    `bson:"googleMapsEmbed" json:"googleMapsEmbed"`
	FoundedAt       time.Time `bson:"foundedAt" json:"foundedAt"`

	// Publication and per-section visibility flags. A flag only makes the
	// section eligible; the plan gate still decides whether it renders.
	Published               bool `bson:"published" json:"published"`
	ShowAbout               bool `bson:"showAbout" json:"showAbout"`
	ShowMission             bool `bson:"showMission" json:"showMission"`
	ShowImpact              bool `bson:"showImpact" json:"showImpact"`
	ShowDonation            bool `bson:"showDonation" json:"showDonation"`
	ShowNewsletter          bool `bson:"showNewsletter" json:"showNewsletter"`
	ShowContact             bool `bson:"showContact" json:"showContact"`
	ShowSocial              bool `bson:"showSocial" json:"showSocial"`
	ShowTaxForm             bool `bson:"showTaxForm" json:"showTaxForm"`
	ShowSponsorshipContract bool `bson:"showSponsorshipContract" json:"showSponsorshipContract"`
	ShowVolunteerForm       bool `bson:"showVolunteerForm" json:"showVolunteerForm"`
	ShowVideo               bool `bson:"showVideo" json:"showVideo"`
	ShowTeam                bool `bson:"showTeam" json:"showTeam"`
	ShowTestimonials        bool `bson:"showTestimonials" json:"showTestimonials"`
	ShowFAQ                 bool `bson:"showFaq" json:"showFaq"`
	ShowPartners            bool `bson:"showPartners" json:"showPartners"`
	ShowEvents              bool `bson:"showEvents" json:"showEvents"`
	ShowCounterStats        bool `bson:"showCounterStats" json:"showCounterStats"`
	ShowTransparencyDocs    bool `bson:"showTransparencyDocs" json:"showTransparencyDocs"`
	ShowGoogleMaps          bool `bson:"showGoogleMaps" json:"showGoogleMaps"`
	ShowUrgentBanner        bool `bson:"showUrgentBanner" json:"showUrgentBanner"`
	ShowDonationPopup       bool `bson:"showDonationPopup" json:"showDonationPopup"`
	ShowCampaigns           bool `bson:"showCampaigns" json:"showCampaigns"`
	ShowBlog                bool `bson:"showBlog" json:"showBlog"`
	ShowPressMentions       bool `bson:"showPressMentions" json:"showPressMentions"`

	// Section payloads. Arrays are always saved as whole replacements; the
	// editor submits the complete desired list, unmodified items included.
	TeamMembers      []TeamMember      `bson:"teamMembers" json:"teamMembers"`
	Testimonials     []Testimonial     `bson:"testimonials" json:"testimonials"`
	FAQItems         []FAQItem         `bson:"faqItems" json:"faqItems"`
	Partners         []Partner         `bson:"partners" json:"partners"`
	Events           []Event           `bson:"events" json:"events"`
	CounterStats     []CounterStat     `bson:"counterStats" json:"counterStats"`
	TransparencyDocs []TransparencyDoc `bson:"transparencyDocs" json:"transparencyDocs"`
	Campaigns        []Campaign        `bson:"campaigns" json:"campaigns"`
	BlogPosts        []BlogPost        `bson:"blogPosts" json:"blogPosts"`
	PressMentions    []PressMention    `bson:"pressMentions" json:"pressMentions"`
	UrgentBanner     UrgentBanner      `bson:"urgentBanner" json:"urgentBanner"`
	DonationPopup    DonationPopup     `bson:"donationPopup" json:"donationPopup"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
