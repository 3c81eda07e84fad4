package minisite

import (
	"encoding/json"
	"strconv"
	"time"

	"ongkit/models"

	"github.com/google/uuid"
)

// The field registry is the single source of truth for which configuration
// keys are editable and how raw JSON values are coerced. The renderer and
// every editor route go through it, so defaults and typing cannot drift
// between surfaces.

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindTime
	kindComplex // arrays and embedded objects, decoded via their typed shape
)

type fieldSpec struct {
	kind   fieldKind
	decode func(raw any) (any, error) // set for kindComplex only
}

func stringField() fieldSpec { return fieldSpec{kind: kindString} }
func boolField() fieldSpec   { return fieldSpec{kind: kindBool} }
func timeField() fieldSpec   { return fieldSpec{kind: kindTime} }
func complexField(decode func(raw any) (any, error)) fieldSpec {
	return fieldSpec{kind: kindComplex, decode: decode}
}

func decodeAs[T any](raw any) (T, error) {
	var out T
	b, err := json.Marshal(raw)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, err
	}
	return out, nil
}

func ensureItemID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// configFields maps every editable bson/json key to its coercion rule.
// Arrays are whole-replacement: the stored list becomes exactly the decoded
// list, unmodified items included.
var configFields = map[string]fieldSpec{
	// Identity.
	"name":             stringField(),
	"slug":             stringField(),
	"logoUrl":          stringField(),
	"shortDescription": stringField(),
	"longDescription":  stringField(),
	"category":         stringField(),
	"website":          stringField(),
	"coverImageUrl":    stringField(),

	// Legal and banking.
	"taxId":              stringField(),
	"registrationNumber": stringField(),
	"bankAccount":        stringField(),
	"legalRepName":       stringField(),
	"legalRepRole":       stringField(),

	// Contact.
	"address":   stringField(),
	"email":     stringField(),
	"phone":     stringField(),
	"facebook":  stringField(),
	"instagram": stringField(),
	"linkedin":  stringField(),
	"youtube":   stringField(),
	"tiktok":    stringField(),
	"twitter":   stringField(),

	// Design.
	"primaryColor": stringField(),
	"accentColor":  stringField(),
	"theme":        stringField(),
	"customCss":    stringField(),

	// Content.
	"heroTitle":       stringField(),
	"heroDescription": stringField(),
	"heroCtaText":     stringField(),
	"aboutText":       stringField(),
	"aboutImageUrl":   stringField(),
	"missionText":     stringField(),
	"impactText":      stringField(),
	"seoTitle":        stringField(),
	"seoDescription":  stringField(),
	"seoKeywords":     stringField(),
	"taxFormEmbed":    stringField(),
	"taxFormPdfUrl":   stringField(),
	"videoUrl":        stringField(),
	"googleMapsEmbed": stringField(),
	"foundedAt":       timeField(),

	// Publication and visibility flags.
	"published":               boolField(),
	"showAbout":               boolField(),
	"showMission":             boolField(),
	"showImpact":              boolField(),
	"showDonation":            boolField(),
	"showNewsletter":          boolField(),
	"showContact":             boolField(),
	"showSocial":              boolField(),
	"showTaxForm":             boolField(),
	"showSponsorshipContract": boolField(),
	"showVolunteerForm":       boolField(),
	"showVideo":               boolField(),
	"showTeam":                boolField(),
	"showTestimonials":        boolField(),
	"showFaq":                 boolField(),
	"showPartners":            boolField(),
	"showEvents":              boolField(),
	"showCounterStats":        boolField(),
	"showTransparencyDocs":    boolField(),
	"showGoogleMaps":          boolField(),
	"showUrgentBanner":        boolField(),
	"showDonationPopup":       boolField(),
	"showCampaigns":           boolField(),
	"showBlog":                boolField(),
	"showPressMentions":       boolField(),

	// Section payloads.
	"teamMembers": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.TeamMember](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"testimonials": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.Testimonial](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"faqItems": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.FAQItem](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"partners": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.Partner](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"events": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.Event](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"counterStats": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.CounterStat](sanitizeListNumbers(raw, "value"))
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"transparencyDocs": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.TransparencyDoc](sanitizeListNumbers(raw, "year"))
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"campaigns": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.Campaign](sanitizeListNumbers(raw, "goalAmount", "raisedAmount"))
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"blogPosts": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.BlogPost](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"pressMentions": complexField(func(raw any) (any, error) {
		items, err := decodeAs[[]models.PressMention](raw)
		if err != nil {
			return nil, err
		}
		for i := range items {
			ensureItemID(&items[i].ItemID)
		}
		return items, nil
	}),
	"urgentBanner": complexField(func(raw any) (any, error) {
		return decodeAs[models.UrgentBanner](raw)
	}),
	"donationPopup": complexField(func(raw any) (any, error) {
		if m, ok := raw.(map[string]any); ok {
			if v, present := m["delaySeconds"]; present {
				m["delaySeconds"] = int(coerceNumber(v))
			}
		}
		return decodeAs[models.DonationPopup](raw)
	}),
}

// Editor surface names.
const (
	EditorIdentity   = "identity"
	EditorContent    = "content"
	EditorCampaigns  = "campaigns"
	EditorComponents = "components"
)

// editorFields declares which configuration keys each editor surface owns.
// A scoped save may only touch its own keys, so one editor can never null
// out fields belonging to another.
var editorFields = map[string]map[string]bool{
	EditorIdentity: keySet(
		"name", "slug", "logoUrl", "shortDescription", "longDescription",
		"category", "website", "coverImageUrl",
		"taxId", "registrationNumber", "bankAccount", "legalRepName", "legalRepRole",
		"address", "email", "phone",
		"facebook", "instagram", "linkedin", "youtube", "tiktok", "twitter",
		"primaryColor", "accentColor", "theme", "customCss",
		"foundedAt", "published",
	),
	EditorContent: keySet(
		"heroTitle", "heroDescription", "heroCtaText",
		"aboutText", "aboutImageUrl", "missionText", "impactText",
		"seoTitle", "seoDescription", "seoKeywords",
		"taxFormEmbed", "taxFormPdfUrl",
	),
	EditorCampaigns: keySet(
		"campaigns", "showCampaigns",
	),
	EditorComponents: keySet(
		"showAbout", "showMission", "showImpact", "showDonation", "showNewsletter",
		"showContact", "showSocial", "showTaxForm", "showSponsorshipContract",
		"showVolunteerForm", "showVideo", "showTeam", "showTestimonials", "showFaq",
		"showPartners", "showEvents", "showCounterStats", "showTransparencyDocs",
		"showGoogleMaps", "showUrgentBanner", "showDonationPopup", "showBlog",
		"showPressMentions",
		"videoUrl", "googleMapsEmbed",
		"teamMembers", "testimonials", "faqItems", "partners", "events",
		"counterStats", "transparencyDocs", "blogPosts", "pressMentions",
		"urgentBanner", "donationPopup",
	),
}

// aiToolFields declares which configuration keys each AI tool may write when
// its result is applied. Anything else the model returns is discarded.
var aiToolFields = map[string]map[string]bool{
	"hero_copy":     keySet("heroTitle", "heroDescription", "heroCtaText"),
	"about_text":    keySet("aboutText", "missionText", "impactText"),
	"seo_meta":      keySet("seoTitle", "seoDescription", "seoKeywords"),
	"press_release": keySet(),
	"sponsor_email": keySet(),
}

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// sanitizeListNumbers coerces the named numeric keys on each list item before
// typed decoding, so a half-typed amount saves as 0 instead of failing the
// whole request.
func sanitizeListNumbers(raw any, keys ...string) any {
	list, ok := raw.([]any)
	if !ok {
		return raw
	}
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, k := range keys {
			if v, present := m[k]; present {
				m[k] = coerceNumber(v)
			}
		}
	}
	return raw
}

// coerceNumber turns live-typing form input into a float64. Invalid input
// becomes 0 instead of an error so a half-typed value never rejects the save.
func coerceNumber(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(key string, raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		// Present-with-null means "clear this field".
		return "", nil
	case string:
		return v, nil
	default:
		return "", validationErrorf("field %q must be a string", key)
	}
}

func coerceBool(key string, raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, validationErrorf("field %q must be a boolean", key)
	}
}

func coerceTime(key string, raw any) (time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, nil
	case string:
		if v == "" {
			return time.Time{}, nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, nil
			}
		}
		return time.Time{}, validationErrorf("field %q must be an ISO date", key)
	default:
		return time.Time{}, validationErrorf("field %q must be an ISO date string", key)
	}
}
