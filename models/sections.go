package models

// ItemID on every list item is generated server-side when missing. It is a
// client-side editing handle only and is unrelated to any persistence key.

type TeamMember struct {
	ItemID   string `bson:"itemId" json:"itemId"`
	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"`
	PhotoURL string `bson:"photoUrl" json:"photoUrl"`
	Bio      string `bson:"bio" json:"bio"`
}

type Testimonial struct {
	ItemID   string `bson:"itemId" json:"itemId"`
	Name     string `bson:"name" json:"name"`
	Role     string `bson:"role" json:"role"`
	Text     string `bson:"text" json:"text"`
	PhotoURL string `bson:"photoUrl" json:"photoUrl"`
}

type FAQItem struct {
	ItemID   string `bson:"itemId" json:"itemId"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

type Partner struct {
	ItemID  string `bson:"itemId" json:"itemId"`
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logoUrl" json:"logoUrl"`
	Website string `bson:"website" json:"website"`
}

type Event struct {
	ItemID      string `bson:"itemId" json:"itemId"`
	Title       string `bson:"title" json:"title"`
	Date        string `bson:"date" json:"date"` // ISO date, display-formatted at render time.
	Location    string `bson:"location" json:"location"`
	Description string `bson:"description" json:"description"`
	ImageURL    string `bson:"imageUrl" json:"imageUrl"`
}

type CounterStat struct {
	ItemID string  `bson:"itemId" json:"itemId"`
	Label  string  `bson:"label" json:"label"`
	Value  float64 `bson:"value" json:"value"`
	Suffix string  `bson:"suffix" json:"suffix"`
}

type TransparencyDoc struct {
	ItemID string `bson:"itemId" json:"itemId"`
	Title  string `bson:"title" json:"title"`
	Year   int    `bson:"year" json:"year"`
	PDFURL string `bson:"pdfUrl" json:"pdfUrl"`
}

type CampaignUpdate struct {
	Date string `bson:"date" json:"date"`
	Text string `bson:"text" json:"text"`
}

type Campaign struct {
	ItemID       string           `bson:"itemId" json:"itemId"`
	Title        string           `bson:"title" json:"title"`
	Description  string           `bson:"description" json:"description"`
	GoalAmount   float64          `bson:"goalAmount" json:"goalAmount"`
	RaisedAmount float64          `bson:"raisedAmount" json:"raisedAmount"`
	ImageURL     string           `bson:"imageUrl" json:"imageUrl"`
	Active       bool             `bson:"active" json:"active"`
	Updates      []CampaignUpdate `bson:"updates" json:"updates"`
}

type BlogPost struct {
	ItemID   string `bson:"itemId" json:"itemId"`
	Title    string `bson:"title" json:"title"`
	Date     string `bson:"date" json:"date"`
	Excerpt  string `bson:"excerpt" json:"excerpt"`
	Body     string `bson:"body" json:"body"`
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
}

type PressMention struct {
	ItemID  string `bson:"itemId" json:"itemId"`
	Outlet  string `bson:"outlet" json:"outlet"`
	Title   string `bson:"title" json:"title"`
	URL     string `bson:"url" json:"url"`
	Date    string `bson:"date" json:"date"`
	LogoURL string `bson:"logoUrl" json:"logoUrl"`
}

type UrgentBanner struct {
	Text    string `bson:"text" json:"text"`
	CTAText string `bson:"ctaText" json:"ctaText"`
	CTAURL  string `bson:"ctaUrl" json:"ctaUrl"`
	Active  bool   `bson:"active" json:"active"`
	Color   string `bson:"color" json:"color"`
}

type DonationPopup struct {
	Text         string `bson:"text" json:"text"`
	DelaySeconds int    `bson:"delaySeconds" json:"delaySeconds"`
	Active       bool   `bson:"active" json:"active"`
}
