package models

import "time"

// Lead kinds.
const (
	LeadVolunteer  = "volunteer"
	LeadNewsletter = "newsletter"
)

// Lead is a public-page form submission (volunteer signup or newsletter
// subscription), stored for the dashboard to export.
type Lead struct {
	ID        string    `bson:"id" json:"id"`
	OrgID     string    `bson:"orgId" json:"orgId"`
	Kind      string    `bson:"kind" json:"kind"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
