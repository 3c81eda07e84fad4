package models

import (
	"time"
)

// Subscription plans, ordered BASIC < PRO < ELITE.
const (
	PlanBasic = "BASIC"
	PlanPro   = "PRO"
	PlanElite = "ELITE"
)

// Subscription statuses.
const (
	SubscriptionActive   = "active"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)

// Subscription is the stored subscription state. The stored plan string is
// what was purchased; feature gating always goes through the effective-plan
// computation, which downgrades expired paid plans to BASIC.
type Subscription struct {
	Plan                 string     `bson:"plan" json:"plan"`
	Status               string     `bson:"status" json:"status"`
	ExpiresAt            *time.Time `bson:"expiresAt,omitempty" json:"expiresAt"`
	StripeCustomerID     string     `bson:"stripeCustomerId,omitempty" json:"-"`
	StripeSubscriptionID string     `bson:"stripeSubscriptionId,omitempty" json:"-"`
	ReminderSentAt       *time.Time `bson:"reminderSentAt,omitempty" json:"-"`
}

// PaymentSettings holds the organization's donation payment configuration.
// Donations degrade gracefully when this is not configured.
type PaymentSettings struct {
	StripeAccountID string `bson:"stripeAccountId" json:"stripeAccountId"`
	Currency        string `bson:"currency" json:"currency"`
	Enabled         bool   `bson:"enabled" json:"enabled"`
}

type Member struct {
	UserID  string    `bson:"userId" json:"userId"`
	Role    string    `bson:"role" json:"role"` // "owner", "admin", "editor"
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
}

// Organization is the tenant record. The mini-site configuration lives in its
// own collection keyed by the organization ID.
type Organization struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Slug         string          `bson:"slug" json:"slug"`
	OwnerID      string          `bson:"ownerId" json:"ownerId"`
	Members      []Member        `bson:"members" json:"members"`
	Subscription Subscription    `bson:"subscription" json:"subscription"`
	Payments     PaymentSettings `bson:"payments" json:"payments"`
	Language     string          `bson:"language" json:"language"`
	Active       bool            `bson:"active" json:"active"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// OrgContext is the typed per-request context resolved once by the auth
// middleware. Handlers never reach into ambient session state.
type OrgContext struct {
	UserID string
	OrgID  string
	Role   string
}
