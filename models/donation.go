package models

import (
	"time"
)

// Donation is one supporter contribution started from the public mini-site.
// Amounts are in minor units (bani).
type Donation struct {
	ID              string    `bson:"id" json:"id"`
	OrgID           string    `bson:"orgId" json:"orgId"`
	CampaignItemID  string    `bson:"campaignItemId,omitempty" json:"campaignItemId,omitempty"`
	Amount          int64     `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	DonorName       string    `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail      string    `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	Status          string    `bson:"status" json:"status"` // "pending", "succeeded", "failed"
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
