// Package donation starts Stripe payments from the public mini-site donation
// section. The payment provider is optional per organization; an
// unconfigured provider degrades to an inline error, never a broken page.
package donation

import (
	"errors"
	"fmt"
	"time"

	donationRepo "ongkit/database/repository/donation"
	"ongkit/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrPaymentsNotConfigured maps to a 503 on the public donate endpoint.
var ErrPaymentsNotConfigured = errors.New("payments are not configured for this organization")

const minDonationMinorUnits = 200 // 2 RON

// DonationRequest is the public donate payload. Amount is in minor units.
type DonationRequest struct {
	Amount         int64  `json:"amount" binding:"required"`
	CampaignItemID string `json:"campaignItemId"`
	DonorName      string `json:"donorName"`
	DonorEmail     string `json:"donorEmail"`
}

// DonationIntent is returned to the public page to confirm the payment
// client-side.
type DonationIntent struct {
	DonationID   string `json:"donationId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// DonationService creates donation payment intents.
type DonationService interface {
	CreateIntent(siteSlug string, req DonationRequest) (*DonationIntent, error)
}

// SiteResolver resolves a published mini-site and its owning organization by
// the public slug. The donate form posts the mini-site slug, which can differ
// from the organization slug after a pre-publication rename, so donations go
// through the same resolution as every other public endpoint.
type SiteResolver interface {
	PublicSite(slug string) (*models.MiniSiteConfig, *models.Organization, error)
}

// DefaultDonationService is the production implementation.
type DefaultDonationService struct {
	Sites     SiteResolver
	Donations donationRepo.DonationRepository
	Logger    *zap.Logger
}

func (s *DefaultDonationService) CreateIntent(siteSlug string, req DonationRequest) (*DonationIntent, error) {
	if req.Amount < minDonationMinorUnits {
		return nil, fmt.Errorf("donation amount must be at least %d bani", minDonationMinorUnits)
	}

	_, org, err := s.Sites.PublicSite(siteSlug)
	if err != nil {
		return nil, err
	}
	if !org.Payments.Enabled || org.Payments.StripeAccountID == "" {
		return nil, ErrPaymentsNotConfigured
	}

	currency := org.Payments.Currency
	if currency == "" {
		currency = "ron"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(org.Payments.StripeAccountID),
		},
	}
	params.AddMetadata("orgId", org.ID)
	if req.CampaignItemID != "" {
		params.AddMetadata("campaignItemId", req.CampaignItemID)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	donation := &models.Donation{
		ID:              uuid.NewString(),
		OrgID:           org.ID,
		CampaignItemID:  req.CampaignItemID,
		Amount:          req.Amount,
		Currency:        currency,
		DonorName:       req.DonorName,
		DonorEmail:      req.DonorEmail,
		Status:          "pending",
		PaymentIntentID: pi.ID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := s.Donations.Create(donation); err != nil {
		// The intent exists at Stripe; losing the local record is recoverable
		// from the webhook, so log and continue.
		s.Logger.Error("failed to persist donation record",
			zap.String("orgId", org.ID), zap.Error(err))
	}

	return &DonationIntent{
		DonationID:   donation.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       req.Amount,
		Currency:     currency,
	}, nil
}
