// Package subscription exposes the stored subscription state and plan
// changes. It reports raw stored values; effective-plan degradation is the
// consumer's job, via services/plan.
package subscription

import (
	"fmt"
	"time"

	organizationRepo "ongkit/database/repository/organization"
	"ongkit/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
)

// Stripe price lookup keys per paid plan.
var planPriceLookup = map[string]string{
	models.PlanPro:   "ongkit_pro_monthly",
	models.PlanElite: "ongkit_elite_monthly",
}

// SubscriptionService reads and mutates the organization's subscription.
type SubscriptionService interface {
	Get(orgID string) (*models.Subscription, error)
	// StartCheckout creates a Stripe Checkout session for upgrading to a paid
	// plan and returns its URL.
	StartCheckout(orgID, targetPlan, successURL, cancelURL string) (string, error)
	// SetPlan writes the plan directly. Used by the admin surface and after a
	// confirmed checkout.
	SetPlan(orgID, planName string, expiresAt *time.Time) (*models.Subscription, error)
}

// DefaultSubscriptionService is the production implementation.
type DefaultSubscriptionService struct {
	Orgs organizationRepo.OrganizationRepository
}

func (s *DefaultSubscriptionService) Get(orgID string) (*models.Subscription, error) {
	org, err := s.Orgs.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	sub := org.Subscription
	if sub.Plan == "" {
		sub.Plan = models.PlanBasic
		sub.Status = models.SubscriptionActive
	}
	return &sub, nil
}

func (s *DefaultSubscriptionService) StartCheckout(orgID, targetPlan, successURL, cancelURL string) (string, error) {
	lookup, ok := planPriceLookup[targetPlan]
	if !ok {
		return "", fmt.Errorf("plan %q cannot be purchased", targetPlan)
	}
	org, err := s.Orgs.GetByID(orgID)
	if err != nil {
		return "", err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(lookup),
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(org.ID),
	}
	if org.Subscription.StripeCustomerID != "" {
		params.Customer = stripe.String(org.Subscription.StripeCustomerID)
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

func (s *DefaultSubscriptionService) SetPlan(orgID, planName string, expiresAt *time.Time) (*models.Subscription, error) {
	switch planName {
	case models.PlanBasic, models.PlanPro, models.PlanElite:
	default:
		return nil, fmt.Errorf("unknown plan %q", planName)
	}

	update := bson.M{
		"subscription.plan":           planName,
		"subscription.status":         models.SubscriptionActive,
		"subscription.expiresAt":      expiresAt,
		"subscription.reminderSentAt": nil,
	}
	if err := s.Orgs.UpdateWithDocument(orgID, update); err != nil {
		return nil, err
	}
	return s.Get(orgID)
}
