// File: ongkit/handlers/bundle.go
package handlers

import (
	leadRepoPkg "ongkit/database/repository/lead"
	userRepoPkg "ongkit/database/repository/user"
	"ongkit/services/account"
	"ongkit/services/donation"
	ai "ongkit/services/intelligence"
	"ongkit/services/minisite"
	"ongkit/services/storage"
	"ongkit/services/subscription"
)

// HandlerBundle groups all endpoint handlers and the services they call.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	Leads    leadRepoPkg.LeadRepository

	MiniSite      minisite.MiniSiteService
	Accounts      account.AccountService
	Subscriptions subscription.SubscriptionService
	Donations     donation.DonationService
	AI            ai.AIService
	Storage       storage.StorageService
}
