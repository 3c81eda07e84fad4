// File: ongkit/main.go
package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ongkit/config"
	"ongkit/cron"
	"ongkit/database"
	donationRepoPkg "ongkit/database/repository/donation"
	leadRepoPkg "ongkit/database/repository/lead"
	minisiteRepoPkg "ongkit/database/repository/minisite"
	organizationRepoPkg "ongkit/database/repository/organization"
	userRepoPkg "ongkit/database/repository/user"
	"ongkit/handlers"
	"ongkit/routes"
	"ongkit/services/account"
	"ongkit/services/donation"
	ai "ongkit/services/intelligence"
	"ongkit/services/minisite"
	"ongkit/services/render"
	"ongkit/services/subscription"
	"ongkit/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		// Uploads degrade to 503; everything else keeps working.
		logger.Sugar().Warnf("main: media storage disabled: %v", err)
	}

	// Repositories.
	msRepo := minisiteRepoPkg.NewMongoMiniSiteRepo()
	orgRepo := organizationRepoPkg.NewMongoOrganizationRepo()
	usrRepo := userRepoPkg.NewMongoUserRepo()
	donRepo := donationRepoPkg.NewMongoDonationRepo()
	ldRepo := leadRepoPkg.NewMongoLeadRepo()

	if r, ok := msRepo.(*minisiteRepoPkg.MongoMiniSiteRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure mini-site indexes: %v", err)
		}
	}
	if r, ok := orgRepo.(*organizationRepoPkg.MongoOrganizationRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure organization indexes: %v", err)
		}
	}
	if r, ok := usrRepo.(*userRepoPkg.MongoUserRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure user indexes: %v", err)
		}
	}

	// Services.
	miniSiteService := &minisite.DefaultMiniSiteService{
		Repo: msRepo,
		Orgs: orgRepo,
	}
	accountService := &account.DefaultAccountService{
		Users: usrRepo,
		Orgs:  orgRepo,
	}
	subscriptionService := &subscription.DefaultSubscriptionService{
		Orgs: orgRepo,
	}
	donationService := &donation.DefaultDonationService{
		Sites:     miniSiteService,
		Donations: donRepo,
		Logger:    logger,
	}
	aiService := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      usrRepo,
		Leads:         ldRepo,
		MiniSite:      miniSiteService,
		Accounts:      accountService,
		Subscriptions: subscriptionService,
		Donations:     donationService,
		AI:            aiService,
		Storage:       storageService,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	router.SetFuncMap(template.FuncMap{
		"formatDateRO": render.FormatDateRO,
		"formatRON":    render.FormatRON,
		"formatAmount": render.FormatAmount,
	})
	router.LoadHTMLGlob("templates/*.html")

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient()}, database.MongoClient)
	cron.InitSubscriptionWorker(orgRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
