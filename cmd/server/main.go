package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "trackbudget/docs" // swagger docs

	"trackbudget/internal/auth"
	"trackbudget/internal/billing"
	"trackbudget/internal/cache"
	"trackbudget/internal/config"
	"trackbudget/internal/db"
	"trackbudget/internal/handler"
	"trackbudget/internal/logger"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
	"trackbudget/internal/router"
	"trackbudget/internal/service"
)

// @title TrackBudget API
// @version 1.0
// @description Personal finance tracker with expense, income, savings, bill, asset and retirement tracking, premium subscriptions via Stripe.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	if err := logger.Init(os.Getenv("APP_ENV") != "production", os.Getenv("LOG_LEVEL")); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Expense{},
		&model.Income{},
		&model.SavingsBucket{},
		&model.Bill{},
		&model.Asset{},
		&model.RetirementPlan{},
		&model.RetirementContribution{},
		&model.CalendarNote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewOwned[model.Expense](gormDB, "date DESC")
	incomeRepo := repository.NewOwned[model.Income](gormDB, "date DESC")
	assetRepo := repository.NewOwned[model.Asset](gormDB, "worth DESC")
	contributionRepo := repository.NewOwned[model.RetirementContribution](gormDB, "date DESC")
	calendarRepo := repository.NewOwned[model.CalendarNote](gormDB, "date ASC")
	savingsRepo := repository.NewSavingsRepository(gormDB)
	billRepo := repository.NewBillRepository(gormDB)
	retirementRepo := repository.NewRetirementRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Billing authority
	stripeAuthority := billing.NewStripeAuthority(cfg.StripeSecretKey, cfg.StripePriceID, cfg.ClientURL)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(userRepo, stripeAuthority, cacheClient, cfg.IsAdmin)
	accountService := service.NewAccountService(userRepo, tokenStore, cacheClient)
	ledgerService := service.NewLedgerService(expenseRepo, incomeRepo, assetRepo, billRepo)
	retirementService := service.NewRetirementService(retirementRepo)

	// Handlers
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Profile:       handler.NewProfileHandler(profileService, accountService),
		Billing:       handler.NewBillingHandler(stripeAuthority),
		Ledger:        handler.NewLedgerHandler(ledgerService),
		Retirement:    handler.NewRetirementHandler(retirementService),
		Savings:       handler.NewSavingsHandler(savingsRepo),
		Bills:         handler.NewBillHandler(billRepo),
		Expenses:      handler.NewCrudHandler[model.Expense, *model.Expense](expenseRepo),
		Income:        handler.NewCrudHandler[model.Income, *model.Income](incomeRepo),
		Assets:        handler.NewCrudHandler[model.Asset, *model.Asset](assetRepo),
		Contributions: handler.NewCrudHandler[model.RetirementContribution, *model.RetirementContribution](contributionRepo),
		Calendar:      handler.NewCrudHandler[model.CalendarNote, *model.CalendarNote](calendarRepo),
	}

	e := echo.New()
	router.Register(e, cfg, tokenStore, handlers)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
