package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trackbudget/internal/config"
	"trackbudget/internal/db"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

const (
	demoEmail    = "demo@trackbudget.local"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Expense{},
		&model.Income{},
		&model.SavingsBucket{},
		&model.Bill{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	if _, err := userRepo.FindByEmail(ctx, demoEmail); err == nil {
		log.Println("Demo user already seeded, nothing to do")
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check demo user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		Email:        demoEmail,
		PasswordHash: string(hashed),
		FullName:     "Demo User",
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	expenseRepo := repository.NewOwned[model.Expense](gormDB, "date DESC")
	incomeRepo := repository.NewOwned[model.Income](gormDB, "date DESC")
	billRepo := repository.NewBillRepository(gormDB)

	expenses := []model.Expense{
		{UserID: user.ID, Name: "Rent", Amount: decimal.NewFromInt(1200), Date: "2025-01-01", WantOrNeed: model.TagNeed},
		{UserID: user.ID, Name: "Groceries", Amount: decimal.NewFromFloat(184.52), Date: "2025-01-04", WantOrNeed: model.TagNeed},
		{UserID: user.ID, Name: "Movies", Amount: decimal.NewFromInt(30), Date: "2025-01-02", WantOrNeed: model.TagWant},
	}
	for i := range expenses {
		if err := expenseRepo.Create(ctx, &expenses[i]); err != nil {
			log.Fatalf("Failed to seed expense: %v", err)
		}
	}

	income := model.Income{UserID: user.ID, Name: "Salary", Amount: decimal.NewFromInt(4200), Date: "2025-01-01"}
	if err := incomeRepo.Create(ctx, &income); err != nil {
		log.Fatalf("Failed to seed income: %v", err)
	}

	bill := model.Bill{UserID: user.ID, Name: "Electricity", Amount: decimal.NewFromFloat(92.10), DueDate: "2025-01-15", Type: "utility", Reminder: true}
	if err := billRepo.Create(ctx, &bill); err != nil {
		log.Fatalf("Failed to seed bill: %v", err)
	}

	log.Printf("Seeded demo user %s (id=%d)", demoEmail, user.ID)
}
