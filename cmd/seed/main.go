package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/internal/users"
	"github.com/oscarfuentes/gasinv-backend/pkg/config"
	"github.com/oscarfuentes/gasinv-backend/pkg/db"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
	"github.com/oscarfuentes/gasinv-backend/pkg/logger"
	"github.com/oscarfuentes/gasinv-backend/pkg/security"
)

// Bootstraps the initial superadmin account so a fresh deployment can log in.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.SuperadminEmail))
	if email == "" || cfg.Seed.SuperadminPassword == "" {
		logg.Error(ctx, "seed requires superadmin email and password", nil)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := users.NewRepository(dbClient.DB())

	ctx = logg.WithFields(ctx, map[string]any{"email": email})

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logg.Error(ctx, "failed to look up superadmin", err)
		os.Exit(1)
	}
	if existing != nil {
		logg.Info(ctx, "superadmin already exists, nothing to do")
		return
	}

	hash, err := security.HashPassword(cfg.Seed.SuperadminPassword, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash superadmin password", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Super",
		LastName:     "Admin",
		Role:         enums.UserRoleSuperadmin,
		IsActive:     true,
	}
	if _, err := repo.Create(ctx, user); err != nil {
		logg.Error(ctx, "failed to create superadmin", err)
		os.Exit(1)
	}

	logg.Info(ctx, "superadmin created")
}
