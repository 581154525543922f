package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/config"
	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/container"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
)

// seed wipes the configured store and creates the fixture accounts. It is the way to
// bootstrap the first admin on a fresh deployment.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("seed failed")
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, closeStore, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	identity := application.NewIdentityService(
		helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL, helpers.RealClock{}),
		cfg.BcryptCost,
		cfg.CookieName,
	)
	admin := application.NewAdminService(store, identity, helpers.RealClock{})

	users, err := admin.Seed(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		logger.WithFields(logrus.Fields{"email": u.Email, "role": u.Role}).Info("seeded user")
	}
	logger.WithField("backend", store.BackendName()).Warn("store reset; fixture passwords are public, change them before real use")
	return nil
}
