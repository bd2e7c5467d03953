package main

import (
	"context"
	"errors"
	"os"

	"kanban/internal/app/config"
	"kanban/internal/app/dsn"
	"kanban/internal/app/password"
	"kanban/internal/app/repository"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewDatabaseConfig()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	// Получение DSN строки подключения
	dsnStr, err := dsn.FromConfig(cfg.Database)
	if err != nil {
		logrus.Fatalf("dsn: %v", err)
	}

	// New сразу прогоняет AutoMigrate всех моделей
	repo, err := repository.New(cfg.Database.Driver, dsnStr)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	defer repo.Close()

	logrus.Info("Database migration completed successfully")

	if err := seedAdmin(context.Background(), repo, os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logrus.Fatalf("seed admin: %v", err)
	}
}

// seedAdmin создаёт администратора или повышает существующего пользователя
func seedAdmin(ctx context.Context, repo *repository.Repository, email, plain string) error {
	if email == "" {
		return nil
	}

	user, err := repo.GetUserByEmail(ctx, email)
	if err == nil {
		if _, err := repo.SetAdmin(ctx, user.ID, true); err != nil {
			return err
		}
		logrus.Infof("user %s promoted to admin", email)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if len(plain) < 6 {
		return errors.New("ADMIN_PASSWORD must be at least 6 characters")
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}
	admin, err := repo.CreateUser(ctx, email, hash, true)
	if err != nil {
		return err
	}
	logrus.Infof("admin %s created with id %d", email, admin.ID)
	return nil
}
