package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kanban/internal/app/config"
	"kanban/internal/app/ds"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email is already registered")
)

type Repository struct {
	db *gorm.DB
}

func New(driver, dsn string) (*Repository, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// sqlite сериализует запись, одно соединение исключает "database is locked"
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

// Migrate создаёт/обновляет таблицы всех моделей
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ds.User{},
		&ds.Column{},
		&ds.Card{},
		&ds.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var v T
	err := db.WithContext(ctx).First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func findAll[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) ([]T, error) {
	items := []T{}
	q := db.WithContext(ctx).Order("id")
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(model).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// deleteCards удаляет карточки вместе с их комментариями, вызывать внутри транзакции.
// Возвращает имена изображений удалённых карточек для очистки в MinIO.
func deleteCards(tx *gorm.DB, cardIDs []uint) ([]string, error) {
	if len(cardIDs) == 0 {
		return nil, nil
	}
	var images []string
	if err := tx.Model(&ds.Card{}).Where("id IN ? AND image_url IS NOT NULL", cardIDs).Pluck("image_url", &images).Error; err != nil {
		return nil, fmt.Errorf("collect card images: %w", err)
	}
	if err := tx.Where("card_id IN ?", cardIDs).Delete(&ds.Comment{}).Error; err != nil {
		return nil, fmt.Errorf("delete comments: %w", err)
	}
	if err := tx.Where("id IN ?", cardIDs).Delete(&ds.Card{}).Error; err != nil {
		return nil, fmt.Errorf("delete cards: %w", err)
	}
	return images, nil
}
