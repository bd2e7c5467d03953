package repository

import (
	"context"
	"errors"
	"fmt"

	"kanban/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*ds.User, error) {
	return findByID[ds.User](ctx, r.db, id)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetAllUsers(ctx context.Context) ([]ds.User, error) {
	return findAll[ds.User](ctx, r.db, "")
}

func (r *Repository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, &ds.User{}, "email = ?", email)
}

// CreateUser passwordHash должен быть уже захеширован
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string, isAdmin bool) (*ds.User, error) {
	taken, err := r.UserExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	user := ds.User{
		Email:    email,
		Password: passwordHash,
		IsAdmin:  isAdmin,
	}

	err = r.db.WithContext(ctx).Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// параллельная регистрация с тем же email
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &user, nil
}

// SetAdmin выставляет флаг isAdmin, false если пользователя нет
func (r *Repository) SetAdmin(ctx context.Context, id uint, isAdmin bool) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ds.User{}).Where("id = ?", id).Update("is_admin", isAdmin)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteUser удаляет пользователя и всё, что от него зависит: его колонки с
// карточками, его карточки в чужих колонках, комментарии к удаляемым карточкам
// и его собственные комментарии. images: изображения удалённых карточек.
func (r *Repository) DeleteUser(ctx context.Context, id uint) (deleted bool, images []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var columnIDs []uint
		if err := tx.Model(&ds.Column{}).Where("owner_id = ?", id).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}

		var cardIDs []uint
		q := tx.Model(&ds.Card{}).Where("owner_id = ?", id)
		if len(columnIDs) > 0 {
			q = q.Or("column_id IN ?", columnIDs)
		}
		if err := q.Pluck("id", &cardIDs).Error; err != nil {
			return err
		}

		cardImages, err := deleteCards(tx, cardIDs)
		if err != nil {
			return err
		}
		images = cardImages
		if err := tx.Where("author_id = ?", id).Delete(&ds.Comment{}).Error; err != nil {
			return err
		}
		if len(columnIDs) > 0 {
			if err := tx.Where("id IN ?", columnIDs).Delete(&ds.Column{}).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&ds.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, nil, fmt.Errorf("delete user %d: %w", id, err)
	}
	return deleted, images, nil
}
