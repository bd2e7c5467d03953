package repository

import (
	"context"
	"fmt"

	"kanban/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) GetAllColumns(ctx context.Context) ([]ds.Column, error) {
	return findAll[ds.Column](ctx, r.db, "")
}

func (r *Repository) GetColumnByID(ctx context.Context, id uint) (*ds.Column, error) {
	return findByID[ds.Column](ctx, r.db, id)
}

func (r *Repository) GetColumnsByOwner(ctx context.Context, ownerID uint) ([]ds.Column, error) {
	return findAll[ds.Column](ctx, r.db, "owner_id = ?", ownerID)
}

func (r *Repository) CreateColumn(ctx context.Context, ownerID uint, title string) (*ds.Column, error) {
	column := ds.Column{
		ColumnTitle: title,
		OwnerID:     ownerID,
	}
	if err := r.db.WithContext(ctx).Create(&column).Error; err != nil {
		return nil, fmt.Errorf("create column: %w", err)
	}
	return &column, nil
}

func (r *Repository) UpdateColumnTitle(ctx context.Context, id uint, title string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ds.Column{}).Where("id = ?", id).Update("column_title", title)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteColumn удаляет колонку вместе с карточками и их комментариями.
// images: изображения удалённых карточек.
func (r *Repository) DeleteColumn(ctx context.Context, id uint) (deleted bool, images []string, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cardIDs []uint
		if err := tx.Model(&ds.Card{}).Where("column_id = ?", id).Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		cardImages, err := deleteCards(tx, cardIDs)
		if err != nil {
			return err
		}
		images = cardImages

		res := tx.Delete(&ds.Column{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, nil, fmt.Errorf("delete column %d: %w", id, err)
	}
	return deleted, images, nil
}

func (r *Repository) ColumnOwnedBy(ctx context.Context, columnID, userID uint) (bool, error) {
	return exists(ctx, r.db, &ds.Column{}, "id = ? AND owner_id = ?", columnID, userID)
}
