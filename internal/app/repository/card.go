package repository

import (
	"context"
	"fmt"

	"kanban/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) GetAllCards(ctx context.Context) ([]ds.Card, error) {
	return findAll[ds.Card](ctx, r.db, "")
}

func (r *Repository) GetCardByID(ctx context.Context, id uint) (*ds.Card, error) {
	return findByID[ds.Card](ctx, r.db, id)
}

func (r *Repository) GetCardsByColumn(ctx context.Context, columnID uint) ([]ds.Card, error) {
	return findAll[ds.Card](ctx, r.db, "column_id = ?", columnID)
}

func (r *Repository) CreateCard(ctx context.Context, columnID, ownerID uint, title, text string) (*ds.Card, error) {
	card := ds.Card{
		CardTitle: title,
		CardText:  text,
		ColumnID:  columnID,
		OwnerID:   ownerID,
	}
	if err := r.db.WithContext(ctx).Create(&card).Error; err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return &card, nil
}

func (r *Repository) UpdateCardTitle(ctx context.Context, id uint, title string) (bool, error) {
	return r.updateCardField(ctx, id, "card_title", title)
}

func (r *Repository) UpdateCardText(ctx context.Context, id uint, text string) (bool, error) {
	return r.updateCardField(ctx, id, "card_text", text)
}

// SetCardImage nil очищает ссылку на изображение
func (r *Repository) SetCardImage(ctx context.Context, id uint, objectName *string) (bool, error) {
	return r.updateCardField(ctx, id, "image_url", objectName)
}

func (r *Repository) updateCardField(ctx context.Context, id uint, field string, value interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ds.Card{}).Where("id = ?", id).Update(field, value)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteCard удаляет карточку и её комментарии
func (r *Repository) DeleteCard(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&ds.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&ds.Card{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete card %d: %w", id, err)
	}
	return deleted, nil
}

func (r *Repository) CardOwnedBy(ctx context.Context, cardID, userID uint) (bool, error) {
	return exists(ctx, r.db, &ds.Card{}, "id = ? AND owner_id = ?", cardID, userID)
}
