package repository

import (
	"context"
	"fmt"

	"kanban/internal/app/ds"
)

func (r *Repository) GetAllComments(ctx context.Context) ([]ds.Comment, error) {
	return findAll[ds.Comment](ctx, r.db, "")
}

func (r *Repository) GetCommentByID(ctx context.Context, id uint) (*ds.Comment, error) {
	return findByID[ds.Comment](ctx, r.db, id)
}

func (r *Repository) GetCommentsByCard(ctx context.Context, cardID uint) ([]ds.Comment, error) {
	return findAll[ds.Comment](ctx, r.db, "card_id = ?", cardID)
}

func (r *Repository) CreateComment(ctx context.Context, cardID, authorID uint, text string) (*ds.Comment, error) {
	comment := ds.Comment{
		Text:     text,
		AuthorID: authorID,
		CardID:   cardID,
	}
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}

func (r *Repository) UpdateCommentText(ctx context.Context, id uint, text string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ds.Comment{}).Where("id = ?", id).Update("text", text)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ds.Comment{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete comment %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository) CommentAuthoredBy(ctx context.Context, commentID, userID uint) (bool, error) {
	return exists(ctx, r.db, &ds.Comment{}, "id = ? AND author_id = ?", commentID, userID)
}
