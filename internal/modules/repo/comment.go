package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// CommentFilter narrows ListByPost results.
type CommentFilter struct {
	// Statuses limits visibility; empty means all statuses.
	Statuses []model.CommentStatus
	// TopLevelOnly skips replies; pair with RepliesCount to build a thread view.
	TopLevelOnly bool
	SortAsc      bool
}

type CommentRepo interface {
	Create(ctx context.Context, c *model.Comment) error
	Update(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, f CommentFilter, offset, limit int) ([]*model.Comment, int64, error)
	RepliesCount(ctx context.Context, parentIDs []uuid.UUID, statuses []model.CommentStatus) (map[uuid.UUID]int64, error)
}

type commentRepo struct{ db *gorm.DB }

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepo) Update(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Model(&model.Comment{ID: c.ID}).Updates(c).Error
}

func (r *commentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var c model.Comment
	return &c, r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&c).Error
}

func (r *commentRepo) ListByPost(ctx context.Context, postID uuid.UUID, f CommentFilter, offset, limit int) ([]*model.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID)
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	if f.TopLevelOnly {
		q = q.Where("parent_id IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if f.SortAsc {
		order = "created_at ASC"
	}

	var comments []*model.Comment
	err := q.Preload("Author").Order(order).Offset(offset).Limit(limit).Find(&comments).Error
	return comments, total, err
}

// RepliesCount returns reply counts per parent in a single grouped query.
func (r *commentRepo) RepliesCount(ctx context.Context, parentIDs []uuid.UUID, statuses []model.CommentStatus) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(parentIDs))
	if len(parentIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ParentID uuid.UUID
		Total    int64
	}
	q := r.db.WithContext(ctx).Model(&model.Comment{}).
		Select("parent_id, COUNT(*) AS total").
		Where("parent_id IN ?", parentIDs)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}

	var rows []row
	if err := q.Group("parent_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.ParentID] = rw.Total
	}
	return counts, nil
}
