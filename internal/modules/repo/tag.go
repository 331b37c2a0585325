package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

type TagRepo interface {
	Create(ctx context.Context, t *model.Tag) error
	Update(ctx context.Context, t *model.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Tag, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, f TaxonomyFilter, offset, limit int) ([]*model.Tag, int64, error)
}

type tagRepo struct{ db *gorm.DB }

func NewTagRepo(db *gorm.DB) TagRepo {
	return &tagRepo{db: db}
}

func (r *tagRepo) Create(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tagRepo) Update(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Where(&model.Tag{ID: t.ID}).Updates(t).Error
}

func (r *tagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Tag{}).Error
	})
}

func (r *tagRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	var t model.Tag
	return &t, r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
}

func (r *tagRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Tag, error) {
	var tags []model.Tag
	return tags, r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
}

func (r *tagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *tagRepo) List(ctx context.Context, f TaxonomyFilter, offset, limit int) ([]*model.Tag, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tag{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tags []*model.Tag
	err := q.Order(f.order()).Offset(offset).Limit(limit).Find(&tags).Error
	return tags, total, err
}
