package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// TaxonomyFilter narrows category and tag listings. Search matches name and
// description, Sort is one of newest, oldest, nameAsc, nameDesc.
type TaxonomyFilter struct {
	Search string
	Sort   string
}

func (f TaxonomyFilter) order() string {
	switch f.Sort {
	case "oldest":
		return "created_at ASC"
	case "nameAsc":
		return "name ASC"
	case "nameDesc":
		return "name DESC"
	default:
		return "created_at DESC"
	}
}

type CategoryRepo interface {
	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, f TaxonomyFilter, offset, limit int) ([]*model.Category, int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Where(&model.Category{ID: c.ID}).Updates(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	return &c, r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepo) List(ctx context.Context, f TaxonomyFilter, offset, limit int) ([]*model.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Category{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []*model.Category
	err := q.Order(f.order()).Offset(offset).Limit(limit).Find(&categories).Error
	return categories, total, err
}
