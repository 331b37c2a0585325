package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// PostFilter narrows List results. Zero values mean "no filter".
type PostFilter struct {
	Status     model.PostStatus
	Placement  model.PostPlacement
	CategoryID uuid.UUID
	AuthorID   uuid.UUID
	TagID      uuid.UUID
	Search     string
	SortBy     string // created_at, updated_at, or title
	SortDesc   bool
}

type PostRepo interface {
	Create(ctx context.Context, p *model.Post) error
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, int64, error)
	ReplaceTags(ctx context.Context, p *model.Post, tags []model.Tag) error
}

type postRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepo) Update(ctx context.Context, p *model.Post) error {
	return r.db.WithContext(ctx).Model(&model.Post{ID: p.ID}).Updates(p).Error
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

func (r *postRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Author").Preload("Tags").
		Where("id = ?", id).First(&p).Error
	return &p, err
}

func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Author").Preload("Tags").
		Where("slug = ?", slug).First(&p).Error
	return &p, err
}

func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *postRepo) List(ctx context.Context, f PostFilter, offset, limit int) ([]*model.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if f.Status != "" {
		q = q.Where("posts.status = ?", f.Status)
	}
	if f.Placement != "" {
		q = q.Where("posts.placement = ?", f.Placement)
	}
	if f.CategoryID != uuid.Nil {
		q = q.Where("posts.category_id = ?", f.CategoryID)
	}
	if f.AuthorID != uuid.Nil {
		q = q.Where("posts.author_id = ?", f.AuthorID)
	}
	if f.TagID != uuid.Nil {
		q = q.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", f.TagID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("posts.title ILIKE ? OR posts.excerpt ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col := "posts.created_at"
	switch f.SortBy {
	case "updated_at":
		col = "posts.updated_at"
	case "title":
		col = "posts.title"
	}
	dir := " ASC"
	if f.SortDesc {
		dir = " DESC"
	}

	var posts []*model.Post
	err := q.Preload("Category").Preload("Author").Preload("Tags").
		Order(col + dir).Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

func (r *postRepo) ReplaceTags(ctx context.Context, p *model.Post, tags []model.Tag) error {
	return r.db.WithContext(ctx).Model(p).Association("Tags").Replace(tags)
}
