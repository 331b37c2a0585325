package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// NewsletterFilter narrows subscriber listings. Sort is one of newest,
// oldest, emailAsc, emailDesc.
type NewsletterFilter struct {
	Search string
	Email  string
	Sort   string
}

type NewsletterRepo interface {
	Create(ctx context.Context, s *model.NewsletterSubscriber) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.NewsletterSubscriber, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f NewsletterFilter, offset, limit int) ([]*model.NewsletterSubscriber, int64, error)
}

type newsletterRepo struct{ db *gorm.DB }

func NewNewsletterRepo(db *gorm.DB) NewsletterRepo {
	return &newsletterRepo{db: db}
}

func (r *newsletterRepo) Create(ctx context.Context, s *model.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *newsletterRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.NewsletterSubscriber, error) {
	var s model.NewsletterSubscriber
	return &s, r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
}

func (r *newsletterRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NewsletterSubscriber{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *newsletterRepo) List(ctx context.Context, f NewsletterFilter, offset, limit int) ([]*model.NewsletterSubscriber, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.NewsletterSubscriber{})
	if f.Search != "" {
		q = q.Where("email ILIKE ?", "%"+f.Search+"%")
	}
	if f.Email != "" {
		q = q.Where("email ILIKE ?", "%"+f.Email+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch f.Sort {
	case "oldest":
		order = "created_at ASC"
	case "emailAsc":
		order = "email ASC"
	case "emailDesc":
		order = "email DESC"
	}

	var subs []*model.NewsletterSubscriber
	err := q.Order(order).Offset(offset).Limit(limit).Find(&subs).Error
	return subs, total, err
}
