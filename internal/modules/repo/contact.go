package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// ContactFilter narrows contact listings. Search spans all text fields while
// Name, Email and Subject each match a single column.
type ContactFilter struct {
	Search  string
	Name    string
	Email   string
	Subject string
	Sort    string
}

type ContactRepo interface {
	Create(ctx context.Context, c *model.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, f ContactFilter, offset, limit int) ([]*model.Contact, int64, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	var c model.Contact
	return &c, r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
}

func (r *contactRepo) List(ctx context.Context, f ContactFilter, offset, limit int) ([]*model.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Contact{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ? OR message ILIKE ?", like, like, like, like)
	}
	if f.Name != "" {
		q = q.Where("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Email != "" {
		q = q.Where("email ILIKE ?", "%"+f.Email+"%")
	}
	if f.Subject != "" {
		q = q.Where("subject ILIKE ?", "%"+f.Subject+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	switch f.Sort {
	case "oldest":
		order = "created_at ASC"
	case "nameAsc":
		order = "name ASC"
	case "nameDesc":
		order = "name DESC"
	}

	var contacts []*model.Contact
	err := q.Order(order).Offset(offset).Limit(limit).Find(&contacts).Error
	return contacts, total, err
}
