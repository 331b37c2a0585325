package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
)

// ProfileFilter narrows profile listings. Search matches display name, bio,
// location and uuid; Location is an exact match; HasAvatar distinguishes
// profiles with and without an avatar url.
type ProfileFilter struct {
	Search    string
	Location  string
	HasAvatar *bool
	Sort      string
}

type ProfileRepo interface {
	Create(ctx context.Context, p *model.Profile) error
	Update(ctx context.Context, p *model.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByUUID(ctx context.Context, profileUUID string) (*model.Profile, error)
	List(ctx context.Context, f ProfileFilter, offset, limit int) ([]*model.Profile, int64, error)
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) Update(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Where(&model.Profile{ID: p.ID}).Updates(p).Error
}

func (r *profileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Profile{}).Error
}

func (r *profileRepo) GetByUUID(ctx context.Context, profileUUID string) (*model.Profile, error) {
	var p model.Profile
	return &p, r.db.WithContext(ctx).Where("uuid = ?", profileUUID).First(&p).Error
}

func (r *profileRepo) List(ctx context.Context, f ProfileFilter, offset, limit int) ([]*model.Profile, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Profile{})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("display_name ILIKE ? OR bio ILIKE ? OR location ILIKE ? OR uuid ILIKE ?", like, like, like, like)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.HasAvatar != nil {
		if *f.HasAvatar {
			q = q.Where("avatar_url IS NOT NULL")
		} else {
			q = q.Where("avatar_url IS NULL")
		}
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
		order = "display_name ASC"
	case "nameDesc":
		order = "display_name DESC"
	}

	var profiles []*model.Profile
	err := q.Order(order).Offset(offset).Limit(limit).Find(&profiles).Error
	return profiles, total, err
}
