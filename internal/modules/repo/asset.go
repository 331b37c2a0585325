package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssetFilter narrows List results. Zero values mean "no filter".
type AssetFilter struct {
	OwnerID uuid.UUID
	Status  model.AssetStatus
}

type AssetRepo interface {
	Create(ctx context.Context, a *model.Asset) error
	Update(ctx context.Context, a *model.Asset) error
	Save(ctx context.Context, a *model.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	GetByKey(ctx context.Context, key string) (*model.Asset, error)
	List(ctx context.Context, f AssetFilter, offset, limit int) ([]*model.Asset, int64, error)
	IncrementRef(ctx context.Context, id uuid.UUID, use model.AssetUseRef) (*model.Asset, error)
	DecrementRef(ctx context.Context, id uuid.UUID, use model.AssetUseRef) (*model.Asset, error)
	ListOrphanedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*model.Asset, error)
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepo(db *gorm.DB) AssetRepo {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assetRepo) Update(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Model(&model.Asset{ID: a.ID}).Updates(a).Error
}

// Save writes every column, including cleared nullable fields.
func (r *assetRepo) Save(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assetRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	return &a, r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
}

func (r *assetRepo) GetByKey(ctx context.Context, key string) (*model.Asset, error) {
	var a model.Asset
	return &a, r.db.WithContext(ctx).Where("key = ?", key).First(&a).Error
}

func (r *assetRepo) List(ctx context.Context, f AssetFilter, offset, limit int) ([]*model.Asset, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Asset{})
	if f.OwnerID != uuid.Nil {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assets []*model.Asset
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&assets).Error
	return assets, total, err
}

// IncrementRef bumps the reference counter and records the using entity.
// The row is locked for the duration so concurrent attach/detach cannot
// interleave between the counter and the used_by bookkeeping.
func (r *assetRepo) IncrementRef(ctx context.Context, id uuid.UUID, use model.AssetUseRef) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}

		a.RefCount++
		a.Status = model.AssetActive
		a.OrphanedAt = nil
		if !containsUse(a.UsedBy, use) {
			a.UsedBy = append(a.UsedBy, use)
		}

		return tx.Model(&model.Asset{ID: a.ID}).
			Select("ref_count", "status", "orphaned_at", "used_by").
			Updates(map[string]any{
				"ref_count":   a.RefCount,
				"status":      a.Status,
				"orphaned_at": nil,
				"used_by":     a.UsedBy,
			}).Error
	})
	return &a, err
}

// DecrementRef lowers the reference counter with a floor of zero. An asset
// whose counter reaches zero is marked orphaned and timestamped so the
// orphan listing can later pick it up.
func (r *assetRepo) DecrementRef(ctx context.Context, id uuid.UUID, use model.AssetUseRef) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&a).Error; err != nil {
			return err
		}

		if a.RefCount > 0 {
			a.RefCount--
		}
		a.UsedBy = removeUse(a.UsedBy, use)
		var orphanedAt *time.Time
		if a.RefCount == 0 && a.Status == model.AssetActive {
			now := time.Now()
			a.Status = model.AssetOrphaned
			a.OrphanedAt = &now
		}
		orphanedAt = a.OrphanedAt

		return tx.Model(&model.Asset{ID: a.ID}).
			Select("ref_count", "status", "orphaned_at", "used_by").
			Updates(map[string]any{
				"ref_count":   a.RefCount,
				"status":      a.Status,
				"orphaned_at": orphanedAt,
				"used_by":     a.UsedBy,
			}).Error
	})
	return &a, err
}

func (r *assetRepo) ListOrphanedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*model.Asset, error) {
	var assets []*model.Asset
	err := r.db.WithContext(ctx).
		Where("status = ? AND orphaned_at < ?", model.AssetOrphaned, cutoff).
		Order("orphaned_at ASC").Limit(limit).Find(&assets).Error
	return assets, err
}

func containsUse(uses []model.AssetUseRef, use model.AssetUseRef) bool {
	for _, u := range uses {
		if u.Kind == use.Kind && u.RefID == use.RefID && u.Field == use.Field {
			return true
		}
	}
	return false
}

func removeUse(uses []model.AssetUseRef, use model.AssetUseRef) []model.AssetUseRef {
	out := uses[:0]
	removed := false
	for _, u := range uses {
		if !removed && u.Kind == use.Kind && u.RefID == use.RefID && u.Field == use.Field {
			removed = true
			continue
		}
		out = append(out, u)
	}
	return out
}
