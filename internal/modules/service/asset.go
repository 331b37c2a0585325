package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/infra/blob"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssetService interface {
	Upload(ctx context.Context, p *roles.Principal, data []byte, contentType, originalName string) (*model.Asset, error)
	Replace(ctx context.Context, p *roles.Principal, assetID uuid.UUID, data []byte, contentType, originalName string) (*model.Asset, error)
	Delete(ctx context.Context, p *roles.Principal, assetID uuid.UUID) error
	DeleteByURL(ctx context.Context, p *roles.Principal, rawURL string) error
	Get(ctx context.Context, assetID uuid.UUID) (*model.Asset, error)
	List(ctx context.Context, f repo.AssetFilter, pg paging.Params) ([]*model.Asset, *paging.Meta, error)
	ListOrphaned(ctx context.Context, olderThan time.Duration, limit int) ([]*model.Asset, error)
	IncrementRef(ctx context.Context, assetID uuid.UUID, use model.AssetUseRef) (*model.Asset, error)
	DecrementRef(ctx context.Context, assetID uuid.UUID, use model.AssetUseRef) (*model.Asset, error)
}

type assetService struct {
	r     repo.AssetRepo
	store blob.ObjectStore
	log   *zap.Logger
}

func NewAssetService(r repo.AssetRepo, store blob.ObjectStore, log *zap.Logger) AssetService {
	return &assetService{r: r, store: store, log: log}
}

func (s *assetService) Upload(ctx context.Context, p *roles.Principal, data []byte, contentType, originalName string) (*model.Asset, error) {
	if len(data) == 0 {
		return nil, apperr.BadRequest("empty upload payload")
	}

	res, err := s.store.Upload(ctx, data, contentType, originalName)
	if err != nil {
		return nil, err
	}

	size := int64(len(data))
	asset := &model.Asset{
		URL:      res.URL,
		Provider: "s3",
		Key:      res.Key,
		OwnerID:  p.UserID,
		Status:   model.AssetActive,
		MimeType: &contentType,
		Size:     &size,
		Width:    res.Width,
		Height:   res.Height,
	}
	if res.Format != "" {
		asset.Format = &res.Format
	}
	if originalName != "" {
		asset.OriginalName = &originalName
	}

	if err := s.r.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("create asset record: %w", err)
	}
	return asset, nil
}

// Replace uploads the new object first so a failed upload leaves the asset
// untouched. The old object is destroyed best-effort after the row is
// updated; a destroy failure is logged and swallowed since the asset
// already points at the new key.
func (s *assetService) Replace(ctx context.Context, p *roles.Principal, assetID uuid.UUID, data []byte, contentType, originalName string) (*model.Asset, error) {
	asset, err := s.r.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("asset not found")
		}
		return nil, err
	}
	if !p.CanManage(asset.OwnerID) {
		return nil, apperr.Forbidden("not allowed to replace this asset")
	}

	res, err := s.store.Upload(ctx, data, contentType, originalName)
	if err != nil {
		return nil, err
	}

	oldKey := asset.Key
	size := int64(len(data))
	asset.URL = res.URL
	asset.Key = res.Key
	asset.MimeType = &contentType
	asset.Size = &size
	asset.Width = res.Width
	asset.Height = res.Height
	if res.Format != "" {
		asset.Format = &res.Format
	} else {
		asset.Format = nil
	}
	if originalName != "" {
		asset.OriginalName = &originalName
	}
	// Replace preserves identity and ref_count but revives the lifecycle:
	// the asset points at a live object again.
	asset.Status = model.AssetActive
	asset.OrphanedAt = nil
	asset.DeletedAt = nil

	if err := s.r.Save(ctx, asset); err != nil {
		return nil, fmt.Errorf("update asset record: %w", err)
	}

	if err := s.store.Destroy(ctx, oldKey); err != nil {
		s.log.Warn("failed to destroy replaced object",
			zap.String("asset_id", asset.ID.String()),
			zap.String("key", oldKey),
			zap.Error(err))
	}

	return asset, nil
}

// Delete runs a two-phase remove: the row is marked pending_delete before
// the remote destroy, so a crash or provider failure leaves a marker the
// orphan listing can surface it instead of an untracked remote object.
func (s *assetService) Delete(ctx context.Context, p *roles.Principal, assetID uuid.UUID) error {
	asset, err := s.r.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("asset not found")
		}
		return err
	}
	return s.delete(ctx, p, asset)
}

func (s *assetService) delete(ctx context.Context, p *roles.Principal, asset *model.Asset) error {
	if !p.CanManage(asset.OwnerID) {
		return apperr.Forbidden("not allowed to delete this asset")
	}
	if asset.Status == model.AssetDeleted {
		return apperr.Conflict("asset already deleted")
	}
	if asset.RefCount > 0 {
		return apperr.Conflict(fmt.Sprintf("Asset is still used in %d place(s). Detach first.", asset.RefCount))
	}

	asset.Status = model.AssetPendingDelete
	if err := s.r.Update(ctx, asset); err != nil {
		return fmt.Errorf("mark asset pending delete: %w", err)
	}

	if err := s.store.Destroy(ctx, asset.Key); err != nil {
		s.log.Error("remote destroy failed, asset left pending_delete",
			zap.String("asset_id", asset.ID.String()),
			zap.String("key", asset.Key),
			zap.Error(err))
		return err
	}

	now := time.Now()
	asset.Status = model.AssetDeleted
	asset.DeletedAt = &now
	if err := s.r.Update(ctx, asset); err != nil {
		return fmt.Errorf("mark asset deleted: %w", err)
	}
	return nil
}

func (s *assetService) DeleteByURL(ctx context.Context, p *roles.Principal, rawURL string) error {
	key := blob.KeyFromURL(rawURL)
	if key == "" {
		return apperr.BadRequest("could not resolve storage key from url")
	}

	asset, err := s.r.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("asset not found")
		}
		return err
	}
	return s.delete(ctx, p, asset)
}

func (s *assetService) Get(ctx context.Context, assetID uuid.UUID) (*model.Asset, error) {
	asset, err := s.r.GetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("asset not found")
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) List(ctx context.Context, f repo.AssetFilter, pg paging.Params) ([]*model.Asset, *paging.Meta, error) {
	pg = pg.Normalize()
	assets, total, err := s.r.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return assets, &meta, nil
}

// ListOrphaned surfaces assets that have sat at refcount zero past the
// cutoff, for out-of-band cleanup by an operator.
func (s *assetService) ListOrphaned(ctx context.Context, olderThan time.Duration, limit int) ([]*model.Asset, error) {
	if olderThan <= 0 {
		olderThan = 24 * time.Hour
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.r.ListOrphanedBefore(ctx, time.Now().Add(-olderThan), limit)
}

func (s *assetService) IncrementRef(ctx context.Context, assetID uuid.UUID, use model.AssetUseRef) (*model.Asset, error) {
	asset, err := s.r.IncrementRef(ctx, assetID, use)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("asset not found")
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) DecrementRef(ctx context.Context, assetID uuid.UUID, use model.AssetUseRef) (*model.Asset, error) {
	asset, err := s.r.DecrementRef(ctx, assetID, use)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("asset not found")
		}
		return nil, err
	}
	return asset, nil
}
