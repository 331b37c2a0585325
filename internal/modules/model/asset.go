package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssetStatus string

const (
	AssetActive        AssetStatus = "active"
	AssetOrphaned      AssetStatus = "orphaned"
	AssetPendingDelete AssetStatus = "pending_delete"
	AssetDeleted       AssetStatus = "deleted"
)

// AssetUseRef records one place an asset is referenced from.
type AssetUseRef struct {
	Kind  string    `json:"kind"`
	RefID uuid.UUID `json:"ref_id"`
	Field string    `json:"field,omitempty"`
}

type Asset struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	URL      string    `gorm:"type:text;not null" json:"url"`
	Provider string    `gorm:"type:varchar(32);not null;default:'s3'" json:"provider"`
	Key      string    `gorm:"type:text;not null;uniqueIndex" json:"key"`
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index:idx_assets_owner_created,priority:1" json:"owner_id"`

	Status   AssetStatus                        `gorm:"type:text;not null;default:'active';index:idx_assets_status_orphaned,priority:1" json:"status"`
	RefCount int                                `gorm:"not null;default:0;check:ref_count >= 0" json:"ref_count"`
	UsedBy   datatypes.JSONSlice[AssetUseRef]   `gorm:"type:jsonb" json:"used_by"`

	MimeType     *string `gorm:"type:varchar(128)" json:"mime_type,omitempty"`
	Size         *int64  `json:"size,omitempty"`
	Width        *int    `json:"width,omitempty"`
	Height       *int    `json:"height,omitempty"`
	Format       *string `gorm:"type:varchar(16)" json:"format,omitempty"`
	OriginalName *string `gorm:"type:text" json:"original_name,omitempty"`

	OrphanedAt *time.Time `gorm:"index:idx_assets_status_orphaned,priority:2" json:"orphaned_at,omitempty"`
	// Plain pointer, not gorm.DeletedAt: deletion is an explicit lifecycle
	// state and queries must see deleted rows.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_assets_owner_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string { return "assets" }
