package model

import (
	"time"

	"github.com/google/uuid"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
	CommentSpam     CommentStatus = "spam"
	CommentDeleted  CommentStatus = "deleted"
)

// DeletedPlaceholder replaces the body of soft-deleted comments at render
// time. The stored content is kept intact for moderation review.
const DeletedPlaceholder = "[deleted]"

type Comment struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PostID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`

	Content string        `gorm:"type:text;not null" json:"-"`
	Status  CommentStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`

	EditedAt  *time.Time `json:"edited_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index:idx_comments_post_created,priority:2" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Author *Profile `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"author,omitempty"`
	Parent *Comment `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Comment) TableName() string { return "comments" }

// DisplayContent returns the body readers should see. Deleted comments
// keep their stored content but render as a placeholder.
func (c *Comment) DisplayContent() string {
	if c.Status == CommentDeleted {
		return DeletedPlaceholder
	}
	return c.Content
}
