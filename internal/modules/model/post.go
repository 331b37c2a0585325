package model

import (
	"time"

	"github.com/google/uuid"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

type PostPlacement string

const (
	PlacementGeneral  PostPlacement = "general"
	PlacementFeatured PostPlacement = "featured"
	PlacementPopular  PostPlacement = "popular"
)

type Post struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug    string    `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Title   string    `gorm:"type:text;not null" json:"title"`
	Excerpt string    `gorm:"type:text;not null" json:"excerpt"`
	Content string    `gorm:"type:text;not null" json:"content"`

	CoverImage string `gorm:"type:text;not null" json:"cover_image"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_category_created,priority:1" json:"category_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author_created,priority:1" json:"author_id"`

	ReadingTime string        `gorm:"type:text;not null" json:"reading_time"`
	Status      PostStatus    `gorm:"type:text;not null;default:'draft';index" json:"status"`
	Placement   PostPlacement `gorm:"type:text;not null;default:'general';index" json:"placement"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_posts_category_created,priority:2;index:idx_posts_author_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Post <-> Category / Profile / Tag
	Category *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"category,omitempty"`
	Author   *Profile  `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"author,omitempty"`
	Tags     []Tag     `gorm:"many2many:post_tags;" json:"tags,omitempty"`
}

func (Post) TableName() string { return "posts" }
