package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	slugCachePrefix = "post:slug:"
	slugCacheTTL    = 10 * time.Minute
	readingWPM      = 200
)

type CreatePostInput struct {
	Title      string      `json:"title" binding:"required"`
	Excerpt    string      `json:"excerpt"`
	Content    string      `json:"content" binding:"required"`
	CoverImage string      `json:"cover_image"`
	CategoryID uuid.UUID   `json:"category_id" binding:"required"`
	TagIDs     []uuid.UUID `json:"tag_ids"`
}

type UpdatePostInput struct {
	Title      *string      `json:"title"`
	Excerpt    *string      `json:"excerpt"`
	Content    *string      `json:"content"`
	CoverImage *string      `json:"cover_image"`
	CategoryID *uuid.UUID   `json:"category_id"`
	TagIDs     *[]uuid.UUID `json:"tag_ids"`
}

type ListPostsInput struct {
	paging.Params
	Status     string    `form:"status" json:"status"`
	Placement  string    `form:"placement" json:"placement" binding:"omitempty,oneof=general featured popular"`
	CategoryID uuid.UUID `form:"category_id" json:"category_id"`
	TagID      uuid.UUID `form:"tag_id" json:"tag_id"`
	AuthorID   uuid.UUID `form:"author_id" json:"author_id"`
	Search     string    `form:"searchTerm" json:"search"`
	SortBy     string    `form:"sortBy" json:"sort_by" binding:"omitempty,oneof=createdAt updatedAt title"`
	SortOrder  string    `form:"sortOrder" json:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type PostService interface {
	Create(ctx context.Context, p *roles.Principal, in CreatePostInput) (*model.Post, error)
	Update(ctx context.Context, p *roles.Principal, postID uuid.UUID, in UpdatePostInput) (*model.Post, error)
	Delete(ctx context.Context, p *roles.Principal, postID uuid.UUID) error
	GetByID(ctx context.Context, postID uuid.UUID) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	List(ctx context.Context, p *roles.Principal, in ListPostsInput) ([]*model.Post, *paging.Meta, error)
	ChangeStatus(ctx context.Context, p *roles.Principal, postID uuid.UUID, status model.PostStatus) (*model.Post, error)
	ChangePlacement(ctx context.Context, p *roles.Principal, postID uuid.UUID, placement model.PostPlacement) (*model.Post, error)
}

type postService struct {
	r        repo.PostRepo
	tags     repo.TagRepo
	profiles repo.ProfileRepo
	cache    *redis.Client
	log      *zap.Logger
}

func NewPostService(r repo.PostRepo, tags repo.TagRepo, profiles repo.ProfileRepo, cache *redis.Client, log *zap.Logger) PostService {
	return &postService{r: r, tags: tags, profiles: profiles, cache: cache, log: log}
}

func (s *postService) Create(ctx context.Context, p *roles.Principal, in CreatePostInput) (*model.Post, error) {
	author, err := s.profiles.GetByUUID(ctx, p.ProfileUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("author profile not found")
		}
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, Slugify(in.Title))
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Slug:        slug,
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		CoverImage:  in.CoverImage,
		CategoryID:  in.CategoryID,
		AuthorID:    author.ID,
		ReadingTime: ReadingTime(in.Content),
		Status:      model.PostDraft,
		Placement:   model.PlacementGeneral,
	}
	if err := s.r.Create(ctx, post); err != nil {
		return nil, err
	}

	if len(in.TagIDs) > 0 {
		tags, err := s.tags.GetByIDs(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.r.ReplaceTags(ctx, post, tags); err != nil {
			return nil, err
		}
		post.Tags = tags
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, p *roles.Principal, postID uuid.UUID, in UpdatePostInput) (*model.Post, error) {
	post, err := s.getOwned(ctx, p, postID)
	if err != nil {
		return nil, err
	}
	oldSlug := post.Slug

	if in.Title != nil && *in.Title != post.Title {
		post.Title = *in.Title
		slug, err := s.uniqueSlug(ctx, Slugify(*in.Title))
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		post.Content = *in.Content
		post.ReadingTime = ReadingTime(*in.Content)
	}
	if in.CoverImage != nil {
		post.CoverImage = *in.CoverImage
	}
	if in.CategoryID != nil {
		post.CategoryID = *in.CategoryID
	}

	if err := s.r.Update(ctx, post); err != nil {
		return nil, err
	}
	if in.TagIDs != nil {
		tags, err := s.tags.GetByIDs(ctx, *in.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.r.ReplaceTags(ctx, post, tags); err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	// A title change moves the post to a new slug; the entry cached under
	// the old one must go too or it serves the stale post until TTL.
	if oldSlug != post.Slug {
		s.invalidateSlug(ctx, oldSlug)
	}
	s.invalidateSlug(ctx, post.Slug)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, p *roles.Principal, postID uuid.UUID) error {
	post, err := s.getOwned(ctx, p, postID)
	if err != nil {
		return err
	}
	if err := s.r.Delete(ctx, post.ID); err != nil {
		return err
	}
	s.invalidateSlug(ctx, post.Slug)
	return nil
}

func (s *postService) GetByID(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.r.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	return post, nil
}

// GetBySlug serves the public article page, so it reads through a short
// redis cache. Cache failures fall back to the database.
func (s *postService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, slugCachePrefix+slug).Bytes(); err == nil {
			var post model.Post
			if err := sonic.Unmarshal(raw, &post); err == nil {
				return &post, nil
			}
		}
	}

	post, err := s.r.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	if s.cache != nil {
		if raw, err := sonic.Marshal(post); err == nil {
			if err := s.cache.Set(ctx, slugCachePrefix+slug, raw, slugCacheTTL).Err(); err != nil {
				s.log.Warn("cache post by slug failed", zap.String("slug", slug), zap.Error(err))
			}
		}
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, p *roles.Principal, in ListPostsInput) ([]*model.Post, *paging.Meta, error) {
	f := repo.PostFilter{
		Placement:  model.PostPlacement(in.Placement),
		CategoryID: in.CategoryID,
		TagID:      in.TagID,
		AuthorID:   in.AuthorID,
		Search:     in.Search,
		// Newest first unless asked otherwise.
		SortDesc: in.SortOrder != "asc",
	}
	switch in.SortBy {
	case "updatedAt":
		f.SortBy = "updated_at"
	case "title":
		f.SortBy = "title"
	default:
		f.SortBy = "created_at"
	}
	// Readers only see published posts; staff may filter freely.
	if p == nil || !p.IsStaff() {
		f.Status = model.PostPublished
	} else if in.Status != "" && in.Status != "all" {
		f.Status = model.PostStatus(in.Status)
	}

	pg := in.Params.Normalize()
	posts, total, err := s.r.List(ctx, f, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return posts, &meta, nil
}

func (s *postService) ChangeStatus(ctx context.Context, p *roles.Principal, postID uuid.UUID, status model.PostStatus) (*model.Post, error) {
	switch status {
	case model.PostDraft, model.PostPublished, model.PostArchived:
	default:
		return nil, apperr.BadRequest("unknown post status")
	}

	post, err := s.getOwned(ctx, p, postID)
	if err != nil {
		return nil, err
	}
	// Publishing is a staff decision; authors move their own posts between
	// draft and archived only.
	if status == model.PostPublished && (p == nil || !p.IsStaff()) {
		return nil, apperr.Forbidden("publishing requires a staff role")
	}

	post.Status = status
	if err := s.r.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateSlug(ctx, post.Slug)
	return post, nil
}

func (s *postService) ChangePlacement(ctx context.Context, p *roles.Principal, postID uuid.UUID, placement model.PostPlacement) (*model.Post, error) {
	switch placement {
	case model.PlacementGeneral, model.PlacementFeatured, model.PlacementPopular:
	default:
		return nil, apperr.BadRequest("unknown post placement")
	}
	if p == nil || !p.IsStaff() {
		return nil, apperr.Forbidden("placement changes require a staff role")
	}

	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Placement = placement
	if err := s.r.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateSlug(ctx, post.Slug)
	return post, nil
}

func (s *postService) getOwned(ctx context.Context, p *roles.Principal, postID uuid.UUID) (*model.Post, error) {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p != nil && p.IsStaff() {
		return post, nil
	}
	if p != nil {
		author, err := s.profiles.GetByUUID(ctx, p.ProfileUUID)
		if err == nil && author.ID == post.AuthorID {
			return post, nil
		}
	}
	return nil, apperr.Forbidden("not allowed to modify this post")
}

func (s *postService) uniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		return "", apperr.BadRequest("title produces an empty slug")
	}
	slug := base
	for i := 2; ; i++ {
		exists, err := s.r.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *postService) invalidateSlug(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, slugCachePrefix+slug).Err(); err != nil {
		s.log.Warn("invalidate post cache failed", zap.String("slug", slug), zap.Error(err))
	}
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// ReadingTime estimates reading duration at roughly 200 words per minute,
// with a one minute floor.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + readingWPM - 1) / readingWPM
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
