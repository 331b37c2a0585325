package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/infra/queue"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateCommentInput struct {
	Content  string     `json:"content" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type ListCommentsInput struct {
	paging.Params
	// IncludeReplies flattens the thread into one page; otherwise only
	// top-level comments are returned, each annotated with its reply count.
	IncludeReplies bool   `form:"includeReplies" json:"include_replies"`
	SortOrder      string `form:"sortOrder" json:"sort_order" binding:"omitempty,oneof=asc desc"`
	Status         string `form:"status" json:"status"`
}

// CommentOut is the rendered view of a comment. Content goes through the
// soft-delete placeholder rule so callers never see deleted bodies.
type CommentOut struct {
	ID           uuid.UUID           `json:"id"`
	PostID       uuid.UUID           `json:"post_id"`
	ParentID     *uuid.UUID          `json:"parent_id,omitempty"`
	Content      string              `json:"content"`
	Status       model.CommentStatus `json:"status"`
	Author       *model.Profile      `json:"author,omitempty"`
	RepliesCount *int64              `json:"replies_count,omitempty"`
	EditedAt     *time.Time          `json:"edited_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}

type CommentService interface {
	Create(ctx context.Context, p *roles.Principal, postID uuid.UUID, in CreateCommentInput) (*CommentOut, error)
	Get(ctx context.Context, commentID uuid.UUID) (*CommentOut, error)
	ListByPost(ctx context.Context, p *roles.Principal, postID uuid.UUID, in ListCommentsInput) ([]*CommentOut, *paging.Meta, error)
	Update(ctx context.Context, p *roles.Principal, commentID uuid.UUID, content string) (*CommentOut, error)
	Delete(ctx context.Context, p *roles.Principal, commentID uuid.UUID) error
	Moderate(ctx context.Context, p *roles.Principal, commentID uuid.UUID, status model.CommentStatus) (*CommentOut, error)
}

type commentService struct {
	r        repo.CommentRepo
	posts    repo.PostRepo
	profiles repo.ProfileRepo
	cfg      *config.Config
	events   *queue.Publisher
	log      *zap.Logger
}

func NewCommentService(r repo.CommentRepo, posts repo.PostRepo, profiles repo.ProfileRepo, cfg *config.Config, events *queue.Publisher, log *zap.Logger) CommentService {
	return &commentService{r: r, posts: posts, profiles: profiles, cfg: cfg, events: events, log: log}
}

func (s *commentService) Create(ctx context.Context, p *roles.Principal, postID uuid.UUID, in CreateCommentInput) (*CommentOut, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperr.BadRequest("comment content is required")
	}
	if max := s.cfg.Comments.MaxLength; max > 0 && len(content) > max {
		return nil, apperr.BadRequest("comment content too long")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.r.GetByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("parent comment not found")
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperr.BadRequest("parent comment belongs to a different post")
		}
	}

	author, err := s.profiles.GetByUUID(ctx, p.ProfileUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("author profile not found")
		}
		return nil, err
	}

	status := model.CommentPending
	if s.cfg.Comments.AutoApprove {
		status = model.CommentApproved
	}

	c := &model.Comment{
		PostID:   postID,
		AuthorID: author.ID,
		ParentID: in.ParentID,
		Content:  content,
		Status:   status,
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Author = author

	if s.events != nil {
		if err := s.events.PublishJSON(ctx, map[string]any{
			"event":      "comment.created",
			"comment_id": c.ID,
			"post_id":    c.PostID,
			"status":     c.Status,
		}); err != nil {
			s.log.Warn("publish comment.created failed", zap.Error(err))
		}
	}

	return renderComment(c, nil), nil
}

func (s *commentService) Get(ctx context.Context, commentID uuid.UUID) (*CommentOut, error) {
	c, err := s.r.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}
	return renderComment(c, nil), nil
}

func (s *commentService) ListByPost(ctx context.Context, p *roles.Principal, postID uuid.UUID, in ListCommentsInput) ([]*CommentOut, *paging.Meta, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("post not found")
		}
		return nil, nil, err
	}

	// Non-staff callers only ever see approved comments, whatever they ask
	// for. Staff may filter by any status, or "all" for everything.
	var statuses []model.CommentStatus
	if p == nil || !p.IsStaff() {
		statuses = []model.CommentStatus{model.CommentApproved}
	} else if in.Status != "" && in.Status != "all" {
		statuses = []model.CommentStatus{model.CommentStatus(in.Status)}
	}

	pg := in.Params.Normalize()
	comments, total, err := s.r.ListByPost(ctx, postID, repo.CommentFilter{
		Statuses:     statuses,
		TopLevelOnly: !in.IncludeReplies,
		// oldest first unless the caller explicitly asks for desc
		SortAsc: in.SortOrder != "desc",
	}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}

	var counts map[uuid.UUID]int64
	if !in.IncludeReplies && len(comments) > 0 {
		ids := make([]uuid.UUID, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.ID)
		}
		counts, err = s.r.RepliesCount(ctx, ids, statuses)
		if err != nil {
			return nil, nil, err
		}
	}

	out := make([]*CommentOut, 0, len(comments))
	for _, c := range comments {
		var rc *int64
		if !in.IncludeReplies {
			n := counts[c.ID]
			rc = &n
		}
		out = append(out, renderComment(c, rc))
	}

	meta := paging.NewMeta(pg, total)
	return out, &meta, nil
}

func (s *commentService) Update(ctx context.Context, p *roles.Principal, commentID uuid.UUID, content string) (*CommentOut, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.BadRequest("comment content is required")
	}
	if max := s.cfg.Comments.MaxLength; max > 0 && len(content) > max {
		return nil, apperr.BadRequest("comment content too long")
	}

	c, err := s.getOwned(ctx, p, commentID)
	if err != nil {
		return nil, err
	}
	if c.Status == model.CommentDeleted {
		return nil, apperr.Conflict("comment is deleted")
	}

	now := time.Now()
	c.Content = content
	c.EditedAt = &now
	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	return renderComment(c, nil), nil
}

// Delete is a soft delete. The row and its stored content survive so the
// thread keeps its shape and moderators keep the original text; readers
// get the placeholder.
func (s *commentService) Delete(ctx context.Context, p *roles.Principal, commentID uuid.UUID) error {
	c, err := s.getOwned(ctx, p, commentID)
	if err != nil {
		return err
	}
	if c.Status == model.CommentDeleted {
		return apperr.Conflict("comment already deleted")
	}

	now := time.Now()
	c.Status = model.CommentDeleted
	c.EditedAt = &now
	return s.r.Update(ctx, c)
}

func (s *commentService) Moderate(ctx context.Context, p *roles.Principal, commentID uuid.UUID, status model.CommentStatus) (*CommentOut, error) {
	if p == nil || !p.IsStaff() {
		return nil, apperr.Forbidden("moderation requires a staff role")
	}
	switch status {
	case model.CommentPending, model.CommentApproved, model.CommentRejected, model.CommentSpam, model.CommentDeleted:
	default:
		return nil, apperr.BadRequest("unknown comment status")
	}

	c, err := s.r.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}

	// Staff transitions are unrestricted, any state to any state.
	c.Status = status
	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	return renderComment(c, nil), nil
}

// getOwned loads a comment and checks the caller is its author or staff.
// Authorship is resolved through the caller's profile uuid.
func (s *commentService) getOwned(ctx context.Context, p *roles.Principal, commentID uuid.UUID) (*model.Comment, error) {
	c, err := s.r.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}
	if p != nil && p.IsStaff() {
		return c, nil
	}
	if p != nil {
		author, err := s.profiles.GetByUUID(ctx, p.ProfileUUID)
		if err == nil && author.ID == c.AuthorID {
			return c, nil
		}
	}
	return nil, apperr.Forbidden("not allowed to modify this comment")
}

func renderComment(c *model.Comment, repliesCount *int64) *CommentOut {
	return &CommentOut{
		ID:           c.ID,
		PostID:       c.PostID,
		ParentID:     c.ParentID,
		Content:      c.DisplayContent(),
		Status:       c.Status,
		Author:       c.Author,
		RepliesCount: repliesCount,
		EditedAt:     c.EditedAt,
		CreatedAt:    c.CreatedAt,
	}
}
