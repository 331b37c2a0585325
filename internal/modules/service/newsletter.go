package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"gorm.io/gorm"
)

type ListSubscribersInput struct {
	paging.Params
	Search string `form:"searchTerm" json:"search"`
	Email  string `form:"email" json:"email"`
	Sort   string `form:"sort" json:"sort" binding:"omitempty,oneof=newest oldest emailAsc emailDesc"`
}

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	Get(ctx context.Context, id uuid.UUID) (*model.NewsletterSubscriber, error)
	List(ctx context.Context, in ListSubscribersInput) ([]*model.NewsletterSubscriber, *paging.Meta, error)
}

type newsletterService struct{ r repo.NewsletterRepo }

func NewNewsletterService(r repo.NewsletterRepo) NewsletterService {
	return &newsletterService{r: r}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	exists, err := s.r.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already subscribed")
	}

	sub := &model.NewsletterSubscriber{Email: email}
	if err := s.r.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *newsletterService) Get(ctx context.Context, id uuid.UUID) (*model.NewsletterSubscriber, error) {
	sub, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("subscriber not found")
		}
		return nil, err
	}
	return sub, nil
}

func (s *newsletterService) List(ctx context.Context, in ListSubscribersInput) ([]*model.NewsletterSubscriber, *paging.Meta, error) {
	pg := in.Params.Normalize()
	subs, total, err := s.r.List(ctx, repo.NewsletterFilter{
		Search: in.Search,
		Email:  in.Email,
		Sort:   in.Sort,
	}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return subs, &meta, nil
}
