package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/infra/queue"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type ListContactsInput struct {
	paging.Params
	Search  string `form:"searchTerm" json:"search"`
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Sort    string `form:"sort" json:"sort" binding:"omitempty,oneof=newest oldest nameAsc nameDesc"`
}

type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*model.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, in ListContactsInput) ([]*model.Contact, *paging.Meta, error)
}

type contactService struct {
	r      repo.ContactRepo
	events *queue.Publisher
	log    *zap.Logger
}

func NewContactService(r repo.ContactRepo, events *queue.Publisher, log *zap.Logger) ContactService {
	return &contactService{r: r, events: events, log: log}
}

func (s *contactService) Create(ctx context.Context, in ContactInput) (*model.Contact, error) {
	c := &model.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}

	// Notification delivery rides on the queue; the message itself is
	// already persisted, so publish failures only cost the notification.
	if s.events != nil {
		if err := s.events.PublishJSON(ctx, map[string]any{
			"event":      "contact.message",
			"contact_id": c.ID,
			"email":      c.Email,
			"subject":    c.Subject,
		}); err != nil {
			s.log.Warn("publish contact.message failed", zap.Error(err))
		}
	}
	return c, nil
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	c, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *contactService) List(ctx context.Context, in ListContactsInput) ([]*model.Contact, *paging.Meta, error) {
	pg := in.Params.Normalize()
	contacts, total, err := s.r.List(ctx, repo.ContactFilter{
		Search:  in.Search,
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Sort:    in.Sort,
	}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return contacts, &meta, nil
}
