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

type TaxonomyInput struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Description *string `json:"description"`
}

type ListTaxonomyInput struct {
	paging.Params
	Search string `form:"searchTerm" json:"search"`
	Sort   string `form:"sort" json:"sort" binding:"omitempty,oneof=newest oldest nameAsc nameDesc"`
}

type CategoryService interface {
	Create(ctx context.Context, in TaxonomyInput) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, in TaxonomyInput) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, in ListTaxonomyInput) ([]*model.Category, *paging.Meta, error)
}

type categoryService struct{ r repo.CategoryRepo }

func NewCategoryService(r repo.CategoryRepo) CategoryService {
	return &categoryService{r: r}
}

func (s *categoryService) Create(ctx context.Context, in TaxonomyInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	exists, err := s.r.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("category name already exists")
	}

	c := &model.Category{Name: name, Description: in.Description}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, in TaxonomyInput) (*model.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name != c.Name {
		exists, err := s.r.ExistsByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflict("category name already exists")
		}
	}

	c.Name = name
	c.Description = in.Description
	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context, in ListTaxonomyInput) ([]*model.Category, *paging.Meta, error) {
	pg := in.Params.Normalize()
	categories, total, err := s.r.List(ctx, repo.TaxonomyFilter{Search: in.Search, Sort: in.Sort}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return categories, &meta, nil
}

type TagService interface {
	Create(ctx context.Context, in TaxonomyInput) (*model.Tag, error)
	Update(ctx context.Context, id uuid.UUID, in TaxonomyInput) (*model.Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	List(ctx context.Context, in ListTaxonomyInput) ([]*model.Tag, *paging.Meta, error)
}

type tagService struct{ r repo.TagRepo }

func NewTagService(r repo.TagRepo) TagService {
	return &tagService{r: r}
}

func (s *tagService) Create(ctx context.Context, in TaxonomyInput) (*model.Tag, error) {
	name := strings.TrimSpace(in.Name)
	exists, err := s.r.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("tag name already exists")
	}

	t := &model.Tag{Name: name, Description: in.Description}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, in TaxonomyInput) (*model.Tag, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name != t.Name {
		exists, err := s.r.ExistsByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflict("tag name already exists")
		}
	}

	t.Name = name
	t.Description = in.Description
	if err := s.r.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.r.Delete(ctx, id)
}

func (s *tagService) Get(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	t, err := s.r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tag not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *tagService) List(ctx context.Context, in ListTaxonomyInput) ([]*model.Tag, *paging.Meta, error) {
	pg := in.Params.Normalize()
	tags, total, err := s.r.List(ctx, repo.TaxonomyFilter{Search: in.Search, Sort: in.Sort}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return tags, &meta, nil
}
