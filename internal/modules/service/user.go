package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpInput struct {
	Username string `json:"username" binding:"required,min=3,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserService interface {
	SignUp(ctx context.Context, in SignUpInput) (*model.User, error)
	GetByUUID(ctx context.Context, userUUID string) (*model.User, error)
	List(ctx context.Context, pg paging.Params) ([]*model.User, *paging.Meta, error)
}

type userService struct {
	users    repo.UserRepo
	profiles repo.ProfileRepo
	cfg      *config.Config
}

func NewUserService(users repo.UserRepo, profiles repo.ProfileRepo, cfg *config.Config) UserService {
	return &userService{users: users, profiles: profiles, cfg: cfg}
}

// SignUp registers a reader account and its public profile. The two rows
// share one uuid, which is also the subject of every token issued later.
func (s *userService) SignUp(ctx context.Context, in SignUpInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("email already registered")
	}

	cost := s.cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:     uuid.NewString(),
		Username: in.Username,
		Email:    email,
		Password: string(hash),
		Role:     roles.RoleReader,
		Status:   model.UserActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UUID:        user.UUID,
		DisplayName: in.Username,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByUUID(ctx context.Context, userUUID string) (*model.User, error) {
	user, err := s.users.GetByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, pg paging.Params) ([]*model.User, *paging.Meta, error) {
	pg = pg.Normalize()
	users, total, err := s.users.List(ctx, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return users, &meta, nil
}
