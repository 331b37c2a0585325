package service

import (
	"context"
	"errors"

	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/paging"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"gorm.io/gorm"
)

type CreateProfileInput struct {
	UUID        string  `json:"uuid" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required,max=80"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	WebsiteURL  *string `json:"website_url"`
	Location    *string `json:"location"`
	TwitterURL  *string `json:"twitter_url"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

type UpdateProfileInput struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=80"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	WebsiteURL  *string `json:"website_url"`
	Location    *string `json:"location"`
	TwitterURL  *string `json:"twitter_url"`
	GithubURL   *string `json:"github_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

type ListProfilesInput struct {
	paging.Params
	Search    string `form:"searchTerm" json:"search"`
	Location  string `form:"location" json:"location"`
	HasAvatar *bool  `form:"hasAvatar" json:"has_avatar"`
	Sort      string `form:"sort" json:"sort" binding:"omitempty,oneof=newest oldest nameAsc nameDesc"`
}

type ProfileService interface {
	Create(ctx context.Context, in CreateProfileInput) (*model.Profile, error)
	GetByUUID(ctx context.Context, profileUUID string) (*model.Profile, error)
	Update(ctx context.Context, p *roles.Principal, profileUUID string, in UpdateProfileInput) (*model.Profile, error)
	Delete(ctx context.Context, p *roles.Principal, profileUUID string) error
	List(ctx context.Context, in ListProfilesInput) ([]*model.Profile, *paging.Meta, error)
}

type profileService struct{ r repo.ProfileRepo }

func NewProfileService(r repo.ProfileRepo) ProfileService {
	return &profileService{r: r}
}

// Create registers a profile under a caller-chosen uuid. Sign-up creates
// profiles implicitly; this path exists for staff provisioning.
func (s *profileService) Create(ctx context.Context, in CreateProfileInput) (*model.Profile, error) {
	if _, err := s.r.GetByUUID(ctx, in.UUID); err == nil {
		return nil, apperr.Conflict("profile with this uuid already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &model.Profile{
		UUID:        in.UUID,
		DisplayName: in.DisplayName,
		AvatarURL:   in.AvatarURL,
		Bio:         in.Bio,
		WebsiteURL:  in.WebsiteURL,
		Location:    in.Location,
		TwitterURL:  in.TwitterURL,
		GithubURL:   in.GithubURL,
		LinkedinURL: in.LinkedinURL,
	}
	if err := s.r.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetByUUID(ctx context.Context, profileUUID string) (*model.Profile, error) {
	profile, err := s.r.GetByUUID(ctx, profileUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, p *roles.Principal, profileUUID string, in UpdateProfileInput) (*model.Profile, error) {
	// Profiles are keyed by the same uuid as the owning account, so the
	// ownership check is a straight claim comparison.
	if p == nil || (!p.IsStaff() && p.ProfileUUID != profileUUID) {
		return nil, apperr.Forbidden("not allowed to update this profile")
	}

	profile, err := s.GetByUUID(ctx, profileUUID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		profile.DisplayName = *in.DisplayName
	}
	if in.AvatarURL != nil {
		profile.AvatarURL = in.AvatarURL
	}
	if in.Bio != nil {
		profile.Bio = in.Bio
	}
	if in.WebsiteURL != nil {
		profile.WebsiteURL = in.WebsiteURL
	}
	if in.Location != nil {
		profile.Location = in.Location
	}
	if in.TwitterURL != nil {
		profile.TwitterURL = in.TwitterURL
	}
	if in.GithubURL != nil {
		profile.GithubURL = in.GithubURL
	}
	if in.LinkedinURL != nil {
		profile.LinkedinURL = in.LinkedinURL
	}

	if err := s.r.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, p *roles.Principal, profileUUID string) error {
	if p == nil || (!p.IsStaff() && p.ProfileUUID != profileUUID) {
		return apperr.Forbidden("not allowed to delete this profile")
	}

	profile, err := s.GetByUUID(ctx, profileUUID)
	if err != nil {
		return err
	}
	return s.r.Delete(ctx, profile.ID)
}

func (s *profileService) List(ctx context.Context, in ListProfilesInput) ([]*model.Profile, *paging.Meta, error) {
	pg := in.Params.Normalize()
	profiles, total, err := s.r.List(ctx, repo.ProfileFilter{
		Search:    in.Search,
		Location:  in.Location,
		HasAvatar: in.HasAvatar,
		Sort:      in.Sort,
	}, pg.Offset(), pg.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := paging.NewMeta(pg, total)
	return profiles, &meta, nil
}
