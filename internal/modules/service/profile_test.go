package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestProfileService_Create(t *testing.T) {
	t.Run("fresh uuid", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, "writer-1").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.UUID == "writer-1" && p.DisplayName == "Writer One"
		})).Return(nil)

		svc := NewProfileService(mockRepo)
		profile, err := svc.Create(context.Background(), CreateProfileInput{UUID: "writer-1", DisplayName: "Writer One"})

		assert.NoError(t, err)
		assert.Equal(t, "writer-1", profile.UUID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("taken uuid conflicts", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, "writer-1").
			Return(&model.Profile{ID: uuid.New(), UUID: "writer-1"}, nil)

		svc := NewProfileService(mockRepo)
		profile, err := svc.Create(context.Background(), CreateProfileInput{UUID: "writer-1", DisplayName: "Writer One"})

		assert.Error(t, err)
		assert.Nil(t, profile)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProfileService_Update(t *testing.T) {
	p := readerPrincipal()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID, DisplayName: "Old Name"}

	t.Run("owner updates their own profile", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Profile) bool {
			return x.DisplayName == "New Name"
		})).Return(nil)

		svc := NewProfileService(mockRepo)
		name := "New Name"
		out, err := svc.Update(context.Background(), p, p.ProfileUUID, UpdateProfileInput{DisplayName: &name})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", out.DisplayName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("someone else's profile is forbidden", func(t *testing.T) {
		svc := NewProfileService(&MockProfileRepo{})
		out, err := svc.Update(context.Background(), readerPrincipal(), p.ProfileUUID, UpdateProfileInput{})

		assert.Error(t, err)
		assert.Nil(t, out)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("staff may update anyone", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := NewProfileService(mockRepo)
		_, err := svc.Update(context.Background(), staffPrincipal(), p.ProfileUUID, UpdateProfileInput{})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestProfileService_Delete(t *testing.T) {
	p := readerPrincipal()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}

	t.Run("owner deletes their own profile", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockRepo.On("Delete", mock.Anything, profile.ID).Return(nil)

		svc := NewProfileService(mockRepo)
		err := svc.Delete(context.Background(), p, p.ProfileUUID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("someone else's profile is forbidden", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}

		svc := NewProfileService(mockRepo)
		err := svc.Delete(context.Background(), readerPrincipal(), p.ProfileUUID)

		assert.Error(t, err)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing profile", func(t *testing.T) {
		mockRepo := &MockProfileRepo{}
		mockRepo.On("GetByUUID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewProfileService(mockRepo)
		err := svc.Delete(context.Background(), staffPrincipal(), "ghost")

		assert.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestProfileService_List(t *testing.T) {
	hasAvatar := true
	mockRepo := &MockProfileRepo{}
	mockRepo.On("List", mock.Anything,
		repo.ProfileFilter{Search: "jo", Location: "Berlin", HasAvatar: &hasAvatar, Sort: "nameAsc"}, 0, 20).
		Return([]*model.Profile{{DisplayName: "Jo"}}, int64(1), nil)

	svc := NewProfileService(mockRepo)
	profiles, meta, err := svc.List(context.Background(), ListProfilesInput{
		Search:    "jo",
		Location:  "Berlin",
		HasAvatar: &hasAvatar,
		Sort:      "nameAsc",
	})

	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, int64(1), meta.Total)
	mockRepo.AssertExpectations(t)
}
