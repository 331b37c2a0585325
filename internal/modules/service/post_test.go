package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockTagRepo is a mock implementation of repo.TagRepo
type MockTagRepo struct {
	mock.Mock
}

func (m *MockTagRepo) Create(ctx context.Context, t *model.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepo) Update(ctx context.Context, t *model.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTagRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTagRepo) List(ctx context.Context, f repo.TaxonomyFilter, offset, limit int) ([]*model.Tag, int64, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Tag), args.Get(1).(int64), args.Error(2)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World!", "hello-world"},
		{"  Leading &   trailing  ", "leading-trailing"},
		{"Go 1.22 Release Notes", "go-1-22-release-notes"},
		{"CAPS and MixedCase", "caps-and-mixedcase"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestReadingTime(t *testing.T) {
	long := ""
	for i := 0; i < 400; i++ {
		long += "word "
	}

	assert.Equal(t, "1 min read", ReadingTime(""))
	assert.Equal(t, "1 min read", ReadingTime("just a few words"))
	assert.Equal(t, "2 min read", ReadingTime(long))
}

func TestPostService_Create(t *testing.T) {
	p := readerPrincipal()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}
	categoryID := uuid.New()

	t.Run("slug collision gets a numeric suffix", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockProfiles := &MockProfileRepo{}
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockPosts.On("SlugExists", mock.Anything, "hello-world").Return(true, nil)
		mockPosts.On("SlugExists", mock.Anything, "hello-world-2").Return(false, nil)
		mockPosts.On("Create", mock.Anything, mock.MatchedBy(func(x *model.Post) bool {
			return x.Slug == "hello-world-2" &&
				x.Status == model.PostDraft &&
				x.Placement == model.PlacementGeneral &&
				x.AuthorID == profile.ID
		})).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, mockProfiles, nil, zap.NewNop())
		post, err := svc.Create(context.Background(), p, CreatePostInput{
			Title:      "Hello, World!",
			Content:    "body",
			CategoryID: categoryID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "hello-world-2", post.Slug)
		assert.Equal(t, "1 min read", post.ReadingTime)
		mockPosts.AssertExpectations(t)
	})

	t.Run("tags are attached after create", func(t *testing.T) {
		tagID := uuid.New()
		tags := []model.Tag{{ID: tagID, Name: "go"}}

		mockPosts := &MockPostRepo{}
		mockTags := &MockTagRepo{}
		mockProfiles := &MockProfileRepo{}
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockPosts.On("SlugExists", mock.Anything, "tagged").Return(false, nil)
		mockPosts.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockTags.On("GetByIDs", mock.Anything, []uuid.UUID{tagID}).Return(tags, nil)
		mockPosts.On("ReplaceTags", mock.Anything, mock.Anything, tags).Return(nil)

		svc := NewPostService(mockPosts, mockTags, mockProfiles, nil, zap.NewNop())
		post, err := svc.Create(context.Background(), p, CreatePostInput{
			Title:      "Tagged",
			Content:    "body",
			CategoryID: categoryID,
			TagIDs:     []uuid.UUID{tagID},
		})

		assert.NoError(t, err)
		assert.Len(t, post.Tags, 1)
		mockTags.AssertExpectations(t)
		mockPosts.AssertExpectations(t)
	})

	t.Run("symbol-only title", func(t *testing.T) {
		mockProfiles := &MockProfileRepo{}
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)

		svc := NewPostService(&MockPostRepo{}, &MockTagRepo{}, mockProfiles, nil, zap.NewNop())
		post, err := svc.Create(context.Background(), p, CreatePostInput{
			Title:      "!!!",
			Content:    "body",
			CategoryID: categoryID,
		})

		assert.Error(t, err)
		assert.Nil(t, post)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})
}

func TestPostService_List(t *testing.T) {
	t.Run("readers only see published posts", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("List", mock.Anything, mock.MatchedBy(func(f repo.PostFilter) bool {
			return f.Status == model.PostPublished
		}), 0, 20).Return([]*model.Post{}, int64(0), nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, _, err := svc.List(context.Background(), readerPrincipal(), ListPostsInput{Status: "draft"})

		assert.NoError(t, err)
		mockPosts.AssertExpectations(t)
	})

	t.Run("staff may filter by any status", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("List", mock.Anything, mock.MatchedBy(func(f repo.PostFilter) bool {
			return f.Status == model.PostDraft
		}), 0, 20).Return([]*model.Post{}, int64(0), nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, _, err := svc.List(context.Background(), staffPrincipal(), ListPostsInput{Status: "draft"})

		assert.NoError(t, err)
		mockPosts.AssertExpectations(t)
	})

	t.Run("search and sort map onto the filter", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("List", mock.Anything, mock.MatchedBy(func(f repo.PostFilter) bool {
			return f.Search == "gopher" && f.SortBy == "title" && !f.SortDesc
		}), 0, 20).Return([]*model.Post{}, int64(0), nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, _, err := svc.List(context.Background(), readerPrincipal(), ListPostsInput{
			Search:    "gopher",
			SortBy:    "title",
			SortOrder: "asc",
		})

		assert.NoError(t, err)
		mockPosts.AssertExpectations(t)
	})

	t.Run("newest first by default", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("List", mock.Anything, mock.MatchedBy(func(f repo.PostFilter) bool {
			return f.SortBy == "created_at" && f.SortDesc
		}), 0, 20).Return([]*model.Post{}, int64(0), nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, _, err := svc.List(context.Background(), readerPrincipal(), ListPostsInput{})

		assert.NoError(t, err)
		mockPosts.AssertExpectations(t)
	})
}

func TestPostService_Update_SlugCache(t *testing.T) {
	p := staffPrincipal()
	postID := uuid.New()

	t.Run("renaming drops the cache entry for the old slug", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		post := &model.Post{ID: postID, Slug: "old-title", Title: "Old Title", Status: model.PostPublished}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetBySlug", mock.Anything, "old-title").Return(post, nil)
		mockPosts.On("GetByID", mock.Anything, postID).Return(post, nil)
		mockPosts.On("SlugExists", mock.Anything, "new-title").Return(false, nil)
		mockPosts.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, cache, zap.NewNop())

		// Warm the cache the way a reader would.
		_, err := svc.GetBySlug(context.Background(), "old-title")
		assert.NoError(t, err)
		assert.True(t, mr.Exists("post:slug:old-title"))

		title := "New Title"
		updated, err := svc.Update(context.Background(), p, postID, UpdatePostInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "new-title", updated.Slug)
		assert.False(t, mr.Exists("post:slug:old-title"))
		assert.False(t, mr.Exists("post:slug:new-title"))
	})

	t.Run("untouched title leaves a single invalidation", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		post := &model.Post{ID: postID, Slug: "steady", Title: "Steady", Status: model.PostPublished}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetBySlug", mock.Anything, "steady").Return(post, nil)
		mockPosts.On("GetByID", mock.Anything, postID).Return(post, nil)
		mockPosts.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, cache, zap.NewNop())

		_, err := svc.GetBySlug(context.Background(), "steady")
		assert.NoError(t, err)
		assert.True(t, mr.Exists("post:slug:steady"))

		excerpt := "revised"
		updated, err := svc.Update(context.Background(), p, postID, UpdatePostInput{Excerpt: &excerpt})

		assert.NoError(t, err)
		assert.Equal(t, "steady", updated.Slug)
		assert.False(t, mr.Exists("post:slug:steady"))
	})
}

func TestPostService_ChangeStatus(t *testing.T) {
	postID := uuid.New()

	t.Run("staff publishes", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, Slug: "a-post", Status: model.PostDraft}, nil)
		mockPosts.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Post) bool {
			return x.Status == model.PostPublished
		})).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		post, err := svc.ChangeStatus(context.Background(), staffPrincipal(), postID, model.PostPublished)

		assert.NoError(t, err)
		assert.Equal(t, model.PostPublished, post.Status)
		mockPosts.AssertExpectations(t)
	})

	t.Run("author cannot publish their own post", func(t *testing.T) {
		p := readerPrincipal()
		profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}

		mockPosts := &MockPostRepo{}
		mockProfiles := &MockProfileRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, AuthorID: profile.ID, Status: model.PostDraft}, nil)
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, mockProfiles, nil, zap.NewNop())
		post, err := svc.ChangeStatus(context.Background(), p, postID, model.PostPublished)

		assert.Error(t, err)
		assert.Nil(t, post)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "staff role")
	})

	t.Run("author archives their own post", func(t *testing.T) {
		p := readerPrincipal()
		profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}

		mockPosts := &MockPostRepo{}
		mockProfiles := &MockProfileRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, AuthorID: profile.ID, Status: model.PostPublished}, nil)
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockPosts.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, mockProfiles, nil, zap.NewNop())
		post, err := svc.ChangeStatus(context.Background(), p, postID, model.PostArchived)

		assert.NoError(t, err)
		assert.Equal(t, model.PostArchived, post.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewPostService(&MockPostRepo{}, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, err := svc.ChangeStatus(context.Background(), staffPrincipal(), postID, model.PostStatus("pending"))

		assert.Error(t, err)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})
}

func TestPostService_ChangePlacement(t *testing.T) {
	postID := uuid.New()

	t.Run("staff features a post", func(t *testing.T) {
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, Placement: model.PlacementGeneral}, nil)
		mockPosts.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Post) bool {
			return x.Placement == model.PlacementFeatured
		})).Return(nil)

		svc := NewPostService(mockPosts, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		post, err := svc.ChangePlacement(context.Background(), staffPrincipal(), postID, model.PlacementFeatured)

		assert.NoError(t, err)
		assert.Equal(t, model.PlacementFeatured, post.Placement)
	})

	t.Run("non-staff is rejected before the lookup", func(t *testing.T) {
		svc := NewPostService(&MockPostRepo{}, &MockTagRepo{}, &MockProfileRepo{}, nil, zap.NewNop())
		_, err := svc.ChangePlacement(context.Background(), readerPrincipal(), postID, model.PlacementPopular)

		assert.Error(t, err)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}
