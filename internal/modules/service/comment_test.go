package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockCommentRepo is a mock implementation of repo.CommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepo) Update(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID, f repo.CommentFilter, offset, limit int) ([]*model.Comment, int64, error) {
	args := m.Called(ctx, postID, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepo) RepliesCount(ctx context.Context, parentIDs []uuid.UUID, statuses []model.CommentStatus) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, parentIDs, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

// MockPostRepo is a mock implementation of repo.PostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, p *model.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPostRepo) Update(ctx context.Context, p *model.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepo) List(ctx context.Context, f repo.PostFilter, offset, limit int) ([]*model.Post, int64, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepo) ReplaceTags(ctx context.Context, p *model.Post, tags []model.Tag) error {
	args := m.Called(ctx, p, tags)
	return args.Error(0)
}

// MockProfileRepo is a mock implementation of repo.ProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, p *model.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepo) GetByUUID(ctx context.Context, profileUUID string) (*model.Profile, error) {
	args := m.Called(ctx, profileUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) List(ctx context.Context, f repo.ProfileFilter, offset, limit int) ([]*model.Profile, int64, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Profile), args.Get(1).(int64), args.Error(2)
}

func commentTestConfig(autoApprove bool) *config.Config {
	cfg := &config.Config{}
	cfg.Comments.AutoApprove = autoApprove
	cfg.Comments.MaxLength = 5000
	return cfg
}

func TestCommentService_Create(t *testing.T) {
	p := readerPrincipal()
	postID := uuid.New()
	parentID := uuid.New()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID, DisplayName: "Reader"}

	tests := []struct {
		name        string
		input       CreateCommentInput
		autoApprove bool
		setup       func(*MockCommentRepo, *MockPostRepo, *MockProfileRepo)
		wantStatus  model.CommentStatus
		expectError bool
		errorMsg    string
	}{
		{
			name:        "auto approve publishes immediately",
			input:       CreateCommentInput{Content: "nice write-up"},
			autoApprove: true,
			setup: func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {
				posts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				profiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
				c.On("Create", mock.Anything, mock.MatchedBy(func(x *model.Comment) bool {
					return x.Status == model.CommentApproved && x.AuthorID == profile.ID
				})).Return(nil)
			},
			wantStatus: model.CommentApproved,
		},
		{
			name:        "moderation queue when auto approve is off",
			input:       CreateCommentInput{Content: "nice write-up"},
			autoApprove: false,
			setup: func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {
				posts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				profiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
				c.On("Create", mock.Anything, mock.MatchedBy(func(x *model.Comment) bool {
					return x.Status == model.CommentPending
				})).Return(nil)
			},
			wantStatus: model.CommentPending,
		},
		{
			name:        "blank content",
			input:       CreateCommentInput{Content: "   "},
			setup:       func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {},
			expectError: true,
			errorMsg:    "content is required",
		},
		{
			name:  "missing post",
			input: CreateCommentInput{Content: "hello"},
			setup: func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {
				posts.On("GetByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "post not found",
		},
		{
			name:  "missing parent",
			input: CreateCommentInput{Content: "hello", ParentID: &parentID},
			setup: func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {
				posts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				c.On("GetByID", mock.Anything, parentID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectError: true,
			errorMsg:    "parent comment not found",
		},
		{
			name:  "parent from another post",
			input: CreateCommentInput{Content: "hello", ParentID: &parentID},
			setup: func(c *MockCommentRepo, posts *MockPostRepo, profiles *MockProfileRepo) {
				posts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
				c.On("GetByID", mock.Anything, parentID).
					Return(&model.Comment{ID: parentID, PostID: uuid.New()}, nil)
			},
			expectError: true,
			errorMsg:    "belongs to a different post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := &MockCommentRepo{}
			mockPosts := &MockPostRepo{}
			mockProfiles := &MockProfileRepo{}
			tt.setup(mockComments, mockPosts, mockProfiles)

			svc := NewCommentService(mockComments, mockPosts, mockProfiles, commentTestConfig(tt.autoApprove), nil, zap.NewNop())
			out, err := svc.Create(context.Background(), p, postID, tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, out)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, out.Status)
				assert.Equal(t, "nice write-up", out.Content)
			}

			mockComments.AssertExpectations(t)
			mockPosts.AssertExpectations(t)
			mockProfiles.AssertExpectations(t)
		})
	}
}

func TestCommentService_ListByPost(t *testing.T) {
	postID := uuid.New()
	approvedOnly := []model.CommentStatus{model.CommentApproved}

	t.Run("non-staff callers are forced to approved", func(t *testing.T) {
		mockComments := &MockCommentRepo{}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		top := &model.Comment{ID: uuid.New(), PostID: postID, Content: "first", Status: model.CommentApproved}
		mockComments.On("ListByPost", mock.Anything, postID,
			repo.CommentFilter{Statuses: approvedOnly, TopLevelOnly: true, SortAsc: true}, 0, 20).
			Return([]*model.Comment{top}, int64(1), nil)
		mockComments.On("RepliesCount", mock.Anything, []uuid.UUID{top.ID}, approvedOnly).
			Return(map[uuid.UUID]int64{top.ID: 3}, nil)

		svc := NewCommentService(mockComments, mockPosts, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, meta, err := svc.ListByPost(context.Background(), readerPrincipal(), postID, ListCommentsInput{Status: "spam"})

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, int64(3), *out[0].RepliesCount)
		assert.Equal(t, int64(1), meta.Total)
		mockComments.AssertExpectations(t)
	})

	t.Run("staff may ask for a single status with replies inline", func(t *testing.T) {
		mockComments := &MockCommentRepo{}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		mockComments.On("ListByPost", mock.Anything, postID,
			repo.CommentFilter{Statuses: []model.CommentStatus{model.CommentPending}, SortAsc: true}, 0, 20).
			Return([]*model.Comment{}, int64(0), nil)

		svc := NewCommentService(mockComments, mockPosts, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, _, err := svc.ListByPost(context.Background(), staffPrincipal(), postID, ListCommentsInput{
			IncludeReplies: true,
			SortOrder:      "asc",
			Status:         "pending",
		})

		assert.NoError(t, err)
		assert.Empty(t, out)
		mockComments.AssertExpectations(t)
	})

	t.Run("staff all disables the status filter", func(t *testing.T) {
		mockComments := &MockCommentRepo{}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		mockComments.On("ListByPost", mock.Anything, postID,
			repo.CommentFilter{TopLevelOnly: true, SortAsc: true}, 0, 20).
			Return([]*model.Comment{}, int64(0), nil)

		svc := NewCommentService(mockComments, mockPosts, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		_, _, err := svc.ListByPost(context.Background(), staffPrincipal(), postID, ListCommentsInput{Status: "all"})

		assert.NoError(t, err)
		mockComments.AssertExpectations(t)
	})

	t.Run("oldest first unless desc is asked for", func(t *testing.T) {
		for _, tt := range []struct {
			order   string
			sortAsc bool
		}{
			{order: "", sortAsc: true},
			{order: "asc", sortAsc: true},
			{order: "desc", sortAsc: false},
		} {
			mockComments := &MockCommentRepo{}
			mockPosts := &MockPostRepo{}
			mockPosts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
			mockComments.On("ListByPost", mock.Anything, postID,
				repo.CommentFilter{Statuses: approvedOnly, TopLevelOnly: true, SortAsc: tt.sortAsc}, 0, 20).
				Return([]*model.Comment{}, int64(0), nil)
			mockComments.On("RepliesCount", mock.Anything, mock.Anything, mock.Anything).
				Return(map[uuid.UUID]int64{}, nil).Maybe()

			svc := NewCommentService(mockComments, mockPosts, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
			_, _, err := svc.ListByPost(context.Background(), readerPrincipal(), postID, ListCommentsInput{SortOrder: tt.order})

			assert.NoError(t, err, tt.order)
			mockComments.AssertExpectations(t)
		}
	})

	t.Run("deleted comments render the placeholder", func(t *testing.T) {
		mockComments := &MockCommentRepo{}
		mockPosts := &MockPostRepo{}
		mockPosts.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)

		deleted := &model.Comment{ID: uuid.New(), PostID: postID, Content: "rude text", Status: model.CommentDeleted}
		mockComments.On("ListByPost", mock.Anything, postID, mock.Anything, 0, 20).
			Return([]*model.Comment{deleted}, int64(1), nil)

		svc := NewCommentService(mockComments, mockPosts, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, _, err := svc.ListByPost(context.Background(), staffPrincipal(), postID, ListCommentsInput{
			IncludeReplies: true,
			Status:         "deleted",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.DeletedPlaceholder, out[0].Content)
	})
}

func TestCommentService_Get(t *testing.T) {
	t.Run("loads a single comment", func(t *testing.T) {
		c := &model.Comment{ID: uuid.New(), PostID: uuid.New(), Content: "hello", Status: model.CommentApproved}
		mockComments := &MockCommentRepo{}
		mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)

		svc := NewCommentService(mockComments, &MockPostRepo{}, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, err := svc.Get(context.Background(), c.ID)

		assert.NoError(t, err)
		assert.Equal(t, c.ID, out.ID)
		assert.Equal(t, "hello", out.Content)
		mockComments.AssertExpectations(t)
	})

	t.Run("deleted comments keep the placeholder", func(t *testing.T) {
		c := &model.Comment{ID: uuid.New(), PostID: uuid.New(), Content: "rude text", Status: model.CommentDeleted}
		mockComments := &MockCommentRepo{}
		mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)

		svc := NewCommentService(mockComments, &MockPostRepo{}, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, err := svc.Get(context.Background(), c.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.DeletedPlaceholder, out.Content)
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		id := uuid.New()
		mockComments := &MockCommentRepo{}
		mockComments.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(mockComments, &MockPostRepo{}, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		out, err := svc.Get(context.Background(), id)

		assert.Error(t, err)
		assert.Nil(t, out)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCommentService_Delete(t *testing.T) {
	p := readerPrincipal()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}
	comment := func() *model.Comment {
		return &model.Comment{ID: uuid.New(), PostID: uuid.New(), AuthorID: profile.ID, Content: "mine", Status: model.CommentApproved}
	}

	t.Run("author soft deletes, content survives", func(t *testing.T) {
		c := comment()
		mockComments := &MockCommentRepo{}
		mockProfiles := &MockProfileRepo{}
		mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)
		mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
		mockComments.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Comment) bool {
			return x.Status == model.CommentDeleted && x.Content == "mine"
		})).Return(nil)

		svc := NewCommentService(mockComments, &MockPostRepo{}, mockProfiles, commentTestConfig(true), nil, zap.NewNop())
		err := svc.Delete(context.Background(), p, c.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.DeletedPlaceholder, c.DisplayContent())
		mockComments.AssertExpectations(t)
	})

	t.Run("someone else's comment is forbidden", func(t *testing.T) {
		c := comment()
		other := readerPrincipal()
		mockComments := &MockCommentRepo{}
		mockProfiles := &MockProfileRepo{}
		mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)
		mockProfiles.On("GetByUUID", mock.Anything, other.ProfileUUID).
			Return(&model.Profile{ID: uuid.New(), UUID: other.ProfileUUID}, nil)

		svc := NewCommentService(mockComments, &MockPostRepo{}, mockProfiles, commentTestConfig(true), nil, zap.NewNop())
		err := svc.Delete(context.Background(), other, c.ID)

		assert.Error(t, err)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("double delete conflicts", func(t *testing.T) {
		c := comment()
		c.Status = model.CommentDeleted
		mockComments := &MockCommentRepo{}
		mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)

		svc := NewCommentService(mockComments, &MockPostRepo{}, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
		err := svc.Delete(context.Background(), staffPrincipal(), c.ID)

		assert.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})
}

func TestCommentService_Update(t *testing.T) {
	p := readerPrincipal()
	profile := &model.Profile{ID: uuid.New(), UUID: p.ProfileUUID}
	c := &model.Comment{ID: uuid.New(), AuthorID: profile.ID, Content: "old", Status: model.CommentApproved}

	mockComments := &MockCommentRepo{}
	mockProfiles := &MockProfileRepo{}
	mockComments.On("GetByID", mock.Anything, c.ID).Return(c, nil)
	mockProfiles.On("GetByUUID", mock.Anything, p.ProfileUUID).Return(profile, nil)
	mockComments.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Comment) bool {
		return x.Content == "new text" && x.EditedAt != nil
	})).Return(nil)

	svc := NewCommentService(mockComments, &MockPostRepo{}, mockProfiles, commentTestConfig(true), nil, zap.NewNop())
	out, err := svc.Update(context.Background(), p, c.ID, "new text")

	assert.NoError(t, err)
	assert.Equal(t, "new text", out.Content)
	assert.NotNil(t, out.EditedAt)
	mockComments.AssertExpectations(t)
}

func TestCommentService_Moderate(t *testing.T) {
	commentID := uuid.New()

	tests := []struct {
		name        string
		principal   *roles.Principal
		status      model.CommentStatus
		setup       func(*MockCommentRepo)
		expectError bool
		errorKind   apperr.Kind
	}{
		{
			name:      "staff approves a pending comment",
			principal: staffPrincipal(),
			status:    model.CommentApproved,
			setup: func(c *MockCommentRepo) {
				c.On("GetByID", mock.Anything, commentID).
					Return(&model.Comment{ID: commentID, Content: "ok", Status: model.CommentPending}, nil)
				c.On("Update", mock.Anything, mock.MatchedBy(func(x *model.Comment) bool {
					return x.Status == model.CommentApproved
				})).Return(nil)
			},
		},
		{
			name:      "staff may reverse a rejection",
			principal: staffPrincipal(),
			status:    model.CommentApproved,
			setup: func(c *MockCommentRepo) {
				c.On("GetByID", mock.Anything, commentID).
					Return(&model.Comment{ID: commentID, Content: "ok", Status: model.CommentRejected}, nil)
				c.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:        "non-staff is rejected",
			principal:   readerPrincipal(),
			status:      model.CommentApproved,
			setup:       func(c *MockCommentRepo) {},
			expectError: true,
			errorKind:   apperr.KindForbidden,
		},
		{
			name:        "unknown status",
			principal:   staffPrincipal(),
			status:      model.CommentStatus("archived"),
			setup:       func(c *MockCommentRepo) {},
			expectError: true,
			errorKind:   apperr.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := &MockCommentRepo{}
			tt.setup(mockComments)

			svc := NewCommentService(mockComments, &MockPostRepo{}, &MockProfileRepo{}, commentTestConfig(true), nil, zap.NewNop())
			out, err := svc.Moderate(context.Background(), tt.principal, commentID, tt.status)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, out)
				assert.Equal(t, tt.errorKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, out.Status)
			}

			mockComments.AssertExpectations(t)
		})
	}
}
