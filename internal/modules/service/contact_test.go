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
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockContactRepo is a mock implementation of repo.ContactRepo
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, c *model.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepo) List(ctx context.Context, f repo.ContactFilter, offset, limit int) ([]*model.Contact, int64, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Contact), args.Get(1).(int64), args.Error(2)
}

func TestContactService_Create(t *testing.T) {
	mockRepo := &MockContactRepo{}
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.Name == "Ada" && c.Email == "ada@example.com"
	})).Return(nil)

	svc := NewContactService(mockRepo, nil, zap.NewNop())
	contact, err := svc.Create(context.Background(), ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "hello",
		Message: "a question about posts",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ada", contact.Name)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		c := &model.Contact{ID: uuid.New(), Name: "Ada", Subject: "hello"}
		mockRepo := &MockContactRepo{}
		mockRepo.On("GetByID", mock.Anything, c.ID).Return(c, nil)

		svc := NewContactService(mockRepo, nil, zap.NewNop())
		out, err := svc.Get(context.Background(), c.ID)

		assert.NoError(t, err)
		assert.Equal(t, "hello", out.Subject)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing contact", func(t *testing.T) {
		id := uuid.New()
		mockRepo := &MockContactRepo{}
		mockRepo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewContactService(mockRepo, nil, zap.NewNop())
		out, err := svc.Get(context.Background(), id)

		assert.Error(t, err)
		assert.Nil(t, out)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestContactService_List(t *testing.T) {
	mockRepo := &MockContactRepo{}
	mockRepo.On("List", mock.Anything,
		repo.ContactFilter{Search: "refund", Email: "ada@example.com", Sort: "oldest"}, 0, 20).
		Return([]*model.Contact{{Name: "Ada"}}, int64(1), nil)

	svc := NewContactService(mockRepo, nil, zap.NewNop())
	contacts, meta, err := svc.List(context.Background(), ListContactsInput{
		Search: "refund",
		Email:  "ada@example.com",
		Sort:   "oldest",
	})

	assert.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, int64(1), meta.Total)
	mockRepo.AssertExpectations(t)
}
