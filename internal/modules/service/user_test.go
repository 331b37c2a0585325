package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUUID(ctx context.Context, userUUID string) (*model.User, error) {
	args := m.Called(ctx, userUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, offset, limit int) ([]*model.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Get(1).(int64), args.Error(2)
}

func userTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

func TestUserService_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		input       SignUpInput
		setup       func(*MockUserRepo, *MockProfileRepo)
		expectError bool
		errorKind   apperr.Kind
	}{
		{
			name:  "account and profile share one uuid",
			input: SignUpInput{Username: "reader1", Email: "Reader@Example.com", Password: "hunter2hunter2"},
			setup: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("ExistsByEmail", mock.Anything, "reader@example.com").Return(false, nil)
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "reader@example.com" &&
						u.Role == roles.RoleReader &&
						u.Status == model.UserActive &&
						u.UUID != "" &&
						u.Password != "hunter2hunter2"
				})).Return(nil)
				profiles.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
					return p.DisplayName == "reader1" && p.UUID != ""
				})).Return(nil)
			},
		},
		{
			name:  "duplicate email",
			input: SignUpInput{Username: "reader2", Email: "taken@example.com", Password: "hunter2hunter2"},
			setup: func(users *MockUserRepo, profiles *MockProfileRepo) {
				users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)
			},
			expectError: true,
			errorKind:   apperr.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := &MockUserRepo{}
			mockProfiles := &MockProfileRepo{}
			tt.setup(mockUsers, mockProfiles)

			svc := NewUserService(mockUsers, mockProfiles, userTestConfig())
			user, err := svc.SignUp(context.Background(), tt.input)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.Equal(t, tt.errorKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "reader@example.com", user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2hunter2")))
			}

			mockUsers.AssertExpectations(t)
			mockProfiles.AssertExpectations(t)
		})
	}
}

func TestUserService_GetByUUID(t *testing.T) {
	mockUsers := &MockUserRepo{}
	mockUsers.On("GetByUUID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockUsers, &MockProfileRepo{}, userTestConfig())
	user, err := svc.GetByUUID(context.Background(), "missing")

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	mockUsers.AssertExpectations(t)
}
