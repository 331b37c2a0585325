package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/pkg/apperr"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims is the JWT payload for both access and refresh tokens.
type Claims struct {
	UserID          string     `json:"user_id"`
	UUID            string     `json:"uuid"`
	Role            roles.Role `json:"role"`
	Status          string     `json:"status"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ParseAccess(tokenStr string) (*Claims, error)
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
}

func NewAuthService(users repo.UserRepo, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.BadRequest("invalid email or password")
		}
		return nil, nil, err
	}
	if user.Status != model.UserActive {
		return nil, nil, apperr.Forbidden("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.BadRequest("invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issue(user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := parseToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindForbidden, "invalid refresh token", err)
	}

	// Re-read the user so a disabled account or role change takes effect
	// on the next refresh, not at token expiry.
	user, err := s.users.GetByUUID(ctx, claims.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("account no longer exists")
		}
		return nil, err
	}
	if user.Status != model.UserActive {
		return nil, apperr.Forbidden("account is disabled")
	}
	return s.issue(user)
}

func (s *authService) ParseAccess(tokenStr string) (*Claims, error) {
	claims, err := parseToken(tokenStr, s.cfg.JWT.AccessSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindForbidden, "invalid access token", err)
	}
	return claims, nil
}

func (s *authService) issue(user *model.User) (*TokenPair, error) {
	access, err := s.sign(user, s.cfg.JWT.AccessSecret, time.Duration(s.cfg.JWT.AccessExpireMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(user, s.cfg.JWT.RefreshSecret, time.Duration(s.cfg.JWT.RefreshExpireMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) sign(user *model.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:          user.ID.String(),
		UUID:            user.UUID,
		Role:            user.Role,
		Status:          string(user.Status),
		Username:        user.Username,
		Email:           user.Email,
		EmailVerifiedAt: user.EmailVerifiedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseToken(tokenStr, secret string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}
