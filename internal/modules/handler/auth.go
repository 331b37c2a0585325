package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masblog-io/masblog/internal/middleware"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type AuthHandler struct {
	auth  service.AuthService
	users service.UserService
}

func NewAuthHandler(auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email" example:"reader@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type loginResp struct {
	Tokens *service.TokenPair `json:"tokens"`
	User   interface{}        `json:"user"`
}

// SignUp godoc
//
//	@Summary		Register account
//	@Description	Create a reader account and its public profile
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.SignUpInput	true	"SignUp payload"
//	@Success		201	{object}	serializer.Response{data=model.User}
//	@Router			/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	req := service.SignUpInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(user))
}

// Login godoc
//
//	@Summary		Login
//	@Description	Exchange credentials for an access/refresh token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.LoginReq	true	"Login payload"
//	@Success		200	{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tokens, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(loginResp{Tokens: tokens, User: user}))
}

// Refresh godoc
//
//	@Summary		Refresh tokens
//	@Description	Exchange a refresh token for a new token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.RefreshReq	true	"Refresh payload"
//	@Success		200	{object}	serializer.Response{data=service.TokenPair}
//	@Router			/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	req := RefreshReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tokens, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(tokens))
}

// Me godoc
//
//	@Summary		Current account
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		c.JSON(http.StatusUnauthorized, serializer.CheckLogin())
		return
	}

	user, err := h.users.GetByUUID(c.Request.Context(), p.ProfileUUID)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(user))
}
