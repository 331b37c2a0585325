package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masblog-io/masblog/internal/middleware"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type ProfileHandler struct {
	svc service.ProfileService
}

func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Create godoc
//
//	@Summary		Create profile
//	@Description	Staff provisioning of a public profile under a chosen uuid
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CreateProfileInput	true	"Profile payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Profile}
//	@Router			/profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	req := service.CreateProfileInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	profile, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Ok(profile))
}

// Get godoc
//
//	@Summary		Get profile
//	@Tags			profile
//	@Produce		json
//	@Param			uuid	path	string	true	"Profile UUID"
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/profiles/{uuid} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.svc.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(profile))
}

// Me godoc
//
//	@Summary		Get own profile
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	profile, err := h.svc.GetByUUID(c.Request.Context(), p.ProfileUUID)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(profile))
}

// UpdateMe godoc
//
//	@Summary		Update own profile
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.UpdateProfileInput	true	"Profile payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/profiles/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	req := service.UpdateProfileInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p := middleware.PrincipalFrom(c)
	profile, err := h.svc.Update(c.Request.Context(), p, p.ProfileUUID, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(profile))
}

// Update godoc
//
//	@Summary		Update profile
//	@Description	Owner or staff update of a public profile
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			uuid	path	string	true	"Profile UUID"
//	@Param			payload	body	service.UpdateProfileInput	true	"Profile payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Profile}
//	@Router			/profiles/{uuid} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	req := service.UpdateProfileInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	profile, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("uuid"), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(profile))
}

// Delete godoc
//
//	@Summary		Delete profile
//	@Description	Owner or staff removal of a public profile
//	@Tags			profile
//	@Produce		json
//	@Param			uuid	path	string	true	"Profile UUID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/profiles/{uuid} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("uuid")); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// List godoc
//
//	@Summary		List profiles
//	@Tags			profile
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			searchTerm	query	string	false	"Match display name, bio, location, or uuid"
//	@Param			location	query	string	false	"Exact location"
//	@Param			hasAvatar	query	boolean	false	"Only profiles with (or without) an avatar"
//	@Param			sort		query	string	false	"newest, oldest, nameAsc, or nameDesc"
//	@Success		200	{object}	serializer.Response
//	@Router			/profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	req := service.ListProfilesInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	profiles, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": profiles, "meta": meta}))
}
