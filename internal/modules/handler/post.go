package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/middleware"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

type ChangePostStatusReq struct {
	Status string `json:"status" binding:"required,oneof=draft published archived"`
}

type ChangePostPlacementReq struct {
	Placement string `json:"placement" binding:"required,oneof=general featured popular"`
}

// Create godoc
//
//	@Summary		Create post
//	@Description	Create a draft with a generated slug and reading time
//	@Tags			post
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.CreatePostInput	true	"Post payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Post}
//	@Router			/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	req := service.CreatePostInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	post, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(post))
}

// Update godoc
//
//	@Summary		Update post
//	@Tags			post
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Post ID"	format(uuid)
//	@Param			payload	body	service.UpdatePostInput	true	"Update payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Router			/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}
	req := service.UpdatePostInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	post, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(post))
}

// Delete godoc
//
//	@Summary		Delete post
//	@Tags			post
//	@Produce		json
//	@Param			id	path	string	true	"Post ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// Get godoc
//
//	@Summary		Get post
//	@Tags			post
//	@Produce		json
//	@Param			id	path	string	true	"Post ID"	format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Router			/posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}

	post, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(post))
}

// GetBySlug godoc
//
//	@Summary		Get post by slug
//	@Tags			post
//	@Produce		json
//	@Param			slug	path	string	true	"Post slug"
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Router			/posts/slug/{slug} [get]
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(post))
}

// List godoc
//
//	@Summary		List posts
//	@Tags			post
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			status		query	string	false	"Status filter, staff only"
//	@Param			placement	query	string	false	"general, featured or popular"
//	@Param			category_id	query	string	false	"Category filter"	format(uuid)
//	@Param			tag_id		query	string	false	"Tag filter"		format(uuid)
//	@Param			author_id	query	string	false	"Author filter"		format(uuid)
//	@Param			searchTerm	query	string	false	"Match title or excerpt"
//	@Param			sortBy		query	string	false	"createdAt, updatedAt or title (default createdAt)"
//	@Param			sortOrder	query	string	false	"asc or desc (default desc)"
//	@Success		200	{object}	serializer.Response
//	@Router			/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	req := service.ListPostsInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	posts, meta, err := h.svc.List(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": posts, "meta": meta}))
}

// ChangeStatus godoc
//
//	@Summary		Change post status
//	@Description	Publishing needs a staff role; authors move their own posts between draft and archived
//	@Tags			post
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Post ID"	format(uuid)
//	@Param			payload	body	handler.ChangePostStatusReq	true	"Status payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Router			/posts/{id}/status [patch]
func (h *PostHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}
	req := ChangePostStatusReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	post, err := h.svc.ChangeStatus(c.Request.Context(), middleware.PrincipalFrom(c), id, model.PostStatus(req.Status))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(post))
}

// ChangePlacement godoc
//
//	@Summary		Change post placement
//	@Description	Staff-only move between general, featured and popular shelves
//	@Tags			post
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Post ID"	format(uuid)
//	@Param			payload	body	handler.ChangePostPlacementReq	true	"Placement payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Router			/posts/{id}/placement [patch]
func (h *PostHandler) ChangePlacement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}
	req := ChangePostPlacementReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	post, err := h.svc.ChangePlacement(c.Request.Context(), middleware.PrincipalFrom(c), id, model.PostPlacement(req.Placement))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(post))
}
