package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create godoc
//
//	@Summary		Create category
//	@Tags			category
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.TaxonomyInput	true	"Category payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Category}
//	@Router			/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	req := service.TaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	category, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(category))
}

// Update godoc
//
//	@Summary		Update category
//	@Tags			category
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Category ID"	format(uuid)
//	@Param			payload	body	service.TaxonomyInput	true	"Category payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Category}
//	@Router			/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid category id", err))
		return
	}
	req := service.TaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	category, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(category))
}

// Delete godoc
//
//	@Summary		Delete category
//	@Tags			category
//	@Produce		json
//	@Param			id	path	string	true	"Category ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid category id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// List godoc
//
//	@Summary		List categories
//	@Tags			category
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			searchTerm	query	string	false	"Match name or description"
//	@Param			sort		query	string	false	"newest, oldest, nameAsc, or nameDesc"
//	@Success		200	{object}	serializer.Response
//	@Router			/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	req := service.ListTaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	categories, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": categories, "meta": meta}))
}

// Get godoc
//
//	@Summary		Get category
//	@Tags			category
//	@Produce		json
//	@Param			id	path	string	true	"Category ID"	format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Category}
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid category id", err))
		return
	}

	category, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(category))
}

type TagHandler struct {
	svc service.TagService
}

func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Create godoc
//
//	@Summary		Create tag
//	@Tags			tag
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.TaxonomyInput	true	"Tag payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Tag}
//	@Router			/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	req := service.TaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tag, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(tag))
}

// Update godoc
//
//	@Summary		Update tag
//	@Tags			tag
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Tag ID"	format(uuid)
//	@Param			payload	body	service.TaxonomyInput	true	"Tag payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Tag}
//	@Router			/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tag id", err))
		return
	}
	req := service.TaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tag, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(tag))
}

// Delete godoc
//
//	@Summary		Delete tag
//	@Tags			tag
//	@Produce		json
//	@Param			id	path	string	true	"Tag ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tag id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// List godoc
//
//	@Summary		List tags
//	@Tags			tag
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			searchTerm	query	string	false	"Match name or description"
//	@Param			sort		query	string	false	"newest, oldest, nameAsc, or nameDesc"
//	@Success		200	{object}	serializer.Response
//	@Router			/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	req := service.ListTaxonomyInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tags, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": tags, "meta": meta}))
}

// Get godoc
//
//	@Summary		Get tag
//	@Tags			tag
//	@Produce		json
//	@Param			id	path	string	true	"Tag ID"	format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Tag}
//	@Router			/tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid tag id", err))
		return
	}

	tag, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(tag))
}
