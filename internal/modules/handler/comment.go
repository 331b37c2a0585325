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

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type UpdateCommentReq struct {
	Content string `json:"content" binding:"required"`
}

type ModerateCommentReq struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected spam deleted"`
}

// Create godoc
//
//	@Summary		Create comment
//	@Description	Add a comment or a reply under a post
//	@Tags			comment
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Post ID"	format(uuid)
//	@Param			payload	body	service.CreateCommentInput	true	"Comment payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=service.CommentOut}
//	@Router			/posts/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}
	req := service.CreateCommentInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), postID, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(out))
}

// ListByPost godoc
//
//	@Summary		List comments
//	@Description	Page through a post's comments; top-level with reply counts unless includeReplies is set
//	@Tags			comment
//	@Produce		json
//	@Param			id			path	string	true	"Post ID"	format(uuid)
//	@Param			page			query	integer	false	"Page, starting at 1"
//	@Param			limit			query	integer	false	"Page size, max 100"
//	@Param			includeReplies	query	boolean	false	"Return replies inline instead of counts"
//	@Param			sortOrder		query	string	false	"asc or desc (default asc)"
//	@Param			status			query	string	false	"Status filter, staff only"
//	@Success		200	{object}	serializer.Response
//	@Router			/posts/{id}/comments [get]
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid post id", err))
		return
	}
	req := service.ListCommentsInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, meta, err := h.svc.ListByPost(c.Request.Context(), middleware.PrincipalFrom(c), postID, req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": out, "meta": meta}))
}

// Get godoc
//
//	@Summary		Get comment
//	@Description	Fetch a single comment by id
//	@Tags			comment
//	@Produce		json
//	@Param			id	path	string	true	"Comment ID"	format(uuid)
//	@Success		200	{object}	serializer.Response{data=service.CommentOut}
//	@Router			/comments/{id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid comment id", err))
		return
	}

	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(out))
}

// Update godoc
//
//	@Summary		Edit comment
//	@Description	Author or staff rewrite of a comment body
//	@Tags			comment
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Comment ID"	format(uuid)
//	@Param			payload	body	handler.UpdateCommentReq	true	"Update payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CommentOut}
//	@Router			/comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid comment id", err))
		return
	}
	req := UpdateCommentReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Content)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(out))
}

// Delete godoc
//
//	@Summary		Delete comment
//	@Description	Soft delete; the thread keeps its shape and readers see a placeholder
//	@Tags			comment
//	@Produce		json
//	@Param			id	path	string	true	"Comment ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid comment id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// Moderate godoc
//
//	@Summary		Moderate comment
//	@Description	Staff-only transition to any moderation status
//	@Tags			comment
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Comment ID"	format(uuid)
//	@Param			payload	body	handler.ModerateCommentReq	true	"Moderation payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CommentOut}
//	@Router			/comments/{id}/moderate [patch]
func (h *CommentHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid comment id", err))
		return
	}
	req := ModerateCommentReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Moderate(c.Request.Context(), middleware.PrincipalFrom(c), id, model.CommentStatus(req.Status))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(out))
}
