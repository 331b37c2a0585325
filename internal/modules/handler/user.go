package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
	"github.com/masblog-io/masblog/internal/pkg/paging"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
//
//	@Summary		List users
//	@Description	Staff-only account listing
//	@Tags			user
//	@Produce		json
//	@Param			page	query	integer	false	"Page, starting at 1"
//	@Param			limit	query	integer	false	"Page size, max 100"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/users [get]
func (h *UserHandler) List(c *gin.Context) {
	req := paging.Params{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	users, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": users, "meta": meta}))
}

// Get godoc
//
//	@Summary		Get user
//	@Tags			user
//	@Produce		json
//	@Param			uuid	path	string	true	"User UUID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/users/{uuid} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(user))
}
