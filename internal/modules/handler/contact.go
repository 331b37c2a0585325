package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Create godoc
//
//	@Summary		Send contact message
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.ContactInput	true	"Contact payload"
//	@Success		201	{object}	serializer.Response{data=model.Contact}
//	@Router			/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	req := service.ContactInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	contact, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(contact))
}

// Get godoc
//
//	@Summary		Get contact message
//	@Tags			contact
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Contact}
//	@Router			/contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid contact id", err))
		return
	}

	contact, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(contact))
}

// List godoc
//
//	@Summary		List contact messages
//	@Tags			contact
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			searchTerm	query	string	false	"Match name, email, subject, or message"
//	@Param			name		query	string	false	"Sender name filter"
//	@Param			email		query	string	false	"Sender email filter"
//	@Param			subject		query	string	false	"Subject filter"
//	@Param			sort		query	string	false	"newest, oldest, nameAsc, or nameDesc"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	req := service.ListContactsInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	contacts, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": contacts, "meta": meta}))
}
