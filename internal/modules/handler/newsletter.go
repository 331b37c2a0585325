package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
)

type NewsletterHandler struct {
	svc service.NewsletterService
}

func NewNewsletterHandler(svc service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

type SubscribeReq struct {
	Email string `json:"email" binding:"required,email" example:"reader@example.com"`
}

// Subscribe godoc
//
//	@Summary		Subscribe to newsletter
//	@Tags			newsletter
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SubscribeReq	true	"Subscribe payload"
//	@Success		201	{object}	serializer.Response{data=model.NewsletterSubscriber}
//	@Router			/newsletter/subscribers [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	req := SubscribeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sub, err := h.svc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(sub))
}

// Get godoc
//
//	@Summary		Get subscriber
//	@Tags			newsletter
//	@Produce		json
//	@Param			id	path	string	true	"Subscriber ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.NewsletterSubscriber}
//	@Router			/newsletter/subscribers/{id} [get]
func (h *NewsletterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid subscriber id", err))
		return
	}

	sub, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(sub))
}

// List godoc
//
//	@Summary		List subscribers
//	@Tags			newsletter
//	@Produce		json
//	@Param			page		query	integer	false	"Page, starting at 1"
//	@Param			limit		query	integer	false	"Page size, max 100"
//	@Param			searchTerm	query	string	false	"Match email"
//	@Param			email		query	string	false	"Email filter"
//	@Param			sort		query	string	false	"newest, oldest, emailAsc, or emailDesc"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/newsletter/subscribers [get]
func (h *NewsletterHandler) List(c *gin.Context) {
	req := service.ListSubscribersInput{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	subs, meta, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": subs, "meta": meta}))
}
