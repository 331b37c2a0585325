package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/masblog-io/masblog/internal/middleware"
	"github.com/masblog-io/masblog/internal/modules/model"
	"github.com/masblog-io/masblog/internal/modules/repo"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
	"github.com/masblog-io/masblog/internal/pkg/paging"
)

type AssetHandler struct {
	svc service.AssetService
}

func NewAssetHandler(svc service.AssetService) *AssetHandler {
	return &AssetHandler{svc: svc}
}

type ListAssetsReq struct {
	paging.Params
	Status string `form:"status" json:"status" binding:"omitempty,oneof=active orphaned pending_delete deleted"`
	Mine   bool   `form:"mine" json:"mine"`
}

type DeleteAssetByURLReq struct {
	URL string `json:"url" binding:"required" example:"https://cdn.example.com/upload/v1724900000/masblog/assets/ab12.png"`
}

type RefChangeReq struct {
	Kind  string    `json:"kind" binding:"required" example:"post"`
	RefID uuid.UUID `json:"ref_id" binding:"required"`
	Field string    `json:"field" example:"cover_image"`
}

// readUpload pulls the multipart "file" part into memory along with its
// declared content type and original filename.
func readUpload(c *gin.Context) ([]byte, string, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", err
	}
	return data, fh.Header.Get("Content-Type"), fh.Filename, nil
}

// Upload godoc
//
//	@Summary		Upload asset
//	@Description	Upload an image to the object store and register it
//	@Tags			asset
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Asset}
//	@Router			/assets [post]
func (h *AssetHandler) Upload(c *gin.Context) {
	data, contentType, name, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing file", err))
		return
	}

	asset, err := h.svc.Upload(c.Request.Context(), middleware.PrincipalFrom(c), data, contentType, name)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(asset))
}

// Replace godoc
//
//	@Summary		Replace asset
//	@Description	Swap the stored object while keeping the asset identity and reference count
//	@Tags			asset
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Asset ID"	format(uuid)
//	@Param			file	formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Asset}
//	@Router			/assets/{id} [put]
func (h *AssetHandler) Replace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid asset id", err))
		return
	}
	data, contentType, name, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing file", err))
		return
	}

	asset, err := h.svc.Replace(c.Request.Context(), middleware.PrincipalFrom(c), id, data, contentType, name)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(asset))
}

// Delete godoc
//
//	@Summary		Delete asset
//	@Description	Two-phase delete; fails while the asset is still referenced
//	@Tags			asset
//	@Produce		json
//	@Param			id	path	string	true	"Asset ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid asset id", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// DeleteByURL godoc
//
//	@Summary		Delete asset by URL
//	@Description	Resolve the storage key from a public URL and delete the asset
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.DeleteAssetByURLReq	true	"DeleteByURL payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/assets/by-url [delete]
func (h *AssetHandler) DeleteByURL(c *gin.Context) {
	req := DeleteAssetByURLReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.DeleteByURL(c.Request.Context(), middleware.PrincipalFrom(c), req.URL); err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(nil))
}

// Get godoc
//
//	@Summary		Get asset
//	@Tags			asset
//	@Produce		json
//	@Param			id	path	string	true	"Asset ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Asset}
//	@Router			/assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid asset id", err))
		return
	}

	asset, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(asset))
}

// List godoc
//
//	@Summary		List assets
//	@Tags			asset
//	@Produce		json
//	@Param			page	query	integer	false	"Page, starting at 1"
//	@Param			limit	query	integer	false	"Page size, max 100"
//	@Param			status	query	string	false	"Lifecycle status filter"
//	@Param			mine	query	boolean	false	"Only the caller's assets"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	req := ListAssetsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p := middleware.PrincipalFrom(c)
	f := repo.AssetFilter{Status: model.AssetStatus(req.Status)}
	if req.Mine || (p != nil && !p.IsStaff()) {
		f.OwnerID = p.UserID
	}

	assets, meta, err := h.svc.List(c.Request.Context(), f, req.Params)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(gin.H{"items": assets, "meta": meta}))
}

type ListOrphanedReq struct {
	OlderThanHours int `form:"olderThanHours" binding:"omitempty,min=1"`
	Limit          int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ListOrphaned godoc
//
//	@Summary		List orphaned assets
//	@Description	Assets sitting at refcount zero past the cutoff, for manual cleanup
//	@Tags			asset
//	@Produce		json
//	@Param			olderThanHours	query	integer	false	"Orphaned-for cutoff in hours (default 24)"
//	@Param			limit			query	integer	false	"Max rows (default 100)"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/assets/orphaned [get]
func (h *AssetHandler) ListOrphaned(c *gin.Context) {
	req := ListOrphanedReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	assets, err := h.svc.ListOrphaned(c.Request.Context(), time.Duration(req.OlderThanHours)*time.Hour, req.Limit)
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(assets))
}

// IncrementRef godoc
//
//	@Summary		Attach reference
//	@Description	Record that a piece of content embeds this asset
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Asset ID"	format(uuid)
//	@Param			payload	body	handler.RefChangeReq	true	"Reference payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Asset}
//	@Router			/assets/{id}/refs [post]
func (h *AssetHandler) IncrementRef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid asset id", err))
		return
	}
	req := RefChangeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	asset, err := h.svc.IncrementRef(c.Request.Context(), id, model.AssetUseRef{
		Kind: req.Kind, RefID: req.RefID, Field: req.Field,
	})
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(asset))
}

// DecrementRef godoc
//
//	@Summary		Detach reference
//	@Description	Record that a piece of content stopped embedding this asset
//	@Tags			asset
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string	true	"Asset ID"	format(uuid)
//	@Param			payload	body	handler.RefChangeReq	true	"Reference payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Asset}
//	@Router			/assets/{id}/refs [delete]
func (h *AssetHandler) DecrementRef(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid asset id", err))
		return
	}
	req := RefChangeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	asset, err := h.svc.DecrementRef(c.Request.Context(), id, model.AssetUseRef{
		Kind: req.Kind, RefID: req.RefID, Field: req.Field,
	})
	if err != nil {
		resp := serializer.FromError(err)
		c.JSON(resp.Code, resp)
		return
	}
	c.JSON(http.StatusOK, serializer.Ok(asset))
}
