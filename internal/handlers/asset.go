package handlers

import (
	"gridops/internal/models"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
)

type createAssetRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type updateAssetRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

func (h *Handler) ListAssets(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	assets, err := h.Store.ListAssets(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, assets)
}

func (h *Handler) GetOneAsset(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	asset, err := h.Store.GetAsset(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, asset)
}

func (h *Handler) CreateAsset(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req createAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	asset := models.Asset{Name: req.Name, BelongsToID: ident.UserID}
	if err := h.Store.CreateAsset(c.Request.Context(), &asset); err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "asset", asset.ID, "create", "registered asset "+asset.Name)
	respondData(c, asset)
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c)
		return
	}

	asset, err := h.Store.UpdateAsset(c.Request.Context(), ident.UserID, id, store.AssetPatch{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "asset", asset.ID, "update", "updated asset "+asset.Name)
	respondData(c, asset)
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	asset, err := h.Store.DeleteAsset(c.Request.Context(), ident.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	h.audit(c, "asset", asset.ID, "delete", "deleted asset "+asset.Name)
	respondData(c, asset)
}
