package handlers

import (
	"net/http"

	"rentdesk/internal/codes"
	"rentdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type CodeHandler struct {
	Store *store.Store
	Codes *codes.Generator
}

func NewCodeHandler(st *store.Store, gen *codes.Generator) *CodeHandler {
	return &CodeHandler{Store: st, Codes: gen}
}

func (h *CodeHandler) QRCode(c *gin.Context) {
	asset, err := h.Store.FindAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Asset not found")
		return
	}
	path, err := h.Codes.QRCodePNG(asset.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render qr code")
		return
	}
	c.File(path)
}

func (h *CodeHandler) Barcode(c *gin.Context) {
	asset, err := h.Store.FindAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Asset not found")
		return
	}
	path, err := h.Codes.BarcodePNG(asset.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render barcode")
		return
	}
	c.File(path)
}
