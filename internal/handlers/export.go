package handlers

import (
	"net/http"

	"rentdesk/internal/export"
	"rentdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler { return &ExportHandler{Store: st} }

func (h *ExportHandler) AssetsCSV(c *gin.Context) {
	assets, err := h.Store.ListAssets(c.Request.Context(), store.AssetFilter{})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load assets")
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="assets.csv"`)
	if err := export.WriteAssetsCSV(c.Writer, assets); err != nil {
		c.String(http.StatusInternalServerError, "failed to write csv")
	}
}

func (h *ExportHandler) AssetsPDF(c *gin.Context) {
	assets, err := h.Store.ListAssets(c.Request.Context(), store.AssetFilter{})
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load assets")
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="assets.pdf"`)
	if err := export.WriteAssetsPDF(c.Writer, assets); err != nil {
		c.String(http.StatusInternalServerError, "failed to write pdf")
	}
}

func (h *ExportHandler) OrdersCSV(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load orders")
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	if err := export.WriteOrdersCSV(c.Writer, orders); err != nil {
		c.String(http.StatusInternalServerError, "failed to write csv")
	}
}

func (h *ExportHandler) OrderPDF(c *gin.Context) {
	order, err := h.Store.FindOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Order not found")
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="order-`+order.ID+`.pdf"`)
	if err := export.WriteOrderPDF(c.Writer, *order); err != nil {
		c.String(http.StatusInternalServerError, "failed to write pdf")
	}
}
