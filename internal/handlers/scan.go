package handlers

import (
	"net/http"

	"rentdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ScanHandler backs the scanner box: a code pasted or read from a QR/barcode
// lands here and gets redirected to whatever record it names.
type ScanHandler struct {
	Resolver *service.Resolver
}

func NewScanHandler(r *service.Resolver) *ScanHandler { return &ScanHandler{Resolver: r} }

func (h *ScanHandler) Scan(c *gin.Context) {
	code := c.Query("code")

	res, err := h.Resolver.Resolve(c.Request.Context(), code)
	if err != nil {
		c.String(httpStatus(err), err.Error())
		return
	}

	if res.Asset != nil {
		c.Redirect(http.StatusFound, "/assets/view/"+res.Asset.ID)
		return
	}
	c.Redirect(http.StatusFound, "/orders/view/"+res.Order.ID)
}
