package handlers

import (
	"net/http"

	"rentdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	Store *store.Store
}

func NewAuditHandler(st *store.Store) *AuditHandler { return &AuditHandler{Store: st} }

func (h *AuditHandler) List(c *gin.Context) {
	logs, err := h.Store.ListAssetLogs(c.Request.Context(), 200)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load audit log")
		return
	}
	render(c, http.StatusOK, "audit_list.html", gin.H{"logs": logs})
}
