package handlers

import (
	"net/http"
	"strings"
	"time"

	"rentdesk/internal/models"
	"rentdesk/internal/service"
	"rentdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Store  *store.Store
	Orders *service.OrderService
}

func NewOrderHandler(st *store.Store, svc *service.OrderService) *OrderHandler {
	return &OrderHandler{Store: st, Orders: svc}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Store.ListOrders(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load orders")
		return
	}
	render(c, http.StatusOK, "orders_list.html", gin.H{"orders": orders})
}

func (h *OrderHandler) View(c *gin.Context) {
	order, err := h.Store.FindOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Order not found")
		return
	}
	render(c, http.StatusOK, "order_detail.html", gin.H{
		"order":  order,
		"assets": order.Assets,
	})
}

func (h *OrderHandler) ShowNew(c *gin.Context) {
	available, err := h.Store.AvailableAssets(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load assets")
		return
	}
	render(c, http.StatusOK, "order_form.html", gin.H{
		"all_assets": available,
		"error":      "",
	})
}

func (h *OrderHandler) Create(c *gin.Context) {
	customer := c.PostForm("customer_name")
	start, err1 := time.Parse("2006-01-02", strings.TrimSpace(c.PostForm("start_date")))
	end, err2 := time.Parse("2006-01-02", strings.TrimSpace(c.PostForm("end_date")))
	assetIDs := c.PostFormArray("asset_ids")

	if err1 != nil || err2 != nil {
		h.renderOrderFormError(c, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CustomerName: customer,
		StartDate:    start,
		EndDate:      end,
		AssetIDs:     assetIDs,
	})
	if err != nil {
		h.renderOrderFormError(c, httpStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/orders/view/"+order.ID)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	next := models.OrderStatus(strings.TrimSpace(c.PostForm("new_status")))

	if err := h.Orders.ChangeStatus(c.Request.Context(), id, next); err != nil {
		c.String(httpStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/orders/view/"+id)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.Orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.String(httpStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/orders")
}

func (h *OrderHandler) renderOrderFormError(c *gin.Context, status int, msg string) {
	available, _ := h.Store.AvailableAssets(c.Request.Context())
	render(c, status, "order_form.html", gin.H{
		"all_assets": available,
		"error":      msg,
	})
}
