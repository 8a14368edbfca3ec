package controllers

import (
	"errors"
	"strconv"

	"backend/pkg/resp"
	"backend/pkg/toast"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func paramUint(c *gin.Context, name string) uint {
	id, _ := strconv.Atoi(c.Param(name))
	return uint(id)
}

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *services.OrderService
	Toasts   *toast.Store
}

func NewOrderController(checkout *services.CheckoutService, orders *services.OrderService, toasts *toast.Store) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders, Toasts: toasts}
}

// POST /checkout
func (h *OrderController) Submit(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Checkout.Submit(utils.CurrentTenantID(c), dev, &req)
	if err != nil {
		var selErr *services.SelectionError
		switch {
		case errors.As(err, &selErr):
			c.JSON(400, gin.H{"ok": false, "error": "selections rejected", "messages": selErr.Messages})
		case errors.Is(err, services.ErrCartEmpty),
			errors.Is(err, services.ErrTableRequired),
			errors.Is(err, services.ErrBadCustomerType):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrSubmitInFlight):
			resp.Conflict(c, err.Error())
		default:
			// order ไม่ถูกสร้าง cart ยังอยู่ครบ
			h.Toasts.Push(toast.KindDestructive, "Order failed", "Could not place your order, please try again", viewport(c))
			resp.ServerError(c, err)
		}
		return
	}

	h.Toasts.Push(toast.KindDefault, "Order placed", "Order "+out.OrderNumber+" confirmed", viewport(c))
	resp.Created(c, out)
}

// GET /orders?status=&page=&limit=
func (h *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, total, err := h.Orders.List(utils.CurrentTenantID(c), c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	d, err := h.Orders.Detail(utils.CurrentTenantID(c), paramUint(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, d)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := h.Orders.UpdateStatus(utils.CurrentTenantID(c), paramUint(c, "id"), body.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		if errors.Is(err, services.ErrBadTransition) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
