package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/pkg/toast"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct {
	Svc    *services.CartService
	Toasts *toast.Store
}

func NewCartController(s *services.CartService, toasts *toast.Store) *CartController {
	return &CartController{Svc: s, Toasts: toasts}
}

func deviceID(c *gin.Context) string {
	if id := c.GetHeader("X-Device-ID"); id != "" {
		return id
	}
	return ""
}

func viewport(c *gin.Context) toast.Viewport {
	if c.GetHeader("X-Viewport") == "mobile" {
		return toast.ViewportMobile
	}
	return toast.ViewportDesktop
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}
	cart, subtotal, err := h.Svc.Get(utils.CurrentTenantID(c), dev)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/lines
func (h *CartController) Add(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Add(utils.CurrentTenantID(c), dev, &req)
	if err != nil {
		var selErr *services.SelectionError
		if errors.As(err, &selErr) {
			c.JSON(400, gin.H{"ok": false, "error": "selections rejected", "messages": selErr.Messages})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	if out.Merged {
		h.Toasts.Push(toast.KindDefault, "Item updated", "Quantity increased", viewport(c))
	} else {
		h.Toasts.Push(toast.KindDefault, "Item added", "Added to your order", viewport(c))
	}
	resp.Created(c, gin.H{"merged": out.Merged})
}

// POST /cart/lines/:id/increment
func (h *CartController) Increment(c *gin.Context) {
	h.adjust(c, h.Svc.Increment)
}

// POST /cart/lines/:id/decrement
func (h *CartController) Decrement(c *gin.Context) {
	h.adjust(c, h.Svc.Decrement)
}

func (h *CartController) adjust(c *gin.Context, fn func(tenantID, deviceID string, lineID uint) error) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}
	lineID := paramUint(c, "id")
	if err := fn(utils.CurrentTenantID(c), dev, lineID); err != nil {
		if errors.Is(err, services.ErrLineNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /cart/lines/:id/note
func (h *CartController) SetNote(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}
	var body struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetNote(utils.CurrentTenantID(c), dev, paramUint(c, "id"), body.Note); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/lines/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}
	if err := h.Svc.RemoveLine(utils.CurrentTenantID(c), dev, paramUint(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	dev := deviceID(c)
	if dev == "" {
		resp.BadRequest(c, "missing X-Device-ID")
		return
	}
	if err := h.Svc.Clear(utils.CurrentTenantID(c), dev); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
