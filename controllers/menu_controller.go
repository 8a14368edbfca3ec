package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /menu/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// GET /menu/items?categoryId=
func (h *MenuController) Items(c *gin.Context) {
	catID, _ := strconv.Atoi(c.Query("categoryId"))
	items, err := h.Svc.ListItems(uint(catID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/items/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /menu/items/:id/toppings
func (h *MenuController) Toppings(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cats, err := h.Svc.ToppingsForItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// POST /menu/items/:id/toppings/check-increment
// หน้า customize เรียกก่อน apply กด + บน topping
func (h *MenuController) CheckToppingIncrement(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		ToppingID uint                   `json:"toppingId" binding:"required"`
		Picks     []services.ToppingPick `json:"picks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	picks := make(map[uint]int, len(req.Picks))
	for _, p := range req.Picks {
		picks[p.ToppingID] += p.Qty
	}
	if err := h.Svc.CheckToppingIncrement(uint(id), req.ToppingID, picks); err != nil {
		switch {
		case errors.Is(err, services.ErrMaxQtyReached),
			errors.Is(err, services.ErrCategoryMaxReached),
			errors.Is(err, services.ErrInvalidToppings):
			c.JSON(200, gin.H{"ok": true, "data": gin.H{"allowed": false, "reason": err.Error()}})
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"allowed": true})
}

// ===== Admin =====

type AdminMenuController struct {
	Svc  *services.CatalogService
	Feed *ws.FeedHub
}

func NewAdminMenuController(s *services.CatalogService, feed *ws.FeedHub) *AdminMenuController {
	return &AdminMenuController{Svc: s, Feed: feed}
}

// POST /admin/menu/categories
func (h *AdminMenuController) CreateCategory(c *gin.Context) {
	var req entity.MenuCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.MenuRepo.CreateCategory(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_categories", ws.EventInsert, req)
	resp.Created(c, req)
}

// POST /admin/menu/items
func (h *AdminMenuController) CreateItem(c *gin.Context) {
	var req entity.MenuItem
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.MenuRepo.CreateItem(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_items", ws.EventInsert, req)
	resp.Created(c, req)
}

// PATCH /admin/menu/items/:id
func (h *AdminMenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := h.Svc.GetItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := c.ShouldBindJSON(m); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.ID = uint(id)
	if err := h.Svc.MenuRepo.UpdateItem(m); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_items", ws.EventUpdate, m)
	resp.OK(c, m)
}

// DELETE /admin/menu/items/:id
func (h *AdminMenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.MenuRepo.DeleteItem(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_items", ws.EventDelete, gin.H{"id": id})
	resp.OK(c, gin.H{"ok": true})
}

// POST /admin/menu/items/:id/topping-categories
func (h *AdminMenuController) AttachToppingCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req struct {
		ToppingCategoryID uint `json:"toppingCategoryId" binding:"required"`
		SortOrder         int  `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.MenuRepo.AttachToppingCategory(uint(id), req.ToppingCategoryID, req.SortOrder); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_items", ws.EventUpdate, gin.H{"id": id})
	resp.Created(c, gin.H{"ok": true})
}

// DELETE /admin/menu/items/:id/topping-categories/:catId
func (h *AdminMenuController) DetachToppingCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	catID, _ := strconv.Atoi(c.Param("catId"))
	if err := h.Svc.MenuRepo.DetachToppingCategory(uint(id), uint(catID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("menu_items", ws.EventUpdate, gin.H{"id": id})
	resp.OK(c, gin.H{"ok": true})
}
