package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Admin CRUD ของ topping categories/toppings
type ToppingController struct {
	Repo *repository.ToppingRepository
	Feed *ws.FeedHub
}

func NewToppingController(repo *repository.ToppingRepository, feed *ws.FeedHub) *ToppingController {
	return &ToppingController{Repo: repo, Feed: feed}
}

// GET /admin/topping-categories
func (h *ToppingController) ListCategories(c *gin.Context) {
	cats, err := h.Repo.FindAllCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}

// POST /admin/topping-categories
func (h *ToppingController) CreateCategory(c *gin.Context) {
	var req entity.ToppingCategory
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.MaxSelect > 0 && req.MinSelect > req.MaxSelect {
		resp.BadRequest(c, "minSelect must not exceed maxSelect")
		return
	}
	if err := h.Repo.CreateCategory(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("topping_categories", ws.EventInsert, req)
	resp.Created(c, req)
}

// PATCH /admin/topping-categories/:id
func (h *ToppingController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	cat, err := h.Repo.FindCategoryByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "topping category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := c.ShouldBindJSON(cat); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat.ID = uint(id)
	if cat.MaxSelect > 0 && cat.MinSelect > cat.MaxSelect {
		resp.BadRequest(c, "minSelect must not exceed maxSelect")
		return
	}
	if err := h.Repo.UpdateCategory(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("topping_categories", ws.EventUpdate, cat)
	resp.OK(c, cat)
}

// DELETE /admin/topping-categories/:id
func (h *ToppingController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Repo.DeleteCategory(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("topping_categories", ws.EventDelete, gin.H{"id": id})
	resp.OK(c, gin.H{"ok": true})
}

// POST /admin/toppings
func (h *ToppingController) CreateTopping(c *gin.Context) {
	var req entity.Topping
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.MaxQty <= 0 {
		req.MaxQty = 1
	}
	if err := h.Repo.CreateTopping(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("toppings", ws.EventInsert, req)
	resp.Created(c, req)
}

// PATCH /admin/toppings/:id
func (h *ToppingController) UpdateTopping(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var t entity.Topping
	if err := h.Repo.DB.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "topping not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := c.ShouldBindJSON(&t); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t.ID = uint(id)
	if err := h.Repo.UpdateTopping(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("toppings", ws.EventUpdate, t)
	resp.OK(c, t)
}

// DELETE /admin/toppings/:id
func (h *ToppingController) DeleteTopping(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Repo.DeleteTopping(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	h.Feed.Publish("toppings", ws.EventDelete, gin.H{"id": id})
	resp.OK(c, gin.H{"ok": true})
}
