package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/pkg/toast"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	Svc    *services.SettingsService
	Toasts *toast.Store
}

func NewSettingsController(s *services.SettingsService, toasts *toast.Store) *SettingsController {
	return &SettingsController{Svc: s, Toasts: toasts}
}

// GET /settings/:kind
func (h *SettingsController) Get(c *gin.Context) {
	out, err := h.Svc.Get(utils.CurrentTenantID(c), c.Param("kind"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "settings not found")
			return
		}
		if errors.Is(err, services.ErrUnknownSettingsKind) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /admin/settings/printing
func (h *SettingsController) SavePrinting(c *gin.Context) {
	var req entity.PrintingSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SavePrinting(utils.CurrentTenantID(c), &req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, req)
}

// PUT /admin/settings/notifications
func (h *SettingsController) SaveNotifications(c *gin.Context) {
	var req entity.NotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SaveNotifications(utils.CurrentTenantID(c), &req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// ปรับ slot ของ toast store ที่รันอยู่ด้วยเลย ไม่ต้องรอ restart
	h.Toasts.SetLimit(req.ToastLimit)
	resp.OK(c, req)
}

// PUT /admin/settings/appearance
func (h *SettingsController) SaveAppearance(c *gin.Context) {
	var req entity.AppearanceSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SaveAppearance(utils.CurrentTenantID(c), &req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, req)
}
