package controllers

import (
	"backend/pkg/resp"
	"backend/pkg/toast"

	"github.com/gin-gonic/gin"
)

// endpoint ให้ kiosk shell ดึง toast ที่ active อยู่
type ToastController struct{ Store *toast.Store }

func NewToastController(store *toast.Store) *ToastController { return &ToastController{Store: store} }

// GET /notifications
func (h *ToastController) List(c *gin.Context) {
	resp.OK(c, gin.H{"items": h.Store.List()})
}

// POST /notifications/:id/dismiss
func (h *ToastController) Dismiss(c *gin.Context) {
	h.Store.Dismiss(c.Param("id"))
	resp.OK(c, gin.H{"ok": true})
}
