package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/toast"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.FeedHub, toasts *toast.Store, catalog *services.CatalogService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	toppingRepo := repository.NewToppingRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	printJobRepo := repository.NewPrintJobRepository(db)

	// Services
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, toppingRepo)
	printSvc := services.NewPrintService(db, orderRepo, printJobRepo, cfg.PrintAPIURL, cfg.PrintAPIKey, cfg.PrintPrinterID)
	checkoutSvc := services.NewCheckoutService(db, orderRepo, cartRepo, toppingRepo, cfg.TaxRate, feed, printSvc)
	orderSvc := services.NewOrderService(db, orderRepo, feed)
	settingsSvc := services.NewSettingsService(settingsRepo, feed)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalog)
	adminMenuCtrl := controllers.NewAdminMenuController(catalog, feed)
	toppingCtrl := controllers.NewToppingController(toppingRepo, feed)
	cartCtrl := controllers.NewCartController(cartSvc, toasts)
	orderCtrl := controllers.NewOrderController(checkoutSvc, orderSvc, toasts)
	settingsCtrl := controllers.NewSettingsController(settingsSvc, toasts)
	webhookCtrl := controllers.NewWebhookController(db, printJobRepo, orderRepo, cfg.PrintWebhookSecret)
	toastCtrl := controllers.NewToastController(toasts)

	// ทุก route (ยกเว้น webhook) scope ด้วย tenant header
	r.Use(middlewares.TenantMiddleware())

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Menu (public)
	menu := r.Group("/menu")
	{
		menu.GET("/categories", menuCtrl.Categories)
		menu.GET("/items", menuCtrl.Items)
		menu.GET("/items/:id", menuCtrl.Detail)
		menu.GET("/items/:id/toppings", menuCtrl.Toppings)
		menu.POST("/items/:id/toppings/check-increment", menuCtrl.CheckToppingIncrement)
	}

	// Cart (per device)
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/lines", cartCtrl.Add)
		cart.POST("/lines/:id/increment", cartCtrl.Increment)
		cart.POST("/lines/:id/decrement", cartCtrl.Decrement)
		cart.PATCH("/lines/:id/note", cartCtrl.SetNote)
		cart.DELETE("/lines/:id", cartCtrl.RemoveLine)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout + orders
	r.POST("/checkout", orderCtrl.Submit)
	r.GET("/orders", orderCtrl.List)
	r.GET("/orders/:id", orderCtrl.Detail)
	r.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

	// Notifications (kiosk shell)
	r.GET("/notifications", toastCtrl.List)
	r.POST("/notifications/:id/dismiss", toastCtrl.Dismiss)

	// Settings: อ่าน public, เขียนเฉพาะ admin
	r.GET("/settings/:kind", settingsCtrl.Get)

	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/me", authCtrl.Me)

		admin.PUT("/settings/printing", settingsCtrl.SavePrinting)
		admin.PUT("/settings/notifications", settingsCtrl.SaveNotifications)
		admin.PUT("/settings/appearance", settingsCtrl.SaveAppearance)

		admin.POST("/menu/categories", adminMenuCtrl.CreateCategory)
		admin.POST("/menu/items", adminMenuCtrl.CreateItem)
		admin.PATCH("/menu/items/:id", adminMenuCtrl.UpdateItem)
		admin.DELETE("/menu/items/:id", adminMenuCtrl.DeleteItem)
		admin.POST("/menu/items/:id/topping-categories", adminMenuCtrl.AttachToppingCategory)
		admin.DELETE("/menu/items/:id/topping-categories/:catId", adminMenuCtrl.DetachToppingCategory)

		admin.GET("/topping-categories", toppingCtrl.ListCategories)
		admin.POST("/topping-categories", toppingCtrl.CreateCategory)
		admin.PATCH("/topping-categories/:id", toppingCtrl.UpdateCategory)
		admin.DELETE("/topping-categories/:id", toppingCtrl.DeleteCategory)
		admin.POST("/toppings", toppingCtrl.CreateTopping)
		admin.PATCH("/toppings/:id", toppingCtrl.UpdateTopping)
		admin.DELETE("/toppings/:id", toppingCtrl.DeleteTopping)
	}

	// Realtime feed
	r.GET("/ws/feed", feed.HandleWebSocket)

	// Webhook (ตรวจด้วย HMAC ไม่ใช่ JWT)
	r.POST("/webhooks/print", webhookCtrl.PrintStatus)
}
