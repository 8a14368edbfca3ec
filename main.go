package main

import (
	"fmt"
	"log"
	"time"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/toast"
	"backend/repository"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDemo(middlewares.DefaultTenantID); err != nil {
		log.Fatalf("seed demo failed: %v", err)
	}

	// Realtime feed + toast store
	feed := ws.NewFeedHub()
	toasts := toast.NewStore(toast.Options{
		Limit:           cfg.ToastLimit,
		MobileDuration:  time.Duration(cfg.ToastMobileSeconds) * time.Second,
		DesktopDuration: time.Duration(cfg.ToastDesktopSeconds) * time.Second,
	})
	defer toasts.Close()

	// Catalog cache ฟัง feed แล้ว refresh แบบ debounce
	catalog := services.NewCatalogService(
		repository.NewMenuRepository(db),
		repository.NewToppingRepository(db),
	)
	catalog.Start(feed)
	defer catalog.Stop()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, feed, toasts, catalog)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
