package main

import (
	"fmt"
	"log"

	"canteen/configs"
	"canteen/middlewares"
	"canteen/repository"
	"canteen/routes"
	"canteen/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	// Cart/order engine: restores saved state, persists write-through
	stateRepo := repository.NewStateRepository(configs.DB())
	store := services.NewCartStore(stateRepo, services.TimerScheduler{}, services.TransitionDelays{
		Preparing:      cfg.DelayPreparing,
		Ready:          cfg.DelayReady,
		OutForDelivery: cfg.DelayOutForDelivery,
	})

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
