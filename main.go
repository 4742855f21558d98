package main

import (
	"log"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/handler"
	"restaurant_manager/helper"
	"restaurant_manager/realtime"
	"restaurant_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	// Redis is optional: without it the hub dispatches in-process, which is
	// enough for a single instance.
	var rdb *redis.Client
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.Config("REDIS_PASSWORD"),
		})
	}

	hub := realtime.NewHub(rdb)
	go hub.Run()
	defer hub.Stop()
	handler.InitHub(hub)

	helper.StartTableScheduler()
	defer helper.StopTableScheduler()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
