package main

import (
	"log"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/api/router"
	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/env"
	internaljwt "nexmart-chat-backend/internal/jwt"
	"nexmart-chat-backend/internal/queue"
	"nexmart-chat-backend/internal/websocket"
)

func main() {
	env.MustValidate()
	internaljwt.Init()
	websocket.InitRedis()

	queueManager := queue.NewRequestQueueManager(10, 10)
	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	server := api.NewAPIServer(
		":8080",
		queueManager,
		db,
		nil,
		router.UtilsRoutes("/api/public/v1"),
		router.ChatPublicRoutes("/api/public/v1"),
		router.CatalogRoutes("/api/public/v1"),
		router.AuthRoutes("/api/client/v1"),
		router.OrderRoutes("/api/client/v1"),
	)

	server.Run()
}
