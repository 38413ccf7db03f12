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

	hub := websocket.NewHub()
	go hub.Run()
	handler := websocket.NewHandler(hub)

	server := api.NewAPIServer(
		":8081",
		queueManager,
		db,
		handler,
		router.UtilsRoutes("/api/ws/v1"),
		router.ChatWebsocketRoutes("/api/ws/v1"),
	)

	handler.SubscribeToRedisChannels()

	server.Run()
}
