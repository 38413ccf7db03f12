package router

import (
	"net/http"
	"strings"
	"time"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/api/endpoints"
	catalogsvc "nexmart-chat-backend/internal/service/catalog"
	chatsvc "nexmart-chat-backend/internal/service/chat"
	"nexmart-chat-backend/internal/service/chatbot"
	ordersvc "nexmart-chat-backend/internal/service/order"
	shoppersvc "nexmart-chat-backend/internal/service/shopper"
	"nexmart-chat-backend/internal/websocket"
)

const (
	resolveDelayMin = 500 * time.Millisecond
	resolveDelayMax = 1500 * time.Millisecond
)

func newChatService(s *api.APIServer) *chatsvc.Service {
	resolver := chatbot.New(
		catalogsvc.New(s.Database()),
		ordersvc.New(s.Database()),
		chatbot.NetworkDelay(resolveDelayMin, resolveDelayMax),
	)
	store := chatsvc.NewRedisStore(chatsvc.NewRedisClientFromEnv())
	return chatsvc.New(store, resolver, websocket.Publish)
}

func ChatPublicRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")
		paths := endpoints.ChatPaths{
			SessionsPath:  base + "/chat/sessions",
			SessionPrefix: base + "/chat/sessions/",
		}
		chatEndpoints := endpoints.NewChatEndpoints(newChatService(s), shoppersvc.New(s.Database()), s.Handler(), paths)

		mux.HandleFunc(paths.SessionsPath, s.MakeHTTPHandleFunc(chatEndpoints.Sessions))
		mux.HandleFunc(paths.SessionPrefix, s.MakeHTTPHandleFunc(chatEndpoints.SessionOps))
		mux.HandleFunc(base+"/chat/suggestions", s.MakeHTTPHandleFunc(chatEndpoints.Suggestions))
	}
}

func ChatWebsocketRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")
		paths := endpoints.ChatPaths{
			WebsocketPrefix: base + "/chat/sessions/",
		}
		chatEndpoints := endpoints.NewChatEndpoints(newChatService(s), shoppersvc.New(s.Database()), s.Handler(), paths)

		mux.HandleFunc(paths.WebsocketPrefix, s.MakeHTTPHandleFunc(chatEndpoints.Websocket))
	}
}
