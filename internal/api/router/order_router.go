package router

import (
	"net/http"
	"strings"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/api/endpoints"
	"nexmart-chat-backend/internal/api/middleware"
)

func OrderRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		base := strings.TrimRight(prefix, "/")
		paths := endpoints.OrderPaths{
			OrderPrefix: base + "/orders/",
		}
		orderEndpoints := endpoints.NewOrderEndpoints(s.Database(), paths)

		mux.HandleFunc(base+"/orders", s.MakeHTTPHandleFunc(orderEndpoints.Orders, middleware.ValidateShopperJWT))
		mux.HandleFunc(base+"/orders/recent", s.MakeHTTPHandleFunc(orderEndpoints.RecentOrder, middleware.ValidateShopperJWT))
		mux.HandleFunc(paths.OrderPrefix, s.MakeHTTPHandleFunc(orderEndpoints.OrderOps, middleware.ValidateShopperJWT))
	}
}
