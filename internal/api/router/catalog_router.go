package router

import (
	"net/http"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/api/endpoints"
)

func CatalogRoutes(prefix string) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		catalogEndpoints := endpoints.NewCatalogEndpoints(s.Database())
		mux.HandleFunc(prefix+"/products", s.MakeHTTPHandleFunc(catalogEndpoints.Products))
	}
}
