package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	catalogsvc "nexmart-chat-backend/internal/service/catalog"
)

type CatalogEndpoints interface {
	Products(http.ResponseWriter, *http.Request) error
}

type catalogEndpoints struct {
	service *catalogsvc.Service
}

func NewCatalogEndpoints(db *database.Database) CatalogEndpoints {
	return &catalogEndpoints{
		service: catalogsvc.New(db),
	}
}

func NewCatalogEndpointsWithService(service *catalogsvc.Service) CatalogEndpoints {
	return &catalogEndpoints{service: service}
}

func (h *catalogEndpoints) Products(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListProducts,
	})
}

func (h *catalogEndpoints) handleListProducts(w http.ResponseWriter, r *http.Request) error {
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	var products []model.ProductItem
	var err error
	if category != "" {
		products, err = h.service.ListByCategory(r.Context(), category)
	} else {
		products, err = h.service.List(r.Context())
	}
	if err != nil {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Failed to load products",
			ErrorLog:   fmt.Errorf("list products: %w", err),
		}
	}

	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		maxPrice, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return &HTTPError{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid maxPrice parameter",
				ErrorLog:   fmt.Errorf("parse maxPrice %q: %w", raw, parseErr),
			}
		}
		products = catalogsvc.FilterByMaxPrice(products, maxPrice)
	}

	return WriteJSON(w, http.StatusOK, dto.ListProductsResponse{Products: toProductResponses(products)})
}

func toProductResponses(products []model.ProductItem) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, dto.ProductResponse{
			ProductID:   product.ProductID,
			Name:        product.Name,
			Category:    product.Category,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			Rating:      product.Rating,
			Description: product.Description,
		})
	}
	return resp
}
