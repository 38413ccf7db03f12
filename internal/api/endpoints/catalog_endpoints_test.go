package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexmart-chat-backend/internal/api"
	"nexmart-chat-backend/internal/dto"
	"nexmart-chat-backend/internal/model"
	catalogsvc "nexmart-chat-backend/internal/service/catalog"
)

type testCatalogRepo struct {
	products []model.ProductItem
}

func (m *testCatalogRepo) ListProducts(ctx context.Context) ([]model.ProductItem, error) {
	return append([]model.ProductItem(nil), m.products...), nil
}

func (m *testCatalogRepo) GetProduct(ctx context.Context, productID string) (model.ProductItem, error) {
	for _, product := range m.products {
		if product.ProductID == productID {
			return product, nil
		}
	}
	return model.ProductItem{}, catalogsvc.ErrNotFound
}

func (m *testCatalogRepo) PutProduct(ctx context.Context, product model.ProductItem) error {
	m.products = append(m.products, product)
	return nil
}

func setupCatalogHandler(t *testing.T, repo *testCatalogRepo) (http.Handler, func()) {
	t.Helper()

	service := catalogsvc.NewWithRepository(repo)
	catalogEndpoints := NewCatalogEndpointsWithService(service)

	server, cleanup := newTestServer(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/public/v1/products", server.MakeHTTPHandleFunc(catalogEndpoints.Products))

	return mux, cleanup
}

func catalogFixture() *testCatalogRepo {
	return &testCatalogRepo{products: []model.ProductItem{
		{ProductID: "p1", Name: "Headphones", Category: model.CategoryElectronics, Price: 2999, Seq: 1},
		{ProductID: "p2", Name: "Smart Watch", Category: model.CategoryElectronics, Price: 8999, Seq: 2},
		{ProductID: "p3", Name: "Denim Jacket", Category: model.CategoryFashion, Price: 2499, Seq: 3},
		{ProductID: "p4", Name: "Diffuser", Category: model.CategoryHome, Price: 999, Seq: 4},
	}}
}

func TestProductsEndpoint(t *testing.T) {
	handler, cleanup := setupCatalogHandler(t, catalogFixture())
	defer cleanup()

	all := doJSONRequest[dto.ListProductsResponse](t, handler, http.MethodGet, "/api/public/v1/products", nil, nil, http.StatusOK)
	if len(all.Products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(all.Products))
	}

	electronics := doJSONRequest[dto.ListProductsResponse](t, handler, http.MethodGet, "/api/public/v1/products?category=electronics", nil, nil, http.StatusOK)
	if len(electronics.Products) != 2 {
		t.Fatalf("expected 2 electronics, got %d", len(electronics.Products))
	}

	cheap := doJSONRequest[dto.ListProductsResponse](t, handler, http.MethodGet, "/api/public/v1/products?category=electronics&maxPrice=3000", nil, nil, http.StatusOK)
	if len(cheap.Products) != 1 || cheap.Products[0].ProductID != "p1" {
		t.Fatalf("expected only p1 under 3000, got %+v", cheap.Products)
	}
}

func TestProductsEndpointRejectsBadMaxPrice(t *testing.T) {
	handler, cleanup := setupCatalogHandler(t, catalogFixture())
	defer cleanup()

	doJSONRequest[api.ApiError](t, handler, http.MethodGet, "/api/public/v1/products?maxPrice=abc", nil, nil, http.StatusBadRequest)
}

func TestProductsEndpointMethodNotAllowed(t *testing.T) {
	handler, cleanup := setupCatalogHandler(t, catalogFixture())
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
