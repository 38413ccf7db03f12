package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/env"
	internaljwt "nexmart-chat-backend/internal/jwt"
	"nexmart-chat-backend/internal/model"
)

const demoShopperEmail = "demo@nexmart.in"

func main() {
	env.MustValidate()

	db, err := database.NewDatabase()
	if err != nil {
		log.Fatalf("db init failed: %v", err)
	}

	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339)

	shopperID := uuid.NewString()
	if err := seedShopper(ctx, db, shopperID, now); err != nil {
		log.Fatalf("seed shopper: %v", err)
	}
	if err := seedProducts(ctx, db, now); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	if err := seedOrders(ctx, db, shopperID); err != nil {
		log.Fatalf("seed orders: %v", err)
	}

	log.Printf("seed complete, demo shopper %s (%s)", demoShopperEmail, shopperID)
}

func seedShopper(ctx context.Context, db *database.Database, shopperID, now string) error {
	demo, err := internaljwt.NewShopper(internaljwt.RegisterShopper{
		Email:    demoShopperEmail,
		Password: "demo1234",
	})
	if err != nil {
		return err
	}

	return db.Client.PutItem(ctx, model.ShoppersTable, model.ShopperItem{
		ShopperID:    shopperID,
		Email:        demoShopperEmail,
		Name:         "Demo Shopper",
		PasswordHash: demo.PasswordHash,
		CreatedAt:    now,
	})
}

func seedProducts(ctx context.Context, db *database.Database, now string) error {
	products := []model.ProductItem{
		{ProductID: "prod-1", Name: "Wireless Bluetooth Headphones", Category: model.CategoryElectronics, Price: 2999, Rating: 4.5, Description: "Over-ear, 30h battery", Seq: 1},
		{ProductID: "prod-2", Name: "Smart Watch Pro", Category: model.CategoryElectronics, Price: 8999, Rating: 4.7, Description: "AMOLED, GPS, SpO2", Seq: 2},
		{ProductID: "prod-3", Name: "Portable Power Bank 20000mAh", Category: model.CategoryElectronics, Price: 1499, Rating: 4.3, Description: "22.5W fast charge", Seq: 3},
		{ProductID: "prod-4", Name: "4K Action Camera", Category: model.CategoryElectronics, Price: 12999, Rating: 4.6, Description: "Waterproof to 10m", Seq: 4},
		{ProductID: "prod-5", Name: "Mechanical Keyboard", Category: model.CategoryElectronics, Price: 4499, Rating: 4.4, Description: "Hot-swappable switches", Seq: 5},
		{ProductID: "prod-6", Name: "Classic Denim Jacket", Category: model.CategoryFashion, Price: 2499, Rating: 4.2, Description: "Unisex, stonewashed", Seq: 6},
		{ProductID: "prod-7", Name: "Running Shoes Flex", Category: model.CategoryFashion, Price: 3499, Rating: 4.6, Description: "Breathable knit upper", Seq: 7},
		{ProductID: "prod-8", Name: "Cotton Kurta Set", Category: model.CategoryFashion, Price: 1799, Rating: 4.1, Description: "Handblock print", Seq: 8},
		{ProductID: "prod-9", Name: "Ceramic Dinner Set 24pc", Category: model.CategoryHome, Price: 3999, Rating: 4.5, Description: "Microwave safe", Seq: 9},
		{ProductID: "prod-10", Name: "Aroma Diffuser", Category: model.CategoryHome, Price: 999, Rating: 4.0, Description: "300ml, 7 colour LED", Seq: 10},
		{ProductID: "prod-11", Name: "Gaming Mouse RGB", Category: model.CategoryGaming, Price: 1999, Rating: 4.6, Description: "16000 DPI optical", Seq: 11},
		{ProductID: "prod-12", Name: "Pro Controller", Category: model.CategoryGaming, Price: 4999, Rating: 4.8, Description: "Hall-effect sticks", Seq: 12},
	}

	requests := make([]types.WriteRequest, 0, len(products))
	for _, product := range products {
		product.CreatedAt = now
		item, err := attributevalue.MarshalMap(product)
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	return db.Client.BatchWriteItems(ctx, map[string][]types.WriteRequest{
		model.ProductsTable: requests,
	})
}

func seedOrders(ctx context.Context, db *database.Database, shopperID string) error {
	orders := []model.OrderItem{
		{
			OrderID:     "ORD-1001",
			Status:      model.OrderStatusDelivered,
			TotalAmount: 4498,
			Items: []model.OrderLineItem{
				{Name: "Wireless Bluetooth Headphones", Quantity: 1},
				{Name: "Portable Power Bank 20000mAh", Quantity: 1},
			},
			CreatedDate:   "2025-07-18T09:30:00Z",
			ShippedDate:   "2025-07-19T14:00:00Z",
			DeliveredDate: "2025-07-22T11:15:00Z",
		},
		{
			OrderID:     "ORD-1002",
			Status:      model.OrderStatusShipped,
			TotalAmount: 8999,
			Items: []model.OrderLineItem{
				{Name: "Smart Watch Pro", Quantity: 1},
			},
			CreatedDate: "2025-08-20T16:45:00Z",
			ShippedDate: "2025-08-22T08:30:00Z",
		},
		{
			OrderID:     "ORD-1003",
			Status:      model.OrderStatusPending,
			TotalAmount: 6998,
			Items: []model.OrderLineItem{
				{Name: "Pro Controller", Quantity: 1},
				{Name: "Gaming Mouse RGB", Quantity: 1},
			},
			CreatedDate: "2025-08-28T19:05:00Z",
		},
	}

	requests := make([]types.WriteRequest, 0, len(orders))
	for _, order := range orders {
		order.ShopperID = shopperID
		order.PK = model.OrderPK(shopperID, order.OrderID)
		item, err := attributevalue.MarshalMap(order)
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}

	return db.Client.BatchWriteItems(ctx, map[string][]types.WriteRequest{
		model.OrdersTable: requests,
	})
}
