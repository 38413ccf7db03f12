package model

import "fmt"

const (
	ProductsTable = "Products"
	OrdersTable   = "Orders"
	ShoppersTable = "Shoppers"
)

type ShopperItem struct {
	ShopperID    string `dynamodbav:"shopperId"`
	Email        string `dynamodbav:"email"`
	Name         string `dynamodbav:"name"`
	PasswordHash string `dynamodbav:"passwordHash"`
	CreatedAt    string `dynamodbav:"createdAt"`
}

func ShopperScopedPK(shopperID, entityID string) string {
	return fmt.Sprintf("%s#%s", shopperID, entityID)
}
