package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/model"
)

var ErrNotFound = errors.New("catalog repository: not found")

type Repository interface {
	ListProducts(ctx context.Context) ([]model.ProductItem, error)
	GetProduct(ctx context.Context, productID string) (model.ProductItem, error)
	PutProduct(ctx context.Context, product model.ProductItem) error
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) ListProducts(ctx context.Context) ([]model.ProductItem, error) {
	items, err := r.db.Client.ScanAll(ctx, model.ProductsTable)
	if err != nil {
		return nil, err
	}

	products := make([]model.ProductItem, 0, len(items))
	for _, item := range items {
		var product model.ProductItem
		if err := attributevalue.UnmarshalMap(item, &product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	// Dynamo scans return items in key order; restore the seeded catalog
	// order so shoppers see stable listings.
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Seq < products[j].Seq
	})

	return products, nil
}

func (r *DynamoRepository) GetProduct(ctx context.Context, productID string) (model.ProductItem, error) {
	var product model.ProductItem
	err := r.db.Client.GetItem(
		ctx,
		model.ProductsTable,
		map[string]types.AttributeValue{
			"productId": &types.AttributeValueMemberS{Value: productID},
		},
		&product,
	)
	if err != nil {
		if isNotFound(err) {
			return model.ProductItem{}, ErrNotFound
		}
		return model.ProductItem{}, err
	}
	return product, nil
}

func (r *DynamoRepository) PutProduct(ctx context.Context, product model.ProductItem) error {
	return r.db.Client.PutItem(ctx, model.ProductsTable, product)
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "item not found")
}
