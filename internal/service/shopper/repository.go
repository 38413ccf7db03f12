package shopper

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"nexmart-chat-backend/internal/database"
	"nexmart-chat-backend/internal/model"
)

var ErrNotFound = errors.New("shopper repository: not found")

type Repository interface {
	CreateShopper(ctx context.Context, shopper model.ShopperItem) error
	FindShopperByEmail(ctx context.Context, email string) (model.ShopperItem, error)
	GetShopper(ctx context.Context, shopperID string) (model.ShopperItem, error)
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) CreateShopper(ctx context.Context, shopper model.ShopperItem) error {
	return r.db.Client.PutItem(ctx, model.ShoppersTable, shopper)
}

func (r *DynamoRepository) FindShopperByEmail(ctx context.Context, email string) (model.ShopperItem, error) {
	items, err := r.db.Client.QueryItems(
		ctx,
		model.ShoppersTable,
		aws.String("byEmail"),
		"email = :email",
		map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		nil,
		nil,
	)
	if err != nil {
		return model.ShopperItem{}, err
	}

	if len(items) == 0 {
		return model.ShopperItem{}, ErrNotFound
	}

	var shopper model.ShopperItem
	if err := attributevalue.UnmarshalMap(items[0], &shopper); err != nil {
		return model.ShopperItem{}, err
	}

	return shopper, nil
}

func (r *DynamoRepository) GetShopper(ctx context.Context, shopperID string) (model.ShopperItem, error) {
	var shopper model.ShopperItem
	err := r.db.Client.GetItem(
		ctx,
		model.ShoppersTable,
		map[string]types.AttributeValue{
			"shopperId": &types.AttributeValueMemberS{Value: shopperID},
		},
		&shopper,
	)
	if err != nil {
		if isNotFoundError(err) {
			return model.ShopperItem{}, ErrNotFound
		}
		return model.ShopperItem{}, err
	}

	return shopper, nil
}

func isNotFoundError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
