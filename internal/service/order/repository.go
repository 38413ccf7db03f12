package order

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

var ErrNotFound = errors.New("order repository: not found")

type Repository interface {
	ListOrdersByShopper(ctx context.Context, shopperID string) ([]model.OrderItem, error)
	GetOrder(ctx context.Context, shopperID, orderID string) (model.OrderItem, error)
	PutOrder(ctx context.Context, order model.OrderItem) error
	MarkOrderCancelled(ctx context.Context, shopperID, orderID, cancelledDate string) (model.OrderItem, error)
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) ListOrdersByShopper(ctx context.Context, shopperID string) ([]model.OrderItem, error) {
	items, err := r.db.Client.QueryItems(
		ctx,
		model.OrdersTable,
		aws.String("byShopper"),
		"shopperId = :shopperId",
		map[string]types.AttributeValue{
			":shopperId": &types.AttributeValueMemberS{Value: shopperID},
		},
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	orders := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		var order model.OrderItem
		if err := attributevalue.UnmarshalMap(item, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *DynamoRepository) GetOrder(ctx context.Context, shopperID, orderID string) (model.OrderItem, error) {
	var order model.OrderItem
	err := r.db.Client.GetItem(
		ctx,
		model.OrdersTable,
		map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: model.OrderPK(shopperID, orderID)},
		},
		&order,
	)
	if err != nil {
		if isNotFound(err) {
			return model.OrderItem{}, ErrNotFound
		}
		return model.OrderItem{}, err
	}
	return order, nil
}

func (r *DynamoRepository) PutOrder(ctx context.Context, order model.OrderItem) error {
	return r.db.Client.PutItem(ctx, model.OrdersTable, order)
}

func (r *DynamoRepository) MarkOrderCancelled(ctx context.Context, shopperID, orderID, cancelledDate string) (model.OrderItem, error) {
	var updated model.OrderItem
	err := r.db.Client.UpdateItem(
		ctx,
		model.OrdersTable,
		map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: model.OrderPK(shopperID, orderID)},
		},
		"SET #status = :status, cancelledDate = :cancelledDate",
		map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: model.OrderStatusCancelled},
			":cancelledDate": &types.AttributeValueMemberS{Value: cancelledDate},
		},
		map[string]string{
			"#status": "status",
		},
		&updated,
	)
	if err != nil {
		return model.OrderItem{}, err
	}
	return updated, nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "item not found")
}
