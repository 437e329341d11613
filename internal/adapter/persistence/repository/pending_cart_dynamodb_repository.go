package repository

import (
	"context"
	"time"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLocalCartsTableName = "local_carts"
	localCartsTableIDIndex     = "table_id-index"
)

type pendingLineItem struct {
	MenuItemID string  `dynamodbav:"menu_item_id"`
	Name       string  `dynamodbav:"name"`
	UnitPrice  float64 `dynamodbav:"unit_price"`
	Quantity   int     `dynamodbav:"quantity"`
	Note       string  `dynamodbav:"note,omitempty"`
}

type localCartItem struct {
	OrderID   string            `dynamodbav:"order_id"`
	TableID   string            `dynamodbav:"table_id"`
	Items     []pendingLineItem `dynamodbav:"items"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// PendingCartDynamoRepository persists the per-order queue of unsubmitted line
// items in DynamoDB. One record per order, rewritten whole on every mutation.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: table_id-index (PK: table_id)

type PendingCartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingCartRepository = (*PendingCartDynamoRepository)(nil)

func NewPendingCartDynamoRepository(ddb *dynamodb.Client) *PendingCartDynamoRepository {
	return &PendingCartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LOCAL_CARTS_TABLE", defaultLocalCartsTableName),
	}
}

func (r *PendingCartDynamoRepository) GetByOrderID(ctx context.Context, orderID string) ([]entities.PendingLineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it localCartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	items := make([]entities.PendingLineItem, 0, len(it.Items))
	for _, p := range it.Items {
		items = append(items, entities.PendingLineItem{
			MenuItemID: p.MenuItemID,
			Name:       p.Name,
			UnitPrice:  p.UnitPrice,
			Quantity:   p.Quantity,
			Note:       p.Note,
		})
	}
	return items, nil
}

func (r *PendingCartDynamoRepository) Save(ctx context.Context, tableID, orderID string, items []entities.PendingLineItem) error {
	it := localCartItem{
		OrderID:   orderID,
		TableID:   tableID,
		Items:     make([]pendingLineItem, 0, len(items)),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	for _, p := range items {
		it.Items = append(it.Items, pendingLineItem{
			MenuItemID: p.MenuItemID,
			Name:       p.Name,
			UnitPrice:  p.UnitPrice,
			Quantity:   p.Quantity,
			Note:       p.Note,
		})
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PendingCartDynamoRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	return err
}

func (r *PendingCartDynamoRepository) ListOrderIDsByTableID(ctx context.Context, tableID string) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(localCartsTableIDIndex),
		KeyConditionExpression: aws.String("table_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tableID},
		},
		ProjectionExpression: aws.String("order_id"),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it localCartItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.OrderID)
	}
	return ids, nil
}
