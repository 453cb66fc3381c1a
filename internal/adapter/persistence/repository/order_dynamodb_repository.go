package repository

import (
	"context"
	"strconv"
	"time"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersCustomerIDIndex  = "customer_id-index"
)

type orderLineItem struct {
	ID         string `dynamodbav:"id"`
	ItemType   string `dynamodbav:"item_type"`
	ItemID     string `dynamodbav:"item_id,omitempty"`
	ItemName   string `dynamodbav:"item_name"`
	Quantity   int    `dynamodbav:"quantity"`
	UnitPrice  string `dynamodbav:"unit_price"`
	TotalPrice string `dynamodbav:"total_price"`
}

type orderItem struct {
	ID              string          `dynamodbav:"id"`
	OrderNumber     string          `dynamodbav:"order_number"`
	CustomerID      string          `dynamodbav:"customer_id,omitempty"`
	RegisterID      string          `dynamodbav:"register_id,omitempty"`
	TotalAmount     string          `dynamodbav:"total_amount"`
	Discount        string          `dynamodbav:"discount"`
	FinalAmount     string          `dynamodbav:"final_amount"`
	PaymentMethod   string          `dynamodbav:"payment_method"`
	PaymentStatus   string          `dynamodbav:"payment_status"`
	Status          string          `dynamodbav:"status"`
	Notes           string          `dynamodbav:"notes,omitempty"`
	ReferenceNumber string          `dynamodbav:"reference_number,omitempty"`
	Items           []orderLineItem `dynamodbav:"items"`
	CreatedAt       string          `dynamodbav:"created_at"`
	CompletedAt     string          `dynamodbav:"completed_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Line items are embedded in the order document; an order's lines never
// change after creation, so there is no separate items table.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context, f interfaces.OrderFilter) ([]entities.Order, error) {
	orders := []entities.Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o := fromOrderItem(it)
			if !matchOrder(o, f) {
				continue
			}
			orders = append(orders, o)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func matchOrder(o entities.Order, f interfaces.OrderFilter) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.CustomerID != "" && o.CustomerID != f.CustomerID {
		return false
	}
	if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && o.CreatedAt.After(f.To) {
		return false
	}
	return true
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) CountByCustomerID(ctx context.Context, customerID string) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersCustomerIDIndex),
			KeyConditionExpression: aws.String("#customer_id = :customer_id"),
			ExpressionAttributeNames: map[string]string{
				"#customer_id": "customer_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":customer_id": &types.AttributeValueMemberS{Value: customerID},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return count, nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, orderLineItem{
			ID:         l.ID,
			ItemType:   string(l.ItemType),
			ItemID:     l.ItemID,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  floatToString(l.UnitPrice),
			TotalPrice: floatToString(l.TotalPrice),
		})
	}
	return orderItem{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		RegisterID:      o.RegisterID,
		TotalAmount:     floatToString(o.TotalAmount),
		Discount:        floatToString(o.Discount),
		FinalAmount:     floatToString(o.FinalAmount),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		Status:          string(o.Status),
		Notes:           o.Notes,
		ReferenceNumber: o.ReferenceNumber,
		Items:           lines,
		CreatedAt:       formatTime(o.CreatedAt),
		CompletedAt:     formatTimePtr(o.CompletedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, l := range it.Items {
		unitPrice, _ := strconv.ParseFloat(l.UnitPrice, 64)
		totalPrice, _ := strconv.ParseFloat(l.TotalPrice, 64)
		lines = append(lines, entities.OrderItem{
			ID:         l.ID,
			OrderID:    it.ID,
			ItemType:   entities.ItemType(l.ItemType),
			ItemID:     l.ItemID,
			ItemName:   l.ItemName,
			Quantity:   l.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: totalPrice,
		})
	}

	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	final, _ := strconv.ParseFloat(it.FinalAmount, 64)

	var completedAt *time.Time
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		completedAt = &t
	}
	return entities.Order{
		ID:              it.ID,
		OrderNumber:     it.OrderNumber,
		CustomerID:      it.CustomerID,
		RegisterID:      it.RegisterID,
		TotalAmount:     total,
		Discount:        discount,
		FinalAmount:     final,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		Status:          entities.OrderStatus(it.Status),
		Notes:           it.Notes,
		ReferenceNumber: it.ReferenceNumber,
		Items:           lines,
		CreatedAt:       parseTime(it.CreatedAt),
		CompletedAt:     completedAt,
	}
}
