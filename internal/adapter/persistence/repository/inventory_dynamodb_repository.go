package repository

import (
	"context"
	"strconv"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInventoryTableName = "inventory"
	inventorySKUIndex         = "sku-index"
)

type inventoryItemRecord struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Category     string `dynamodbav:"category"`
	SKU          string `dynamodbav:"sku,omitempty"`
	Quantity     int    `dynamodbav:"quantity"`
	MinQuantity  int    `dynamodbav:"min_quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	SellingPrice string `dynamodbav:"selling_price"`
	Supplier     string `dynamodbav:"supplier,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: sku-index (PK: sku)

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryRecord(item))
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryRecord(it), nil
}

func (r *InventoryDynamoRepository) GetBySKU(ctx context.Context, sku string) (entities.InventoryItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(inventorySKUIndex),
		KeyConditionExpression: aws.String("#sku = :sku"),
		ExpressionAttributeNames: map[string]string{
			"#sku": "sku",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sku": &types.AttributeValueMemberS{Value: sku},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Items) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryRecord(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context, category, search string) ([]entities.InventoryItem, error) {
	items := []entities.InventoryItem{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var records []inventoryItemRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			item := fromInventoryRecord(rec)
			if category != "" && item.Category != category {
				continue
			}
			if search != "" && !containsFold(item.Name, search) && !containsFold(item.SKU, search) {
				continue
			}
			items = append(items, item)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *InventoryDynamoRepository) Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryRecord(item))
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInventoryRecord(item entities.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		MinQuantity:  item.MinQuantity,
		UnitPrice:    floatToString(item.UnitPrice),
		SellingPrice: floatToString(item.SellingPrice),
		Supplier:     item.Supplier,
		CreatedAt:    formatTime(item.CreatedAt),
		UpdatedAt:    formatTime(item.UpdatedAt),
	}
}

func fromInventoryRecord(it inventoryItemRecord) entities.InventoryItem {
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	sellingPrice, _ := strconv.ParseFloat(it.SellingPrice, 64)
	return entities.InventoryItem{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		SKU:          it.SKU,
		Quantity:     it.Quantity,
		MinQuantity:  it.MinQuantity,
		UnitPrice:    unitPrice,
		SellingPrice: sellingPrice,
		Supplier:     it.Supplier,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
