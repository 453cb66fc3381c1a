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

const defaultExpensesTableName = "expenses"

type expenseItem struct {
	ID            string `dynamodbav:"id"`
	Category      string `dynamodbav:"category"`
	Description   string `dynamodbav:"description"`
	Amount        string `dynamodbav:"amount"`
	PaymentMethod string `dynamodbav:"payment_method"`
	ReceiptNumber string `dynamodbav:"receipt_number,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) List(ctx context.Context, category string, from, to time.Time) ([]entities.Expense, error) {
	expenses := []entities.Expense{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []expenseItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			e := fromExpenseItem(it)
			if category != "" && e.Category != category {
				continue
			}
			if !from.IsZero() && e.CreatedAt.Before(from) {
				continue
			}
			if !to.IsZero() && e.CreatedAt.After(to) {
				continue
			}
			expenses = append(expenses, e)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return expenses, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toExpenseItem(e entities.Expense) expenseItem {
	return expenseItem{
		ID:            e.ID,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        floatToString(e.Amount),
		PaymentMethod: string(e.PaymentMethod),
		ReceiptNumber: e.ReceiptNumber,
		CreatedAt:     formatTime(e.CreatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Expense{
		ID:            it.ID,
		Category:      it.Category,
		Description:   it.Description,
		Amount:        amount,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		ReceiptNumber: it.ReceiptNumber,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
