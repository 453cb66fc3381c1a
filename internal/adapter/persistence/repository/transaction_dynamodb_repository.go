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

const defaultTransactionsTableName = "transactions"

type transactionItem struct {
	ID              string `dynamodbav:"id"`
	OrderID         string `dynamodbav:"order_id,omitempty"`
	Type            string `dynamodbav:"transaction_type"`
	Amount          string `dynamodbav:"amount"`
	PaymentMethod   string `dynamodbav:"payment_method"`
	ReferenceNumber string `dynamodbav:"reference_number,omitempty"`
	Description     string `dynamodbav:"description,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Transaction, error) {
	transactions := []entities.Transaction{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			t := fromTransactionItem(it)
			if !from.IsZero() && t.CreatedAt.Before(from) {
				continue
			}
			if !to.IsZero() && t.CreatedAt.After(to) {
				continue
			}
			transactions = append(transactions, t)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return transactions, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	return transactionItem{
		ID:              t.ID,
		OrderID:         t.OrderID,
		Type:            string(t.Type),
		Amount:          floatToString(t.Amount),
		PaymentMethod:   string(t.PaymentMethod),
		ReferenceNumber: t.ReferenceNumber,
		Description:     t.Description,
		CreatedAt:       formatTime(t.CreatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Transaction{
		ID:              it.ID,
		OrderID:         it.OrderID,
		Type:            entities.TransactionType(it.Type),
		Amount:          amount,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		ReferenceNumber: it.ReferenceNumber,
		Description:     it.Description,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
