package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionsOrderIDIndex     = "order_id-index"
)

type transactionItem struct {
	Reference             string `dynamodbav:"reference"`
	OrderID               string `dynamodbav:"order_id"`
	Provider              string `dynamodbav:"provider"`
	Amount                int64  `dynamodbav:"amount"`
	Status                string `dynamodbav:"status"`
	ProviderTransactionID string `dynamodbav:"provider_transaction_id,omitempty"`
	RawProviderPayload    string `dynamodbav:"raw_provider_payload,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists the transaction ledger in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//   - GSI: order_id-index (PK: order_id)
//
// The finalize is a single conditional UpdateItem guarded on
// status = pending. Two racing finalize attempts for the same reference
// resolve at the table: exactly one write applies, the loser observes
// ConditionalCheckFailedException and reports the no-op path.

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

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#ref)"),
		ExpressionAttributeNames: map[string]string{
			"#ref": "reference",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func (r *TransactionDynamoRepository) FinalizeByReference(ctx context.Context, reference string, status entities.TransactionStatus, providerTransactionID string, rawPayload json.RawMessage) (entities.Transaction, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("attribute_exists(#ref) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #ptid = :ptid, #raw = :raw, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#ref":        "reference",
			"#status":     "status",
			"#ptid":       "provider_transaction_id",
			"#raw":        "raw_provider_payload",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.TransactionStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":ptid":       &types.AttributeValueMemberS{Value: providerTransactionID},
			":raw":        &types.AttributeValueMemberS{Value: string(rawPayload)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already terminal (or never created). Re-read and report no-op;
			// the existing record is returned unchanged.
			existing, getErr := r.GetByReference(ctx, reference)
			if getErr != nil {
				return entities.Transaction{}, false, getErr
			}
			return existing, false, nil
		}
		return entities.Transaction{}, false, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, false, err
	}
	return fromTransactionItem(it), true, nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	return transactionItem{
		Reference:             tx.Reference,
		OrderID:               tx.OrderID,
		Provider:              string(tx.Provider),
		Amount:                tx.Amount,
		Status:                string(tx.Status),
		ProviderTransactionID: tx.ProviderTransactionID,
		RawProviderPayload:    string(tx.RawProviderPayload),
		CreatedAt:             tx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             tx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	tx := entities.Transaction{
		Reference:             it.Reference,
		OrderID:               it.OrderID,
		Provider:              entities.Provider(it.Provider),
		Amount:                it.Amount,
		Status:                entities.TransactionStatus(it.Status),
		ProviderTransactionID: it.ProviderTransactionID,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.RawProviderPayload != "" {
		tx.RawProviderPayload = json.RawMessage(it.RawProviderPayload)
	}
	return tx
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
