package repository

import (
	"context"
	"errors"
	"time"

	"storefront_payments/internal/domain/entities"
	"storefront_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                    string `dynamodbav:"id"`
	UserID                string `dynamodbav:"user_id"`
	Amount                int64  `dynamodbav:"amount"`
	Description           string `dynamodbav:"description,omitempty"`
	Status                string `dynamodbav:"status,omitempty"`
	PaymentStatus         string `dynamodbav:"payment_status"`
	ProviderTransactionID string `dynamodbav:"provider_transaction_id,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads the storefront's orders table and applies the
// single payment-state transition this service owns.
//
// Table requirements:
//   - PK: id (string)
//
// The paid transition is conditional on the order not already being paid,
// so the paid-exactly-once invariant holds even if two succeeded
// transactions for the same order ever reach the update.

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

func (r *OrderDynamoRepository) SetPaymentStatus(ctx context.Context, orderID string, status entities.OrderPaymentStatus, providerTransactionID string) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	// paid may overwrite pending or failed (a retried checkout after a
	// failed attempt), but never another paid. failed only applies while
	// still pending.
	condition := "attribute_exists(#id) AND #payment_status <> :paid"
	if status == entities.OrderPaymentStatusFailed {
		condition = "attribute_exists(#id) AND #payment_status = :prev_pending"
	}

	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":ptid":       &types.AttributeValueMemberS{Value: providerTransactionID},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if status == entities.OrderPaymentStatusFailed {
		values[":prev_pending"] = &types.AttributeValueMemberS{Value: string(entities.OrderPaymentStatusPending)}
	} else {
		values[":paid"] = &types.AttributeValueMemberS{Value: string(entities.OrderPaymentStatusPaid)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression: aws.String(condition),
		UpdateExpression:    aws.String("SET #payment_status = :status, #ptid = :ptid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#payment_status": "payment_status",
			"#ptid":           "provider_transaction_id",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:                    it.ID,
		UserID:                it.UserID,
		Amount:                it.Amount,
		Description:           it.Description,
		Status:                it.Status,
		PaymentStatus:         entities.OrderPaymentStatus(it.PaymentStatus),
		ProviderTransactionID: it.ProviderTransactionID,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}
