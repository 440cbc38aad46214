package repository

import (
	"context"
	"time"

	"konkred_vault/internal/domain/entities"
	"konkred_vault/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultEntitlementsTableName = "entitlements"
	entitlementsUserIDIndex      = "user_id-index"
)

type entitlementItem struct {
	PaymentID     string `dynamodbav:"payment_id"`
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	ProtocolID    string `dynamodbav:"protocol_id"`
	PaymentStatus string `dynamodbav:"payment_status"`
	NeedsReview   bool   `dynamodbav:"needs_review"`
	CreatedAt     string `dynamodbav:"created_at"`
	AcquiredAt    string `dynamodbav:"acquired_at,omitempty"`
}

// EntitlementDynamoRepository persists Entitlement entities in DynamoDB.
//
// Table requirements:
//   - PK: payment_id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Apply is a single conditional UpdateItem, so concurrent first
// notifications for one payment converge on one row with DynamoDB as the
// arbiter; there is no read-then-write window.

type EntitlementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEntitlementRepository = (*EntitlementDynamoRepository)(nil)

func NewEntitlementDynamoRepository(ddb *dynamodb.Client) *EntitlementDynamoRepository {
	return &EntitlementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENTITLEMENTS_TABLE", defaultEntitlementsTableName),
	}
}

func (r *EntitlementDynamoRepository) Apply(ctx context.Context, w interfaces.EntitlementWrite) (entities.Entitlement, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr, values, names := buildApplyUpdate(w, now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: w.PaymentID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Entitlement{}, err
	}

	var it entitlementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Entitlement{}, err
	}
	return fromEntitlementItem(it), nil
}

// buildApplyUpdate renders the reconciliation decision as one update
// expression. Insert-only attributes use if_not_exists so replays and late
// out-of-order deliveries cannot rewrite attribution, creation time or an
// already-granted acquisition; payment_status is always overwritten;
// needs_review is sticky (set only, never cleared here).
func buildApplyUpdate(w interfaces.EntitlementWrite, now string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #id = if_not_exists(#id, :id)" +
		", #user_id = if_not_exists(#user_id, :user_id)" +
		", #protocol_id = if_not_exists(#protocol_id, :protocol_id)" +
		", #created_at = if_not_exists(#created_at, :now)" +
		", #payment_status = :status"
	values := map[string]types.AttributeValue{
		":id":          &types.AttributeValueMemberS{Value: uuid.NewString()},
		":user_id":     &types.AttributeValueMemberS{Value: w.UserID},
		":protocol_id": &types.AttributeValueMemberS{Value: w.ProtocolID},
		":now":         &types.AttributeValueMemberS{Value: now},
		":status":      &types.AttributeValueMemberS{Value: string(w.Status)},
	}
	names := map[string]string{
		"#id":             "id",
		"#user_id":        "user_id",
		"#protocol_id":    "protocol_id",
		"#created_at":     "created_at",
		"#payment_status": "payment_status",
	}

	if w.NeedsReview {
		expr += ", #needs_review = :needs_review"
		values[":needs_review"] = &types.AttributeValueMemberBOOL{Value: true}
		names["#needs_review"] = "needs_review"
	}

	if w.Status == entities.PaymentStatusFinished && !w.NeedsReview {
		expr += ", #acquired_at = if_not_exists(#acquired_at, :now)"
		names["#acquired_at"] = "acquired_at"
	}

	return expr, values, names
}

func (r *EntitlementDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Entitlement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_id": &types.AttributeValueMemberS{Value: paymentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Entitlement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Entitlement{}, nil
	}

	var it entitlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Entitlement{}, err
	}
	return fromEntitlementItem(it), nil
}

func (r *EntitlementDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Entitlement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(entitlementsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Entitlement, 0, len(out.Items))
	for _, raw := range out.Items {
		var it entitlementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEntitlementItem(it))
	}
	return items, nil
}

func fromEntitlementItem(it entitlementItem) entities.Entitlement {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	e := entities.Entitlement{
		ID:            it.ID,
		UserID:        it.UserID,
		ProtocolID:    it.ProtocolID,
		PaymentID:     it.PaymentID,
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		NeedsReview:   it.NeedsReview,
		CreatedAt:     createdAt,
	}
	if it.AcquiredAt != "" {
		if acquiredAt, err := time.Parse(time.RFC3339Nano, it.AcquiredAt); err == nil {
			e.AcquiredAt = &acquiredAt
		}
	}
	return e
}
