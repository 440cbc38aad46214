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
)

const defaultProtocolsTableName = "protocols"

type protocolItem struct {
	ID          string `dynamodbav:"id"`
	Slug        string `dynamodbav:"slug"`
	Title       string `dynamodbav:"title"`
	Tagline     string `dynamodbav:"tagline"`
	Description string `dynamodbav:"description"`
	PriceCents  int64  `dynamodbav:"price_cents"`
	Industry    string `dynamodbav:"industry"`
	Complexity  string `dynamodbav:"complexity"`
	FileURL     string `dynamodbav:"file_url"`
	CreatedAt   string `dynamodbav:"created_at"`
	IsFeatured  bool   `dynamodbav:"is_featured"`
}

// ProtocolDynamoRepository reads the protocol catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Catalog writes happen in a separate service; this repository is read-only.

type ProtocolDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProtocolRepository = (*ProtocolDynamoRepository)(nil)

func NewProtocolDynamoRepository(ddb *dynamodb.Client) *ProtocolDynamoRepository {
	return &ProtocolDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROTOCOLS_TABLE", defaultProtocolsTableName),
	}
}

func (r *ProtocolDynamoRepository) GetByID(ctx context.Context, id string) (entities.Protocol, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Protocol{}, err
	}
	if len(out.Item) == 0 {
		return entities.Protocol{}, nil
	}

	var it protocolItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Protocol{}, err
	}
	return fromProtocolItem(it), nil
}

func fromProtocolItem(it protocolItem) entities.Protocol {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Protocol{
		ID:          it.ID,
		Slug:        it.Slug,
		Title:       it.Title,
		Tagline:     it.Tagline,
		Description: it.Description,
		PriceCents:  it.PriceCents,
		Industry:    it.Industry,
		Complexity:  entities.ProtocolComplexity(it.Complexity),
		FileURL:     it.FileURL,
		CreatedAt:   createdAt,
		IsFeatured:  it.IsFeatured,
	}
}
