package repository

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	clientsEmailIndex = "org_id-email_key-index"
	clientsNameIndex  = "org_id-name_key-index"
)

type clientItem struct {
	ID         string `dynamodbav:"id"`
	OrgID      string `dynamodbav:"org_id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty"`
	NameNorm   string `dynamodbav:"name_norm"`
	EmailNorm  string `dynamodbav:"email_norm,omitempty"`
	PhoneNorm  string `dynamodbav:"phone_norm,omitempty"`
	NameKey    string `dynamodbav:"name_key"`
	EmailKey   string `dynamodbav:"email_key,omitempty"`
	CreatedKey string `dynamodbav:"created_key"`
	CreatedBy  string `dynamodbav:"created_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists clients in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id, SK: created_key)
//   - GSI: org_id-email_key-index (PK: org_id, SK: email_key), sparse
//   - GSI: org_id-name_key-index (PK: org_id, SK: name_key)
//
// email_key and name_key are "<normalized value>#<created_key>", so a
// begins_with query on one value returns its records in insertion order.
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Client, error) {
	items, err := queryAll[clientItem](ctx, r.ddb, byOrgQuery(r.tableName, orgID, false))
	if err != nil {
		return nil, err
	}
	return fromClientItems(items), nil
}

func (r *ClientDynamoRepository) SearchByNamePrefix(ctx context.Context, orgID, namePrefix string, limit int) ([]entities.Client, error) {
	out := make([]entities.Client, 0, limit)
	if namePrefix == "" || limit <= 0 {
		return out, nil
	}
	in := r.keyPrefixQuery(clientsNameIndex, "name_key", orgID, namePrefix)
	in.Limit = aws.Int32(int32(limit))
	err := queryItems(ctx, r.ddb, in, func(it clientItem) bool {
		out = append(out, fromClientItem(it))
		return len(out) >= limit
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientDynamoRepository) FindByEmail(ctx context.Context, orgID, emailKey string) (entities.Client, error) {
	in := r.keyPrefixQuery(clientsEmailIndex, "email_key", orgID, emailKey+keySep)
	in.FilterExpression = aws.String("email_norm = :email")
	in.ExpressionAttributeValues[":email"] = str(emailKey)
	return r.first(ctx, in)
}

func (r *ClientDynamoRepository) FindByNameAndPhone(ctx context.Context, orgID, nameKey, phoneKey string) (entities.Client, error) {
	in := r.keyPrefixQuery(clientsNameIndex, "name_key", orgID, nameKey+keySep)
	in.FilterExpression = aws.String("name_norm = :name AND phone_norm = :phone")
	in.ExpressionAttributeValues[":name"] = str(nameKey)
	in.ExpressionAttributeValues[":phone"] = str(phoneKey)
	return r.first(ctx, in)
}

func (r *ClientDynamoRepository) FindByName(ctx context.Context, orgID, nameKey string) (entities.Client, error) {
	in := r.keyPrefixQuery(clientsNameIndex, "name_key", orgID, nameKey+keySep)
	in.FilterExpression = aws.String("name_norm = :name")
	in.ExpressionAttributeValues[":name"] = str(nameKey)
	return r.first(ctx, in)
}

func (r *ClientDynamoRepository) first(ctx context.Context, in *dynamodb.QueryInput) (entities.Client, error) {
	it, found, err := queryFirst[clientItem](ctx, r.ddb, in)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) keyPrefixQuery(index, attr, orgID, prefix string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("org_id = :org AND begins_with(#k, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org":    str(orgID),
			":prefix": str(prefix),
		},
		ScanIndexForward: aws.Bool(true),
	}
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:         c.ID,
		OrgID:      c.OrgID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		NameNorm:   c.NameKey(),
		EmailNorm:  c.EmailKey(),
		PhoneNorm:  c.PhoneKey(),
		NameKey:    lookupKey(c.NameKey(), c.CreatedAt, c.ID),
		EmailKey:   lookupKey(c.EmailKey(), c.CreatedAt, c.ID),
		CreatedKey: createdKey(c.CreatedAt, c.ID),
		CreatedBy:  c.CreatedBy,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		OrgID:     it.OrgID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedBy: it.CreatedBy,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func fromClientItems(items []clientItem) []entities.Client {
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out
}
