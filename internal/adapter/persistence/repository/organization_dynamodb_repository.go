package repository

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const organizationsSlugIndex = "slug-index"

type organizationItem struct {
	ID         string `dynamodbav:"id"`
	ExternalID string `dynamodbav:"external_id,omitempty"`
	Name       string `dynamodbav:"name"`
	Slug       string `dynamodbav:"slug"`
	LogoURL    string `dynamodbav:"logo_url,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// OrganizationDynamoRepository persists tenants in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
type OrganizationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrganizationRepository = (*OrganizationDynamoRepository)(nil)

func NewOrganizationDynamoRepository(ddb DynamoAPI, tableName string) *OrganizationDynamoRepository {
	return &OrganizationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrganizationDynamoRepository) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOrganizationItem(o)); err != nil {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	var it organizationItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

func (r *OrganizationDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.Organization, error) {
	it, found, err := queryFirst[organizationItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(organizationsSlugIndex),
		KeyConditionExpression: aws.String("#slug = :slug"),
		ExpressionAttributeNames: map[string]string{
			"#slug": "slug",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": str(slug),
		},
	})
	if err != nil || !found {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

func toOrganizationItem(o entities.Organization) organizationItem {
	return organizationItem{
		ID:         o.ID,
		ExternalID: o.ExternalID,
		Name:       o.Name,
		Slug:       o.Slug,
		LogoURL:    o.LogoURL,
		CreatedAt:  formatTime(o.CreatedAt),
	}
}

func fromOrganizationItem(it organizationItem) entities.Organization {
	return entities.Organization{
		ID:         it.ID,
		ExternalID: it.ExternalID,
		Name:       it.Name,
		Slug:       it.Slug,
		LogoURL:    it.LogoURL,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
