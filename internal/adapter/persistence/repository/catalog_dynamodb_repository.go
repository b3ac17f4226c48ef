package repository

import (
	"context"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const orgIDIndex = "org_id-index"

// catalogItem is the stored shape of services and modifiers. Prices are kept as
// decimal strings; an unparsable stored price surfaces as an invalid amount.
type catalogItem struct {
	ID          string `dynamodbav:"id"`
	OrgID       string `dynamodbav:"org_id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Type        string `dynamodbav:"type,omitempty"`
	CreatedKey  string `dynamodbav:"created_key"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository and ModifierDynamoRepository share one layout.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id, SK: created_key)
type ServiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	var it catalogItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Service, error) {
	items, err := queryAll[catalogItem](ctx, r.ddb, byOrgQuery(r.tableName, orgID, true))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

type ModifierDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IModifierRepository = (*ModifierDynamoRepository)(nil)

func NewModifierDynamoRepository(ddb DynamoAPI, tableName string) *ModifierDynamoRepository {
	return &ModifierDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ModifierDynamoRepository) Create(ctx context.Context, mod entities.Modifier) (entities.Modifier, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toModifierItem(mod)); err != nil {
		return entities.Modifier{}, err
	}
	return mod, nil
}

func (r *ModifierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Modifier, error) {
	var it catalogItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Modifier{}, err
	}
	return fromModifierItem(it), nil
}

func (r *ModifierDynamoRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Modifier, error) {
	items, err := queryAll[catalogItem](ctx, r.ddb, byOrgQuery(r.tableName, orgID, true))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Modifier, 0, len(items))
	for _, it := range items {
		out = append(out, fromModifierItem(it))
	}
	return out, nil
}

func byOrgQuery(table, orgID string, oldestFirst bool) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(orgIDIndex),
		KeyConditionExpression: aws.String("org_id = :org"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": str(orgID),
		},
		ScanIndexForward: aws.Bool(oldestFirst),
	}
}

func toServiceItem(s entities.Service) catalogItem {
	return catalogItem{
		ID:          s.ID,
		OrgID:       s.OrgID,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   entities.FormatAmount(s.UnitPrice),
		Type:        string(s.Type),
		CreatedKey:  createdKey(s.CreatedAt, s.ID),
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it catalogItem) entities.Service {
	return entities.Service{
		ID:          it.ID,
		OrgID:       it.OrgID,
		Name:        it.Name,
		Description: it.Description,
		UnitPrice:   entities.ParseAmount(it.UnitPrice),
		Type:        entities.ServiceType(it.Type),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toModifierItem(mod entities.Modifier) catalogItem {
	return catalogItem{
		ID:          mod.ID,
		OrgID:       mod.OrgID,
		Name:        mod.Name,
		Description: mod.Description,
		UnitPrice:   entities.FormatAmount(mod.UnitPrice),
		CreatedKey:  createdKey(mod.CreatedAt, mod.ID),
		CreatedAt:   formatTime(mod.CreatedAt),
		UpdatedAt:   formatTime(mod.UpdatedAt),
	}
}

func fromModifierItem(it catalogItem) entities.Modifier {
	return entities.Modifier{
		ID:          it.ID,
		OrgID:       it.OrgID,
		Name:        it.Name,
		Description: it.Description,
		UnitPrice:   entities.ParseAmount(it.UnitPrice),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
