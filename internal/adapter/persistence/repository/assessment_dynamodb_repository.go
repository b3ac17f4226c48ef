package repository

import (
	"context"
	"sort"
	"time"

	"detailshop/internal/domain/entities"
	"detailshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const assessmentsScheduleIndex = "org_id-scheduled_key-index"

type lineItemItem struct {
	Type  string `dynamodbav:"type"`
	RefID string `dynamodbav:"ref_id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type estimateItem struct {
	LineItems []lineItemItem `dynamodbav:"line_items"`
	Subtotal  string         `dynamodbav:"subtotal"`
	Discount  string         `dynamodbav:"discount"`
	Tax       string         `dynamodbav:"tax"`
	Total     string         `dynamodbav:"total"`
}

type assessmentItem struct {
	ID           string       `dynamodbav:"id"`
	OrgID        string       `dynamodbav:"org_id"`
	ClientID     string       `dynamodbav:"client_id"`
	ClientName   string       `dynamodbav:"client_name"`
	CreatedBy    string       `dynamodbav:"created_by"`
	CarMake      string       `dynamodbav:"car_make"`
	CarModel     string       `dynamodbav:"car_model"`
	CarYear      int          `dynamodbav:"car_year"`
	CarColor     string       `dynamodbav:"car_color,omitempty"`
	ServiceIDs   []string     `dynamodbav:"service_ids"`
	ModifierIDs  []string     `dynamodbav:"modifier_ids"`
	Notes        string       `dynamodbav:"notes,omitempty"`
	Status       string       `dynamodbav:"status"`
	ScheduledFor string       `dynamodbav:"scheduled_for,omitempty"`
	ScheduledKey string       `dynamodbav:"scheduled_key,omitempty"`
	Estimate     estimateItem `dynamodbav:"estimate"`
	CreatedKey   string       `dynamodbav:"created_key"`
	CreatedAt    string       `dynamodbav:"created_at"`
	UpdatedAt    string       `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository persists assessments with their estimate snapshot
// embedded as a map attribute.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id, SK: created_key)
//   - GSI: org_id-scheduled_key-index (PK: org_id, SK: scheduled_key), sparse
type AssessmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb DynamoAPI, tableName string) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.Assessment) (entities.Assessment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toAssessmentItem(a)); err != nil {
		return entities.Assessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assessment, error) {
	var it assessmentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) ListByOrgID(ctx context.Context, orgID string) ([]entities.Assessment, error) {
	items, err := queryAll[assessmentItem](ctx, r.ddb, byOrgQuery(r.tableName, orgID, false))
	if err != nil {
		return nil, err
	}
	return fromAssessmentItems(items), nil
}

func (r *AssessmentDynamoRepository) ListScheduledInRange(ctx context.Context, orgID string, start, end time.Time) ([]entities.Assessment, error) {
	// scheduled_key carries a "#id" suffix, so the upper bound must sort after it.
	upper := formatTime(end) + keySep + "\uffff"
	items, err := queryAll[assessmentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(assessmentsScheduleIndex),
		KeyConditionExpression: aws.String("org_id = :org AND scheduled_key BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org":   str(orgID),
			":start": str(formatTime(start)),
			":end":   str(upper),
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromAssessmentItems(items), nil
}

// ListAll scans the whole table; it serves the admin view only.
func (r *AssessmentDynamoRepository) ListAll(ctx context.Context) ([]entities.Assessment, error) {
	items, err := scanAll[assessmentItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedKey > items[j].CreatedKey })
	return fromAssessmentItems(items), nil
}

func (r *AssessmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AssessmentStatus) (entities.Assessment, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     str(string(status)),
			":updated_at": str(now),
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Assessment{}, nil
		}
		return entities.Assessment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Assessment{}, nil
	}
	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Assessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toAssessmentItem(a entities.Assessment) assessmentItem {
	it := assessmentItem{
		ID:          a.ID,
		OrgID:       a.OrgID,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		CreatedBy:   a.CreatedBy,
		CarMake:     a.CarMake,
		CarModel:    a.CarModel,
		CarYear:     a.CarYear,
		CarColor:    a.CarColor,
		ServiceIDs:  nonNil(a.ServiceIDs),
		ModifierIDs: nonNil(a.ModifierIDs),
		Notes:       a.Notes,
		Status:      string(a.Status),
		Estimate:    toEstimateItem(a.Estimate),
		CreatedKey:  createdKey(a.CreatedAt, a.ID),
		CreatedAt:   formatTime(a.CreatedAt),
		UpdatedAt:   formatTime(a.UpdatedAt),
	}
	if a.ScheduledFor != nil {
		it.ScheduledFor = formatTime(*a.ScheduledFor)
		it.ScheduledKey = createdKey(*a.ScheduledFor, a.ID)
	}
	return it
}

func fromAssessmentItem(it assessmentItem) entities.Assessment {
	a := entities.Assessment{
		ID:          it.ID,
		OrgID:       it.OrgID,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		CreatedBy:   it.CreatedBy,
		CarMake:     it.CarMake,
		CarModel:    it.CarModel,
		CarYear:     it.CarYear,
		CarColor:    it.CarColor,
		ServiceIDs:  nonNil(it.ServiceIDs),
		ModifierIDs: nonNil(it.ModifierIDs),
		Notes:       it.Notes,
		Status:      entities.AssessmentStatus(it.Status),
		Estimate:    fromEstimateItem(it.Estimate),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if t := parseTime(it.ScheduledFor); !t.IsZero() {
		a.ScheduledFor = &t
	}
	return a
}

func fromAssessmentItems(items []assessmentItem) []entities.Assessment {
	out := make([]entities.Assessment, 0, len(items))
	for _, it := range items {
		out = append(out, fromAssessmentItem(it))
	}
	return out
}

func toEstimateItem(e entities.Estimate) estimateItem {
	lines := make([]lineItemItem, 0, len(e.LineItems))
	for _, li := range e.LineItems {
		lines = append(lines, lineItemItem{Type: string(li.Type), RefID: li.RefID, Name: li.Name, Price: li.Price.String()})
	}
	return estimateItem{
		LineItems: lines,
		Subtotal:  e.Subtotal.String(),
		Discount:  e.Discount.String(),
		Tax:       e.Tax.String(),
		Total:     e.Total.String(),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	lines := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.LineItem{
			Type:  entities.LineItemType(li.Type),
			RefID: li.RefID,
			Name:  li.Name,
			Price: amountOrZero(li.Price),
		})
	}
	return entities.Estimate{
		LineItems: lines,
		Subtotal:  amountOrZero(it.Subtotal),
		Discount:  amountOrZero(it.Discount),
		Tax:       amountOrZero(it.Tax),
		Total:     amountOrZero(it.Total),
	}
}

func amountOrZero(raw string) decimal.Decimal {
	if d := entities.ParseAmount(raw); d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
