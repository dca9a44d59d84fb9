package repository

import (
	"context"
	"encoding/json"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type applicationItem struct {
	ID          string `dynamodbav:"id"`
	TenantID    string `dynamodbav:"tenant_id"`
	FactsRaw    string `dynamodbav:"facts_raw"`
	Status      string `dynamodbav:"status"`
	ReviewedAt  string `dynamodbav:"reviewed_at,omitempty"`
	ReviewNotes string `dynamodbav:"review_notes,omitempty"`
	SubmittedAt string `dynamodbav:"submitted_at"`
}

// ApplicationDynamoRepository persists Application entities in DynamoDB.
// The applicant facts are kept as a JSON document since nothing queries them.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type ApplicationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb DynamoAPI, tables TableNames) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{ddb: ddb, tableName: tables.Applications}
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, a entities.Application) (entities.Application, error) {
	it, err := toApplicationItem(a)
	if err != nil {
		return entities.Application{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Application{}, err
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
		if isConditionFailed(err) {
			return entities.Application{}, interfaces.ErrConditionFailed
		}
		return entities.Application{}, err
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	return unmarshalApplication(out.Item)
}

func (r *ApplicationDynamoRepository) List(ctx context.Context) ([]entities.Application, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalApplications(raw)
}

func (r *ApplicationDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Application, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(tenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": str(tenantID),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalApplications(raw)
}

func (r *ApplicationDynamoRepository) Review(ctx context.Context, id string, status entities.ApplicationStatus, reviewedAt time.Time, notes string) (entities.Application, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #reviewed_at = :reviewed_at, #review_notes = :notes"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#reviewed_at":  "reviewed_at",
			"#review_notes": "review_notes",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     str(string(entities.ApplicationStatusPending)),
			":status":      str(string(status)),
			":reviewed_at": str(formatTime(reviewedAt)),
			":notes":       str(notes),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Application{}, interfaces.ErrConditionFailed
		}
		return entities.Application{}, err
	}
	return unmarshalApplication(out.Attributes)
}

func unmarshalApplications(raw []map[string]types.AttributeValue) ([]entities.Application, error) {
	items := make([]entities.Application, 0, len(raw))
	for _, av := range raw {
		a, err := unmarshalApplication(av)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func unmarshalApplication(av map[string]types.AttributeValue) (entities.Application, error) {
	if len(av) == 0 {
		return entities.Application{}, nil
	}
	var it applicationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it)
}

func toApplicationItem(a entities.Application) (applicationItem, error) {
	facts, err := json.Marshal(a.Facts)
	if err != nil {
		return applicationItem{}, err
	}
	return applicationItem{
		ID:          a.ID,
		TenantID:    a.TenantID,
		FactsRaw:    string(facts),
		Status:      string(a.Status),
		ReviewedAt:  formatTimePtr(a.ReviewedAt),
		ReviewNotes: a.ReviewNotes,
		SubmittedAt: formatTime(a.SubmittedAt),
	}, nil
}

func fromApplicationItem(it applicationItem) (entities.Application, error) {
	var facts entities.ApplicantFacts
	if it.FactsRaw != "" {
		if err := json.Unmarshal([]byte(it.FactsRaw), &facts); err != nil {
			return entities.Application{}, err
		}
	}
	return entities.Application{
		ID:          it.ID,
		TenantID:    it.TenantID,
		Facts:       facts,
		Status:      entities.ApplicationStatus(it.Status),
		ReviewedAt:  parseTimePtr(it.ReviewedAt),
		ReviewNotes: it.ReviewNotes,
		SubmittedAt: parseTime(it.SubmittedAt),
	}, nil
}
