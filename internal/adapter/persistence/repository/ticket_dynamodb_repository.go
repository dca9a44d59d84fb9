package repository

import (
	"context"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type ticketItem struct {
	ID          string `dynamodbav:"id"`
	TenantID    string `dynamodbav:"tenant_id"`
	ApartmentID string `dynamodbav:"apartment_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Priority    string `dynamodbav:"priority"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists MaintenanceTicket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type TicketDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb DynamoAPI, tables TableNames) *TicketDynamoRepository {
	return &TicketDynamoRepository{ddb: ddb, tableName: tables.Tickets}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.MaintenanceTicket) (entities.MaintenanceTicket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.MaintenanceTicket{}, err
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
			return entities.MaintenanceTicket{}, interfaces.ErrConditionFailed
		}
		return entities.MaintenanceTicket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaintenanceTicket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaintenanceTicket{}, err
	}
	return unmarshalTicket(out.Item)
}

func (r *TicketDynamoRepository) List(ctx context.Context) ([]entities.MaintenanceTicket, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalTickets(raw)
}

func (r *TicketDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.MaintenanceTicket, error) {
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
	return unmarshalTickets(raw)
}

func (r *TicketDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.TicketStatus) (entities.MaintenanceTicket, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       str(string(from)),
			":to":         str(string(to)),
			":updated_at": str(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.MaintenanceTicket{}, interfaces.ErrConditionFailed
		}
		return entities.MaintenanceTicket{}, err
	}
	return unmarshalTicket(out.Attributes)
}

func unmarshalTickets(raw []map[string]types.AttributeValue) ([]entities.MaintenanceTicket, error) {
	items := make([]entities.MaintenanceTicket, 0, len(raw))
	for _, av := range raw {
		t, err := unmarshalTicket(av)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func unmarshalTicket(av map[string]types.AttributeValue) (entities.MaintenanceTicket, error) {
	if len(av) == 0 {
		return entities.MaintenanceTicket{}, nil
	}
	var it ticketItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.MaintenanceTicket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.MaintenanceTicket) ticketItem {
	return ticketItem{
		ID:          t.ID,
		TenantID:    t.TenantID,
		ApartmentID: t.ApartmentID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func fromTicketItem(it ticketItem) entities.MaintenanceTicket {
	return entities.MaintenanceTicket{
		ID:          it.ID,
		TenantID:    it.TenantID,
		ApartmentID: it.ApartmentID,
		Title:       it.Title,
		Description: it.Description,
		Priority:    entities.TicketPriority(it.Priority),
		Status:      entities.TicketStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
