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

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	TenantID    string `dynamodbav:"tenant_id"`
	ApartmentID string `dynamodbav:"apartment_id"`
	Type        string `dynamodbav:"type"`
	Amount      string `dynamodbav:"amount"`
	AmountPaid  string `dynamodbav:"amount_paid"`
	DueDate     string `dynamodbav:"due_date"`
	Status      string `dynamodbav:"status"`
	PaidAt      string `dynamodbav:"paid_at,omitempty"`
	Method      string `dynamodbav:"method,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//   - GSI: status-due_date-index (PK: status, SK: due_date as YYYY-MM-DD)

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tables TableNames) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tables.Payments}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
			return entities.Payment{}, interfaces.ErrConditionFailed
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return unmarshalPayment(out.Item)
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Payment, error) {
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
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ListByStatusDueOn(ctx context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error) {
	return r.queryStatusDue(ctx, status, "due_date = :date", date)
}

func (r *PaymentDynamoRepository) ListByStatusDueBefore(ctx context.Context, status entities.PaymentStatus, date time.Time) ([]entities.Payment, error) {
	return r.queryStatusDue(ctx, status, "due_date < :date", date)
}

func (r *PaymentDynamoRepository) queryStatusDue(ctx context.Context, status entities.PaymentStatus, dueCond string, date time.Time) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(statusDueDateIndex),
		KeyConditionExpression: aws.String("#status = :status AND " + dueCond),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": str(string(status)),
			":date":   str(formatDate(date)),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) Settle(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(p.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #amount_paid = :amount_paid, #paid_at = :paid_at, #method = :method"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#amount_paid": "amount_paid",
			"#paid_at":     "paid_at",
			"#method":      "method",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":      str(it.Status),
			":amount_paid": str(it.AmountPaid),
			":paid_at":     str(it.PaidAt),
			":method":      str(it.Method),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return unmarshalPayment(out.Attributes)
}

func (r *PaymentDynamoRepository) MarkOverdue(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :overdue"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": str(string(entities.PaymentStatusPending)),
			":overdue": str(string(entities.PaymentStatusOverdue)),
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

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		p, err := unmarshalPayment(av)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func unmarshalPayment(av map[string]types.AttributeValue) (entities.Payment, error) {
	if len(av) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		TenantID:    p.TenantID,
		ApartmentID: p.ApartmentID,
		Type:        string(p.Type),
		Amount:      p.Amount.String(),
		AmountPaid:  p.AmountPaid.String(),
		DueDate:     formatDate(p.DueDate),
		Status:      string(p.Status),
		PaidAt:      formatTimePtr(p.PaidAt),
		Method:      p.Method,
		Notes:       p.Notes,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:          it.ID,
		TenantID:    it.TenantID,
		ApartmentID: it.ApartmentID,
		Type:        entities.PaymentType(it.Type),
		Amount:      parseDecimal(it.Amount),
		AmountPaid:  parseDecimal(it.AmountPaid),
		DueDate:     parseDate(it.DueDate),
		Status:      entities.PaymentStatus(it.Status),
		PaidAt:      parseTimePtr(it.PaidAt),
		Method:      it.Method,
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
