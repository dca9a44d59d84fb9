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

type agreementItem struct {
	ID                 string `dynamodbav:"id"`
	TenantID           string `dynamodbav:"tenant_id"`
	ApplicationID      string `dynamodbav:"application_id,omitempty"`
	LeaseStart         string `dynamodbav:"lease_start"`
	LeaseEnd           string `dynamodbav:"lease_end"`
	MonthlyRent        string `dynamodbav:"monthly_rent"`
	SecurityDeposit    string `dynamodbav:"security_deposit"`
	Status             string `dynamodbav:"status"`
	TenantSignatureURL string `dynamodbav:"tenant_signature_url,omitempty"`
	SignedAt           string `dynamodbav:"signed_at,omitempty"`
	AdminSignatureURL  string `dynamodbav:"admin_signature_url,omitempty"`
	AdminSignedAt      string `dynamodbav:"admin_signed_at,omitempty"`
	TermsAccepted      bool   `dynamodbav:"terms_accepted"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// AgreementDynamoRepository persists Agreement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//   - GSI: status-lease_end-index (PK: status, SK: lease_end as YYYY-MM-DD)

type AgreementDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAgreementRepository = (*AgreementDynamoRepository)(nil)

func NewAgreementDynamoRepository(ddb DynamoAPI, tables TableNames) *AgreementDynamoRepository {
	return &AgreementDynamoRepository{ddb: ddb, tableName: tables.Agreements}
}

func (r *AgreementDynamoRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
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
			return entities.Agreement{}, interfaces.ErrConditionFailed
		}
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Agreement{}, err
	}
	return unmarshalAgreement(out.Item)
}

func (r *AgreementDynamoRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return unmarshalAgreements(raw)
}

func (r *AgreementDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Agreement, error) {
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
	return unmarshalAgreements(raw)
}

func (r *AgreementDynamoRepository) ListByStatusLeaseEndOnOrBefore(ctx context.Context, status entities.AgreementStatus, date time.Time) ([]entities.Agreement, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(statusLeaseEndIndex),
		KeyConditionExpression: aws.String("#status = :status AND lease_end <= :date"),
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
	return unmarshalAgreements(raw)
}

func (r *AgreementDynamoRepository) Transition(ctx context.Context, a entities.Agreement, from entities.AgreementStatus) (entities.Agreement, error) {
	av, err := attributevalue.MarshalMap(toAgreementItem(a))
	if err != nil {
		return entities.Agreement{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": str(string(from)),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Agreement{}, interfaces.ErrConditionFailed
		}
		return entities.Agreement{}, err
	}
	return a, nil
}

func unmarshalAgreements(raw []map[string]types.AttributeValue) ([]entities.Agreement, error) {
	items := make([]entities.Agreement, 0, len(raw))
	for _, av := range raw {
		a, err := unmarshalAgreement(av)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func unmarshalAgreement(av map[string]types.AttributeValue) (entities.Agreement, error) {
	if len(av) == 0 {
		return entities.Agreement{}, nil
	}
	var it agreementItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementItem(it), nil
}

func toAgreementItem(a entities.Agreement) agreementItem {
	return agreementItem{
		ID:                 a.ID,
		TenantID:           a.TenantID,
		ApplicationID:      a.ApplicationID,
		LeaseStart:         formatDate(a.LeaseStart),
		LeaseEnd:           formatDate(a.LeaseEnd),
		MonthlyRent:        a.MonthlyRent.String(),
		SecurityDeposit:    a.SecurityDeposit.String(),
		Status:             string(a.Status),
		TenantSignatureURL: a.TenantSignatureURL,
		SignedAt:           formatTimePtr(a.SignedAt),
		AdminSignatureURL:  a.AdminSignatureURL,
		AdminSignedAt:      formatTimePtr(a.AdminSignedAt),
		TermsAccepted:      a.TermsAccepted,
		CreatedAt:          formatTime(a.CreatedAt),
		UpdatedAt:          formatTime(a.UpdatedAt),
	}
}

func fromAgreementItem(it agreementItem) entities.Agreement {
	return entities.Agreement{
		ID:                 it.ID,
		TenantID:           it.TenantID,
		ApplicationID:      it.ApplicationID,
		LeaseStart:         parseDate(it.LeaseStart),
		LeaseEnd:           parseDate(it.LeaseEnd),
		MonthlyRent:        parseDecimal(it.MonthlyRent),
		SecurityDeposit:    parseDecimal(it.SecurityDeposit),
		Status:             entities.AgreementStatus(it.Status),
		TenantSignatureURL: it.TenantSignatureURL,
		SignedAt:           parseTimePtr(it.SignedAt),
		AdminSignatureURL:  it.AdminSignatureURL,
		AdminSignedAt:      parseTimePtr(it.AdminSignedAt),
		TermsAccepted:      it.TermsAccepted,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
