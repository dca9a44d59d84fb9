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

type tenantItem struct {
	ID             string `dynamodbav:"id"`
	Email          string `dynamodbav:"email,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	ApartmentID    string `dynamodbav:"apartment_id,omitempty"`
	PasscodeHash   string `dynamodbav:"passcode_hash"`
	MustChangePass bool   `dynamodbav:"must_change_pass"`
	IsActive       bool   `dynamodbav:"is_active"`
	OnboardingDone bool   `dynamodbav:"onboarding_done"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB and owns the
// apartment binding (apartments.occupant_tenant_id).
//
// Table requirements:
//   - tenants PK: id (string)
//   - apartments PK: id (string)

type TenantDynamoRepository struct {
	ddb    DynamoAPI
	tables TableNames
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb DynamoAPI, tables TableNames) *TenantDynamoRepository {
	return &TenantDynamoRepository{ddb: ddb, tables: tables}
}

func (r *TenantDynamoRepository) Assign(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: r.bindApartment(t.ApartmentID, t.ID, t.UpdatedAt)},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Tenants),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Tenant{}, interfaces.ErrConditionFailed
		}
		return entities.Tenant{}, err
	}
	return t, nil
}

// bindApartment flips a free VACANT apartment to OCCUPIED by tenantID.
func (r *TenantDynamoRepository) bindApartment(apartmentID, tenantID string, at time.Time) *types.Update {
	return &types.Update{
		TableName:           aws.String(r.tables.Apartments),
		Key:                 idKey(apartmentID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :vacant AND attribute_not_exists(#occupant)"),
		UpdateExpression:    aws.String("SET #status = :occupied, #occupant = :tenant, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#occupant":   "occupant_tenant_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vacant":     str(string(entities.ApartmentStatusVacant)),
			":occupied":   str(string(entities.ApartmentStatusOccupied)),
			":tenant":     str(tenantID),
			":updated_at": str(formatTime(at)),
		},
	}
}

// releaseApartment removes tenantID's binding. An OCCUPIED apartment goes back
// to VACANT; other statuses are kept.
func (r *TenantDynamoRepository) releaseApartment(apt entities.Apartment, tenantID string, at time.Time) *types.Update {
	next := apt.Status
	if next == entities.ApartmentStatusOccupied {
		next = entities.ApartmentStatusVacant
	}
	return &types.Update{
		TableName:           aws.String(r.tables.Apartments),
		Key:                 idKey(apt.ID),
		ConditionExpression: aws.String("#occupant = :tenant AND #status = :current"),
		UpdateExpression:    aws.String("SET #status = :next, #updated_at = :updated_at REMOVE #occupant"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#occupant":   "occupant_tenant_id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tenant":     str(tenantID),
			":current":    str(string(apt.Status)),
			":next":       str(string(next)),
			":updated_at": str(formatTime(at)),
		},
	}
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Tenants),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	return unmarshalTenant(out.Item)
}

func (r *TenantDynamoRepository) GetActiveByApartmentID(ctx context.Context, apartmentID string) (entities.Tenant, error) {
	apt, err := r.apartment(ctx, apartmentID)
	if err != nil || apt.OccupantTenantID == "" {
		return entities.Tenant{}, err
	}
	t, err := r.GetByID(ctx, apt.OccupantTenantID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if !t.IsActive {
		return entities.Tenant{}, nil
	}
	return t, nil
}

func (r *TenantDynamoRepository) apartment(ctx context.Context, id string) (entities.Apartment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Apartments),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Apartment{}, err
	}
	return unmarshalApartment(out.Item)
}

func (r *TenantDynamoRepository) List(ctx context.Context) ([]entities.Tenant, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tables.Tenants)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.Tenant, 0, len(raw))
	for _, av := range raw {
		t, err := unmarshalTenant(av)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, nil
}

func (r *TenantDynamoRepository) UpdatePasscode(ctx context.Context, id, passcodeHash string, mustChange bool) (entities.Tenant, error) {
	return r.update(ctx, id, "SET #passcode_hash = :hash, #must_change_pass = :must_change",
		map[string]types.AttributeValue{":hash": str(passcodeHash), ":must_change": boolean(mustChange)},
		map[string]string{"#passcode_hash": "passcode_hash", "#must_change_pass": "must_change_pass"},
	)
}

func (r *TenantDynamoRepository) SetOnboardingDone(ctx context.Context, id string, done bool) (entities.Tenant, error) {
	return r.update(ctx, id, "SET #onboarding_done = :done",
		map[string]types.AttributeValue{":done": boolean(done)},
		map[string]string{"#onboarding_done": "onboarding_done"},
	)
}

func (r *TenantDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Tenant, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil || t.ID == "" {
		return entities.Tenant{}, err
	}

	var binding *types.Update
	if t.ApartmentID != "" {
		apt, err := r.apartment(ctx, t.ApartmentID)
		if err != nil {
			return entities.Tenant{}, err
		}
		switch {
		case active && apt.OccupantTenantID != t.ID:
			binding = r.bindApartment(t.ApartmentID, t.ID, time.Now())
		case !active && apt.ID != "" && apt.OccupantTenantID == t.ID:
			binding = r.releaseApartment(apt, t.ID, time.Now())
		}
	}
	if binding == nil {
		return r.update(ctx, id, "SET #is_active = :active",
			map[string]types.AttributeValue{":active": boolean(active)},
			map[string]string{"#is_active": "is_active"},
		)
	}

	now := formatTime(time.Now())
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: binding},
			{Update: &types.Update{
				TableName:                 aws.String(r.tables.Tenants),
				Key:                       idKey(t.ID),
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				UpdateExpression:          aws.String("SET #is_active = :active, #updated_at = :updated_at"),
				ExpressionAttributeNames:  map[string]string{"#id": "id", "#is_active": "is_active", "#updated_at": "updated_at"},
				ExpressionAttributeValues: map[string]types.AttributeValue{":active": boolean(active), ":updated_at": str(now)},
			}},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Tenant{}, interfaces.ErrConditionFailed
		}
		return entities.Tenant{}, err
	}
	t.IsActive = active
	t.UpdatedAt = parseTime(now)
	return t, nil
}

func (r *TenantDynamoRepository) update(
	ctx context.Context,
	id string,
	setExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Tenant, error) {
	values[":updated_at"] = str(formatTime(time.Now()))
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Tenants),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(setExpr + ", #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Tenant{}, nil
		}
		return entities.Tenant{}, err
	}
	return unmarshalTenant(out.Attributes)
}

func unmarshalTenant(av map[string]types.AttributeValue) (entities.Tenant, error) {
	if len(av) == 0 {
		return entities.Tenant{}, nil
	}
	var it tenantItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	return tenantItem{
		ID:             t.ID,
		Email:          t.Email,
		Phone:          t.Phone,
		ApartmentID:    t.ApartmentID,
		PasscodeHash:   t.PasscodeHash,
		MustChangePass: t.MustChangePass,
		IsActive:       t.IsActive,
		OnboardingDone: t.OnboardingDone,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}

func fromTenantItem(it tenantItem) entities.Tenant {
	return entities.Tenant{
		ID:             it.ID,
		Email:          it.Email,
		Phone:          it.Phone,
		ApartmentID:    it.ApartmentID,
		PasscodeHash:   it.PasscodeHash,
		MustChangePass: it.MustChangePass,
		IsActive:       it.IsActive,
		OnboardingDone: it.OnboardingDone,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
