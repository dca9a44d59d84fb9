package repository

import (
	"context"
	"strconv"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type utilityItem struct {
	Enabled     bool   `dynamodbav:"enabled"`
	MonthlyRate string `dynamodbav:"monthly_rate"`
	AnnualRate  string `dynamodbav:"annual_rate"`
}

type apartmentItem struct {
	ID               string      `dynamodbav:"id"`
	UnitName         string      `dynamodbav:"unit_name"`
	UnitNumber       string      `dynamodbav:"unit_number"`
	Floor            int         `dynamodbav:"floor"`
	Type             string      `dynamodbav:"type"`
	MonthlyRent      string      `dynamodbav:"monthly_rent"`
	Status           string      `dynamodbav:"status"`
	RoomNumber       string      `dynamodbav:"room_number"`
	PasscodeHash     string      `dynamodbav:"passcode_hash"`
	OccupantTenantID string      `dynamodbav:"occupant_tenant_id,omitempty"`
	Water            utilityItem `dynamodbav:"water"`
	Sewage           utilityItem `dynamodbav:"sewage"`
	Cleaning         utilityItem `dynamodbav:"cleaning"`
	CreatedAt        string      `dynamodbav:"created_at"`
	UpdatedAt        string      `dynamodbav:"updated_at"`
}

type roomNumberItem struct {
	RoomNumber  string `dynamodbav:"room_number"`
	ApartmentID string `dynamodbav:"apartment_id"`
}

// ApartmentDynamoRepository persists Apartment entities in DynamoDB.
//
// Table requirements:
//   - apartments PK: id (string)
//   - room_numbers PK: room_number (string), one item per apartment
//
// The room_numbers item is written in the same transaction as the apartment,
// which is what makes room numbers unique.

type ApartmentDynamoRepository struct {
	ddb    DynamoAPI
	tables TableNames
}

var _ interfaces.IApartmentRepository = (*ApartmentDynamoRepository)(nil)

func NewApartmentDynamoRepository(ddb DynamoAPI, tables TableNames) *ApartmentDynamoRepository {
	return &ApartmentDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ApartmentDynamoRepository) Create(ctx context.Context, a entities.Apartment) (entities.Apartment, error) {
	av, err := attributevalue.MarshalMap(toApartmentItem(a))
	if err != nil {
		return entities.Apartment{}, err
	}
	guard, err := attributevalue.MarshalMap(roomNumberItem{RoomNumber: a.RoomNumber, ApartmentID: a.ID})
	if err != nil {
		return entities.Apartment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.RoomNumbers),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#room)"),
				ExpressionAttributeNames: map[string]string{"#room": "room_number"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Apartments),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Apartment{}, interfaces.ErrConditionFailed
		}
		return entities.Apartment{}, err
	}
	return a, nil
}

func (r *ApartmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Apartment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Apartments),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Apartment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Apartment{}, nil
	}
	return unmarshalApartment(out.Item)
}

func (r *ApartmentDynamoRepository) GetByRoomNumber(ctx context.Context, roomNumber string) (entities.Apartment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.RoomNumbers),
		Key: map[string]types.AttributeValue{
			"room_number": str(roomNumber),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Apartment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Apartment{}, nil
	}
	var guard roomNumberItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Apartment{}, err
	}
	return r.GetByID(ctx, guard.ApartmentID)
}

func (r *ApartmentDynamoRepository) List(ctx context.Context, status entities.ApartmentStatus) ([]entities.Apartment, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tables.Apartments)}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":status": str(string(status))}
	}
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Apartment, 0, len(raw))
	for _, av := range raw {
		a, err := unmarshalApartment(av)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func (r *ApartmentDynamoRepository) UpdateDetails(ctx context.Context, a entities.Apartment) (entities.Apartment, error) {
	it := toApartmentItem(a)
	water, err := attributevalue.Marshal(it.Water)
	if err != nil {
		return entities.Apartment{}, err
	}
	sewage, err := attributevalue.Marshal(it.Sewage)
	if err != nil {
		return entities.Apartment{}, err
	}
	cleaning, err := attributevalue.Marshal(it.Cleaning)
	if err != nil {
		return entities.Apartment{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Apartments),
		Key:                 idKey(a.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #unit_name = :unit_name, #unit_number = :unit_number, #floor = :floor, #type = :type, " +
			"#monthly_rent = :monthly_rent, #water = :water, #sewage = :sewage, #cleaning = :cleaning, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#unit_name":    "unit_name",
			"#unit_number":  "unit_number",
			"#floor":        "floor",
			"#type":         "type",
			"#monthly_rent": "monthly_rent",
			"#water":        "water",
			"#sewage":       "sewage",
			"#cleaning":     "cleaning",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unit_name":    str(it.UnitName),
			":unit_number":  str(it.UnitNumber),
			":floor":        &types.AttributeValueMemberN{Value: strconv.Itoa(it.Floor)},
			":type":         str(it.Type),
			":monthly_rent": str(it.MonthlyRent),
			":water":        water,
			":sewage":       sewage,
			":cleaning":     cleaning,
			":updated_at":   str(it.UpdatedAt),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Apartment{}, nil
		}
		return entities.Apartment{}, err
	}
	return unmarshalApartment(out.Attributes)
}

func (r *ApartmentDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.ApartmentStatus) (entities.Apartment, error) {
	cond := "attribute_exists(#id) AND #status = :expected"
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	switch next {
	case entities.ApartmentStatusVacant:
		cond += " AND attribute_not_exists(#occupant)"
		names["#occupant"] = "occupant_tenant_id"
	case entities.ApartmentStatusOccupied:
		cond += " AND attribute_exists(#occupant)"
		names["#occupant"] = "occupant_tenant_id"
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tables.Apartments),
		Key:                      idKey(id),
		ConditionExpression:      aws.String(cond),
		UpdateExpression:         aws.String("SET #status = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: names,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   str(string(expected)),
			":next":       str(string(next)),
			":updated_at": str(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Apartment{}, interfaces.ErrConditionFailed
		}
		return entities.Apartment{}, err
	}
	return unmarshalApartment(out.Attributes)
}

func (r *ApartmentDynamoRepository) Delete(ctx context.Context, id string) error {
	a, err := r.GetByID(ctx, id)
	if err != nil || a.ID == "" {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tables.Apartments),
				Key:       idKey(a.ID),
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tables.RoomNumbers),
				Key: map[string]types.AttributeValue{
					"room_number": str(a.RoomNumber),
				},
			}},
		},
	})
	return err
}

func unmarshalApartment(av map[string]types.AttributeValue) (entities.Apartment, error) {
	if len(av) == 0 {
		return entities.Apartment{}, nil
	}
	var it apartmentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Apartment{}, err
	}
	return fromApartmentItem(it), nil
}

func toUtilityItem(u entities.Utility) utilityItem {
	return utilityItem{Enabled: u.Enabled, MonthlyRate: u.MonthlyRate.String(), AnnualRate: u.AnnualRate.String()}
}

func fromUtilityItem(it utilityItem) entities.Utility {
	return entities.Utility{Enabled: it.Enabled, MonthlyRate: parseDecimal(it.MonthlyRate), AnnualRate: parseDecimal(it.AnnualRate)}
}

func toApartmentItem(a entities.Apartment) apartmentItem {
	return apartmentItem{
		ID:               a.ID,
		UnitName:         a.UnitName,
		UnitNumber:       a.UnitNumber,
		Floor:            a.Floor,
		Type:             string(a.Type),
		MonthlyRent:      a.MonthlyRent.String(),
		Status:           string(a.Status),
		RoomNumber:       a.RoomNumber,
		PasscodeHash:     a.PasscodeHash,
		OccupantTenantID: a.OccupantTenantID,
		Water:            toUtilityItem(a.Water),
		Sewage:           toUtilityItem(a.Sewage),
		Cleaning:         toUtilityItem(a.Cleaning),
		CreatedAt:        formatTime(a.CreatedAt),
		UpdatedAt:        formatTime(a.UpdatedAt),
	}
}

func fromApartmentItem(it apartmentItem) entities.Apartment {
	return entities.Apartment{
		ID:               it.ID,
		UnitName:         it.UnitName,
		UnitNumber:       it.UnitNumber,
		Floor:            it.Floor,
		Type:             entities.ApartmentType(it.Type),
		MonthlyRent:      parseDecimal(it.MonthlyRent),
		Status:           entities.ApartmentStatus(it.Status),
		RoomNumber:       it.RoomNumber,
		PasscodeHash:     it.PasscodeHash,
		OccupantTenantID: it.OccupantTenantID,
		Water:            fromUtilityItem(it.Water),
		Sewage:           fromUtilityItem(it.Sewage),
		Cleaning:         fromUtilityItem(it.Cleaning),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
