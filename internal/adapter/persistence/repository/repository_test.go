package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records the last request of each kind and answers with canned
// output or err.
type fakeDynamo struct {
	err error

	getItem  map[string]types.AttributeValue
	lastPut  *dynamodb.PutItemInput
	lastUpd  *dynamodb.UpdateItemInput
	lastTx   *dynamodb.TransactWriteItemsInput
	queryOut []map[string]types.AttributeValue
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.getItem}, f.err
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpd = in
	return &dynamodb.UpdateItemOutput{}, f.err
}

func (f *fakeDynamo) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{Items: f.queryOut}, f.err
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{Items: f.queryOut}, f.err
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.lastTx = in
	return &dynamodb.TransactWriteItemsOutput{}, f.err
}

var testTables = TableNames{
	Apartments:   "apartments",
	RoomNumbers:  "room_numbers",
	Tenants:      "tenants",
	Applications: "applications",
	Agreements:   "agreements",
	Payments:     "payments",
	Tickets:      "maintenance_tickets",
}

func TestIsConditionFailed(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"conditional check", &types.ConditionalCheckFailedException{}, true},
		{"wrapped conditional check", errors.Join(errors.New("put"), &types.ConditionalCheckFailedException{}), true},
		{"cancelled transaction", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("None")}, {Code: aws.String("ConditionalCheckFailed")}},
		}, true},
		{"cancelled for another reason", &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
		}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, isConditionFailed(tc.err))
		})
	}
}

func TestApartmentItemRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	a := entities.Apartment{
		ID:               "a1",
		UnitName:         "Garden Flat",
		UnitNumber:       "A",
		Floor:            1,
		Type:             entities.ApartmentTypeOneBedroom,
		MonthlyRent:      decimal.RequireFromString("1250.50"),
		Status:           entities.ApartmentStatusOccupied,
		RoomNumber:       "PIL-1A",
		PasscodeHash:     "hash",
		OccupantTenantID: "t1",
		Water:            entities.Utility{Enabled: true, MonthlyRate: decimal.NewFromInt(20), AnnualRate: decimal.NewFromInt(240)},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	got := fromApartmentItem(toApartmentItem(a))
	require.True(t, a.MonthlyRent.Equal(got.MonthlyRent))
	require.True(t, a.Water.MonthlyRate.Equal(got.Water.MonthlyRate))
	require.Equal(t, a.RoomNumber, got.RoomNumber)
	require.Equal(t, a.OccupantTenantID, got.OccupantTenantID)
	require.Equal(t, a.PasscodeHash, got.PasscodeHash)
	require.True(t, a.CreatedAt.Equal(got.CreatedAt))
}

func TestPaymentItemKeepsCalendarDate(t *testing.T) {
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	it := toPaymentItem(entities.Payment{ID: "p1", DueDate: due, Amount: decimal.NewFromInt(10), Status: entities.PaymentStatusPending})
	require.Equal(t, "2026-02-01", it.DueDate)
	require.True(t, fromPaymentItem(it).DueDate.Equal(due))
}

func TestApartmentDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the room number guard with the apartment", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewApartmentDynamoRepository(ddb, testTables)
		_, err := repo.Create(ctx, entities.Apartment{ID: "a1", RoomNumber: "PIL-1A", Status: entities.ApartmentStatusVacant})
		require.NoError(t, err)
		require.Len(t, ddb.lastTx.TransactItems, 2)
		require.Equal(t, "room_numbers", *ddb.lastTx.TransactItems[0].Put.TableName)
		require.Equal(t, "apartments", *ddb.lastTx.TransactItems[1].Put.TableName)
	})

	t.Run("maps a lost guard to ErrConditionFailed", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}},
		}}
		repo := NewApartmentDynamoRepository(ddb, testTables)
		_, err := repo.Create(ctx, entities.Apartment{ID: "a1", RoomNumber: "PIL-1A"})
		require.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestApartmentDynamoRepository_UpdateStatusNames(t *testing.T) {
	ctx := context.Background()
	ddb := &fakeDynamo{}
	repo := NewApartmentDynamoRepository(ddb, testTables)

	_, _ = repo.UpdateStatus(ctx, "a1", entities.ApartmentStatusVacant, entities.ApartmentStatusMaintenance)
	require.NotContains(t, ddb.lastUpd.ExpressionAttributeNames, "#occupant")

	_, _ = repo.UpdateStatus(ctx, "a1", entities.ApartmentStatusMaintenance, entities.ApartmentStatusVacant)
	require.Contains(t, ddb.lastUpd.ExpressionAttributeNames, "#occupant")
	require.Contains(t, *ddb.lastUpd.ConditionExpression, "attribute_not_exists(#occupant)")

	_, _ = repo.UpdateStatus(ctx, "a1", entities.ApartmentStatusMaintenance, entities.ApartmentStatusOccupied)
	require.Contains(t, *ddb.lastUpd.ConditionExpression, "attribute_exists(#occupant)")
}

func TestPaymentDynamoRepository_MarkOverdue(t *testing.T) {
	ctx := context.Background()

	t.Run("flipped", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(&fakeDynamo{}, testTables)
		ok, err := repo.MarkOverdue(ctx, "p1")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("no longer pending", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(&fakeDynamo{err: &types.ConditionalCheckFailedException{}}, testTables)
		ok, err := repo.MarkOverdue(ctx, "p1")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("other failures surface", func(t *testing.T) {
		repo := NewPaymentDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, testTables)
		_, err := repo.MarkOverdue(ctx, "p1")
		require.Error(t, err)
	})
}

func TestApartmentDynamoRepository_GetByIDMissing(t *testing.T) {
	repo := NewApartmentDynamoRepository(&fakeDynamo{}, testTables)
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, got.ID)
}

func TestSchema(t *testing.T) {
	tables := Schema(testTables)
	require.Len(t, tables, 7)

	byName := map[string]*dynamodb.CreateTableInput{}
	for _, in := range tables {
		byName[*in.TableName] = in
	}
	payments := byName["payments"]
	require.NotNil(t, payments)
	require.Len(t, payments.GlobalSecondaryIndexes, 2)
	require.Len(t, payments.AttributeDefinitions, 4)
	require.Empty(t, byName["room_numbers"].GlobalSecondaryIndexes)
	require.Equal(t, "room_number", *byName["room_numbers"].KeySchema[0].AttributeName)
}
