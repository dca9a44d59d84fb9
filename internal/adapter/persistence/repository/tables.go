package repository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	tenantIDIndex       = "tenant_id-index"
	statusDueDateIndex  = "status-due_date-index"
	statusLeaseEndIndex = "status-lease_end-index"
)

// TableNames maps each repository to its DynamoDB table.
type TableNames struct {
	Apartments   string
	RoomNumbers  string
	Tenants      string
	Applications string
	Agreements   string
	Payments     string
	Tickets      string
}

// TableNamesFromEnv reads *_TABLE overrides, falling back to plain names.
func TableNamesFromEnv() TableNames {
	return TableNames{
		Apartments:   getenvDefault("APARTMENTS_TABLE", "apartments"),
		RoomNumbers:  getenvDefault("ROOM_NUMBERS_TABLE", "room_numbers"),
		Tenants:      getenvDefault("TENANTS_TABLE", "tenants"),
		Applications: getenvDefault("APPLICATIONS_TABLE", "applications"),
		Agreements:   getenvDefault("AGREEMENTS_TABLE", "agreements"),
		Payments:     getenvDefault("PAYMENTS_TABLE", "payments"),
		Tickets:      getenvDefault("MAINTENANCE_TICKETS_TABLE", "maintenance_tickets"),
	}
}

// Schema describes every table and index the repositories query, in the order
// they should be created.
func Schema(n TableNames) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		table(n.Apartments, "id"),
		table(n.RoomNumbers, "room_number"),
		table(n.Tenants, "id"),
		table(n.Applications, "id", gsi(tenantIDIndex, "tenant_id", "")),
		table(n.Agreements, "id",
			gsi(tenantIDIndex, "tenant_id", ""),
			gsi(statusLeaseEndIndex, "status", "lease_end"),
		),
		table(n.Payments, "id",
			gsi(tenantIDIndex, "tenant_id", ""),
			gsi(statusDueDateIndex, "status", "due_date"),
		),
		table(n.Tickets, "id", gsi(tenantIDIndex, "tenant_id", "")),
	}
}

func table(name, pk string, indexes ...types.GlobalSecondaryIndex) *dynamodb.CreateTableInput {
	attrs := map[string]bool{pk: true}
	defs := []types.AttributeDefinition{{AttributeName: aws.String(pk), AttributeType: types.ScalarAttributeTypeS}}
	for _, idx := range indexes {
		for _, k := range idx.KeySchema {
			if attrs[*k.AttributeName] {
				continue
			}
			attrs[*k.AttributeName] = true
			defs = append(defs, types.AttributeDefinition{AttributeName: k.AttributeName, AttributeType: types.ScalarAttributeTypeS})
		}
	}
	in := &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: defs,
		KeySchema:            []types.KeySchemaElement{{AttributeName: aws.String(pk), KeyType: types.KeyTypeHash}},
		BillingMode:          types.BillingModePayPerRequest,
	}
	if len(indexes) > 0 {
		in.GlobalSecondaryIndexes = indexes
	}
	return in
}

func gsi(name, pk, sk string) types.GlobalSecondaryIndex {
	keys := []types.KeySchemaElement{{AttributeName: aws.String(pk), KeyType: types.KeyTypeHash}}
	if sk != "" {
		keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(sk), KeyType: types.KeyTypeRange})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keys,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
