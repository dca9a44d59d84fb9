// Package memory keeps every repository in a single go-memdb database. It
// backs STORAGE_DRIVER=memory and the store-level tests.
package memory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	tableApartments   = "apartments"
	tableTenants      = "tenants"
	tableApplications = "applications"
	tableAgreements   = "agreements"
	tablePayments     = "payments"
	tableTickets      = "tickets"

	indexID          = "id"
	indexRoomNumber  = "room_number"
	indexStatus      = "status"
	indexTenantID    = "tenant_id"
	indexApartmentID = "apartment_id"
)

// Store is the shared database. Write transactions are serialized by memdb,
// which is what makes the guarded writes atomic.
type Store struct {
	db *memdb.MemDB
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("memory store: %w", err)
	}
	return &Store{db: db}, nil
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableApartments: {
				Name: tableApartments,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:         idIndex(),
					indexRoomNumber: {Name: indexRoomNumber, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "RoomNumber"}},
					indexStatus:     stringIndex(indexStatus, "Status"),
				},
			},
			tableTenants: {
				Name: tableTenants,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:          idIndex(),
					indexApartmentID: stringIndex(indexApartmentID, "ApartmentID"),
				},
			},
			tableApplications: {
				Name: tableApplications,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       idIndex(),
					indexTenantID: stringIndex(indexTenantID, "TenantID"),
				},
			},
			tableAgreements: {
				Name: tableAgreements,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       idIndex(),
					indexTenantID: stringIndex(indexTenantID, "TenantID"),
					indexStatus:   stringIndex(indexStatus, "Status"),
				},
			},
			tablePayments: {
				Name: tablePayments,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       idIndex(),
					indexTenantID: stringIndex(indexTenantID, "TenantID"),
					indexStatus:   stringIndex(indexStatus, "Status"),
				},
			},
			tableTickets: {
				Name: tableTickets,
				Indexes: map[string]*memdb.IndexSchema{
					indexID:       idIndex(),
					indexTenantID: stringIndex(indexTenantID, "TenantID"),
				},
			},
		},
	}
}

func idIndex() *memdb.IndexSchema {
	return &memdb.IndexSchema{Name: indexID, Unique: true, Indexer: &memdb.StringFieldIndex{Field: "ID"}}
}

func stringIndex(name, field string) *memdb.IndexSchema {
	return &memdb.IndexSchema{Name: name, AllowMissing: true, Indexer: &memdb.StringFieldIndex{Field: field}}
}

// first returns a copy of the first object matching the index, or the zero value.
func first[T any](txn *memdb.Txn, table, index string, args ...any) (T, error) {
	var zero T
	raw, err := txn.First(table, index, args...)
	if err != nil || raw == nil {
		return zero, err
	}
	return *raw.(*T), nil
}

// all returns copies of every object matching the index.
func all[T any](txn *memdb.Txn, table, index string, args ...any) ([]T, error) {
	it, err := txn.Get(table, index, args...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*T))
	}
	return out, nil
}

func insert[T any](txn *memdb.Txn, table string, v T) error {
	return txn.Insert(table, &v)
}

// everything lists a whole table through the id prefix index.
func everything[T any](txn *memdb.Txn, table string) ([]T, error) {
	return all[T](txn, table, indexID+"_prefix", "")
}
