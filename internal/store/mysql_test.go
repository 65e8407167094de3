// ABOUTME: Tests for pool selection and schema bootstrap
// ABOUTME: Verifies Strong reads pin to the primary while Eventual reads hit the replica

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReader_ConsistencyRouting(t *testing.T) {
	primaryDB, primaryMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create primary mock: %v", err)
	}
	defer primaryDB.Close()

	replicaDB, replicaMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create replica mock: %v", err)
	}
	defer replicaDB.Close()

	db := NewWithDB(primaryDB, replicaDB)
	ctx := context.Background()

	replicaMock.ExpectQuery("SELECT id, from_user_id").
		WillReturnRows(sqlmock.NewRows(messageColumns))
	if _, err := db.GetHistory(ctx, 1, 2, 10, Eventual); err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if err := replicaMock.ExpectationsWereMet(); err != nil {
		t.Errorf("eventual read did not hit the replica: %v", err)
	}

	primaryMock.ExpectQuery("SELECT id, from_user_id").
		WillReturnRows(sqlmock.NewRows(messageColumns))
	if _, err := db.GetHistory(ctx, 1, 2, 10, Strong); err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if err := primaryMock.ExpectationsWereMet(); err != nil {
		t.Errorf("strong read did not hit the primary: %v", err)
	}
}

func TestEnsureSchema(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	for range schemaStatements {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
