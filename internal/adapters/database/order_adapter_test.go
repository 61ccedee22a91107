package database_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasnikov/workorders/internal/adapters/database"
	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/domain/repositories"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/postgres"
	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

var orderColumns = []string{
	"id", "name", "description", "start_date", "end_date",
	"address", "price", "customer_id", "executor_id",
}

func testOrder(id int) *entities.Order {
	return &entities.Order{
		ID:          id,
		Name:        "Kitchen renovation",
		Description: "Full kitchen refit",
		StartDate:   entities.NewDate(2024, time.January, 15),
		EndDate:     entities.NewDate(2024, time.February, 20),
		Address:     "Nevsky 1",
		Price:       50000,
		CustomerID:  1,
		ExecutorID:  2,
	}
}

func newOrderAdapter(t *testing.T) (repositories.OrderRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewOrderAdapter(postgres.NewClientFromDB(db)), mock
}

func TestOrderAdapter_CreateCommits(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, adapter.Create(t.Context(), testOrder(10)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_CreateDuplicateRollsBack(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := adapter.Create(t.Context(), testOrder(10))
	assert.Equal(t, apperrors.ErrorTypeConflict, appErrorType(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_GetByIDScansDates(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "orders" WHERE \("id" = 10\)`).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(10, "Kitchen renovation", "Full kitchen refit",
				time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
				"Nevsky 1", 50000, 1, 2))

	order, err := adapter.GetByID(t.Context(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, order.ID)
	assert.Equal(t, entities.NewDate(2024, time.January, 15), order.StartDate)
	assert.Equal(t, entities.NewDate(2024, time.February, 20), order.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_GetByIDNotFound(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "orders" WHERE \("id" = 42\)`).
		WillReturnError(sql.ErrNoRows)

	_, err := adapter.GetByID(t.Context(), 42)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErrorType(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_UpdateMissingRowRollsBack(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := adapter.Update(t.Context(), testOrder(42))
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErrorType(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_ListReturnsStorageOrder(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectQuery(`SELECT .+ FROM "orders"`).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(10, "Kitchen renovation", "Full kitchen refit",
				time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
				"Nevsky 1", 50000, 1, 2).
			AddRow(11, "Garden fence", "Replace fence panels",
				time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
				"Sadovaya 5", 12000, 3, 9))

	orders, err := adapter.List(t.Context())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 10, orders[0].ID)
	assert.Equal(t, 11, orders[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderAdapter_DeleteMissingRowNotFound(t *testing.T) {
	adapter, mock := newOrderAdapter(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "orders" WHERE \("id" = 42\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := adapter.Delete(t.Context(), 42)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErrorType(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
