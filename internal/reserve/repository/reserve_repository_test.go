package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopcart/internal/domain"
	apperrors "shopcart/internal/errors"
	"shopcart/internal/testutil"
)

var reserveColumns = []string{"id", "description", "created_at", "c.id", "c.name", "c.email"}

func beginMockTx(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *sql.Tx) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)
	return db, mock, tx
}

// Unit Tests

func TestNewMySQLReserveRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLReserveRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestReserveRepository_FindByID_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM reserves r JOIN customers c ON c.id = r.customer_id WHERE r.id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(reserveColumns).
			AddRow(5, "book order", createdAt, 2, "Ana", "ana@x.com"))

	reserve, err := NewMySQLReserveRepository(db).FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), reserve.ID)
	assert.Equal(t, "book order", reserve.Description)
	assert.Equal(t, createdAt, reserve.CreatedAt)
	assert.Equal(t, domain.Customer{ID: 2, Name: "Ana", Email: "ana@x.com"}, reserve.Customer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRepository_FindByID_NullDescription(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM reserves r`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(reserveColumns).
			AddRow(5, nil, time.Now(), 2, "Ana", "ana@x.com"))

	reserve, err := NewMySQLReserveRepository(db).FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "", reserve.Description)
}

func TestReserveRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM reserves r`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(reserveColumns))

	reserve, err := NewMySQLReserveRepository(db).FindByID(context.Background(), 404)
	assert.Nil(t, reserve)
	nf, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "reserve with id 404 not found", nf.Message)
}

func TestReserveRepository_FindByID_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM reserves r`).WillReturnError(errors.New("connection refused"))

	_, err = NewMySQLReserveRepository(db).FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying reserve by id")
}

func TestReserveRepository_Insert(t *testing.T) {
	db, mock, tx := beginMockTx(t)
	defer db.Close()

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO reserves \(description, customer_id, created_at\)`).
		WithArgs("book order", int64(2), createdAt).
		WillReturnResult(sqlmock.NewResult(31, 1))

	id, err := NewMySQLReserveRepository(db).Insert(context.Background(), tx, domain.Reserve{
		Description: "book order",
		Customer:    domain.Customer{ID: 2},
		CreatedAt:   createdAt,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(31), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Integration Tests

func TestReserveRepository_RoundTrip_MySQL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	ctx := context.Background()

	productResult, err := db.Exec(`INSERT INTO products (name, description, price) VALUES ('Book', 'Paperback', 10.00)`)
	require.NoError(t, err)
	productID, err := productResult.LastInsertId()
	require.NoError(t, err)

	customerResult, err := db.Exec(`INSERT INTO customers (name, email) VALUES ('Ana', 'ana@x.com')`)
	require.NoError(t, err)
	customerID, err := customerResult.LastInsertId()
	require.NoError(t, err)

	reserves := NewMySQLReserveRepository(db)
	items := NewMySQLCartItemRepository(db)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	reserveID, err := reserves.Insert(ctx, tx, domain.Reserve{
		Description: "book order",
		Customer:    domain.Customer{ID: customerID},
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	})
	require.NoError(t, err)

	_, err = items.Insert(ctx, tx, domain.CartItem{ReserveID: reserveID, ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	reserve, err := reserves.FindByID(ctx, reserveID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", reserve.Customer.Name)

	loaded, err := items.FindByReserveID(ctx, reserveID)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.True(t, decimal.RequireFromString("10.00").Equal(loaded[0].Product.Price))
}
