package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	return sqlxDB, mock, func() { sqlxDB.Close() }
}

func TestExists(t *testing.T) {
	sqlxDB, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM tenants WHERE subdomain = \$1\)`).
		WithArgs("ironworks").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := Exists(context.Background(), sqlxDB,
		`SELECT EXISTS(SELECT 1 FROM tenants WHERE subdomain = $1)`, "ironworks")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsFalse(t *testing.T) {
	sqlxDB, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := Exists(context.Background(), sqlxDB, "SELECT EXISTS(...)", "nowhere")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExistsNoRows(t *testing.T) {
	sqlxDB, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("nowhere").
		WillReturnError(sql.ErrNoRows)

	exists, err := Exists(context.Background(), sqlxDB, "SELECT EXISTS(...)", "nowhere")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExistsQueryError(t *testing.T) {
	sqlxDB, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("nowhere").
		WillReturnError(errors.New("connection reset"))

	_, err := Exists(context.Background(), sqlxDB, "SELECT EXISTS(...)", "nowhere")
	assert.Error(t, err)
}
