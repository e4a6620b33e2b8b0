package tenant

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func tenantRows(id, name, subdomain string, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "subdomain", "email", "phone", "address",
		"subscription_plan", "subscription_status", "subscription_start", "subscription_end",
		"settings", "created_at", "updated_at",
	}).AddRow(id, name, subdomain, "owner@gym.gr", "", "", "trial", "active", created, nil, []byte(`{}`), created, created)
}

func TestCreateTenant(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery("INSERT INTO tenants").
		WithArgs("Iron Temple", "iron-temple", "owner@gym.gr", "", "").
		WillReturnRows(tenantRows("t-1", "Iron Temple", "iron-temple", now))

	got, err := repo.Create(context.Background(), CreateTenantRequest{
		Name:      "Iron Temple",
		Subdomain: "iron-temple",
		Email:     "owner@gym.gr",
	})
	require.NoError(t, err)
	require.Equal(t, "t-1", got.ID)
	require.Equal(t, "iron-temple", got.Subdomain)
	require.Equal(t, Settings{}, got.Settings)
}

func TestGetTenantBySubdomain(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM tenants WHERE subdomain").
		WithArgs("iron-temple").
		WillReturnRows(tenantRows("t-1", "Iron Temple", "iron-temple", now))

	got, err := repo.GetBySubdomain(context.Background(), "iron-temple")
	require.NoError(t, err)
	require.Equal(t, "t-1", got.ID)
}

func TestSubdomainExists(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM tenants WHERE subdomain = $1)")).
		WithArgs("iron-temple").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SubdomainExists(context.Background(), "iron-temple")
	require.NoError(t, err)
	require.True(t, exists)
}
