package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loans.db")
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE loan_payments (id INTEGER, loan_amount REAL, term TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO loan_payments VALUES (1, 8000.5, '36 months'), (2, NULL, '60 months'), (3, 12000, NULL)`)
	require.NoError(t, err)
	return path
}

func TestSQLiteRunQuery(t *testing.T) {
	path := seed(t)

	db, err := database.New(context.Background(), config.DatabaseConfig{Dialect: "sqlite", DBName: path})
	require.NoError(t, err)
	defer db.Close()

	table, err := db.RunQuery(context.Background(), "SELECT * FROM loan_payments")
	require.NoError(t, err)

	assert.Equal(t, 3, table.NumRows())
	assert.Equal(t, []string{"id", "loan_amount", "term"}, table.Names())
	assert.Equal(t, frame.Numeric, table.Column("id").Kind)
	assert.Equal(t, []any{8000.5, nil, 12000.0}, table.Column("loan_amount").Values)
	assert.Equal(t, []any{"36 months", "60 months", nil}, table.Column("term").Values)
}

func TestSQLiteConnectionString(t *testing.T) {
	handler := sqliteHandler{}
	assert.Equal(t, "file:/tmp/loans.db?mode=ro", handler.ConnectionString(config.DatabaseConfig{DBName: "/tmp/loans.db"}))

	_, err := handler.CreateCloudSQLPool(config.DatabaseConfig{})
	assert.Error(t, err)
}
