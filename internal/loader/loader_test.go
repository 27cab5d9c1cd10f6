package loader

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// sqlmockHandler serves every pool from a fresh sqlmock connection prepared by expect.
type sqlmockHandler struct {
	expect func(mock sqlmock.Sqlmock)
}

func (h *sqlmockHandler) CreateCloudSQLPool(cfg config.DatabaseConfig) (*sql.DB, error) {
	return nil, errors.New("not supported")
}

func (h *sqlmockHandler) CreateStandardPool(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, err
	}
	h.expect(mock)
	return db, nil
}

func (h *sqlmockHandler) ConnectionString(cfg config.DatabaseConfig) string {
	return database.URL("loadermock", cfg).String()
}

func register(t *testing.T, dialect string, expect func(mock sqlmock.Sqlmock)) config.DatabaseConfig {
	t.Helper()
	database.RegisterDialectHandler(dialect, &sqlmockHandler{expect: expect})
	return config.DatabaseConfig{Dialect: dialect, Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "loans"}
}

func loanRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRowsWithColumnDefinition(
		mock.NewColumn("id").OfType("INT8", int64(0)),
		mock.NewColumn("term").OfType("TEXT", ""),
		mock.NewColumn("loan_amount").OfType("FLOAT8", float64(0)),
	).
		AddRow(int64(1), "36 months", 8000.0).
		AddRow(int64(2), nil, 12000.5)
}

func TestExtract(t *testing.T) {
	cfg := register(t, "loadermock_extract", func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta(DefaultQuery)).WillReturnRows(loanRows(mock))
		mock.ExpectClose()
	})

	table, err := New(cfg, zaptest.NewLogger(t)).Extract(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"id", "term", "loan_amount"}, table.Names())
	assert.Equal(t, []any{"36 months", nil}, table.Column("term").Values)
	assert.Equal(t, []any{8000.0, 12000.5}, table.Column("loan_amount").Values)
}

func TestExtract_QueryFails(t *testing.T) {
	queryErr := errors.New("permission denied for table loan_payments")
	cfg := register(t, "loadermock_fail", func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta(DefaultQuery)).WillReturnError(queryErr)
		mock.ExpectClose()
	})

	_, err := New(cfg, nil).Extract(context.Background())

	var qErr *database.QueryError
	require.True(t, errors.As(err, &qErr))
	assert.ErrorIs(t, err, queryErr)
}

func TestExtract_UnknownDialect(t *testing.T) {
	_, err := New(config.DatabaseConfig{Dialect: "oracle"}, nil).Extract(context.Background())

	var connErr *database.ConnectionError
	assert.True(t, errors.As(err, &connErr))
}

func TestSave(t *testing.T) {
	cfg := register(t, "loadermock_save", func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(regexp.QuoteMeta(DefaultQuery)).WillReturnRows(loanRows(mock))
		mock.ExpectClose()
	})
	path := filepath.Join(t.TempDir(), "loan_data.csv")

	written, err := New(cfg, zaptest.NewLogger(t)).Save(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ",id,term,loan_amount\n0,1,36 months,8000\n1,2,,12000.5\n", string(content))
}
