package mysql

import (
	"testing"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDriverConfig(t *testing.T) {
	handler := mysqlHandler{}
	cfg := config.DatabaseConfig{Host: "localhost", Port: 3306, User: "root", Password: "pw", DBName: "loans"}

	dsn := handler.driverConfig(cfg).FormatDSN()
	assert.Contains(t, dsn, "root:pw@tcp(localhost:3306)/loans")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Equal(t, "mysql://root:pw@localhost:3306/loans", handler.ConnectionString(cfg))
}

func TestMySQLCloudSQLPoolRequiresInstance(t *testing.T) {
	handler := mysqlHandler{}
	_, err := handler.CreateCloudSQLPool(config.DatabaseConfig{User: "u", Password: "p", DBName: "d"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required CloudSQL connection parameter")
}

func TestMySQLRegistered(t *testing.T) {
	for _, dialect := range []string{"mysql", "cloudsqlmysql"} {
		_, err := database.GetDialectHandler(dialect)
		require.NoError(t, err)
	}
}
