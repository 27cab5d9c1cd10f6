package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		want     DatabaseConfig
		wantErr  bool
		errMatch string
	}{
		{
			name: "Canonical keys",
			file: "credentials.yaml",
			content: `HOST: db.example.com
PORT: 5432
USER: analyst
PASSWORD: s3cret
DATABASE_NAME: payments
`,
			want: DatabaseConfig{Dialect: "postgres", Host: "db.example.com", Port: 5432, User: "analyst", Password: "s3cret", DBName: "payments", SSLMode: "disable"},
		},
		{
			name: "Legacy RDS keys",
			file: "credentials.yaml",
			content: `RDS_HOST: rds.example.com
RDS_PORT: 5433
RDS_USER: loans
RDS_PASSWORD: pw
RDS_DATABASE: loan_db
`,
			want: DatabaseConfig{Dialect: "postgres", Host: "rds.example.com", Port: 5433, User: "loans", Password: "pw", DBName: "loan_db", SSLMode: "disable"},
		},
		{
			name: "Optional dialect and ssl mode",
			file: "credentials.yaml",
			content: `HOST: localhost
PORT: 3306
USER: root
PASSWORD: root
DATABASE_NAME: loans
DIALECT: MySQL
SSL_MODE: require
`,
			want: DatabaseConfig{Dialect: "mysql", Host: "localhost", Port: 3306, User: "root", Password: "root", DBName: "loans", SSLMode: "require"},
		},
		{
			name:    "JSON file",
			file:    "credentials.json",
			content: `{"HOST": "h", "PORT": 1, "USER": "u", "PASSWORD": "p", "DATABASE_NAME": "d"}`,
			want:    DatabaseConfig{Dialect: "postgres", Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "disable"},
		},
		{
			name: "Missing password",
			file: "credentials.yaml",
			content: `HOST: localhost
PORT: 5432
USER: analyst
DATABASE_NAME: payments
`,
			wantErr:  true,
			errMatch: "PASSWORD",
		},
		{
			name: "Port not an integer",
			file: "credentials.yaml",
			content: `HOST: localhost
PORT: fivefourthreetwo
USER: analyst
PASSWORD: pw
DATABASE_NAME: payments
`,
			wantErr:  true,
			errMatch: "PORT",
		},
		{
			name: "Port out of range",
			file: "credentials.yaml",
			content: `HOST: localhost
PORT: 70000
USER: analyst
PASSWORD: pw
DATABASE_NAME: payments
`,
			wantErr:  true,
			errMatch: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := LoadCredentials(path)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigError
				require.True(t, errors.As(err, &cfgErr), "want *ConfigError, got %T", err)
				assert.Contains(t, err.Error(), tt.errMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCredentials_Unreadable(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Msg, "failed to read")
}

func TestDatabaseConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  DatabaseConfig
		wantErr bool
	}{
		{"valid_postgres", DatabaseConfig{Dialect: "postgres", Host: "localhost", Port: 5432, User: "u", DBName: "d"}, false},
		{"empty_host", DatabaseConfig{Dialect: "postgres", Port: 5432, User: "u", DBName: "d"}, true},
		{"invalid_port", DatabaseConfig{Dialect: "postgres", Host: "localhost", Port: 70000, User: "u", DBName: "d"}, true},
		{"empty_user", DatabaseConfig{Dialect: "postgres", Host: "localhost", Port: 5432, DBName: "d"}, true},
		{"empty_database_name", DatabaseConfig{Dialect: "postgres", Host: "localhost", Port: 5432, User: "u"}, true},
		{"cloudsql_needs_instance", DatabaseConfig{Dialect: "cloudsqlpostgres", Port: 5432, User: "u", DBName: "d"}, true},
		{"cloudsql_without_host", DatabaseConfig{Dialect: "cloudsqlpostgres", Port: 5432, User: "u", DBName: "d", CloudSQLInstanceConnectionName: "p:r:i"}, false},
		{"sqlite_file_only", DatabaseConfig{Dialect: "sqlite", DBName: "loans.db"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
