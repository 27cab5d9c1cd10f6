/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultCredentialsPath is read when no --credentials flag is given.
const DefaultCredentialsPath = "credentials.yaml"

// Credential keys. Each required key also accepts the RDS_ spelling used by older credential files.
const (
	KeyHost         = "HOST"
	KeyPort         = "PORT"
	KeyUser         = "USER"
	KeyPassword     = "PASSWORD"
	KeyDatabaseName = "DATABASE_NAME"

	KeyDialect          = "DIALECT"
	KeySSLMode          = "SSL_MODE"
	KeyCloudSQLInstance = "CLOUDSQL_INSTANCE_CONNECTION_NAME"
	KeyCloudSQLPrivate  = "CLOUDSQL_USE_PRIVATE_IP"
)

var legacyKeys = map[string]string{
	KeyHost:         "RDS_HOST",
	KeyPort:         "RDS_PORT",
	KeyUser:         "RDS_USER",
	KeyPassword:     "RDS_PASSWORD",
	KeyDatabaseName: "RDS_DATABASE",
}

// LoadCredentials reads the flat key-value credentials file at path.
// The file format follows its extension (yaml when there is none).
func LoadCredentials(path string) (DatabaseConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return DatabaseConfig{}, &ConfigError{Path: path, Msg: "failed to read credentials file", Err: err}
	}

	lookup := func(key string) (string, bool) {
		if v.IsSet(key) {
			return strings.TrimSpace(v.GetString(key)), true
		}
		if legacy, ok := legacyKeys[key]; ok && v.IsSet(legacy) {
			return strings.TrimSpace(v.GetString(legacy)), true
		}
		return "", false
	}

	var missing []string
	required := func(key string) string {
		val, ok := lookup(key)
		if !ok || val == "" {
			missing = append(missing, key)
		}
		return val
	}

	cfg := DatabaseConfig{
		Dialect: "postgres",
		SSLMode: "disable",
	}
	cfg.Host = required(KeyHost)
	portStr := required(KeyPort)
	cfg.User = required(KeyUser)
	cfg.Password = required(KeyPassword)
	cfg.DBName = required(KeyDatabaseName)
	if len(missing) > 0 {
		return DatabaseConfig{}, &ConfigError{Path: path, Msg: "missing required keys: " + strings.Join(missing, ", ")}
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return DatabaseConfig{}, &ConfigError{Path: path, Msg: "PORT is not an integer", Err: err}
	}
	cfg.Port = port

	if d, ok := lookup(KeyDialect); ok && d != "" {
		cfg.Dialect = strings.ToLower(d)
	}
	if s, ok := lookup(KeySSLMode); ok && s != "" {
		cfg.SSLMode = s
	}
	if inst, ok := lookup(KeyCloudSQLInstance); ok {
		cfg.CloudSQLInstanceConnectionName = inst
	}
	if v.IsSet(KeyCloudSQLPrivate) {
		cfg.UsePrivateIP = v.GetBool(KeyCloudSQLPrivate)
	}

	if err := cfg.Validate(); err != nil {
		return DatabaseConfig{}, &ConfigError{Path: path, Msg: "invalid credentials", Err: err}
	}
	return cfg, nil
}
