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
// Package sqlite registers a file-backed dialect for local loan extracts and fixtures.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
)

type sqliteHandler struct{}

var _ database.DialectHandler = (*sqliteHandler)(nil)

func (h sqliteHandler) CreateCloudSQLPool(cfg config.DatabaseConfig) (*sql.DB, error) {
	return nil, fmt.Errorf("cloud sql is not available for sqlite")
}

func (h sqliteHandler) CreateStandardPool(cfg config.DatabaseConfig) (*sql.DB, error) {
	dbPool, err := sql.Open("sqlite", h.ConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("sql.Open (sqlite): %w", err)
	}
	dbPool.SetMaxOpenConns(1)
	return dbPool, nil
}

// ConnectionString opens DATABASE_NAME as a file path in read-only mode.
func (h sqliteHandler) ConnectionString(cfg config.DatabaseConfig) string {
	return "file:" + cfg.DBName + "?mode=ro"
}

func init() {
	database.RegisterDialectHandler("sqlite", sqliteHandler{})
}
