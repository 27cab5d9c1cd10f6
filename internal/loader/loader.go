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
// Package loader pulls the loan_payments table out of the configured database and
// writes it to local files for the cleaning and plotting steps.
package loader

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// DefaultQuery reads the whole source table.
const DefaultQuery = "SELECT * FROM loan_payments"

// DefaultOutputFile is where Save writes when no path is given.
const DefaultOutputFile = "loan_data.csv"

type Loader struct {
	Config config.DatabaseConfig
	Query  string
	Log    *zap.Logger
}

func New(cfg config.DatabaseConfig, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{Config: cfg, Query: DefaultQuery, Log: log}
}

// Extract opens a pool, reads the full result of the loader query into memory and closes the pool.
func (l *Loader) Extract(ctx context.Context) (*frame.Table, error) {
	start := time.Now()
	l.Log.Info("Starting extract operation", zap.String("dialect", l.Config.Dialect), zap.String("database", l.Config.DBName))

	db, err := database.New(ctx, l.Config)
	if err != nil {
		l.Log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}
	defer db.Close()

	query := l.Query
	if query == "" {
		query = DefaultQuery
	}
	table, err := db.RunQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	l.Log.Info("Extract operation completed",
		zap.Int("rows", table.NumRows()),
		zap.Int("columns", table.NumColumns()),
		zap.Duration("elapsed", time.Since(start)))
	return table, nil
}

// Save extracts the table and persists it to path, DefaultOutputFile when empty.
func (l *Loader) Save(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = DefaultOutputFile
	}
	table, err := l.Extract(ctx)
	if err != nil {
		return "", err
	}
	if err := Persist(table, path); err != nil {
		return "", err
	}
	l.Log.Info("Saved extracted data", zap.String("path", path))
	return path, nil
}
