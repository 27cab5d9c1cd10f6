package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// DB holds the database connection pool and dialect handler.
type DB struct {
	Pool    *sql.DB
	Handler DialectHandler
	Config  config.DatabaseConfig
}

// DialectHandler builds pools and connection strings for one database dialect.
type DialectHandler interface {
	CreateCloudSQLPool(cfg config.DatabaseConfig) (*sql.DB, error)
	CreateStandardPool(cfg config.DatabaseConfig) (*sql.DB, error)
	// ConnectionString returns the URL form of the connection string. Drivers that take URLs
	// open with it directly; the others build their own DSN from the same fields.
	ConnectionString(cfg config.DatabaseConfig) string
}

var (
	dialectHandlers = make(map[string]DialectHandler)
	mu              sync.RWMutex
)

// RegisterDialectHandler makes a handler available under a dialect name. Handlers register from init.
func RegisterDialectHandler(dialect string, handler DialectHandler) {
	mu.Lock()
	defer mu.Unlock()
	dialectHandlers[dialect] = handler
}

func GetDialectHandler(dialect string) (DialectHandler, error) {
	mu.RLock()
	defer mu.RUnlock()
	handler, ok := dialectHandlers[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}
	return handler, nil
}

// Dialects returns the registered dialect names.
func Dialects() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(dialectHandlers))
	for name := range dialectHandlers {
		names = append(names, name)
	}
	return names
}

// URL builds <scheme>://<user>:<password>@<host>:<port>/<database> with user and password escaped.
func URL(scheme string, cfg config.DatabaseConfig) *url.URL {
	return &url.URL{
		Scheme: scheme,
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + cfg.DBName,
	}
}

// ConnectionString returns the dialect's connection string for cfg.
func ConnectionString(cfg config.DatabaseConfig) (string, error) {
	handler, err := GetDialectHandler(cfg.Dialect)
	if err != nil {
		return "", err
	}
	return handler.ConnectionString(cfg), nil
}

// New opens a pool for cfg and verifies it with a ping. The pool is closed on any failure.
func New(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	handler, err := GetDialectHandler(cfg.Dialect)
	if err != nil {
		return nil, &ConnectionError{Dialect: cfg.Dialect, Msg: "no dialect handler", Err: err}
	}

	var pool *sql.DB
	if strings.HasPrefix(cfg.Dialect, "cloudsql") {
		pool, err = handler.CreateCloudSQLPool(cfg)
	} else {
		pool, err = handler.CreateStandardPool(cfg)
	}
	if err != nil {
		return nil, &ConnectionError{Dialect: cfg.Dialect, Msg: "failed to create database pool", Err: err}
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, &ConnectionError{Dialect: cfg.Dialect, Msg: "ping failed", Err: err}
	}

	return &DB{
		Pool:    pool,
		Handler: handler,
		Config:  cfg,
	}, nil
}

func (db *DB) Close() error {
	if db.Pool != nil {
		return db.Pool.Close()
	}
	return nil
}

// RunQuery executes a literal SQL statement on a single connection and materializes the full
// result set. The connection goes back to the pool on every exit path.
func (db *DB) RunQuery(ctx context.Context, query string) (*frame.Table, error) {
	if db.Pool == nil {
		return nil, &QueryError{Query: query, Msg: "database connection pool is not initialized"}
	}

	conn, err := db.Pool.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Dialect: db.Config.Dialect, Msg: "failed to acquire connection", Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Msg: "query failed", Err: err}
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, &QueryError{Query: query, Msg: "failed to read result metadata", Err: err}
	}

	builders := make([]*columnBuilder, len(columnTypes))
	for i, ct := range columnTypes {
		builders[i] = &columnBuilder{name: ct.Name(), kind: KindForDatabaseType(ct.DatabaseTypeName())}
	}

	dest := make([]any, len(columnTypes))
	ptrs := make([]any, len(columnTypes))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{Query: query, Msg: "error scanning row", Err: err}
		}
		for i, b := range builders {
			b.append(dest[i])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: query, Msg: "error iterating rows", Err: err}
	}

	columns := make([]*frame.Column, len(builders))
	for i, b := range builders {
		columns[i] = b.build()
	}
	table, err := frame.New(columns...)
	if err != nil {
		return nil, &QueryError{Query: query, Msg: "failed to build table", Err: err}
	}
	return table, nil
}

var numericTypes = map[string]bool{
	"INT": true, "INT2": true, "INT4": true, "INT8": true, "INTEGER": true,
	"TINYINT": true, "SMALLINT": true, "MEDIUMINT": true, "BIGINT": true,
	"FLOAT": true, "FLOAT4": true, "FLOAT8": true, "DOUBLE": true, "REAL": true,
	"NUMERIC": true, "DECIMAL": true, "MONEY": true, "SMALLMONEY": true,
}

var timestampTypes = map[string]bool{
	"DATE": true, "TIME": true, "TIMETZ": true, "TIMESTAMP": true, "TIMESTAMPTZ": true,
	"DATETIME": true, "DATETIME2": true, "SMALLDATETIME": true, "DATETIMEOFFSET": true,
}

// KindForDatabaseType maps a driver-reported type name onto a column kind.
func KindForDatabaseType(typeName string) frame.Kind {
	t := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(typeName)), "UNSIGNED ")
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch {
	case numericTypes[t]:
		return frame.Numeric
	case timestampTypes[t]:
		return frame.Timestamp
	default:
		return frame.Text
	}
}
