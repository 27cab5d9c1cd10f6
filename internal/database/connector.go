package database

import (
	"database/sql"
	"database/sql/driver"
)

// releasingConnector runs release when the pool built on it is closed.
type releasingConnector struct {
	driver.Connector
	release func() error
}

// Close is called by (*sql.DB).Close.
func (c *releasingConnector) Close() error {
	return c.release()
}

// OpenDB opens a pool on connector and calls release when the pool is closed. Cloud SQL
// handlers use it so the dialer lives exactly as long as the pool.
func OpenDB(connector driver.Connector, release func() error) *sql.DB {
	return sql.OpenDB(&releasingConnector{Connector: connector, release: release})
}
