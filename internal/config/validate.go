package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the fields every dialect needs to connect.
func (c DatabaseConfig) Validate() error {
	var errs []error
	if strings.HasPrefix(c.Dialect, "cloudsql") {
		if c.CloudSQLInstanceConnectionName == "" {
			errs = append(errs, errors.New("cloud sql instance connection name is required"))
		}
	} else if c.Dialect != "sqlite" && c.Host == "" {
		errs = append(errs, errors.New("host is required"))
	}
	if c.Dialect != "sqlite" {
		if c.Port < 1 || c.Port > 65535 {
			errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
		}
		if c.User == "" {
			errs = append(errs, errors.New("user is required"))
		}
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("database name is required"))
	}
	return errors.Join(errs...)
}
