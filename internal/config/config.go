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

// Config holds all configuration for the application
type Config struct {
	CredentialsPath string
	Database        DatabaseConfig
	Plot            PlotConfig
	LogLevel        string
	LogFormat       string
}

// DatabaseConfig is the credentials record used to build the connection string.
type DatabaseConfig struct {
	Dialect                        string
	Host                           string
	Port                           int
	User                           string
	Password                       string
	DBName                         string
	SSLMode                        string
	CloudSQLInstanceConnectionName string
	UsePrivateIP                   bool
}

// PlotConfig controls chart rendering. Palette replaces any process-wide styling.
type PlotConfig struct {
	OutputDir string
	Palette   string
	Width     float64 // inches per tile
	Height    float64 // inches per tile
	Bins      int
}

// DefaultPlotConfig is a 5x4 inch tile per chart, 30 histogram bins, written under plots/.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		OutputDir: "plots",
		Palette:   "default",
		Width:     5,
		Height:    4,
		Bins:      30,
	}
}

var globalConfig *Config

// GetConfig returns a default configuration. Configuration will be set by flags in root.go
func GetConfig() *Config {
	if globalConfig != nil {
		return globalConfig
	}
	return &Config{
		CredentialsPath: DefaultCredentialsPath,
		Database: DatabaseConfig{
			Dialect: "postgres",
			SSLMode: "disable",
		},
		Plot:      DefaultPlotConfig(),
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}
