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
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/database"
	_ "github.com/GoogleCloudPlatform/loan-payments-eda/internal/database/mysql"
	_ "github.com/GoogleCloudPlatform/loan-payments-eda/internal/database/postgres"
	_ "github.com/GoogleCloudPlatform/loan-payments-eda/internal/database/sqlite"
	_ "github.com/GoogleCloudPlatform/loan-payments-eda/internal/database/sqlserver"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/logger"
)

var (
	credentialsPath string
	logLevel        string
	logFormat       string

	// Plot flags shared by nulls and plot
	palette string
	plotDir string
	bins    int

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "loan_eda",
	Short: "Exploratory analysis of the loan payments table",
	Long: `loan_eda extracts the loan_payments table from a relational database,
cleans it (type coercion, sparse column removal, imputation, outlier filtering)
and renders distribution, outlier and null-percentage charts.`,
	PersistentPreRunE: initFlagsAndConfig,
	SilenceUsage:      true,
}

// initFlagsAndConfig builds the process configuration and logger from the root flags.
func initFlagsAndConfig(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	if cmd != nil {
		cfg.CredentialsPath = credentialsPath
		cfg.LogLevel = logLevel
		cfg.LogFormat = logFormat
		cfg.Plot.Palette = palette
		cfg.Plot.OutputDir = plotDir
		cfg.Plot.Bins = bins
	}

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	log = l
	zap.ReplaceGlobals(l)

	config.SetConfig(cfg)
	return nil
}

// loadDatabaseConfig reads the credentials file named by --credentials and checks the dialect is registered.
func loadDatabaseConfig() (config.DatabaseConfig, error) {
	cfg := config.GetConfig()
	dbCfg, err := config.LoadCredentials(cfg.CredentialsPath)
	if err != nil {
		return config.DatabaseConfig{}, err
	}
	if err := validateDialect(dbCfg.Dialect); err != nil {
		return config.DatabaseConfig{}, err
	}
	cfg.Database = dbCfg
	config.SetConfig(cfg)
	return dbCfg, nil
}

func validateDialect(dialect string) error {
	supportedDialects := database.Dialects()
	for _, supportedDialect := range supportedDialects {
		if dialect == supportedDialect {
			return nil
		}
	}
	sort.Strings(supportedDialects)
	return fmt.Errorf("unsupported dialect: %s (only %s are supported)", dialect, strings.Join(supportedDialects, ", "))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { _ = log.Sync() }()
	return rootCmd.Execute()
}

func init() {
	defaults := config.GetConfig()

	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", defaults.CredentialsPath, "Path to the database credentials file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaults.LogFormat, "Log format (json, console)")

	rootCmd.PersistentFlags().StringVar(&palette, "palette", defaults.Plot.Palette, "Chart palette: default, soft, dark or a ColorBrewer name such as Set1")
	rootCmd.PersistentFlags().StringVar(&plotDir, "plot-dir", defaults.Plot.OutputDir, "Directory the PNG charts are written to")
	rootCmd.PersistentFlags().IntVar(&bins, "bins", defaults.Plot.Bins, "Histogram bin count")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(nullsCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(plotCmd)
}
