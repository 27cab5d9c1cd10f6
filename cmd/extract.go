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

	"github.com/spf13/cobra"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/loader"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/utils"
)

var extractCmd = &cobra.Command{
	Use:     "extract",
	Short:   "Extract the loan_payments table to a local file",
	Long:    `Connects with the credentials file, reads the whole loan_payments table and writes it to a CSV, Parquet or XLSX file chosen by extension.`,
	Example: `./loan_eda extract --credentials credentials.yaml --out_file loan_data.csv`,
	RunE:    runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	dbCfg, err := loadDatabaseConfig()
	if err != nil {
		return err
	}

	outputFile := cmd.Flag("out_file").Value.String()
	if outputFile == "" {
		outputFile = utils.GetDefaultOutputFilePath("", "extract")
	}

	path, err := loader.New(dbCfg, log).Save(cmd.Context(), outputFile)
	if err != nil {
		return fmt.Errorf("failed to extract data: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted data written to: %s\n", path)
	return nil
}

func init() {
	var outputFile string

	extractCmd.Flags().StringVarP(&outputFile, "out_file", "o", "", "File to write the extracted table to (optional, defaults to loan_data.csv)")
}
