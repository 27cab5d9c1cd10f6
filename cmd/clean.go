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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/loader"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/utils"
)

var (
	cleanInFile     string
	cleanConversion coercions
	dropSparse      bool
	sparseThreshold float64
	impute          bool
	outlierColumns  string
	assumeYes       bool
	cleanInfer      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Convert column types, drop sparse columns, impute and filter outliers",
	Long: `Reads a table written by extract and applies, in order: leading-integer extraction (--term),
numeric, datetime and categorical conversion, kind inference for the remaining text columns, sparse column removal, median/mode imputation and
upper outlier filtering. The result is written to --out_file in the format given by its extension.`,
	Example: `./loan_eda clean --in_file loan_data.csv --term term --numeric loan_amount,int_rate --datetime issue_date,last_payment_date --categorical grade,purpose --drop-sparse --impute --outliers annual_inc`,
	RunE:    runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	outputFile := cmd.Flag("out_file").Value.String()
	if outputFile == "" {
		outputFile = utils.GetDefaultOutputFilePath(cleanInFile, "clean")
	}
	if sameFile(cleanInFile, outputFile) && !assumeYes {
		if !utils.ConfirmAction(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("%s will be overwritten with the cleaned table.", outputFile)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Clean cancelled.")
			return nil
		}
	}

	log.Info("Starting clean operation", zap.String("in_file", cleanInFile), zap.String("out_file", outputFile))

	table, err := readTable(cleanInFile)
	if err != nil {
		return err
	}
	if err := cleanConversion.apply(table); err != nil {
		return err
	}
	if cleanInfer {
		inferred := transforms.InferKinds(table)
		log.Debug("Inferred column kinds", zap.Strings("numeric", inferred.Numeric), zap.Strings("timestamp", inferred.Timestamp))
	}

	if dropSparse {
		before := table.Names()
		table = transforms.DropSparseColumns(table, sparseThreshold)
		log.Info("Dropped sparse columns",
			zap.Float64("threshold", sparseThreshold),
			zap.Strings("dropped", missingFrom(before, table.Names())))
	}

	if impute {
		log.Info("Imputed numeric columns with the median", zap.Strings("columns", transforms.ImputeNumericMedian(table)))
		log.Info("Imputed categorical columns with the mode", zap.Strings("columns", transforms.ImputeCategoricalMode(table)))
	}

	for _, col := range utils.ParseColumnsFlag(outlierColumns) {
		rows := table.NumRows()
		table, err = transforms.FilterUpperOutliers(col, table)
		if err != nil {
			return fmt.Errorf("outlier filtering failed: %w", err)
		}
		log.Info("Filtered upper outliers", zap.String("column", col), zap.Int("removed", rows-table.NumRows()))
	}

	if err := loader.Persist(table, outputFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned data written to: %s\n", outputFile)

	log.Info("Clean operation completed", zap.Int("rows", table.NumRows()), zap.Int("columns", table.NumColumns()))
	return nil
}

// missingFrom returns the names in before that are absent from after.
func missingFrom(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, name := range after {
		kept[name] = true
	}
	var missing []string
	for _, name := range before {
		if !kept[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	sa, errA := os.Stat(a)
	sb, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(sa, sb)
}

func init() {
	var outputFile string

	cleanCmd.Flags().StringVarP(&cleanInFile, "in_file", "i", "loan_data.csv", "CSV file written by extract")
	cleanCmd.Flags().StringVarP(&outputFile, "out_file", "o", "", "File to write the cleaned table to (optional, defaults to <in_file>_clean.csv)")
	cleanCmd.Flags().StringVar(&cleanConversion.numeric, "numeric", "", "Comma separated columns to convert to numbers")
	cleanCmd.Flags().StringVar(&cleanConversion.datetime, "datetime", "", "Comma separated columns to convert to timestamps")
	cleanCmd.Flags().StringVar(&cleanConversion.categorical, "categorical", "", "Comma separated columns to convert to categories")
	cleanCmd.Flags().StringVar(&cleanConversion.term, "term", "", "Comma separated columns of the form \"<N> text\" to reduce to N")
	cleanCmd.Flags().BoolVar(&dropSparse, "drop-sparse", false, "Drop columns whose null fraction exceeds --sparse-threshold")
	cleanCmd.Flags().Float64Var(&sparseThreshold, "sparse-threshold", transforms.DefaultSparseThreshold, "Null fraction above which a column is dropped")
	cleanCmd.Flags().BoolVar(&impute, "impute", false, "Fill numeric nulls with the median and categorical nulls with the mode")
	cleanCmd.Flags().StringVar(&outlierColumns, "outliers", "", "Comma separated numeric columns to filter upper outliers from")
	cleanCmd.Flags().BoolVar(&cleanInfer, "infer", true, "Infer numeric and timestamp columns the conversion flags leave as text")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Overwrite --in_file without asking")
}
