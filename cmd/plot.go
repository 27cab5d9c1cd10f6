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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/plotter"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/utils"
)

var (
	plotInFile     string
	plotConversion coercions
	plotColumns    string
	plotKind       string
	plotInfer      bool
)

var plotKinds = []string{"distributions", "outliers", "nulls", "all"}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render distribution, outlier and null-percentage charts",
	Long: `Reads a table written by extract or clean and writes PNG charts to --plot-dir.
Column kinds are inferred from the cells unless --infer=false; the conversion flags of clean
can be repeated here to override the inference.`,
	Example: `./loan_eda plot --in_file loan_data_clean.csv --kind all --categorical grade --palette Set2`,
	RunE:    runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	if err := validateKind(plotKind); err != nil {
		return err
	}
	p, err := plotter.New(config.GetConfig().Plot, log)
	if err != nil {
		return err
	}

	log.Info("Starting plot operation", zap.String("in_file", plotInFile), zap.String("kind", plotKind))

	table, err := readTable(plotInFile)
	if err != nil {
		return err
	}
	if err := plotConversion.apply(table); err != nil {
		return err
	}
	if plotInfer {
		inferred := transforms.InferKinds(table)
		log.Debug("Inferred column kinds", zap.Strings("numeric", inferred.Numeric), zap.Strings("timestamp", inferred.Timestamp))
	}

	var written []string
	draw := func(kind string, fn func() (string, error)) error {
		if plotKind != kind && plotKind != "all" {
			return nil
		}
		path, err := fn()
		if errors.Is(err, plotter.ErrNoData) {
			log.Warn("Nothing to plot", zap.String("kind", kind))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to plot %s: %w", kind, err)
		}
		written = append(written, path)
		return nil
	}

	if err := draw("distributions", func() (string, error) {
		return p.PlotDistributions(table, utils.ParseColumnsFlag(plotColumns))
	}); err != nil {
		return err
	}
	if err := draw("outliers", func() (string, error) { return p.PlotOutliers(table) }); err != nil {
		return err
	}
	if err := draw("nulls", func() (string, error) { return p.PlotNullPercentage(transforms.Nulls(table)) }); err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "Chart written to: %s\n", path)
	}
	log.Info("Plot operation completed", zap.Int("charts", len(written)))
	return nil
}

func validateKind(kind string) error {
	for _, k := range plotKinds {
		if kind == k {
			return nil
		}
	}
	return fmt.Errorf("unsupported plot kind: %s (only distributions, outliers, nulls, all are supported)", kind)
}

func init() {
	plotCmd.Flags().StringVarP(&plotInFile, "in_file", "i", "loan_data.csv", "CSV file written by extract or clean")
	plotCmd.Flags().StringVar(&plotColumns, "columns", "", "Comma separated columns for the distributions chart (default all)")
	plotCmd.Flags().StringVar(&plotKind, "kind", "all", "Chart to draw: distributions, outliers, nulls or all")
	plotCmd.Flags().BoolVar(&plotInfer, "infer", true, "Infer numeric and timestamp columns from the cells")
	plotCmd.Flags().StringVar(&plotConversion.numeric, "numeric", "", "Comma separated columns to convert to numbers")
	plotCmd.Flags().StringVar(&plotConversion.datetime, "datetime", "", "Comma separated columns to convert to timestamps")
	plotCmd.Flags().StringVar(&plotConversion.categorical, "categorical", "", "Comma separated columns to convert to categories")
	plotCmd.Flags().StringVar(&plotConversion.term, "term", "", "Comma separated columns of the form \"<N> text\" to reduce to N")
}
