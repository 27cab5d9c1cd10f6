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
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/config"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/plotter"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
)

var (
	nullsInFile string
	nullsPlot   bool
)

var nullsCmd = &cobra.Command{
	Use:     "nulls",
	Short:   "Report null counts and percentages per column",
	Long:    `Reads a table written by extract and prints, for every column, the number and percentage of null cells. With --plot the columns holding nulls are also charted.`,
	Example: `./loan_eda nulls --in_file loan_data.csv --plot`,
	RunE:    runNulls,
}

func runNulls(cmd *cobra.Command, args []string) error {
	table, err := readTable(nullsInFile)
	if err != nil {
		return err
	}

	summary := transforms.Nulls(table)
	if err := writeNullSummary(cmd.OutOrStdout(), summary); err != nil {
		return err
	}

	if nullsPlot {
		p, err := plotter.New(config.GetConfig().Plot, log)
		if err != nil {
			return err
		}
		path, err := p.PlotNullPercentage(summary)
		if err != nil {
			return fmt.Errorf("failed to plot null percentages: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Chart written to: %s\n", path)
	}
	return nil
}

func writeNullSummary(out io.Writer, summary transforms.NullSummary) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "column\tnulls\tpercent\n")
	for _, c := range summary.Columns {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", c.Column, c.Count, c.Percentage)
	}
	fmt.Fprintf(w, "rows\t%d\t\n", summary.Rows)
	return w.Flush()
}

func init() {
	nullsCmd.Flags().StringVarP(&nullsInFile, "in_file", "i", "loan_data.csv", "CSV file written by extract")
	nullsCmd.Flags().BoolVar(&nullsPlot, "plot", false, "Also write the null percentage chart")
}
