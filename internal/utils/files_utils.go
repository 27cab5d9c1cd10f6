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
package utils

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ParseColumnsFlag splits a comma separated column list, dropping blanks.
func ParseColumnsFlag(columnsFlag string) []string {
	var columns []string
	for _, part := range strings.Split(columnsFlag, ",") {
		if part = strings.TrimSpace(part); part != "" {
			columns = append(columns, part)
		}
	}
	return columns
}

// GetDefaultOutputFilePath derives an output path from the input file and the command name,
// e.g. loan_data.csv becomes loan_data_clean.csv for the clean command.
func GetDefaultOutputFilePath(inFile, commandName string) string {
	switch commandName {
	case "extract":
		return "loan_data.csv"
	default:
		ext := filepath.Ext(inFile)
		if ext == "" {
			ext = ".csv"
		}
		return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(inFile, filepath.Ext(inFile)), commandName, ext)
	}
}

// ConfirmAction asks a yes/no question on out and reads the answer from in.
func ConfirmAction(in io.Reader, out io.Writer, actionDescription string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "\n-------------------------------------------------------------\n")
	fmt.Fprintf(out, "%s\n", actionDescription)
	fmt.Fprint(out, "Do you want to continue? (yes/no): ")
	text, _ := reader.ReadString('\n')
	action := strings.TrimSpace(strings.ToLower(text))
	return action == "yes" || action == "y"
}
