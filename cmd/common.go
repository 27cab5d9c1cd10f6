package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/loader"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/transforms"
	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/utils"
)

// coercions are the column lists of the type conversion flags.
type coercions struct {
	numeric     string
	datetime    string
	categorical string
	term        string
}

// apply runs the conversions in a fixed order: leading integers, numeric, datetime, categorical.
func (c coercions) apply(t *frame.Table) error {
	steps := []struct {
		name string
		cols []string
		fn   func([]string, *frame.Table) error
	}{
		{"term", utils.ParseColumnsFlag(c.term), transforms.ExtractLeadingInteger},
		{"numeric", utils.ParseColumnsFlag(c.numeric), transforms.CoerceNumeric},
		{"datetime", utils.ParseColumnsFlag(c.datetime), transforms.CoerceDatetime},
		{"categorical", utils.ParseColumnsFlag(c.categorical), transforms.CoerceCategorical},
	}
	for _, step := range steps {
		if len(step.cols) == 0 {
			continue
		}
		if err := step.fn(step.cols, t); err != nil {
			return fmt.Errorf("%s conversion failed: %w", step.name, err)
		}
		log.Debug("Converted columns", zap.String("step", step.name), zap.Strings("columns", step.cols))
	}
	return nil
}

func readTable(inFile string) (*frame.Table, error) {
	table, err := loader.ReadCSV(inFile)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded table", zap.String("path", inFile), zap.Int("rows", table.NumRows()), zap.Int("columns", table.NumColumns()))
	return table, nil
}
