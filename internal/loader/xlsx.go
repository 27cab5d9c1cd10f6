package loader

import (
	"github.com/xuri/excelize/v2"

	"github.com/GoogleCloudPlatform/loan-payments-eda/internal/frame"
)

// SheetName is the worksheet the table is written to.
const SheetName = "loan_payments"

func writeXLSX(t *frame.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return &IOError{Path: path, Msg: "failed to name worksheet", Err: err}
	}

	for i, name := range t.Names() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return &IOError{Path: path, Msg: "failed to address header cell", Err: err}
		}
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return &IOError{Path: path, Msg: "failed to write header", Err: err}
		}
	}

	for i, c := range t.Columns() {
		for row, v := range c.Values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return &IOError{Path: path, Msg: "failed to address cell", Err: err}
			}
			if c.Kind == frame.Categorical || c.Kind == frame.Text {
				v = frame.FormatCell(v)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return &IOError{Path: path, Msg: "failed to write cell " + cell, Err: err}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return &IOError{Path: path, Msg: "failed to save workbook", Err: err}
	}
	return nil
}
