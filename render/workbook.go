package render

import (
	"fmt"

	"github.com/cwbudde/algo-synchrotron/sampling"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook written by WriteXLSX.
const (
	SpectrumSheet   = "Spectrum"
	ParametersSheet = "Parameters"
)

// WriteXLSX writes the sampled arrays to a "Spectrum" sheet, one row per
// grid point, and the summary to a "Parameters" sheet.
func WriteXLSX(path string, out sampling.Output, s Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	err := f.SetSheetName("Sheet1", SpectrumSheet)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if len(out.Distribution) != len(out.Grid) || len(out.Raw) != len(out.Grid) || len(out.Normalized) != len(out.Grid) {
		return fmt.Errorf("render: output arrays differ in length: %d, %d, %d, %d",
			len(out.Grid), len(out.Distribution), len(out.Raw), len(out.Normalized))
	}

	err = setRow(f, SpectrumSheet, 1, "w", "N(w)", "Ptot raw", "Ptot normalized")
	if err != nil {
		return err
	}

	for i, w := range out.Grid {
		err = setRow(f, SpectrumSheet, i+2, w, out.Distribution[i], out.Raw[i], out.Normalized[i])
		if err != nil {
			return err
		}
	}

	_, err = f.NewSheet(ParametersSheet)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	err = setRow(f, ParametersSheet, 1, "Parameter", "Value")
	if err != nil {
		return err
	}

	for i, r := range s.rows() {
		err = setRow(f, ParametersSheet, i+2, r.label, r.value)
		if err != nil {
			return err
		}
	}

	err = f.SaveAs(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// setRow writes values into consecutive cells of row, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("render: %s row %d: %w", sheet, row, err)
		}

		err = f.SetCellValue(sheet, cell, v)
		if err != nil {
			return fmt.Errorf("render: %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}
