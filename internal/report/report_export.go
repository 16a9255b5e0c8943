package report

import (
	"bytes"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Reports"

var exportHeaders = []string{"Date", "Employee", "Report", "Created at"}

// BuildWorkbook renders rows as a single-sheet xlsx file.
func BuildWorkbook(rows []WithEmployee, loc *time.Location) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), exportSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6F3FF"}},
	})
	if err != nil {
		return nil, err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(exportSheet, "A1", "D1", headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(exportSheet, "A", "A", 12)
	_ = f.SetColWidth(exportSheet, "B", "B", 24)
	_ = f.SetColWidth(exportSheet, "C", "C", 60)
	_ = f.SetColWidth(exportSheet, "D", "D", 20)

	for i, r := range rows {
		row := i + 2
		values := []any{
			r.Date.Format(time.DateOnly),
			r.EmployeeName,
			r.Content,
			r.CreatedAt.In(loc).Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
		cell, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(exportSheet, cell, cell, wrapStyle); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
