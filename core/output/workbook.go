package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"resource-economy/core/analysis"
	"resource-economy/internal/errors"
)

// WorkbookFile is the artifact name of the spreadsheet export
const WorkbookFile = "economy_summary.xlsx"

// ContentTypeXLSX is the media type of the spreadsheet export
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the workbook
const (
	SheetPrices     = "Prices"
	SheetSeasonal   = "Seasonal"
	SheetVolatility = "Volatility"
	SheetEvents     = "Events"
	SheetTimeline   = "Timeline"
)

// CitySheet names the sheet of one city
func CitySheet(city string) string {
	return "City " + city
}

type workbook struct {
	f       *excelize.File
	header  int
	number  int
	started bool
}

// WriteWorkbook exports the summary as an xlsx workbook with one sheet per
// aggregation and one per city. Empty aggregations get no sheet.
func WriteWorkbook(s *analysis.Summary) ([]byte, error) {
	wb, err := newWorkbook()
	if err != nil {
		return nil, errors.Output(WorkbookFile, err)
	}
	defer wb.f.Close()

	if err := wb.build(s); err != nil {
		return nil, errors.Output(WorkbookFile, err)
	}

	buf, err := wb.f.WriteToBuffer()
	if err != nil {
		return nil, errors.Output(WorkbookFile, err)
	}
	return buf.Bytes(), nil
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}
	numFmt := "0.00"
	number, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}
	return &workbook{f: f, header: header, number: number}, nil
}

func (wb *workbook) build(s *analysis.Summary) error {
	var rows [][]interface{}
	for _, e := range s.Prices {
		rows = append(rows, []interface{}{e.Name, e.Category.Title(), e.BasePrice.InexactFloat64()})
	}
	if err := wb.sheet(SheetPrices, []string{"Resource", "Category", "Base Price"}, rows); err != nil {
		return err
	}

	if !s.Seasonal.Empty() {
		if err := wb.matrix(SheetSeasonal, s.Seasonal); err != nil {
			return err
		}
	}

	rows = nil
	for _, e := range s.Volatility {
		rows = append(rows, []interface{}{
			e.Name,
			e.Min.InexactFloat64(),
			e.Base.InexactFloat64(),
			e.Max.InexactFloat64(),
			e.Range.InexactFloat64(),
		})
	}
	if err := wb.sheet(SheetVolatility, []string{"Resource", "Min", "Base", "Max", "Range"}, rows); err != nil {
		return err
	}

	if !s.Events.Empty() {
		if err := wb.matrix(SheetEvents, s.Events); err != nil {
			return err
		}
	}

	for _, cs := range s.Cities {
		if cs.Empty() {
			continue
		}
		headers, _ := citySeriesTable(cs)
		if err := wb.sheet(CitySheet(cs.City.Name), headers, numericRows(cs)); err != nil {
			return err
		}
	}

	if s.Timeline != nil {
		headers, _ := timelineTable(s.Timeline)
		rows = nil
		for _, line := range s.Timeline.Lines {
			row := []interface{}{line.Biome.Title()}
			for _, p := range line.Prices {
				row = append(row, p.InexactFloat64())
			}
			rows = append(rows, row)
		}
		if err := wb.sheet(SheetTimeline, headers, rows); err != nil {
			return err
		}
	}

	return nil
}

func numericRows(cs *analysis.CitySeries) [][]interface{} {
	rows := make([][]interface{}, 0, len(cs.Series))
	for _, series := range cs.Series {
		row := []interface{}{series.Resource}
		for _, p := range series.Points {
			row = append(row, p.Price.InexactFloat64())
		}
		rows = append(rows, row)
	}
	return rows
}

func (wb *workbook) matrix(name string, m *analysis.Matrix) error {
	headers := append([]string{"Resource"}, titles(m.Columns)...)
	rows := make([][]interface{}, 0, len(m.Rows))
	for r, resource := range m.Rows {
		row := []interface{}{resource}
		for c := range m.Columns {
			row = append(row, m.At(r, c).InexactFloat64())
		}
		rows = append(rows, row)
	}
	return wb.sheet(name, headers, rows)
}

// sheet writes a header row and data rows. The first sheet reuses the
// workbook's default Sheet1.
func (wb *workbook) sheet(name string, headers []string, rows [][]interface{}) error {
	if !wb.started {
		if err := wb.f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
		wb.started = true
	} else if _, err := wb.f.NewSheet(name); err != nil {
		return err
	}

	head := make([]interface{}, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := wb.f.SetSheetRow(name, "A1", &head); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(name, "A1", last+"1", wb.header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	if len(rows) > 0 && len(headers) > 1 {
		bottom := fmt.Sprintf("%s%d", last, len(rows)+1)
		if err := wb.f.SetCellStyle(name, "B2", bottom, wb.number); err != nil {
			return err
		}
	}

	if err := wb.f.SetColWidth(name, "A", "A", 18); err != nil {
		return err
	}
	if len(headers) > 1 {
		if err := wb.f.SetColWidth(name, "B", last, 12); err != nil {
			return err
		}
	}

	return wb.f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
