package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/core/schema"
)

// DefaultSheet имя листа по умолчанию
const DefaultSheet = "Sheet1"

// columnWidth ширина колонок при записи
const columnWidth = 15

// Write записывает Frame в XLSX.
//
// Заголовки содержат имя и тип колонки ("points (INTEGER)"), поэтому Read
// восстанавливает типы без вывода. Значения пишутся типизированными ячейками,
// NULL - пустой ячейкой. Время записывается в UTC.
//
// Example:
//
//	err := xlsx.Write(w, f, "scores")
func Write(w io.Writer, f *frame.Frame, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	book := excelize.NewFile()
	defer book.Close()

	if sheetName != DefaultSheet {
		if err := book.SetSheetName(DefaultSheet, sheetName); err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}
	}

	styles, err := newStyles(book)
	if err != nil {
		return err
	}

	sw, err := book.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if n := f.NumColumns(); n > 0 {
		if err := sw.SetColWidth(1, n, columnWidth); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// Заголовок
	header := make([]any, f.NumColumns())
	for j, c := range f.Columns {
		header[j] = excelize.Cell{StyleID: styles.header, Value: FormatHeader(c.Name, c.Kind)}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Данные
	for i := 0; i < f.NumRows(); i++ {
		row := make([]any, f.NumColumns())
		for j, c := range f.Columns {
			row[j] = styles.cell(c.Values[i])
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	return book.Write(w)
}

// Read читает лист XLSX в Frame.
//
// Первая строка - заголовок. Для заголовков вида "name (TYPE)" тип берется
// из заголовка, для остальных колонок выводится по значениям.
// Пустой sheetName означает первый лист.
//
// Example:
//
//	f, err := xlsx.Read(r, "scores")
func Read(r io.Reader, sheetName string) (*frame.Frame, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	if sheetName == "" {
		sheetName = book.GetSheetName(0)
	}
	if idx, err := book.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := book.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheetName)
	}

	names := make([]string, len(rows[0]))
	kinds := make([]frame.Kind, len(rows[0]))
	for j, h := range rows[0] {
		names[j], kinds[j] = ParseHeader(h)
	}

	records := rows[1:]
	for _, rec := range records {
		for j := range rec {
			if j < len(kinds) && kinds[j] == frame.KindTimestamp {
				rec[j] = fromExcelTime(rec[j])
			}
		}
	}

	return frame.FromRecords(names, records, kinds)
}

// FormatHeader формирует заголовок "name (TYPE)"
func FormatHeader(name string, kind frame.Kind) string {
	return fmt.Sprintf("%s (%s)", name, schema.MapKind(kind))
}

// ParseHeader разбирает заголовок "name (TYPE)".
// Без типа в скобках возвращается пустой Kind: тип будет выведен по значениям.
func ParseHeader(header string) (string, frame.Kind) {
	header = strings.TrimSpace(header)

	idx := strings.LastIndex(header, " (")
	if idx <= 0 || !strings.HasSuffix(header, ")") {
		return header, ""
	}

	name := strings.TrimSpace(header[:idx])
	typ := strings.TrimSpace(header[idx+2 : len(header)-1])

	if t := schema.SQLType(strings.ToUpper(typ)); t.IsValid() {
		return name, schema.KindFor(t)
	}
	if k := frame.Kind(strings.ToLower(typ)); k.IsValid() {
		return name, k
	}
	// "(note)" в имени колонки, а не тип
	return header, ""
}

// fromExcelTime переводит серийный номер даты Excel в строку времени.
// Текстовые значения возвращаются как есть.
func fromExcelTime(raw string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return raw
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// styles стили ячеек книги
type styles struct {
	header    int
	integer   int
	float     int
	timestamp int
}

func newStyles(book *excelize.File) (*styles, error) {
	var s styles
	var err error

	s.header, err = book.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// встроенные форматы: 1 = "0", 2 = "0.00"
	if s.integer, err = book.NewStyle(&excelize.Style{NumFmt: 1}); err != nil {
		return nil, err
	}
	if s.float, err = book.NewStyle(&excelize.Style{NumFmt: 2}); err != nil {
		return nil, err
	}
	dateFmt := "yyyy-mm-dd hh:mm:ss"
	if s.timestamp, err = book.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return nil, err
	}

	return &s, nil
}

// cell возвращает ячейку для значения; NULL - пустая ячейка
func (s *styles) cell(v frame.Value) any {
	if v.Null {
		return nil
	}

	switch v.Kind {
	case frame.KindInteger:
		return excelize.Cell{StyleID: s.integer, Value: v.Int}
	case frame.KindFloat:
		return excelize.Cell{StyleID: s.float, Value: v.Float}
	case frame.KindBoolean:
		return v.Bool
	case frame.KindTimestamp:
		return excelize.Cell{StyleID: s.timestamp, Value: v.Time.UTC()}
	default:
		return v.Text
	}
}
