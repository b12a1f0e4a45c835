// Package csvfile читает и пишет Frame в формате CSV.
//
// Первая строка - заголовок с именами колонок. Типы при чтении выводятся
// по значениям (frame.InferKind), при записи значения форматируются через
// frame.Value.String, поэтому повторное чтение восстанавливает типы.
// Пустая ячейка означает NULL для всех типов кроме TEXT.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// ErrNoHeader файл без строки заголовка
var ErrNoHeader = errors.New("csv has no header row")

// Options параметры CSV
type Options struct {
	// Comma разделитель полей, по умолчанию ','
	Comma rune

	// Kinds явные типы колонок по порядку; пустой Kind выводится
	Kinds []frame.Kind
}

func (o Options) comma() rune {
	if o.Comma == 0 {
		return ','
	}
	return o.Comma
}

// Read читает CSV в Frame
func Read(r io.Reader, opts Options) (*frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.FieldsPerRecord = -1 // короткие записи допустимы, недостающие ячейки пустые

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	// BOM от Excel
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return frame.FromRecords(header, records, opts.Kinds)
}

// Write записывает Frame в CSV
func Write(w io.Writer, f *frame.Frame, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	header, records := f.Records()
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
