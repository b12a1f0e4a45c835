package base

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/adapters"
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// ScanFrame читает все строки результата в Frame.
// Имена и порядок колонок берутся из результата; типы - из метаданных колонок.
// Если СУБД не сообщает тип (выражения в SQLite), тип выводится
// по первому не-NULL значению колонки.
// При ошибке возвращается nil: частичный результат не отдается.
func ScanFrame(rows *sql.Rows, types adapters.TypeMapper) (*frame.Frame, error) {
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to get column types: %w", err)
	}

	n := len(columnTypes)
	names := make([]string, n)
	kinds := make([]frame.Kind, n)
	known := make([]bool, n)
	for i, ct := range columnTypes {
		names[i] = ct.Name()
		if dbType := ct.DatabaseTypeName(); dbType != "" {
			kinds[i] = types.KindForDatabaseType(dbType)
			known[i] = true
		}
	}

	var raw [][]any
	for rows.Next() {
		values := make([]any, n)
		ptrs := make([]any, n)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(raw), err)
		}
		raw = append(raw, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	for j := range kinds {
		if known[j] {
			continue
		}
		kinds[j] = frame.KindText
		for _, row := range raw {
			if row[j] != nil {
				kinds[j] = frame.KindOf(row[j])
				break
			}
		}
	}

	return BuildFrame(names, kinds, raw, scanFunc(types))
}

// BuildFrame собирает Frame из значений драйвера, уже прочитанных построчно
func BuildFrame(names []string, kinds []frame.Kind, raw [][]any, scan func(any, frame.Kind) (frame.Value, error)) (*frame.Frame, error) {
	f, err := frame.NewEmpty(names, kinds)
	if err != nil {
		return nil, err
	}
	if scan == nil {
		scan = frame.FromAny
	}

	for i, row := range raw {
		for j, v := range row {
			val, err := scan(v, f.Columns[j].Kind)
			if err != nil {
				var ce *frame.ConversionError
				if errors.As(err, &ce) {
					ce.Column = names[j]
				}
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			if err := f.Columns[j].Append(val); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", i, names[j], err)
			}
		}
	}

	return f, nil
}

func scanFunc(types adapters.TypeMapper) func(any, frame.Kind) (frame.Value, error) {
	if s, ok := types.(ValueScanner); ok {
		return s.ScanValue
	}
	return frame.FromAny
}
