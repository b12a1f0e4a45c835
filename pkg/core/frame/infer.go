package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InferKind выводит тип колонки по сырым строковым значениям.
//
// Правила (первое подходящее):
//   - все непустые значения - целые числа      → KindInteger
//   - все непустые значения - числа            → KindFloat
//   - все непустые значения - true/false       → KindBoolean
//   - все непустые значения - дата/время       → KindTimestamp
//   - иначе (в том числе колонка из пустот)    → KindText
//
// 1/0 остаются целыми: логический тип выводится только из слов true/false.
func InferKind(raw []string) Kind {
	var seen, ints, floats, bools, stamps int

	for _, r := range raw {
		s := strings.TrimSpace(r)
		if s == "" {
			continue
		}
		seen++

		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			ints++
			floats++
			continue
		}
		// NaN и Inf как слова в файле - текст, а не число
		if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			floats++
			continue
		}
		if isBoolWord(s) {
			bools++
			continue
		}
		if _, ok := parseTimestamp(s); ok {
			stamps++
		}
	}

	switch {
	case seen == 0:
		return KindText
	case ints == seen:
		return KindInteger
	case floats == seen:
		return KindFloat
	case bools == seen:
		return KindBoolean
	case stamps == seen:
		return KindTimestamp
	default:
		return KindText
	}
}

func isBoolWord(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

// FromRecords строит Frame из заголовка и строковых записей (CSV, XLSX).
// Типы колонок выводятся через InferKind, если kinds == nil
// или для отдельных колонок с пустым Kind.
// Недостающие ячейки в коротких записях считаются пустыми.
func FromRecords(header []string, records [][]string, kinds []Kind) (*Frame, error) {
	resolved := make([]Kind, len(header))
	copy(resolved, kinds)
	if kinds != nil && len(kinds) != len(header) {
		return nil, fmt.Errorf("%w: %d names, %d kinds", ErrRowWidth, len(header), len(kinds))
	}

	column := make([]string, len(records))
	for j := range header {
		if resolved[j] != "" {
			continue
		}
		for i, rec := range records {
			column[i] = cell(rec, j)
		}
		resolved[j] = InferKind(column)
	}
	kinds = resolved

	f, err := NewEmpty(header, kinds)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if len(rec) > len(header) {
			return nil, fmt.Errorf("record %d: %w: expected %d, got %d", i+1, ErrRowWidth, len(header), len(rec))
		}
		row := make([]Value, len(header))
		for j, c := range f.Columns {
			v, err := ParseValue(cell(rec, j), c.Kind)
			if err != nil {
				if ce, ok := err.(*ConversionError); ok {
					ce.Column = c.Name
				}
				return nil, fmt.Errorf("record %d: %w", i+1, err)
			}
			row[j] = v
		}
		if err := f.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	return f, nil
}

// Records конвертирует Frame обратно в заголовок и строковые записи
func (f *Frame) Records() (header []string, records [][]string) {
	header = f.Names()
	rows := f.NumRows()
	records = make([][]string, rows)
	for i := 0; i < rows; i++ {
		rec := make([]string, len(f.Columns))
		for j, c := range f.Columns {
			rec[j] = c.Values[i].String()
		}
		records[i] = rec
	}
	return header, records
}

func cell(rec []string, j int) string {
	if j < len(rec) {
		return rec[j]
	}
	return ""
}
