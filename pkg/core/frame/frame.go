package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch - значение не соответствует типу колонки
	ErrKindMismatch = errors.New("value kind does not match column kind")

	// ErrRowWidth - количество значений в строке не совпадает с количеством колонок
	ErrRowWidth = errors.New("row width does not match column count")

	// ErrRaggedColumns - колонки разной длины
	ErrRaggedColumns = errors.New("columns have different lengths")
)

// Column - именованная однородная последовательность значений
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// NewColumn создает пустую колонку. Неизвестный тип становится KindText.
func NewColumn(name string, kind Kind) *Column {
	return &Column{Name: name, Kind: kind.Normalize()}
}

// Append добавляет значение, проверяя однородность колонки
func (c *Column) Append(v Value) error {
	if v.Kind != c.Kind {
		return fmt.Errorf("column '%s': %w (column %s, value %s)", c.Name, ErrKindMismatch, c.Kind, v.Kind)
	}
	c.Values = append(c.Values, v)
	return nil
}

// Len возвращает количество значений
func (c *Column) Len() int {
	return len(c.Values)
}

// Frame - табличная структура: упорядоченный набор колонок.
// Порядок колонок значим и сохраняется при записи и чтении.
type Frame struct {
	Columns []*Column
}

// New создает Frame из колонок
func New(columns ...*Column) *Frame {
	return &Frame{Columns: columns}
}

// NewEmpty создает Frame с заданными именами и типами колонок без строк
func NewEmpty(names []string, kinds []Kind) (*Frame, error) {
	if len(names) != len(kinds) {
		return nil, fmt.Errorf("got %d names and %d kinds", len(names), len(kinds))
	}
	f := &Frame{Columns: make([]*Column, len(names))}
	for i, name := range names {
		f.Columns[i] = NewColumn(name, kinds[i])
	}
	return f, nil
}

// NumColumns возвращает количество колонок
func (f *Frame) NumColumns() int {
	return len(f.Columns)
}

// NumRows возвращает количество строк (длина первой колонки)
func (f *Frame) NumRows() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return f.Columns[0].Len()
}

// Names возвращает имена колонок в порядке следования
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Kinds возвращает типы колонок в порядке следования
func (f *Frame) Kinds() []Kind {
	kinds := make([]Kind, len(f.Columns))
	for i, c := range f.Columns {
		kinds[i] = c.Kind
	}
	return kinds
}

// Column возвращает колонку по имени (первую найденную) или nil
func (f *Frame) Column(name string) *Column {
	for _, c := range f.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AppendRow добавляет строку. При ошибке Frame не изменяется.
func (f *Frame) AppendRow(values ...Value) error {
	if len(values) != len(f.Columns) {
		return fmt.Errorf("%w: expected %d, got %d", ErrRowWidth, len(f.Columns), len(values))
	}
	for i, v := range values {
		if v.Kind != f.Columns[i].Kind {
			return fmt.Errorf("column '%s': %w (column %s, value %s)",
				f.Columns[i].Name, ErrKindMismatch, f.Columns[i].Kind, v.Kind)
		}
	}
	for i, v := range values {
		f.Columns[i].Values = append(f.Columns[i].Values, v)
	}
	return nil
}

// Row возвращает значения строки i по всем колонкам
func (f *Frame) Row(i int) []Value {
	row := make([]Value, len(f.Columns))
	for j, c := range f.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Tuples конвертирует Frame в позиционные кортежи для вставки.
// Порядок строк - исходный, порядок значений - порядок колонок.
func (f *Frame) Tuples() [][]any {
	rows := f.NumRows()
	tuples := make([][]any, rows)
	for i := 0; i < rows; i++ {
		tuple := make([]any, len(f.Columns))
		for j, c := range f.Columns {
			tuple[j] = c.Values[i].SQL()
		}
		tuples[i] = tuple
	}
	return tuples
}

// Validate проверяет структурные инварианты: одинаковая длина колонок
// и однородность значений в каждой колонке
func (f *Frame) Validate() error {
	rows := f.NumRows()
	for _, c := range f.Columns {
		if c.Len() != rows {
			return fmt.Errorf("%w: column '%s' has %d values, expected %d", ErrRaggedColumns, c.Name, c.Len(), rows)
		}
		for i, v := range c.Values {
			if v.Kind != c.Kind {
				return fmt.Errorf("column '%s' row %d: %w (column %s, value %s)",
					c.Name, i, ErrKindMismatch, c.Kind, v.Kind)
			}
		}
	}
	return nil
}
