package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColumns таблица без колонок
	ErrNoColumns = errors.New("table must have at least one column")
	// ErrEmptyColumnName пустое имя колонки (например, после очистки имен)
	ErrEmptyColumnName = errors.New("empty column name")
	// ErrDuplicateColumn два столбца с одинаковым именем
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrInvalidType тип вне закрытого набора
	ErrInvalidType = errors.New("invalid column type")
)

// ValidateDeclarations проверяет набор деклараций перед созданием таблицы.
// Коллизия имен отклоняется здесь, до обращения к БД.
func ValidateDeclarations(decls []ColumnDecl) error {
	if len(decls) == 0 {
		return ErrNoColumns
	}

	seen := make(map[string]int, len(decls))
	for i, d := range decls {
		if d.Name == "" {
			return &ValidationError{Index: i, Message: "name is empty", Err: ErrEmptyColumnName}
		}

		if first, ok := seen[d.Name]; ok {
			return &ValidationError{
				Column:  d.Name,
				Index:   i,
				Message: fmt.Sprintf("same name as column %d", first),
				Err:     ErrDuplicateColumn,
			}
		}
		seen[d.Name] = i

		if !d.Type.IsValid() {
			return &ValidationError{
				Column:  d.Name,
				Index:   i,
				Message: fmt.Sprintf("type '%s' is not supported", d.Type),
				Err:     ErrInvalidType,
			}
		}
	}

	return nil
}
