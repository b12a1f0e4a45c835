package schema

import (
	"github.com/ruslano69/rdshelp/pkg/core/frame"
)

// ColumnDecl пара (имя колонки, тип) для CREATE TABLE
type ColumnDecl struct {
	Name string
	Type SQLType
}

// Declare строит декларации колонок для Frame в порядке колонок.
// Имена берутся как есть; коллизии и пустые имена отклоняются.
func Declare(f *frame.Frame) ([]ColumnDecl, error) {
	if f == nil {
		return nil, ErrNoColumns
	}

	decls := make([]ColumnDecl, 0, f.NumColumns())
	for _, c := range f.Columns {
		decls = append(decls, ColumnDecl{Name: c.Name, Type: MapKind(c.Kind)})
	}

	if err := ValidateDeclarations(decls); err != nil {
		return nil, err
	}
	return decls, nil
}

// Builder помогает строить декларации вручную
type Builder struct {
	decls []ColumnDecl
}

// NewBuilder создает новый builder
func NewBuilder() *Builder {
	return &Builder{
		decls: []ColumnDecl{},
	}
}

// Add добавляет колонку с заданным типом
func (b *Builder) Add(name string, t SQLType) *Builder {
	b.decls = append(b.decls, ColumnDecl{Name: name, Type: t})
	return b
}

// AddKind добавляет колонку, тип выводится из семантического типа
func (b *Builder) AddKind(name string, k frame.Kind) *Builder {
	return b.Add(name, MapKind(k))
}

// Build возвращает декларации после валидации
func (b *Builder) Build() ([]ColumnDecl, error) {
	if err := ValidateDeclarations(b.decls); err != nil {
		return nil, err
	}
	out := make([]ColumnDecl, len(b.decls))
	copy(out, b.decls)
	return out, nil
}

// Names возвращает имена колонок деклараций
func Names(decls []ColumnDecl) []string {
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Name
	}
	return names
}
