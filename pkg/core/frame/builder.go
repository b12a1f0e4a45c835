package frame

import "time"

// Builder помогает строить Frame по колонкам
type Builder struct {
	columns []*Column
}

// NewBuilder создает новый builder
func NewBuilder() *Builder {
	return &Builder{
		columns: []*Column{},
	}
}

// AddInteger добавляет INTEGER колонку
func (b *Builder) AddInteger(name string, values ...int64) *Builder {
	c := NewColumn(name, KindInteger)
	for _, v := range values {
		c.Values = append(c.Values, Int(v))
	}
	b.columns = append(b.columns, c)
	return b
}

// AddFloat добавляет FLOAT колонку
func (b *Builder) AddFloat(name string, values ...float64) *Builder {
	c := NewColumn(name, KindFloat)
	for _, v := range values {
		c.Values = append(c.Values, Float(v))
	}
	b.columns = append(b.columns, c)
	return b
}

// AddBoolean добавляет BOOLEAN колонку
func (b *Builder) AddBoolean(name string, values ...bool) *Builder {
	c := NewColumn(name, KindBoolean)
	for _, v := range values {
		c.Values = append(c.Values, Bool(v))
	}
	b.columns = append(b.columns, c)
	return b
}

// AddTimestamp добавляет TIMESTAMP колонку
func (b *Builder) AddTimestamp(name string, values ...time.Time) *Builder {
	c := NewColumn(name, KindTimestamp)
	for _, v := range values {
		c.Values = append(c.Values, Time(v))
	}
	b.columns = append(b.columns, c)
	return b
}

// AddText добавляет TEXT колонку
func (b *Builder) AddText(name string, values ...string) *Builder {
	c := NewColumn(name, KindText)
	for _, v := range values {
		c.Values = append(c.Values, Text(v))
	}
	b.columns = append(b.columns, c)
	return b
}

// AddColumn добавляет произвольную колонку
func (b *Builder) AddColumn(c *Column) *Builder {
	b.columns = append(b.columns, c)
	return b
}

// Build строит Frame и проверяет его инварианты
func (b *Builder) Build() (*Frame, error) {
	f := New(b.columns...)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// MustBuild строит Frame или паникует.
// Использовать только в тестах и примерах.
func (b *Builder) MustBuild() *Frame {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// Reset очищает builder
func (b *Builder) Reset() *Builder {
	b.columns = []*Column{}
	return b
}

// ColumnCount возвращает количество колонок
func (b *Builder) ColumnCount() int {
	return len(b.columns)
}
