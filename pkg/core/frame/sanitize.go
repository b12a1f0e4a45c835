package frame

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeName удаляет все символы кроме [a-zA-Z0-9] и приводит к нижнему регистру.
//
//	"Player Score!" → "playerscore"
//	"__ID__"        → "id"
//
// Результат может оказаться пустым ("!!!") или совпасть с другим именем
// ("ID" и "id"). Такие случаи здесь не исправляются: их отклоняет
// schema.ValidateDeclarations при создании таблицы.
func SanitizeName(name string) string {
	return strings.ToLower(nonAlnum.ReplaceAllString(name, ""))
}

// CleanColumnNames применяет SanitizeName ко всем колонкам (in place)
// и возвращает тот же Frame для цепочек вызовов
func (f *Frame) CleanColumnNames() *Frame {
	for _, c := range f.Columns {
		c.Name = SanitizeName(c.Name)
	}
	return f
}

// DuplicateNames возвращает имена, встречающиеся больше одного раза,
// в порядке первого повторения
func (f *Frame) DuplicateNames() []string {
	seen := make(map[string]int, len(f.Columns))
	var dups []string
	for _, c := range f.Columns {
		seen[c.Name]++
		if seen[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}
