// Package base предоставляет общие компоненты для адаптеров БД
//
// Пакет устраняет дублирование кода между адаптерами (SQLite, PostgreSQL, MySQL, MS SQL Server)
// путем вынесения построения SQL, маппинга типов и операций database/sql в переиспользуемые части.
//
// # Основные компоненты
//
// StandardQueryBuilder - построение SQL с квотированием всех идентификаторов:
//   - BuildCreateTable() - CREATE TABLE IF NOT EXISTS
//   - BuildInsert() - один параметризованный INSERT на все строки
//   - BuildSelectAll() / BuildDropTable()
//
// StandardTypeMapper - пять ключевых слов типов с переопределениями для СУБД,
// разбор имен типов из метаданных результата (KindForTypeName).
//
// SQLAdapter - операции Adapter поверх *sql.DB, ограниченного одним соединением:
//   - InsertFrame() - одна транзакция на весь Frame, откат при любой ошибке
//   - FetchTable() / Query() - результат целиком в Frame (ScanFrame)
//   - CreateTable() / DropTable() / TableExists() / GetTableNames()
//
// # Использование
//
// Адаптер встраивает SQLAdapter и передает Dialect при подключении:
//
//	type Adapter struct {
//	    base.SQLAdapter
//	}
//
//	func (a *Adapter) Connect(ctx context.Context, cfg adapters.Config) error {
//	    types := &base.StandardTypeMapper{}
//	    return a.Open(ctx, "sqlite", cfg, base.Dialect{
//	        Name:    "sqlite",
//	        Builder: base.NewStandardQueryBuilder(`"`, `"`, base.PlaceholderQuestion, "", types),
//	        Types:   types,
//	        Catalog: catalog{},
//	    })
//	}
package base
