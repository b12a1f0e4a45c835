// Package source открывает табличные файлы для чтения и записи Frame.
//
// Поддерживаются локальные пути, "-" (stdin/stdout) и s3://bucket/key.
// Формат определяется по расширению (.csv, .tsv, .xlsx), поверх него
// допускается сжатие .gz или .zst:
//
//	scores.csv
//	s3://games/2024/scores.xlsx
//	/var/export/scores.csv.zst
package source

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Форматы файлов
const (
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatXLSX = "xlsx"
)

// Сжатие
const (
	CompressionNone = ""
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// Схемы размещения
const (
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeStdio = "stdio"
)

// ErrUnknownFormat расширение файла не распознано
var ErrUnknownFormat = errors.New("unknown file format")

// Location разобранное размещение файла
type Location struct {
	Raw         string
	Scheme      string
	Path        string // локальный путь
	Bucket      string // S3
	Key         string // S3
	Format      string
	Compression string
}

// ParseLocation разбирает путь, "-" или s3://bucket/key
func ParseLocation(raw string) (Location, error) {
	loc := Location{Raw: raw}

	switch {
	case raw == "-":
		loc.Scheme = SchemeStdio
		loc.Format = FormatCSV
		return loc, nil

	case strings.HasPrefix(raw, "s3://"):
		rest := strings.TrimPrefix(raw, "s3://")
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", raw)
		}
		loc.Scheme = SchemeS3
		loc.Bucket = bucket
		loc.Key = key

	case raw == "":
		return Location{}, errors.New("empty location")

	default:
		loc.Scheme = SchemeFile
		loc.Path = raw
	}

	name := strings.ToLower(path.Base(strings.ReplaceAll(raw, "\\", "/")))
	switch ext := path.Ext(name); ext {
	case ".gz":
		loc.Compression = CompressionGzip
		name = strings.TrimSuffix(name, ext)
	case ".zst", ".zstd":
		loc.Compression = CompressionZstd
		name = strings.TrimSuffix(name, ext)
	}

	switch path.Ext(name) {
	case ".csv", ".txt":
		loc.Format = FormatCSV
	case ".tsv":
		loc.Format = FormatTSV
	case ".xlsx", ".xlsm":
		loc.Format = FormatXLSX
	default:
		return Location{}, fmt.Errorf("%w: %s", ErrUnknownFormat, raw)
	}

	if loc.Format == FormatXLSX && loc.Compression != CompressionNone {
		// XLSX уже zip-архив
		return Location{}, fmt.Errorf("%w: compressed xlsx %s", ErrUnknownFormat, raw)
	}

	return loc, nil
}

func (l Location) String() string {
	return l.Raw
}
