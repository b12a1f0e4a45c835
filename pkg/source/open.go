package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options параметры открытия
type Options struct {
	// Sheet лист XLSX; пустая строка - первый лист при чтении, Sheet1 при записи
	Sheet string

	// S3 доступ к s3:// размещениям
	S3 S3Config

	// Logger по умолчанию глобальный log.Logger
	Logger *zerolog.Logger
}

func (o Options) log() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return &log.Logger
}

// Open открывает размещение для чтения с распаковкой по расширению
func Open(ctx context.Context, loc Location, opts Options) (io.ReadCloser, error) {
	var r io.ReadCloser

	switch loc.Scheme {
	case SchemeStdio:
		r = io.NopCloser(os.Stdin)
	case SchemeS3:
		var err error
		if r, err = openS3(ctx, loc, opts.S3); err != nil {
			return nil, err
		}
	default:
		f, err := os.Open(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", loc, err)
		}
		r = f
	}

	opts.log().Debug().
		Str("location", loc.Raw).
		Str("format", loc.Format).
		Str("compression", loc.Compression).
		Msg("source opened")

	return decompress(r, loc.Compression)
}

// Create открывает размещение для записи со сжатием по расширению.
// Данные фиксируются только в Close.
func Create(ctx context.Context, loc Location, opts Options) (io.WriteCloser, error) {
	var w io.WriteCloser

	switch loc.Scheme {
	case SchemeStdio:
		w = nopWriteCloser{os.Stdout}
	case SchemeS3:
		var err error
		if w, err = createS3(ctx, loc, opts.S3); err != nil {
			return nil, err
		}
	default:
		f, err := os.Create(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", loc, err)
		}
		w = f
	}

	return compress(w, loc.Compression)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
