package source

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decompress оборачивает r распаковщиком по типу сжатия.
// Close результата закрывает и распаковщик, и r.
func decompress(r io.ReadCloser, compression string) (io.ReadCloser, error) {
	switch compression {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, r}}, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		zr := dec.IOReadCloser()
		return &readCloser{Reader: zr, closers: []io.Closer{zr, r}}, nil

	default:
		return r, nil
	}
}

// compress оборачивает w упаковщиком по типу сжатия.
// Close результата дописывает хвост потока и закрывает w.
func compress(w io.WriteCloser, compression string) (io.WriteCloser, error) {
	switch compression {
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, w}}, nil

	case CompressionZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, w}}, nil

	default:
		return w, nil
	}
}

// readCloser закрывает цепочку потоков по порядку, возвращая первую ошибку
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *readCloser) Close() error {
	return closeAll(c.closers)
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (c *writeCloser) Close() error {
	return closeAll(c.closers)
}

// CloseWithError закрывает упаковщик и обрывает нижний поток
func (c *writeCloser) CloseWithError(cause error) error {
	var first error
	for _, cl := range c.closers {
		if err := abort(cl, cause); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// aborter поток, запись в который можно оборвать без фиксации данных
type aborter interface {
	CloseWithError(cause error) error
}

// abort закрывает c с причиной, если поток это поддерживает, иначе обычным Close
func abort(c io.Closer, cause error) error {
	if a, ok := c.(aborter); ok {
		return a.CloseWithError(cause)
	}
	return c.Close()
}

func closeAll(closers []io.Closer) error {
	var first error
	for _, c := range closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
