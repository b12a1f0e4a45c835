package source

import (
	"context"
	"fmt"

	"github.com/ruslano69/rdshelp/pkg/core/frame"
	"github.com/ruslano69/rdshelp/pkg/csvfile"
	"github.com/ruslano69/rdshelp/pkg/xlsx"
)

// LoadFrame читает Frame из размещения
func LoadFrame(ctx context.Context, location string, opts Options) (*frame.Frame, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	r, err := Open(ctx, loc, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var f *frame.Frame
	switch loc.Format {
	case FormatXLSX:
		f, err = xlsx.Read(r, opts.Sheet)
	case FormatTSV:
		f, err = csvfile.Read(r, csvfile.Options{Comma: '\t'})
	default:
		f, err = csvfile.Read(r, csvfile.Options{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", loc, err)
	}

	opts.log().Info().
		Str("location", loc.Raw).
		Int("rows", f.NumRows()).
		Int("columns", f.NumColumns()).
		Msg("frame loaded")

	return f, nil
}

// SaveFrame записывает Frame в размещение
func SaveFrame(ctx context.Context, location string, f *frame.Frame, opts Options) (err error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}

	w, err := Create(ctx, loc, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			// недописанный объект не должен зафиксироваться
			abort(w, err)
			return
		}
		if cerr := w.Close(); cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", loc, cerr)
		}
	}()

	switch loc.Format {
	case FormatXLSX:
		err = xlsx.Write(w, f, opts.Sheet)
	case FormatTSV:
		err = csvfile.Write(w, f, csvfile.Options{Comma: '\t'})
	default:
		err = csvfile.Write(w, f, csvfile.Options{})
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", loc, err)
	}

	opts.log().Info().
		Str("location", loc.Raw).
		Int("rows", f.NumRows()).
		Msg("frame saved")

	return nil
}
