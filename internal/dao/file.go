package dao

import (
	"context"
	"fmt"
	"os"
)

func init() {
	RegisterAccessor(SchemeFile, &FileSource{})
}

// FileSource reads records from a local JSON, YAML or CSV file.
type FileSource struct {
	Source
}

// List returns the records held in the file.
func (f *FileSource) List(ctx context.Context) ([]Record, error) {
	return f.cached(ctx, f.read)
}

func (f *FileSource) read(ctx context.Context) ([]Record, error) {
	sid := f.SourceID()
	format, err := FormatFor(sid.Ext())
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(sid.Location)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sid.Location, err)
	}
	rr, err := Decode(format, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sid.Location, err)
	}
	f.logger().Debug("Loaded file", "path", sid.Location, "records", len(rr))

	return rr, nil
}
