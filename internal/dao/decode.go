package dao

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formats understood by the decoders.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// FormatFor returns the data format for a file extension.
func FormatFor(ext string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode decodes raw bytes in the given format into records.
func Decode(format string, raw []byte) ([]Record, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(raw)
	case FormatYAML:
		return decodeYAML(raw)
	case FormatCSV:
		return decodeCSV(bytes.NewReader(raw))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeJSON(raw []byte) ([]Record, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []Record{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return toRecords(v)
}

func decodeYAML(raw []byte) ([]Record, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if v == nil {
		return []Record{}, nil
	}
	return toRecords(v)
}

// decodeCSV maps each line to a record keyed by the header row.
func decodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	cr.FieldsPerRecord = len(header)

	rr := make([]Record, 0, 16)
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		rec := make(Record, len(header))
		for i, k := range header {
			rec[k] = line[i]
		}
		rr = append(rr, rec)
	}

	return rr, nil
}

// toRecords accepts a list of objects or a {"data": [...]} envelope.
func toRecords(v any) ([]Record, error) {
	if m, ok := v.(map[string]any); ok {
		data, ok := m["data"]
		if !ok {
			return nil, fmt.Errorf("%w: object without data field", ErrUnsupportedFormat)
		}
		v = data
	}

	items, ok := v.([]any)
	if !ok {
		if v == nil {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: expected a list, got %T", ErrUnsupportedFormat, v)
	}

	rr := make([]Record, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T, not an object", ErrUnsupportedFormat, i, it)
		}
		rr = append(rr, Record(m))
	}

	return rr, nil
}
