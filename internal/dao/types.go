package dao

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/fundboard/fundboard/internal/aws"
)

type Error string

const (
	ErrSessionExpired    = Error("session expired, please log in again")
	ErrServerOffline     = Error("server unreachable")
	ErrUnsupportedFormat = Error("unsupported data format")
	ErrNoSession         = Error("no session")
	ErrNoActiveYear      = Error("no active academic year")
)

func (e Error) Error() string {
	return string(e)
}

// Source schemes.
const (
	SchemeFile  = "file"
	SchemeAPI   = "api"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeS3    = "s3"
)

// SourceID identifies where rows come from.
type SourceID struct {
	Scheme   string // file, api, http, https, s3
	Location string // path, endpoint, URL or bucket/key
}

// NewSourceID parses a source URI. Bare paths are files, "api:/students" is
// an endpoint on the configured backend.
func NewSourceID(uri string) (*SourceID, error) {
	var sid SourceID
	if err := sid.Parse(uri); err != nil {
		return nil, err
	}
	return &sid, nil
}

// Parse parses a source URI into the receiver.
func (s *SourceID) Parse(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return fmt.Errorf("invalid source: empty")
	}

	switch {
	case strings.HasPrefix(uri, "http://"):
		s.Scheme, s.Location = SchemeHTTP, uri
	case strings.HasPrefix(uri, "https://"):
		s.Scheme, s.Location = SchemeHTTPS, uri
	case strings.HasPrefix(uri, "s3://"):
		s.Scheme, s.Location = SchemeS3, strings.TrimPrefix(uri, "s3://")
		if bucket, _, _ := strings.Cut(s.Location, "/"); bucket == "" {
			return fmt.Errorf("invalid S3 source %q (expected s3://bucket/key or s3://bucket/prefix/)", uri)
		}
	case strings.HasPrefix(uri, "api:"):
		s.Scheme, s.Location = SchemeAPI, strings.TrimPrefix(uri, "api:")
		if !strings.HasPrefix(s.Location, "/") {
			s.Location = "/" + s.Location
		}
	case strings.HasPrefix(uri, "file://"):
		s.Scheme, s.Location = SchemeFile, strings.TrimPrefix(uri, "file://")
	case strings.HasPrefix(uri, "file:"):
		s.Scheme, s.Location = SchemeFile, strings.TrimPrefix(uri, "file:")
	default:
		s.Scheme, s.Location = SchemeFile, uri
	}

	return nil
}

// String returns the source URI.
func (s SourceID) String() string {
	switch s.Scheme {
	case SchemeHTTP, SchemeHTTPS:
		return s.Location
	case SchemeS3:
		return "s3://" + s.Location
	default:
		return s.Scheme + ":" + s.Location
	}
}

// IsPrefix returns true for S3 sources naming a bucket or a key prefix rather
// than an object.
func (s SourceID) IsPrefix() bool {
	if s.Scheme != SchemeS3 {
		return false
	}
	_, key, _ := strings.Cut(s.Location, "/")
	return key == "" || strings.HasSuffix(key, "/")
}

// Ext returns the lower cased extension of the source location.
func (s SourceID) Ext() string {
	loc, _, _ := strings.Cut(s.Location, "?")
	return strings.ToLower(filepath.Ext(loc))
}

// Factory provides what row sources need to reach their data.
type Factory interface {
	Session() *Session
	APIURL() string
	HTTPClient() *http.Client
	AWS() aws.Connection
	Cache() *ResourceCache
	Logger() *slog.Logger
}

// Lister lists the records of a source.
type Lister interface {
	List(ctx context.Context) ([]Record, error)
}

// Accessor is a row source.
type Accessor interface {
	Lister
	Init(Factory, *SourceID)
	SourceID() *SourceID
}
