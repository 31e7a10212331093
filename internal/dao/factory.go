// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of fundboard

package dao

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fundboard/fundboard/internal/aws"
)

// DefaultHTTPTimeout bounds backend requests.
const DefaultHTTPTimeout = 15 * time.Second

// SourceFactory implements Factory.
type SourceFactory struct {
	apiURL  string
	session *Session
	client  *http.Client
	conn    aws.Connection
	cache   *ResourceCache
	log     *slog.Logger
	mx      sync.RWMutex
}

// NewFactory returns a factory for the given backend and session.
func NewFactory(apiURL string, session *Session, log *slog.Logger) *SourceFactory {
	if session == nil {
		session = &Session{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &SourceFactory{
		apiURL:  strings.TrimRight(apiURL, "/"),
		session: session,
		client:  &http.Client{Timeout: DefaultHTTPTimeout},
		cache:   NewResourceCache(DefaultCacheTTL),
		log:     log,
	}
}

// Session returns the active session.
func (f *SourceFactory) Session() *Session {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.session
}

// APIURL returns the backend base URL.
func (f *SourceFactory) APIURL() string {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.apiURL
}

// HTTPClient returns the backend HTTP client.
func (f *SourceFactory) HTTPClient() *http.Client {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.client
}

// SetHTTPClient replaces the backend HTTP client.
func (f *SourceFactory) SetHTTPClient(c *http.Client) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.client = c
}

// AWS returns the AWS connection, nil when none was configured.
func (f *SourceFactory) AWS() aws.Connection {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.conn
}

// SetAWS sets the AWS connection.
func (f *SourceFactory) SetAWS(conn aws.Connection) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.conn = conn
}

// Cache returns the records cache.
func (f *SourceFactory) Cache() *ResourceCache {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.cache
}

// SetCache replaces the records cache. A nil cache disables caching.
func (f *SourceFactory) SetCache(c *ResourceCache) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.cache = c
}

// Logger returns the factory logger.
func (f *SourceFactory) Logger() *slog.Logger {
	f.mx.RLock()
	defer f.mx.RUnlock()
	return f.log
}
