package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func init() {
	RegisterAccessor(SchemeAPI, &RESTSource{})
	RegisterAccessor(SchemeHTTP, &RESTSource{})
	RegisterAccessor(SchemeHTTPS, &RESTSource{})
}

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is returned for non 2xx backend responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// RESTSource lists records from a backend endpoint.
type RESTSource struct {
	Source
}

// List fetches the endpoint records.
func (r *RESTSource) List(ctx context.Context) ([]Record, error) {
	return r.cached(ctx, r.fetch)
}

// YearsEndpoint lists a school's academic years.
const YearsEndpoint = "/academic/years/{school_id}"

// URL returns the endpoint URL with session placeholders filled. An unset
// {year_id} resolves to the school's active academic year.
func (r *RESTSource) URL(ctx context.Context) (string, error) {
	sid, f := r.SourceID(), r.getFactory()
	session := Session{}
	if s := f.Session(); s != nil {
		session = *s
	}
	if Needs(sid.Location, "year_id") && session.YearID == "" && sid.Scheme == SchemeAPI {
		year, err := r.activeYear(ctx, &session)
		if err != nil {
			return "", err
		}
		session.YearID = year
	}

	loc, err := session.Expand(sid.Location)
	if err != nil {
		return "", err
	}
	if sid.Scheme != SchemeAPI {
		return loc, nil
	}

	return r.apiURL(loc)
}

func (r *RESTSource) apiURL(loc string) (string, error) {
	base := r.getFactory().APIURL()
	if base == "" {
		return "", fmt.Errorf("no API URL configured for %s", r.SourceID())
	}

	return base + loc, nil
}

// activeYear returns the id of the academic year flagged active.
func (r *RESTSource) activeYear(ctx context.Context, s *Session) (string, error) {
	loc, err := s.Expand(YearsEndpoint)
	if err != nil {
		return "", err
	}
	url, err := r.apiURL(loc)
	if err != nil {
		return "", err
	}
	yy, err := r.get(ctx, url)
	if err != nil {
		return "", err
	}
	for _, y := range yy {
		switch strings.ToLower(y.Text("is_active")) {
		case "1", "true":
			if id := y.ID(); id != "" {
				r.logger().Debug("Resolved academic year", "year", id)
				return id, nil
			}
		}
	}

	return "", ErrNoActiveYear
}

func (r *RESTSource) fetch(ctx context.Context) ([]Record, error) {
	url, err := r.URL(ctx)
	if err != nil {
		return nil, err
	}

	return r.get(ctx, url)
}

func (r *RESTSource) get(ctx context.Context, url string) ([]Record, error) {
	f := r.getFactory()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s := f.Session(); s.Valid() {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	log := r.logger().With("url", url)
	resp, err := f.HTTPClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("Backend request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrServerOffline, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
		log.Warn("Backend error", "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	rr, err := decodeJSON(raw)
	if err != nil {
		return nil, err
	}
	log.Debug("Fetched records", "records", len(rr))

	return rr, nil
}

// errorMessage extracts the backend's message or error field.
func errorMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "api error"
	}
	for _, m := range []json.RawMessage{body.Message, body.Error} {
		if msg := rawText(m); msg != "" {
			return msg
		}
	}

	return "api error"
}

func rawText(m json.RawMessage) string {
	if len(m) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var ss []string
	if err := json.Unmarshal(m, &ss); err == nil {
		return strings.Join(ss, ", ")
	}
	return ""
}

// IsSessionExpired returns true if err means the user must log in again.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
