package dao

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Session holds the backend credentials of the signed in user.
type Session struct {
	Token    string            `yaml:"token"`
	UserID   string            `yaml:"userId,omitempty"`
	SchoolID string            `yaml:"schoolId,omitempty"`
	YearID   string            `yaml:"yearId,omitempty"`
	Role     string            `yaml:"role,omitempty"`
	Params   map[string]string `yaml:"params,omitempty"`
}

// LoadSession reads a session file. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	var s Session
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}

	return &s, nil
}

// Save writes the session to path, readable by the owner only.
func (s *Session) Save(path string) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Valid returns true when the session carries a token.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}

// Override replaces non empty fields with the given values.
func (s *Session) Override(token, schoolID string) {
	if token != "" {
		s.Token = token
	}
	if schoolID != "" {
		s.SchoolID = schoolID
	}
}

// SetParam sets an endpoint placeholder value, e.g. offer_id.
func (s *Session) SetParam(key, value string) {
	if s.Params == nil {
		s.Params = make(map[string]string)
	}
	s.Params[key] = value
}

// Needs returns true if endpoint holds the {key} placeholder.
func Needs(endpoint, key string) bool {
	return strings.Contains(endpoint, "{"+key+"}")
}

// Expand fills the {key} placeholders of an endpoint from the session ids
// ({school_id}, {user_id}, {year_id}) and its params.
func (s *Session) Expand(endpoint string) (string, error) {
	vars := s.vars()

	var b strings.Builder
	rest := endpoint
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			break
		}
		j := strings.IndexByte(rest[i:], '}')
		if j < 0 {
			break
		}
		key := rest[i+1 : i+j]
		v := vars[key]
		if v == "" {
			return "", fmt.Errorf("%w: endpoint %s needs %s", ErrNoSession, endpoint, key)
		}
		b.WriteString(rest[:i])
		b.WriteString(v)
		rest = rest[i+j+1:]
	}
	b.WriteString(rest)

	return b.String(), nil
}

func (s *Session) vars() map[string]string {
	vv := map[string]string{
		"school_id": s.SchoolID,
		"user_id":   s.UserID,
		"year_id":   s.YearID,
	}
	for k, v := range s.Params {
		if v != "" {
			vv[k] = v
		}
	}

	return vv
}
