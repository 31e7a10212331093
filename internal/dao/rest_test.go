package dao

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listAPI(t *testing.T, srv *httptest.Server, uri string, s *Session) ([]Record, error) {
	t.Helper()
	sid, err := NewSourceID(uri)
	require.NoError(t, err)
	acc, err := AccessorFor(testFactory(srv.URL, s), sid)
	require.NoError(t, err)
	require.IsType(t, &RESTSource{}, acc)

	return acc.List(context.Background())
}

func TestRESTSourceList(t *testing.T) {
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, path = r.Header.Get("Authorization"), r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": "s1", "first_name": "Ada"}]}`))
	}))
	defer srv.Close()

	rr, err := listAPI(t, srv, "api:/schools/{school_id}/students", &Session{Token: "tok", SchoolID: "42"})
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, "Ada", rr[0].Text("first_name"))
	assert.Equal(t, "Bearer tok", auth)
	assert.Equal(t, "/schools/42/students", path)
}

func TestRESTSourceDirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
	}))
	defer srv.Close()

	rr, err := listAPI(t, srv, srv.URL+"/payments", nil)
	require.NoError(t, err)
	assert.Len(t, rr, 2)
}

func TestRESTSourceErrors(t *testing.T) {
	uu := map[string]struct {
		status int
		body   string
		msg    string
	}{
		"message": {status: http.StatusForbidden, body: `{"message": "not your school"}`, msg: "not your school"},
		"error":   {status: http.StatusBadRequest, body: `{"error": "bad filter"}`, msg: "bad filter"},
		"list":    {status: http.StatusBadRequest, body: `{"message": ["a", "b"]}`, msg: "a, b"},
		"plain":   {status: http.StatusInternalServerError, body: `oops`, msg: "api error"},
		"empty":   {status: http.StatusNotFound, body: `{}`, msg: "api error"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(u.status)
				_, _ = w.Write([]byte(u.body))
			}))
			defer srv.Close()

			_, err := listAPI(t, srv, "api:/fees", &Session{Token: "tok"})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, u.status, apiErr.Status)
			assert.Equal(t, u.msg, apiErr.Message)
		})
	}
}

func TestRESTSourceUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := listAPI(t, srv, "api:/fees", &Session{Token: "stale"})
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, IsSessionExpired(err))
}

func TestRESTSourceOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	sid, err := NewSourceID("api:/fees")
	require.NoError(t, err)
	acc, err := AccessorFor(testFactory(url, nil), sid)
	require.NoError(t, err)

	_, err = acc.List(context.Background())
	assert.ErrorIs(t, err, ErrServerOffline)
}

func TestRESTSourceMissingSchool(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	_, err := listAPI(t, srv, "api:/schools/{school_id}/fees", &Session{Token: "tok"})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRESTSourceActiveYear(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/academic/years/42":
			_, _ = w.Write([]byte(`{"data": [{"id": 1, "is_active": 0}, {"id": 3, "is_active": 1}]}`))
		case "/academic/classes/3", "/academic/classes/9":
			_, _ = w.Write([]byte(`{"data": [{"id": "c1", "name": "6A"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	rr, err := listAPI(t, srv, "api:/academic/classes/{year_id}", &Session{SchoolID: "42"})
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, []string{"/academic/years/42", "/academic/classes/3"}, paths)

	paths = nil
	_, err = listAPI(t, srv, "api:/academic/classes/{year_id}", &Session{SchoolID: "42", YearID: "9"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/academic/classes/9"}, paths)
}

func TestRESTSourceNoActiveYear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "is_active": false}]`))
	}))
	defer srv.Close()

	_, err := listAPI(t, srv, "api:/academic/classes/{year_id}", &Session{SchoolID: "42"})
	assert.ErrorIs(t, err, ErrNoActiveYear)

	_, err = listAPI(t, srv, "api:/academic/classes/{year_id}", &Session{})
	assert.ErrorIs(t, err, ErrNoSession)
}
