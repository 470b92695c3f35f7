// Public domain.

package mpc_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/soniakeys/mpcquery/mpc"
)

const erisResponse = `[
 {"properties": {"name": "Eris", "number": 136199, "inclination": 44.04,
   "semimajor_axis": 67.78, "eccentricity": 0.44, "designation": "2003 UB313"}},
 {"properties": {"name": "Eris II"}}
]`

const tnoResponse = `[
 {"semimajor_axis": 39.4, "inclination": 17.1, "eccentricity": 0.25},
 {"semimajor_axis": 43.1, "inclination": 28.2, "eccentricity": 0.19}
]`

// serviceStub stands in for the MPC web service.  It records the last
// request form and answers every request with status and body.
type serviceStub struct {
	status int
	body   string

	form       map[string][]string
	method     string
	user, pass string
	authOK     bool
	ctype      string
}

func (s *serviceStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.method = r.Method
	s.ctype = r.Header.Get("Content-Type")
	s.user, s.pass, s.authOK = r.BasicAuth()
	if err := r.ParseForm(); err == nil {
		s.form = r.PostForm
	}
	w.WriteHeader(s.status)
	io.WriteString(w, s.body)
}

func newTestClient(t *testing.T, stub *serviceStub) (*mpc.Client, *observer.ObservedLogs) {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	core, logs := observer.New(zap.DebugLevel)
	cfg := mpc.DefaultConfig()
	cfg.URL = srv.URL
	return mpc.New(cfg, mpc.WithLogger(zap.New(core))), logs
}

func TestQueryObject(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: erisResponse}
	c, _ := newTestClient(t, stub)

	rec, err := c.QueryObject(context.Background(), "Eris", false)
	require.NoError(t, err)
	assert.Equal(t, mpc.Record{
		"name":           "Eris",
		"number":         136199.0,
		"inclination":    44.04,
		"semimajor_axis": 67.78,
		"eccentricity":   0.44,
		"designation":    "2003 UB313",
	}, rec)

	assert.Equal(t, http.MethodPost, stub.method)
	assert.Equal(t, "application/x-www-form-urlencoded", stub.ctype)
	assert.True(t, stub.authOK)
	assert.Equal(t, mpc.DefaultUsername, stub.user)
	assert.Equal(t, mpc.DefaultPassword, stub.pass)
	assert.Equal(t, map[string][]string{"json": {"1"}, "name": {"Eris"}}, stub.form)
}

func TestLogin(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: erisResponse}
	c, _ := newTestClient(t, stub)
	c.Login("someone", "secret")

	_, err := c.QueryObject(context.Background(), "Eris", false)
	require.NoError(t, err)
	assert.Equal(t, "someone", stub.user)
	assert.Equal(t, "secret", stub.pass)
}

func TestQueryObjectNoResults(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: `[]`}
	c, logs := newTestClient(t, stub)

	rec, err := c.QueryObject(context.Background(), "Nobody", false)
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, 1, logs.FilterMessage("no results").Len())
}

func TestNoResultsWithoutLogger(t *testing.T) {
	srv := httptest.NewServer(&serviceStub{status: http.StatusOK, body: `[]`})
	defer srv.Close()
	c := mpc.New(mpc.Config{URL: srv.URL})

	rec, err := c.QueryObject(context.Background(), "Nobody", false)
	require.NoError(t, err)
	assert.Nil(t, rec)
	recs, err := c.QueryParameters(context.Background(), "semimajor_axis_min 1000", "", false)
	require.NoError(t, err)
	assert.Nil(t, recs)
}

func TestQueryObjectParseErrors(t *testing.T) {
	for _, body := range []string{
		`<html>not json</html>`,
		`{"properties": {}}`,
		`[{"name": "Eris"}]`,
		`[{"properties": 5}]`,
		`[{"properties": null}]`,
		`[7]`,
	} {
		stub := &serviceStub{status: http.StatusOK, body: body}
		c, _ := newTestClient(t, stub)
		_, err := c.QueryObject(context.Background(), "Eris", false)
		var pe *mpc.ParseError
		assert.True(t, errors.As(err, &pe), "%s: %v", body, err)
	}
}

func TestQueryObjectInvalidIdentifier(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: erisResponse}
	c, _ := newTestClient(t, stub)
	_, err := c.QueryObject(context.Background(), "", false)
	requireValidation(t, err)
	assert.Empty(t, stub.method, "no request expected")
}

func TestQueryObjectRaw(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: erisResponse}
	c, _ := newTestClient(t, stub)
	r, err := c.QueryObjectRaw(context.Background(), "Eris")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, erisResponse, string(r.Body))
}

func TestObjectPayload(t *testing.T) {
	c := mpc.New(mpc.Config{})
	p, err := c.ObjectPayload("Eris")
	require.NoError(t, err)
	assert.Equal(t, mpc.Payload{"json": "1", "name": "Eris"}, p)
}

func TestQueryParameters(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: tnoResponse}
	c, logs := newTestClient(t, stub)

	recs, err := c.QueryParameters(context.Background(), "semimajor_axis_min 15",
		"semimajor_axis, inclination, eccentricity", false)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 39.4, recs[0]["semimajor_axis"])
	assert.Equal(t, map[string][]string{
		"json":               {"1"},
		"semimajor_axis_min": {"15"},
		"return":             {"semimajor_axis,inclination,eccentricity"},
	}, stub.form)
	assert.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestQueryParametersVerbose(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: `[
	 {"semimajor_axis": 39.4, "mystery": 1},
	 {"semimajor_axis": 43.1, "inclination": 28.2}
	]`}
	c, logs := newTestClient(t, stub)

	// quiet: no schema warnings
	_, err := c.QueryParameters(context.Background(), "semimajor_axis_min 15",
		"semimajor_axis, inclination", false)
	require.NoError(t, err)
	assert.Zero(t, logs.FilterLevelExact(zap.WarnLevel).Len())

	_, err = c.QueryParameters(context.Background(), "semimajor_axis_min 15",
		"semimajor_axis, inclination", true)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("field not in catalog schema").Len())
	missing := logs.FilterMessage("requested field missing from records").All()
	require.Len(t, missing, 1)
	assert.Equal(t, "inclination", missing[0].ContextMap()["field"])
}

func TestQueryParametersNoResults(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: ` [ ] `}
	c, logs := newTestClient(t, stub)
	recs, err := c.QueryParameters(context.Background(), "semimajor_axis_min 1000", "", false)
	require.NoError(t, err)
	assert.Nil(t, recs)
	assert.Equal(t, 1, logs.FilterMessage("no results").Len())
}

func TestQueryParametersErrors(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: `[null]`}
	c, _ := newTestClient(t, stub)

	_, err := c.QueryParameters(context.Background(), "", "inclination", false)
	requireValidation(t, err)
	_, err = c.QueryParameters(context.Background(), "bogus_field 5", "", false)
	requireValidation(t, err)
	assert.Empty(t, stub.method, "no request expected")

	_, err = c.QueryParameters(context.Background(), "semimajor_axis_min 15", "", false)
	var pe *mpc.ParseError
	assert.True(t, errors.As(err, &pe), "%v", err)
}

func TestParametersPayload(t *testing.T) {
	c := mpc.New(mpc.Config{})
	p, err := c.ParametersPayload("semimajor_axis_min 15", "")
	require.NoError(t, err)
	assert.Equal(t, mpc.Payload{"json": "1", "semimajor_axis_min": "15"}, p)
}

func TestQueryParametersRaw(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: tnoResponse}
	c, _ := newTestClient(t, stub)
	r, err := c.QueryParametersRaw(context.Background(), "orbit_type 10", "name")
	require.NoError(t, err)
	assert.Equal(t, tnoResponse, string(r.Body))
}

func TestSearch(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: tnoResponse}
	c, _ := newTestClient(t, stub)
	cs, err := mpc.ParseConstraints("semimajor_axis_min 30")
	require.NoError(t, err)
	recs, err := c.Search(context.Background(), mpc.Query{
		Constraints: cs,
		OrderBy:     mpc.Inclination,
		Limit:       2,
	}, false)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, []string{"inclination"}, stub.form["order_by"])
	assert.Equal(t, []string{"2"}, stub.form["limit"])
}

func TestStatusError(t *testing.T) {
	stub := &serviceStub{status: http.StatusUnauthorized, body: "bad credentials"}
	c, _ := newTestClient(t, stub)
	_, err := c.QueryObject(context.Background(), "Eris", false)
	var se *mpc.StatusError
	require.True(t, errors.As(err, &se), "%v", err)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "bad credentials", se.Body)
}

func TestStatusErrorExcerpt(t *testing.T) {
	stub := &serviceStub{
		status: http.StatusInternalServerError,
		body:   "x" + strings.Repeat("é", 300),
	}
	c, _ := newTestClient(t, stub)
	_, err := c.QueryObject(context.Background(), "Eris", false)
	var se *mpc.StatusError
	require.True(t, errors.As(err, &se), "%v", err)
	assert.Len(t, se.Body, 511)
	assert.True(t, utf8.ValidString(se.Body))
}

func TestRetrievalTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := mpc.New(mpc.Config{URL: srv.URL, RetrievalTimeout: 30 * time.Millisecond})
	start := time.Now()
	_, err := c.QueryParameters(context.Background(), "semimajor_axis_min 15", "", false)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 150*time.Millisecond)
	var ne interface{ Timeout() bool }
	require.True(t, errors.As(err, &ne), "%T: %v", err, err)
	assert.True(t, ne.Timeout())
}

func TestTransportErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := mpc.New(mpc.Config{URL: srv.URL}, mpc.WithHTTPClient(&http.Client{
		Timeout: 20 * time.Millisecond,
	}))
	_, err := c.QueryObject(context.Background(), "Eris", false)
	require.Error(t, err)
	var ne interface{ Timeout() bool }
	require.True(t, errors.As(err, &ne), "%T: %v", err, err)
	assert.True(t, ne.Timeout())
}

func TestContextCanceled(t *testing.T) {
	stub := &serviceStub{status: http.StatusOK, body: erisResponse}
	c, _ := newTestClient(t, stub)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.QueryObject(ctx, "Eris", false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueryObservations(t *testing.T) {
	c := mpc.New(mpc.Config{})
	for _, id := range []string{"Eris", "", "not an id"} {
		_, err := c.QueryObservations(context.Background(), id)
		assert.ErrorIs(t, err, mpc.ErrNotImplemented)
	}
}
