package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econlens/country-compare/internal/domain"
)

type stubRunner struct {
	cmp domain.Comparison
	err error
}

func (s *stubRunner) Compare(_ context.Context, countryA, countryB string) (domain.Comparison, error) {
	if s.err != nil {
		return domain.Comparison{}, s.err
	}
	cmp := s.cmp
	cmp.CountryA = countryA
	cmp.CountryB = countryB
	return cmp, nil
}

type stubReadiness struct{ err error }

func (s *stubReadiness) CheckReadiness(context.Context) error { return s.err }

func fptr(v float64) *float64 { return &v }

func testServer(runner ComparisonRunner, ready ReadinessChecker) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(":0", runner, ready, []string{"Mexico", "Sweden"}, logger)
}

func testComparison() domain.Comparison {
	return domain.BuildComparison("", "",
		[]domain.RawIndicatorRecord{
			{Category: "GDP", LatestValue: fptr(1852.72)},
			{Category: "Population", LatestValue: fptr(130.86)},
			{Category: "Inflation Rate", LatestValue: fptr(3.79)},
		},
		[]domain.RawIndicatorRecord{
			{Category: "GDP", LatestValue: fptr(1200)},
			{Category: "Population", LatestValue: fptr(10.54)},
			{Category: "Inflation Rate", LatestValue: fptr(1.7)},
		},
		domain.Options{},
	)
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	s := testServer(&stubRunner{}, &stubReadiness{})
	rec := doRequest(t, s, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_Ready(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		s := testServer(&stubRunner{}, &stubReadiness{})
		rec := doRequest(t, s, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		s := testServer(&stubRunner{}, &stubReadiness{err: errors.New("upstream unreachable")})
		rec := doRequest(t, s, "/readyz")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "upstream unreachable")
	})
}

func TestServer_Compare(t *testing.T) {
	s := testServer(&stubRunner{cmp: testComparison()}, &stubReadiness{})
	rec := doRequest(t, s, "/v1/compare?a=Mexico&b=Sweden")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var cmp domain.Comparison
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cmp))
	assert.Equal(t, "Mexico", cmp.CountryA)
	assert.Equal(t, "Sweden", cmp.CountryB)
	require.Len(t, cmp.Rows, 3)
	assert.Equal(t, "GDP", cmp.Rows[0].Indicator)
	assert.Equal(t, "1.85 T", cmp.Rows[0].FormattedA)
	assert.Equal(t, "+652.72 B", cmp.Rows[0].Difference.Text)
}

func TestServer_Compare_BadRequests(t *testing.T) {
	s := testServer(&stubRunner{cmp: testComparison()}, &stubReadiness{})

	tests := []struct {
		name string
		path string
	}{
		{"missing both", "/v1/compare"},
		{"missing b", "/v1/compare?a=Mexico"},
		{"missing a", "/v1/compare?b=Sweden"},
		{"blank a", "/v1/compare?a=%20&b=Sweden"},
		{"identical countries", "/v1/compare?a=Sweden&b=Sweden"},
		{"identical ignoring case", "/v1/compare?a=sweden&b=SWEDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, tt.path)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServer_Compare_RunnerError(t *testing.T) {
	s := testServer(&stubRunner{err: context.Canceled}, &stubReadiness{})
	rec := doRequest(t, s, "/v1/compare?a=Mexico&b=Sweden")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_Countries(t *testing.T) {
	s := testServer(&stubRunner{}, &stubReadiness{})
	rec := doRequest(t, s, "/v1/countries")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"countries":["Mexico","Sweden"]}`, rec.Body.String())
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := testServer(&stubRunner{}, &stubReadiness{})
	req := httptest.NewRequest(http.MethodPost, "/v1/compare?a=Mexico&b=Sweden", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
