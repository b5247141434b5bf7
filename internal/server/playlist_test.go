package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/tasks"
	chartdaytest "github.com/desertthunder/chartday/internal/testing"
)

func newTestHandler(src *chartdaytest.MockSource) *PlaylistHandler {
	engine := tasks.NewPlaylistEngine(src, 1000)
	return NewPlaylistHandler(engine, shared.NewLogger(io.Discard))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func TestPlaylistHandler(t *testing.T) {
	t.Run("Validation", func(t *testing.T) {
		src := &chartdaytest.MockSource{}
		handler := newTestHandler(src)

		cases := []struct {
			name    string
			query   string
			message string
		}{
			{"Missing Birth", "count=5", "birth date is required"},
			{"Unparseable Birth", "birth=01/02/2001&count=5", "formatted YYYY-MM-DD"},
			{"Missing Count", "birth=2001-01-01", "positive integer"},
			{"Non-Integer Count", "birth=2001-01-01&count=five", "positive integer"},
			{"Zero Count", "birth=2001-01-01&count=0", "positive integer"},
			{"Future Birth", "birth=2999-01-01&count=5", "in the future"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/api/playlist?"+tc.query, nil)
				handler.ServeHTTP(rec, req)

				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}

				var body struct {
					Error string `json:"error"`
				}
				decodeBody(t, rec, &body)
				if !strings.Contains(body.Error, tc.message) {
					t.Errorf("expected error mentioning %q, got %q", tc.message, body.Error)
				}
			})
		}

		if len(src.Calls) != 0 {
			t.Error("validation failures must not reach the chart source")
		}
	})

	t.Run("Success", func(t *testing.T) {
		src := &chartdaytest.MockSource{
			Default: []models.Entry{
				{Title: "First", Artist: "A"},
				{Title: "Second", Artist: "B"},
			},
		}
		handler := newTestHandler(src)

		birth := time.Now().AddDate(-3, 0, -10)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/playlist?birth="+shared.FormatDate(birth)+"&count=1", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}

		var playlist models.Playlist
		decodeBody(t, rec, &playlist)

		if playlist.From != shared.FormatDate(birth.AddDate(0, 0, 1)) {
			t.Errorf("unexpected from date: %s", playlist.From)
		}
		if len(src.Calls) == 0 {
			t.Fatal("expected at least one chart fetch")
		}
		if len(playlist.Songs) != len(src.Calls) {
			t.Errorf("expected one song per fetched year, got %d songs for %d fetches",
				len(playlist.Songs), len(src.Calls))
		}
		for _, song := range playlist.Songs {
			if song.Title != "First" {
				t.Errorf("count must truncate to the leading entry, got %q", song.Title)
			}
		}
	})

	t.Run("Empty Playlist Is A Valid Result", func(t *testing.T) {
		handler := newTestHandler(&chartdaytest.MockSource{})

		birth := time.Now().AddDate(-1, 0, -10)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/playlist?birth="+shared.FormatDate(birth)+"&count=5", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var playlist models.Playlist
		decodeBody(t, rec, &playlist)
		if playlist.Songs == nil || len(playlist.Songs) != 0 {
			t.Errorf("expected empty songs array, got %+v", playlist.Songs)
		}
	})

	t.Run("Chart Failure Maps To Bad Gateway", func(t *testing.T) {
		birth := time.Now().AddDate(-2, 0, -10)
		seq := shared.NewAnniversaries(birth, time.Now())
		first, ok := seq.Next()
		if !ok {
			t.Fatal("fixture birth date yields no anniversaries")
		}

		src := &chartdaytest.MockSource{
			FailOn: map[string]error{
				shared.FormatDate(first): errors.New("connection reset"),
			},
		}
		handler := newTestHandler(src)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/playlist?birth="+shared.FormatDate(birth)+"&count=5", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}

		var body struct {
			Error string `json:"error"`
		}
		decodeBody(t, rec, &body)
		if body.Error != "unable to reach chart data" {
			t.Errorf("unexpected error body: %q", body.Error)
		}
		if len(src.Calls) != 1 {
			t.Errorf("expected the build to abort after the first failure, got %d calls", len(src.Calls))
		}
	})

	t.Run("Rejects Non-GET", func(t *testing.T) {
		handler := newTestHandler(&chartdaytest.MockSource{})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/playlist?birth=2001-01-01&count=5", nil)
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})
}

func TestNewServer(t *testing.T) {
	engine := tasks.NewPlaylistEngine(&chartdaytest.MockSource{}, 1000)
	srv, err := NewServer(shared.ServerConfig{Host: "localhost", Port: 8080}, engine, shared.NewLogger(io.Discard))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if srv.Addr != "localhost:8080" {
		t.Errorf("unexpected address: %s", srv.Addr)
	}

	t.Run("Serves Embedded Front End", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		srv.Handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<title>chartday</title>") {
			t.Error("expected the index page at the root path")
		}
	})

	t.Run("Routes Playlist API", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/playlist", nil)
		srv.Handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected the API handler to answer, got %d", rec.Code)
		}
	})
}
