package chart

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/chartday/internal/shared"
	chartdaytest "github.com/desertthunder/chartday/internal/testing"
)

const chartPageHTML = `<html><body>
<li data-title="Hit One" data-artist="Act One"></li>
<li data-title="Hit Two" data-artist="Act Two"></li>
</body></html>`

func TestScrapeSource(t *testing.T) {
	date := chartDate(t, "2001-01-02")

	t.Run("First Proxy Succeeds", func(t *testing.T) {
		rt := &chartdaytest.SequenceRoundTripper{
			Responses: []*http.Response{chartdaytest.NewResponse(200, chartPageHTML)},
		}
		src := NewScrapeSource("https://proxy.example.com", "www.billboard.com", &http.Client{Transport: rt})

		entries, err := src.Fetch(context.Background(), date)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		want := "https://proxy.example.com/http://www.billboard.com/charts/hot-100/2001-01-02"
		if rt.URLs[0] != want {
			t.Errorf("expected request to %s, got %s", want, rt.URLs[0])
		}
	})

	t.Run("Falls Back To Second Proxy", func(t *testing.T) {
		rt := &chartdaytest.SequenceRoundTripper{
			Responses: []*http.Response{nil, chartdaytest.NewResponse(200, chartPageHTML)},
			Errors:    []error{errors.New("connection reset"), nil},
		}
		src := NewScrapeSource("https://proxy.example.com", "www.billboard.com", &http.Client{Transport: rt})

		entries, err := src.Fetch(context.Background(), date)
		if err != nil {
			t.Fatalf("expected fallback to succeed, got %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries from fallback payload, got %d", len(entries))
		}

		if len(rt.URLs) != 2 {
			t.Fatalf("expected 2 attempts, got %d", len(rt.URLs))
		}
		if !strings.Contains(rt.URLs[1], "/http://proxy.example.com/http://") {
			t.Errorf("second attempt should be doubly wrapped, got %s", rt.URLs[1])
		}
	})

	t.Run("Non-2xx Triggers Fallback", func(t *testing.T) {
		rt := &chartdaytest.SequenceRoundTripper{
			Responses: []*http.Response{
				chartdaytest.NewResponse(429, "slow down"),
				chartdaytest.NewResponse(200, chartPageHTML),
			},
		}
		src := NewScrapeSource("https://proxy.example.com", "www.billboard.com", &http.Client{Transport: rt})

		entries, err := src.Fetch(context.Background(), date)
		if err != nil {
			t.Fatalf("expected fallback to succeed, got %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("Both Proxies Fail", func(t *testing.T) {
		rt := &chartdaytest.SequenceRoundTripper{
			Errors: []error{errors.New("first down"), errors.New("second down")},
		}
		src := NewScrapeSource("https://proxy.example.com", "www.billboard.com", &http.Client{Transport: rt})

		_, err := src.Fetch(context.Background(), date)
		if !errors.Is(err, shared.ErrChartUnavailable) {
			t.Fatalf("expected ErrChartUnavailable, got %v", err)
		}
		if !strings.Contains(err.Error(), "second down") {
			t.Errorf("expected last error to surface, got %v", err)
		}
		if len(rt.URLs) != 2 {
			t.Errorf("expected exactly 2 attempts, got %d", len(rt.URLs))
		}
	})
}
