// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/chartday/internal/models"
)

// MockSource is a test double for [chart.Source]. Entries holds the canned
// response per ISO date; FailOn marks dates whose fetch should error.
// Default is returned for dates without a canned response.
type MockSource struct {
	Entries map[string][]models.Entry
	Default []models.Entry
	FailOn  map[string]error
	Calls   []string
}

func (m *MockSource) Fetch(ctx context.Context, date time.Time) ([]models.Entry, error) {
	iso := date.Format("2006-01-02")
	m.Calls = append(m.Calls, iso)

	if err, ok := m.FailOn[iso]; ok {
		return nil, err
	}
	if entries, ok := m.Entries[iso]; ok {
		return entries, nil
	}
	return m.Default, nil
}

func (m *MockSource) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// SequenceRoundTripper replays a fixed sequence of responses/errors, one per
// request, recording every requested URL. Useful for fallback scenarios.
type SequenceRoundTripper struct {
	Responses []*http.Response
	Errors    []error
	URLs      []string
	calls     int
}

func (s *SequenceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	i := s.calls
	s.calls++
	s.URLs = append(s.URLs, req.URL.String())

	var resp *http.Response
	var err error
	if i < len(s.Responses) {
		resp = s.Responses[i]
	}
	if i < len(s.Errors) {
		err = s.Errors[i]
	}
	if resp == nil && err == nil {
		err = errors.New("no scripted response")
	}
	return resp, err
}

// NewResponse builds an *http.Response with the given status and body.
func NewResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
