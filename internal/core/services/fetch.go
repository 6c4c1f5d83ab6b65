package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/userkit/internal/core/domain"
	"github.com/custodia-labs/userkit/internal/core/ports/driven"
	"github.com/custodia-labs/userkit/internal/core/ports/driving"
	"github.com/custodia-labs/userkit/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.Fetcher = (*FetchService)(nil)

// FetchService performs single best-effort GET requests.
// There is no retry and no timeout beyond what ctx and the transport impose.
type FetchService struct {
	client    driven.HTTPDoer
	userAgent string
}

// NewFetchService creates a new fetch service using client for transport.
func NewFetchService(client driven.HTTPDoer) *FetchService {
	return &FetchService{client: client}
}

// SetUserAgent sets the User-Agent header sent with each request.
// An empty value leaves the transport default in place.
func (s *FetchService) SetUserAgent(userAgent string) {
	s.userAgent = userAgent
}

// FetchData returns the decoded body of url.
// Any failure is logged and reported to the caller only as (nil, false).
func (s *FetchService) FetchData(ctx context.Context, url string) (any, bool) {
	outcome := s.Fetch(ctx, url)
	if !outcome.OK() {
		logger.Error("Error fetching data: %v", outcome.Err)
	}
	return outcome.Value()
}

// Fetch performs the request and returns the tagged outcome.
func (s *FetchService) Fetch(ctx context.Context, url string) domain.FetchOutcome {
	start := time.Now()
	outcome := domain.FetchOutcome{URL: url}

	body, status, err := s.get(ctx, url)
	outcome.StatusCode = status
	outcome.Duration = time.Since(start)
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		logger.Debug("GET %s failed after %s: %v", url, outcome.Duration, err)
		return outcome
	}

	outcome.Body = body
	logger.Debug("GET %s -> %d in %s", url, status, outcome.Duration)
	return outcome
}

func (s *FetchService) get(ctx context.Context, url string) (any, int, error) {
	if s.client == nil {
		return nil, 0, domain.ErrNotImplemented
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &domain.StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	body, err := decodeBody(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// decodeBody decodes the body as JSON whenever it parses, falling back to Text.
// A body declared as JSON must parse unless it is empty.
func decodeBody(contentType string, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.Text(raw), nil
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		if isJSON(contentType) {
			return nil, fmt.Errorf("%w: %w", domain.ErrDecodeFailed, err)
		}
		return domain.Text(raw), nil
	}
	return body, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
