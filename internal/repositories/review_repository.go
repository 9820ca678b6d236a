package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pikirBack/internal/models"
)

// ReviewRepository loads the review document from an external HTTP source.
type ReviewRepository struct {
	HTTPClient *http.Client
	SourceURL  string
	Timeout    time.Duration
}

func NewReviewRepository(httpClient *http.Client, sourceURL string, timeout time.Duration) *ReviewRepository {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &ReviewRepository{HTTPClient: httpClient, SourceURL: sourceURL, Timeout: timeout}
}

// FetchReviews issues a single GET against the source URL and decodes the
// payload as a review list. It is not retried; a non-2xx status or transport
// error means the source is unavailable for this invocation.
func (r *ReviewRepository) FetchReviews(ctx context.Context) ([]models.Review, error) {
	if r.SourceURL == "" {
		return nil, fmt.Errorf("fetch reviews: empty source URL: %w", models.ErrSourceUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: do request: %v: %w", err, models.ErrSourceUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch reviews: status %d from %s: %w", resp.StatusCode, r.SourceURL, models.ErrSourceUnavailable)
	}

	var reviews []models.Review
	if err := json.NewDecoder(resp.Body).Decode(&reviews); err != nil {
		return nil, fmt.Errorf("fetch reviews: decode payload: %v: %w", err, models.ErrMalformedPayload)
	}
	return reviews, nil
}

// Unavailable reports whether err belongs to either failure category. Both
// collapse into the same recovery path: log once, render nothing.
func Unavailable(err error) bool {
	return errors.Is(err, models.ErrSourceUnavailable) || errors.Is(err, models.ErrMalformedPayload)
}
