// Package scraper collects review records from paginated listing pages and
// produces the JSON document the review page serves from.
package scraper

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"pikirBack/internal/models"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

const (
	fetchMaxRetries = 4
	fetchBackoff    = 1.8
	maxJitter       = 600 * time.Millisecond
)

var (
	ratingPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	nextLinkPattern = regexp.MustCompile(`(?i)\b(next|older|more)\b`)
)

// Selectors locate the review card and its fields inside a listing page.
// Container is required; empty field selectors leave that field blank.
type Selectors struct {
	Container string
	Reviewer  string
	Rating    string
	Date      string
	Text      string
	Next      string
}

type Config struct {
	StartURL  string
	MaxPages  int
	Delay     time.Duration
	Selectors Selectors
	Headers   map[string]string
	Cookies   map[string]string
}

type Scraper struct {
	httpClient *http.Client
	cfg        Config
}

func New(httpClient *http.Client, cfg Config) (*Scraper, error) {
	if cfg.Selectors.Container == "" {
		return nil, fmt.Errorf("scraper: container selector is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	if cfg.Headers == nil {
		cfg.Headers = DefaultHeaders()
	}
	return &Scraper{httpClient: httpClient, cfg: cfg}, nil
}

// Run walks the listing from the start URL, page by page, until the page cap,
// a repeated URL, or a missing next link stops it. Reviews are accumulated in
// page order.
func (s *Scraper) Run(ctx context.Context) ([]models.Review, error) {
	var all []models.Review

	seen := make(map[string]bool)
	pageURL := s.cfg.StartURL

	for page := 1; page <= s.cfg.MaxPages; page++ {
		if pageURL == "" || seen[pageURL] {
			log.Info("[scraper] no new page or repeated page; stopping")
			break
		}
		seen[pageURL] = true

		body, err := s.fetch(ctx, pageURL)
		if err != nil {
			log.Warnf("[scraper] failed to fetch page %d: %v", page, err)
			break
		}

		reviews, err := ParseReviews(body, s.cfg.Selectors)
		if err != nil {
			return all, fmt.Errorf("scrape page %d: %w", page, err)
		}
		log.Infof("[scraper] parsed %d reviews from page %d", len(reviews), page)
		all = append(all, reviews...)

		next, ok := NextURL(body, pageURL, s.cfg.Selectors.Next)
		if !ok {
			log.Info("[scraper] no next page link found; stopping")
			break
		}

		select {
		case <-ctx.Done():
			return all, ctx.Err()
		case <-time.After(s.cfg.Delay + jitter()):
		}
		pageURL = next
	}

	return all, nil
}

// fetch retries transport errors and throttling statuses with exponential
// backoff; any other non-2xx status aborts immediately.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (string, error) {
	for attempt := 1; attempt <= fetchMaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return "", fmt.Errorf("fetch: build request: %w", err)
		}
		for k, v := range s.cfg.Headers {
			req.Header.Set(k, v)
		}
		for name, value := range s.cfg.Cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}

		resp, err := s.httpClient.Do(req)
		if err != nil {
			log.Warnf("[scraper] %v on %s", err, pageURL)
			if err := sleepBackoff(ctx, attempt); err != nil {
				return "", err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				return "", fmt.Errorf("fetch: read body: %w", readErr)
			}
			return string(body), nil
		}

		log.Warnf("[scraper] status %d for %s", resp.StatusCode, pageURL)
		if !retryableStatus(resp.StatusCode) {
			return "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
		}
		if err := sleepBackoff(ctx, attempt); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("fetch %s: retries exhausted", pageURL)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusForbidden,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func sleepBackoff(ctx context.Context, attempt int) error {
	d := time.Duration(math.Pow(fetchBackoff, float64(attempt)) * float64(time.Second))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func jitter() time.Duration {
	return time.Duration(rand.Float64() * float64(maxJitter))
}

// ParseReviews extracts one record per container match, in document order.
// Cards where every field comes back empty are dropped.
func ParseReviews(body string, sel Selectors) ([]models.Review, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse reviews: %w", err)
	}

	var reviews []models.Review
	doc.Find(sel.Container).Each(func(_ int, card *goquery.Selection) {
		reviewer := fieldText(card, sel.Reviewer)
		date := fieldText(card, sel.Date)
		text := fieldText(card, sel.Text)

		ratingRaw := ratingLabel(card, sel.Rating)
		rating, hasRating := ParseRating(ratingRaw)

		if reviewer == "" && date == "" && text == "" && !hasRating {
			return
		}
		reviews = append(reviews, models.Review{
			Name:   reviewer,
			Rating: rating,
			Date:   date,
			Review: text,
		})
	})
	return reviews, nil
}

func fieldText(card *goquery.Selection, sel string) string {
	if sel == "" {
		return ""
	}
	return strings.TrimSpace(card.Find(sel).First().Text())
}

// ratingLabel prefers the accessible label over visible text, since star
// widgets usually carry the numeric value in aria-label or title.
func ratingLabel(card *goquery.Selection, sel string) string {
	if sel == "" {
		return ""
	}
	node := card.Find(sel).First()
	if node.Length() == 0 {
		return ""
	}
	if label, ok := node.Attr("aria-label"); ok && label != "" {
		return label
	}
	if title, ok := node.Attr("title"); ok && title != "" {
		return title
	}
	return strings.TrimSpace(node.Text())
}

// ParseRating pulls the first decimal number out of a rating label like
// "4.5 star rating".
func ParseRating(raw string) (float64, bool) {
	m := ratingPattern.FindString(raw)
	if m == "" {
		return 0, false
	}
	rating, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return rating, true
}

// NextURL finds the next page link: the explicit selector first, then
// rel=next, then anchors whose text looks like a pagination label. The href
// is resolved against the current page URL.
func NextURL(body, pageURL, nextSel string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", false
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}

	if nextSel != "" {
		if href, ok := doc.Find(nextSel).First().Attr("href"); ok && href != "" {
			return resolve(base, href)
		}
	}
	if href, ok := doc.Find("a[rel='next'], link[rel='next']").First().Attr("href"); ok && href != "" {
		return resolve(base, href)
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if !nextLinkPattern.MatchString(a.Text()) {
			return true
		}
		href, _ := a.Attr("href")
		if href == "" {
			return true
		}
		found = href
		return false
	})
	if found != "" {
		return resolve(base, found)
	}
	return "", false
}

func resolve(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}
