package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pikirBack/internal/models"
)

func newSourceServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestFetchReviewsDecodesInOrder(t *testing.T) {
	srv := newSourceServer(http.StatusOK, `[
		{"name":"Ann","rating":5,"date":"2024-01-01","review":"Great!"},
		{"name":"Bob","rating":3.5,"date":"2024-02-10","review":"Decent place."}
	]`)
	defer srv.Close()

	repo := NewReviewRepository(srv.Client(), srv.URL, time.Second)
	reviews, err := repo.FetchReviews(context.Background())
	if err != nil {
		t.Fatalf("FetchReviews returned error: %v", err)
	}

	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	want := models.Review{Name: "Ann", Rating: 5, Date: "2024-01-01", Review: "Great!"}
	if reviews[0] != want {
		t.Errorf("unexpected first review: %#v", reviews[0])
	}
	if reviews[1].Name != "Bob" || reviews[1].Rating != 3.5 {
		t.Errorf("unexpected second review: %#v", reviews[1])
	}
}

func TestFetchReviewsEmptyCollection(t *testing.T) {
	srv := newSourceServer(http.StatusOK, `[]`)
	defer srv.Close()

	repo := NewReviewRepository(srv.Client(), srv.URL, time.Second)
	reviews, err := repo.FetchReviews(context.Background())
	if err != nil {
		t.Fatalf("FetchReviews returned error: %v", err)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected empty collection, got %d reviews", len(reviews))
	}
}

func TestFetchReviewsNonSuccessStatus(t *testing.T) {
	srv := newSourceServer(http.StatusInternalServerError, "boom")
	defer srv.Close()

	repo := NewReviewRepository(srv.Client(), srv.URL, time.Second)
	_, err := repo.FetchReviews(context.Background())
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFetchReviewsUnreachableSource(t *testing.T) {
	srv := newSourceServer(http.StatusOK, `[]`)
	srv.Close()

	repo := NewReviewRepository(nil, srv.URL, time.Second)
	_, err := repo.FetchReviews(context.Background())
	if !errors.Is(err, models.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFetchReviewsMalformedPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>nope</html>"},
		{"wrong shape", `{"name":"Ann"}`},
		{"truncated", `[{"name":"Ann"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newSourceServer(http.StatusOK, tc.body)
			defer srv.Close()

			repo := NewReviewRepository(srv.Client(), srv.URL, time.Second)
			_, err := repo.FetchReviews(context.Background())
			if !errors.Is(err, models.ErrMalformedPayload) {
				t.Fatalf("expected ErrMalformedPayload, got %v", err)
			}
		})
	}
}

func TestUnavailableCoversBothCategories(t *testing.T) {
	if !Unavailable(models.ErrSourceUnavailable) || !Unavailable(models.ErrMalformedPayload) {
		t.Error("both failure categories should collapse into the same path")
	}
	if Unavailable(errors.New("other")) {
		t.Error("unrelated errors should not be classified")
	}
}
