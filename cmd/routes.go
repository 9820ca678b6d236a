package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.requestID, app.logRequest, secureHeaders)
	jsonMiddleware := standardMiddleware.Append(makeResponseJSON)

	mux := pat.New()

	// Reviews
	mux.Get("/reviews", standardMiddleware.ThenFunc(app.reviewsHandler.ReviewsPage))
	mux.Get("/api/reviews", jsonMiddleware.ThenFunc(app.reviewsHandler.GetReviews))

	mux.Get("/health", jsonMiddleware.ThenFunc(app.reviewsHandler.Health))

	// Registered last: pat matches in order and "/" is a prefix pattern.
	mux.Get("/", standardMiddleware.ThenFunc(app.reviewsHandler.ReviewsPage))

	return mux
}
