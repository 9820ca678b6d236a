package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"pikirBack/internal/models"
	"pikirBack/internal/scraper"
)

func main() {
	var (
		pages  = flag.Int("pages", 3, "how many pages to scrape when online")
		delay  = flag.Float64("delay", 1.0, "delay in seconds between requests")
		out    = flag.String("out", "data.json", "output file path")
		format = flag.String("format", "json", "output format: json or csv")

		container   = flag.String("review-container", "", "CSS selector for each review card (required)")
		selReviewer = flag.String("sel-reviewer", "", "CSS inside card for reviewer")
		selRating   = flag.String("sel-rating", "", "CSS inside card for rating")
		selDate     = flag.String("sel-date", "", "CSS inside card for date")
		selText     = flag.String("sel-text", "", "CSS inside card for review text")
		selNext     = flag.String("sel-next", "", "CSS selector for the next page link")

		headersPath = flag.String("headers", "", "path to headers file")
		cookiesPath = flag.String("cookies", "", "path to cookies file")

		offline = flag.String("offline-files", "", "comma-separated globs of local HTML files to parse instead of fetching")
	)
	flag.Parse()

	if *container == "" {
		log.Fatal("[scraper] -review-container is required")
	}

	sel := scraper.Selectors{
		Container: *container,
		Reviewer:  *selReviewer,
		Rating:    *selRating,
		Date:      *selDate,
		Text:      *selText,
		Next:      *selNext,
	}

	var reviews []models.Review

	if *offline != "" {
		paths, err := scraper.ExpandGlobs(strings.Split(*offline, ","))
		if err != nil {
			log.Fatalf("[scraper] %v", err)
		}
		if len(paths) == 0 {
			log.Warn("[scraper] no offline files matched; exiting")
			os.Exit(0)
		}
		log.Infof("[scraper] parsing %d offline files", len(paths))
		reviews, err = scraper.ParseFiles(paths, sel)
		if err != nil {
			log.Fatalf("[scraper] %v", err)
		}
	} else {
		startURL := flag.Arg(0)
		if startURL == "" {
			log.Fatal("[scraper] listing page URL argument is required")
		}

		s, err := scraper.New(nil, scraper.Config{
			StartURL:  startURL,
			MaxPages:  *pages,
			Delay:     time.Duration(*delay * float64(time.Second)),
			Selectors: sel,
			Headers:   scraper.LoadHeaders(*headersPath),
			Cookies:   scraper.LoadCookies(*cookiesPath),
		})
		if err != nil {
			log.Fatalf("[scraper] %v", err)
		}
		reviews, err = s.Run(context.Background())
		if err != nil {
			log.Fatalf("[scraper] %v", err)
		}
	}

	var err error
	switch *format {
	case "json":
		err = scraper.WriteJSON(reviews, *out)
	case "csv":
		err = scraper.WriteCSV(reviews, *out)
	default:
		log.Fatalf("[scraper] unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("[scraper] %v", err)
	}

	fmt.Printf("Saved %d reviews -> %s\n", len(reviews), *out)
}
