package scraper

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pikirBack/internal/models"
)

var csvColumns = []string{"name", "rating", "date", "review"}

// WriteJSON writes the collection as an indented JSON array, the wire shape
// the review page fetches.
func WriteJSON(reviews []models.Review, path string) error {
	if reviews == nil {
		reviews = []models.Review{}
	}
	data, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func WriteCSV(reviews []models.Review, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, review := range reviews {
		row := []string{
			review.Name,
			strconv.FormatFloat(review.Rating, 'f', -1, 64),
			review.Date,
			review.Review,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// ExpandGlobs resolves offline-file patterns into concrete paths, preserving
// pattern order.
func ExpandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// ParseFiles runs the selector pipeline over saved listing pages instead of
// fetching them.
func ParseFiles(paths []string, sel Selectors) ([]models.Review, error) {
	var all []models.Review
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return all, fmt.Errorf("read %s: %w", path, err)
		}
		reviews, err := ParseReviews(string(data), sel)
		if err != nil {
			return all, fmt.Errorf("parse %s: %w", path, err)
		}
		all = append(all, reviews...)
	}
	return all, nil
}
