package scraper

import (
	"bufio"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultHeaders is the browser-shaped header set used when no headers file
// is given.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent":                defaultUserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	}
}

// LoadHeaders reads "Key: Value" lines. A missing or unreadable file falls
// back to the defaults with a warning, never an error.
func LoadHeaders(path string) map[string]string {
	if path == "" {
		return DefaultHeaders()
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warnf("[scraper] failed to load headers from %s: %v", path, err)
		return map[string]string{"User-Agent": defaultUserAgent}
	}
	defer f.Close()

	headers := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.Contains(line, ":") {
			continue
		}
		k, v, _ := strings.Cut(line, ":")
		headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := sc.Err(); err != nil {
		log.Warnf("[scraper] failed to load headers from %s: %v", path, err)
	}
	if _, ok := headers["User-Agent"]; !ok {
		headers["User-Agent"] = defaultUserAgent
	}
	return headers
}

// LoadCookies reads either "name=value" lines or Netscape tab-separated
// cookie-jar lines. Comments and blank lines are skipped.
func LoadCookies(path string) map[string]string {
	jar := make(map[string]string)
	if path == "" {
		return jar
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warnf("[scraper] failed to load cookies from %s: %v", path, err)
		return jar
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "\t") {
			parts := strings.Split(line, "\t")
			if len(parts) >= 7 {
				name := strings.TrimSpace(parts[len(parts)-2])
				value := strings.TrimSpace(parts[len(parts)-1])
				jar[name] = value
			}
			continue
		}
		if name, value, ok := strings.Cut(line, "="); ok {
			jar[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}
	if err := sc.Err(); err != nil {
		log.Warnf("[scraper] failed to load cookies from %s: %v", path, err)
	}
	return jar
}
