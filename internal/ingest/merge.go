package ingest

import (
	"regexp"
	"strings"

	"colcacchio-dashboard/internal/domain"
)

// storeURLPattern extracts the URL slug (the path segment after /store/)
// from an Uber Eats store URL.
var storeURLPattern = regexp.MustCompile(`ubereats\.com/(?:za/)?store/([^/]+)`)

// MergeStoreURLs reconciles parsed stores against the store-directory CSV,
// which carries the authoritative Uber Eats URL per store. Both sides are
// matched on the slug embedded in their URLs. Stores with a directory match
// are replaced by shallow copies carrying the directory URL; everything
// else keeps its original pointer. The input stores are never mutated. A
// directory with no data rows is a no-op.
func MergeStoreURLs(stores []*domain.Store, storesCsvContent string) []*domain.Store {
	var lines []string
	for _, line := range strings.Split(storesCsvContent, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return stores
	}

	// slug -> full URL, taking the first URL-bearing field of each row
	slugToURL := make(map[string]string)
	for _, line := range lines[1:] {
		for _, field := range ParseLine(line) {
			if m := storeURLPattern.FindStringSubmatch(field); m != nil {
				slugToURL[m[1]] = strings.TrimSpace(field)
				break
			}
		}
	}

	merged := make([]*domain.Store, len(stores))
	for i, store := range stores {
		if m := storeURLPattern.FindStringSubmatch(store.UberEatsURL); m != nil {
			if fullURL, ok := slugToURL[m[1]]; ok {
				updated := *store
				updated.UberEatsURL = fullURL
				merged[i] = &updated
				continue
			}
		}
		merged[i] = store
	}
	return merged
}
