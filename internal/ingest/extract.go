package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"colcacchio-dashboard/internal/domain"
)

// Column indices in the extract CSV. The header row is ignored; the export
// always emits columns in this order, each value followed by its citation:
//
//	0 item_name          1 item_name_citation
//	2 category           3 category_citation
//	4 store_name         5 store_name_citation (Uber Eats URL)
//	6 store_location     7 store_location_citation
//	8 store_rating       9 store_rating_citation
//	10 store_review_count 11 store_review_count_citation
//	12 special_name       13 special_name_citation
//	14 special_description 15 special_description_citation
//
// Specials are not read from columns 12/14; they are derived from item rows
// whose category matches the special heuristic.
const (
	colItemName = iota
	colItemCitation
	colCategory
	_
	colStoreName
	colStoreURL
	colLocation
	_
	colRating
	_
	colReviewCount
)

// minFields is the minimum field count for a row to be considered valid.
const minFields = 10

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParseExtract parses the item-level export into distinct stores in
// first-seen order. Rows are grouped by store name; each row becomes either
// a menu item or, when its category matches the special heuristic, a
// special deduplicated by normalized name. Malformed rows are skipped, bad
// numeric fields coerce to zero, and no input can fail the parse. Empty or
// header-only input yields no stores.
func ParseExtract(csvContent string) []*domain.Store {
	var lines []string
	for _, line := range strings.Split(csvContent, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	var stores []*domain.Store
	byName := make(map[string]*domain.Store)

	for _, line := range lines[1:] {
		fields := ParseLine(line)
		if len(fields) < minFields {
			continue
		}

		storeName := strings.TrimSpace(fields[colStoreName])
		location := strings.TrimSpace(fields[colLocation])
		rating := parseRating(fields[colRating])
		reviewCount := parseReviewCount(fieldAt(fields, colReviewCount))
		itemName := strings.TrimSpace(fields[colItemName])
		category := strings.TrimSpace(fields[colCategory])
		citationURL := strings.TrimSpace(fields[colItemCitation])
		uberEatsURL := strings.TrimSpace(fields[colStoreURL])

		if storeName == "" || itemName == "" {
			continue
		}

		store, ok := byName[storeName]
		if !ok {
			store = &domain.Store{
				Name:        storeName,
				Location:    location,
				Region:      ClassifyRegion(location),
				Rating:      rating,
				ReviewCount: reviewCount,
				UberEatsURL: uberEatsURL,
				Slug:        GenerateSlug(storeName),
			}
			byName[storeName] = store
			stores = append(stores, store)
		}

		if isSpecialCategory(category) {
			normalized := NormalizeSpecialName(itemName)
			if !hasSpecial(store, normalized) {
				store.Specials = append(store.Specials, domain.Special{
					Name:        itemName,
					Description: category,
					CitationURL: citationURL,
				})
			}
		} else {
			store.Items = append(store.Items, domain.MenuItem{
				Name:        itemName,
				Category:    category,
				CitationURL: citationURL,
			})
		}
	}

	return stores
}

func hasSpecial(store *domain.Store, normalizedName string) bool {
	for _, s := range store.Specials {
		if NormalizeSpecialName(s.Name) == normalizedName {
			return true
		}
	}
	return false
}

func fieldAt(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rating
}

func parseReviewCount(raw string) int {
	digits := nonDigits.ReplaceAllString(raw, "")
	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return count
}
