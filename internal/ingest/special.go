package ingest

import "strings"

// specialMarkers are category phrases that mark a row as a promotional
// special rather than a regular menu category. Allowlist tuned to the
// chain's export vocabulary; rows matching none of these fall through to
// regular menu items.
var specialMarkers = []string{
	"hot this week",
	"weekly hot deal",
	"msc cruise",
	"summer",
	"special",
	"combo",
	"promotion",
	"giveaway",
	"win a",
}

func isSpecialCategory(category string) bool {
	lower := strings.ToLower(NormalizeSpecialName(category))
	for _, marker := range specialMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
