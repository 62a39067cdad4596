package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// decorativeRunes covers the symbol ranges that show up in scraped special
// names: emoji blocks, misc symbols and dingbats, variation selectors, the
// zero-width joiner, the keycap combiner and tag characters.
var decorativeRunes = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1},
		{Lo: 0x20E3, Hi: 0x20E3, Stride: 1},
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1},
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F9FF, Stride: 1},
		{Lo: 0xE0020, Hi: 0xE007F, Stride: 1},
	},
}

var stripDecorative = runes.Remove(runes.In(decorativeRunes))

// NormalizeSpecialName strips decorative symbol characters and surrounding
// whitespace so special names can be compared for deduplication. The stored
// name/description fields keep their original text; this is only used for
// comparisons and category sniffing.
func NormalizeSpecialName(name string) string {
	stripped, _, err := transform.String(stripDecorative, name)
	if err != nil {
		stripped = name
	}
	return strings.TrimSpace(stripped)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe identifier from a store's display name.
// Apostrophes and ampersands are removed outright so "Col'Cacchio V&A"
// becomes "colcacchio-va" rather than "col-cacchio-v-a"; every remaining
// run of non-alphanumerics collapses to a single hyphen.
func GenerateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, "&", "")
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
