package ingest

import (
	"strings"

	"colcacchio-dashboard/internal/domain"
)

type regionRule struct {
	keywords []string
	region   domain.Region
}

// regionRules maps location keywords to regions. Order matters: the more
// specific buckets (KZN, Pretoria) are checked before the broader ones,
// since Pretoria is inside Gauteng province.
var regionRules = []regionRule{
	{
		keywords: []string{
			"KwaZulu", "KZN", "Umhlanga", "Ballito", "Durban",
			"Hillcrest", "Florida Road",
		},
		region: domain.RegionKZN,
	},
	{
		keywords: []string{"Pretoria", "Menlyn", "Brooklyn"},
		region:   domain.RegionPretoria,
	},
	{
		keywords: []string{
			"Cape Town", "Western Cape", "Stellenbosch", "Paarl",
			"Foreshore", "Waterfront", "Century City", "Claremont",
			"Willowbridge", "Camps Bay", "Durbanville", "Paardevlei",
			"Blouberg", "Meadowridge", "Westlake", "Hans Strijdom",
			", WC ", "Haasendal", "Old Biscuit Mill", "Belvedere",
			"Canal Walk", "Cavendish",
		},
		region: domain.RegionWesternCape,
	},
	{
		keywords: []string{
			"Gauteng", "Johannesburg", "Sandton", "Rosebank", "Fourways",
			"Bedfordview", "Bryanston", "Greenside", "Parkhurst",
			"Melrose", "Lynnwood", "Dainfern", "Midrand", "Benmore",
			"Northcliff", "Montecasino",
		},
		region: domain.RegionGauteng,
	},
}

// ClassifyRegion maps a free-text store location to one of the four regions
// by case-insensitive keyword match. Unmatched locations fall back to
// Gauteng. This is a heuristic tuned to the chain's locations, not a
// geocoder.
func ClassifyRegion(location string) domain.Region {
	loc := strings.ToLower(location)
	for _, rule := range regionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(loc, strings.ToLower(kw)) {
				return rule.region
			}
		}
	}
	return domain.RegionGauteng
}
