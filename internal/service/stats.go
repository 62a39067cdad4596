package service

import (
	"math"
	"sort"

	"colcacchio-dashboard/internal/domain"
)

// OverviewFor computes the overview statistics for a store list. Pure
// function: the stores are never modified.
func OverviewFor(stores []*domain.Store) domain.OverviewStats {
	totalItems := 0
	totalSpecials := 0
	ratingSum := 0.0
	regionCounts := make(map[domain.Region]int)

	catCounts := make(map[string]int)
	var catOrder []string

	for _, store := range stores {
		totalItems += len(store.Items)
		totalSpecials += len(store.Specials)
		ratingSum += store.Rating
		regionCounts[store.Region]++
		for _, item := range store.Items {
			if _, seen := catCounts[item.Category]; !seen {
				catOrder = append(catOrder, item.Category)
			}
			catCounts[item.Category]++
		}
	}

	avgRating := 0.0
	if len(stores) > 0 {
		avgRating = math.Round(ratingSum/float64(len(stores))*10) / 10
	}

	distribution := make([]domain.CategoryCount, 0, len(catOrder))
	for _, name := range catOrder {
		distribution = append(distribution, domain.CategoryCount{Name: name, Count: catCounts[name]})
	}
	// stable: equal counts keep first-encountered order
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	sorted := make([]*domain.Store, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	topStores := sorted[:min(5, len(sorted))]

	// bottom stores come from the tail of the same descending ordering,
	// reversed so the worst store is first. Not an independent ascending
	// sort: that would break the tie order at the top/bottom boundary.
	tail := sorted[max(0, len(sorted)-5):]
	bottomStores := make([]*domain.Store, len(tail))
	for i, store := range tail {
		bottomStores[len(tail)-1-i] = store
	}

	return domain.OverviewStats{
		TotalStores:          len(stores),
		TotalItems:           totalItems,
		TotalSpecials:        totalSpecials,
		AvgRating:            avgRating,
		RegionCounts:         regionCounts,
		CategoryDistribution: distribution,
		TopStores:            topStores,
		BottomStores:         bottomStores,
	}
}
