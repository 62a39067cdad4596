package ingest

import (
	"testing"

	"colcacchio-dashboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func makeStore(name, url string) *domain.Store {
	return &domain.Store{
		Name:        name,
		Location:    "Sandton",
		Region:      domain.RegionGauteng,
		Rating:      4.0,
		ReviewCount: 100,
		UberEatsURL: url,
		Slug:        GenerateSlug(name),
	}
}

func TestMergeStoreURLsUpdatesMatchingSlug(t *testing.T) {
	stores := []*domain.Store{
		makeStore("Col'Cacchio GO Dainfern",
			"https://www.ubereats.com/za/store/colcacchio-go-dainfern/old-token"),
	}

	storesCsv := "Store Name,Uber Eats url\n" +
		"Col'Cacchio - DAINFERN SQUARE,https://www.ubereats.com/za/store/colcacchio-go-dainfern/oVpo3Z9cSx-Di-_4XestLg"

	result := MergeStoreURLs(stores, storesCsv)
	assert.Equal(t,
		"https://www.ubereats.com/za/store/colcacchio-go-dainfern/oVpo3Z9cSx-Di-_4XestLg",
		result[0].UberEatsURL)
	// copy-on-write: the parsed store keeps its original URL
	assert.Equal(t,
		"https://www.ubereats.com/za/store/colcacchio-go-dainfern/old-token",
		stores[0].UberEatsURL)
	assert.NotSame(t, stores[0], result[0])
}

func TestMergeStoreURLsKeepsUnmatchedStores(t *testing.T) {
	originalURL := "https://www.ubereats.com/za/store/colcacchio-unknown/xyz789"
	stores := []*domain.Store{makeStore("Col'Cacchio Unknown", originalURL)}

	storesCsv := "Store Name,Uber Eats url\n" +
		"Col'Cacchio - Waterfall,https://www.ubereats.com/za/store/colcacchio-go-waterfall/xZURGPcfS6qBmWNfPbuvgQ"

	result := MergeStoreURLs(stores, storesCsv)
	assert.Equal(t, originalURL, result[0].UberEatsURL)
	assert.Same(t, stores[0], result[0])
}

func TestMergeStoreURLsHandlesQuotedDirectoryFields(t *testing.T) {
	stores := []*domain.Store{
		makeStore("Col'Cacchio Brooklyn",
			"https://www.ubereats.com/za/store/colcacchio-brooklyn/old"),
	}

	storesCsv := "Store Name,Uber Eats url\n" +
		`"Col'Cacchio, Brooklyn",https://www.ubereats.com/za/store/colcacchio-brooklyn/f_h2d3VPU1KtD2CgkSo4wg`

	result := MergeStoreURLs(stores, storesCsv)
	assert.Equal(t,
		"https://www.ubereats.com/za/store/colcacchio-brooklyn/f_h2d3VPU1KtD2CgkSo4wg",
		result[0].UberEatsURL)
}

func TestMergeStoreURLsMatchesMultipleStores(t *testing.T) {
	stores := []*domain.Store{
		makeStore("Dainfern", "https://www.ubereats.com/za/store/colcacchio-go-dainfern/a"),
		makeStore("Foreshore", "https://www.ubereats.com/za/store/colcacchio-foreshore/b"),
		makeStore("NoMatch", "https://www.ubereats.com/za/store/colcacchio-nomatch/c"),
	}

	storesCsv := "Store Name,Uber Eats url\n" +
		"Dainfern,https://www.ubereats.com/za/store/colcacchio-go-dainfern/new-a\n" +
		"Foreshore,https://www.ubereats.com/za/store/colcacchio-foreshore/new-b"

	result := MergeStoreURLs(stores, storesCsv)
	assert.Equal(t, "https://www.ubereats.com/za/store/colcacchio-go-dainfern/new-a", result[0].UberEatsURL)
	assert.Equal(t, "https://www.ubereats.com/za/store/colcacchio-foreshore/new-b", result[1].UberEatsURL)
	assert.Same(t, stores[2], result[2])
}

func TestMergeStoreURLsWithoutDataRowsIsANoOp(t *testing.T) {
	stores := []*domain.Store{
		makeStore("Store A", "https://www.ubereats.com/za/store/store-a/abc"),
	}

	for _, csv := range []string{"", "Store Name,Uber Eats url", "  \n \n"} {
		result := MergeStoreURLs(stores, csv)
		assert.Len(t, result, len(stores))
		assert.Same(t, stores[0], result[0])
	}
}

func TestMergeStoreURLsToleratesNonZAPath(t *testing.T) {
	stores := []*domain.Store{
		makeStore("Store A", "https://www.ubereats.com/store/store-a/abc"),
	}

	storesCsv := "Store Name,Uber Eats url\n" +
		"Store A,https://www.ubereats.com/za/store/store-a/fresh"

	result := MergeStoreURLs(stores, storesCsv)
	assert.Equal(t, "https://www.ubereats.com/za/store/store-a/fresh", result[0].UberEatsURL)
}

func TestMergeStoreURLsIgnoresStoresWithoutRecognizableURL(t *testing.T) {
	stores := []*domain.Store{makeStore("Store A", "not a url at all")}

	storesCsv := "Store Name,Uber Eats url\n" +
		"Store A,https://www.ubereats.com/za/store/store-a/fresh"

	result := MergeStoreURLs(stores, storesCsv)
	assert.Same(t, stores[0], result[0])
	assert.Equal(t, "not a url at all", result[0].UberEatsURL)
}
