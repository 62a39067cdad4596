package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"colcacchio-dashboard/internal/domain"
	"colcacchio-dashboard/internal/ingest"
)

// Source supplies the two raw CSV blobs. An empty directory blob disables
// the URL merge.
type Source interface {
	Load() (extract, directory string, err error)
}

// DashboardService runs the ingestion pipeline over a Source and serves the
// resulting dataset. The dataset is built at most once; after that every
// accessor returns the same read-only value.
type DashboardService struct {
	source Source

	once sync.Once
	data *domain.DashboardData
	err  error
}

func NewDashboardService(source Source) *DashboardService {
	return &DashboardService{source: source}
}

// Data returns the memoized dataset, building it on first use. Safe for
// concurrent callers.
func (s *DashboardService) Data() (*domain.DashboardData, error) {
	s.once.Do(func() {
		extract, directory, err := s.source.Load()
		if err != nil {
			s.err = err
			return
		}

		stores := ingest.ParseExtract(extract)
		stores = ingest.MergeStoreURLs(stores, directory)
		sort.Slice(stores, func(i, j int) bool {
			return stores[i].Name < stores[j].Name
		})

		s.data = &domain.DashboardData{
			Stores:      stores,
			GeneratedAt: time.Now().UTC(),
		}
	})
	return s.data, s.err
}

func (s *DashboardService) Stores() ([]*domain.Store, error) {
	data, err := s.Data()
	if err != nil {
		return nil, err
	}
	return data.Stores, nil
}

func (s *DashboardService) Overview() (domain.OverviewStats, error) {
	stores, err := s.Stores()
	if err != nil {
		return domain.OverviewStats{}, err
	}
	return OverviewFor(stores), nil
}

func (s *DashboardService) StoreBySlug(slug string) (*domain.Store, error) {
	stores, err := s.Stores()
	if err != nil {
		return nil, err
	}
	for _, store := range stores {
		if store.Slug == slug {
			return store, nil
		}
	}
	return nil, nil
}

// Specials reports every store that carries at least one special.
func (s *DashboardService) Specials() ([]domain.StoreSpecials, error) {
	stores, err := s.Stores()
	if err != nil {
		return nil, err
	}
	var report []domain.StoreSpecials
	for _, store := range stores {
		if len(store.Specials) == 0 {
			continue
		}
		report = append(report, domain.StoreSpecials{
			StoreName: store.Name,
			Slug:      store.Slug,
			Region:    store.Region,
			Specials:  store.Specials,
		})
	}
	return report, nil
}

// Compare resolves a selection of slugs to stores, preserving the request
// order. Unknown slugs are skipped.
func (s *DashboardService) Compare(slugs []string) ([]*domain.Store, error) {
	stores, err := s.Stores()
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]*domain.Store, len(stores))
	for _, store := range stores {
		bySlug[store.Slug] = store
	}
	var selected []*domain.Store
	for _, slug := range slugs {
		if store, ok := bySlug[strings.TrimSpace(slug)]; ok {
			selected = append(selected, store)
		}
	}
	return selected, nil
}
