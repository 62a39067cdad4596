package domain

import "time"

// Region is one of the four geographic buckets a store is classified into.
type Region string

const (
	RegionGauteng     Region = "Gauteng"
	RegionWesternCape Region = "Western Cape"
	RegionKZN         Region = "KZN"
	RegionPretoria    Region = "Pretoria"
)

type MenuItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	CitationURL string `json:"citation_url"`
}

// Special is a promotional listing. Description keeps the raw category text
// that caused the row to be classified as a special.
type Special struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CitationURL string `json:"citation_url"`
}

type Store struct {
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Region      Region     `json:"region"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"review_count"`
	UberEatsURL string     `json:"uber_eats_url"`
	Slug        string     `json:"slug"`
	Items       []MenuItem `json:"items"`
	Specials    []Special  `json:"specials"`
}

// DashboardData is the final artifact of the ingestion pipeline, built once
// per process and shared read-only afterwards.
type DashboardData struct {
	Stores      []*Store  `json:"stores"`
	GeneratedAt time.Time `json:"generated_at"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type OverviewStats struct {
	TotalStores          int             `json:"total_stores"`
	TotalItems           int             `json:"total_items"`
	TotalSpecials        int             `json:"total_specials"`
	AvgRating            float64         `json:"avg_rating"`
	RegionCounts         map[Region]int  `json:"region_counts"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	TopStores            []*Store        `json:"top_stores"`
	BottomStores         []*Store        `json:"bottom_stores"`
}

// StoreSpecials is one row of the specials coverage report.
type StoreSpecials struct {
	StoreName string    `json:"store_name"`
	Slug      string    `json:"slug"`
	Region    Region    `json:"region"`
	Specials  []Special `json:"specials"`
}
