package service

import (
	"colcacchio-dashboard/internal/domain"
)

type DashboardInterface interface {
	Data() (*domain.DashboardData, error)
	Stores() ([]*domain.Store, error)
	Overview() (domain.OverviewStats, error)
	StoreBySlug(slug string) (*domain.Store, error)
	Specials() ([]domain.StoreSpecials, error)
	Compare(slugs []string) ([]*domain.Store, error)
}

var _ DashboardInterface = (*DashboardService)(nil)
