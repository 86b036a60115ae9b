package service

import (
	"time"

	"go-lottery-admin/internal/repository"
)

// DashboardStats is the overview block behind the Dashboard page
type DashboardStats struct {
	Summary repository.SaleSummary  `json:"summary"`
	Daily   []repository.DailySales `json:"daily"`
}

type DashboardService interface {
	GetStats(startAt, endAt time.Time) (*DashboardStats, error)
}

type dashboardService struct {
	saleRepo repository.SaleRepository
}

func NewDashboardService(saleRepo repository.SaleRepository) DashboardService {
	return &dashboardService{saleRepo: saleRepo}
}

func (s *dashboardService) GetStats(startAt, endAt time.Time) (*DashboardStats, error) {
	summary, err := s.saleRepo.Summary(repository.SaleFilter{
		StartAt: &startAt,
		EndAt:   &endAt,
	})
	if err != nil {
		return nil, err
	}

	daily, err := s.saleRepo.DailyRevenue(startAt, endAt)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Summary: *summary,
		Daily:   daily,
	}, nil
}
