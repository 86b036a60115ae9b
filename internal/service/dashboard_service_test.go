package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	f := newSaleFixture(t)
	f.createSale(t, f.alice, "Alice 1", 2, 10) // 20
	f.createSale(t, f.bob, "Bob 1", 1, 30)     // 30

	svc := NewDashboardService(f.saleRepo)

	now := time.Now()
	stats, err := svc.GetStats(now.AddDate(0, 0, -7), now.Add(time.Minute))
	require.NoError(t, err)

	require.EqualValues(t, 2, stats.Summary.TotalSales)
	require.EqualValues(t, 3, stats.Summary.TotalQty)
	require.EqualValues(t, 50, stats.Summary.TotalRevenue)

	// Everything was created just now, so the series has a single day
	require.Len(t, stats.Daily, 1)
	require.EqualValues(t, 2, stats.Daily[0].Count)
	require.EqualValues(t, 50, stats.Daily[0].Revenue)
}

func TestDashboardStatsEmptyWindow(t *testing.T) {
	f := newSaleFixture(t)
	f.createSale(t, f.alice, "Alice 1", 2, 10)

	svc := NewDashboardService(f.saleRepo)

	// A window in the past sees nothing
	end := time.Now().AddDate(0, 0, -30)
	stats, err := svc.GetStats(end.AddDate(0, 0, -7), end)
	require.NoError(t, err)
	require.EqualValues(t, 0, stats.Summary.TotalSales)
	require.EqualValues(t, 0, stats.Summary.TotalRevenue)
	require.Empty(t, stats.Daily)
}
