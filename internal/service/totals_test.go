package service_test

import (
	"testing"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

func TestDailyTotalsZeroFillsWindow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	now := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)
	logAt(t, sqldb, 300, now.AddDate(0, 0, -2))
	logAt(t, sqldb, 200, now.AddDate(0, 0, -2).Add(time.Hour))
	logAt(t, sqldb, 250, now)

	totals, err := service.DailyTotals(sqldb, 7, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if len(totals) != 7 {
		t.Fatalf("expected exactly 7 entries, got %d", len(totals))
	}
	if totals[0].Date != "2026-08-20" || totals[6].Date != "2026-08-26" {
		t.Fatalf("expected window 2026-08-20..2026-08-26 oldest first, got %s..%s", totals[0].Date, totals[6].Date)
	}
	for i := 1; i < len(totals); i++ {
		if totals[i].Date <= totals[i-1].Date {
			t.Fatalf("totals not chronologically ordered at index %d", i)
		}
	}
	if totals[4].TotalML != 500 {
		t.Fatalf("expected 500 ml two days ago, got %d", totals[4].TotalML)
	}
	if totals[6].TotalML != 250 {
		t.Fatalf("expected 250 ml today, got %d", totals[6].TotalML)
	}
	for _, i := range []int{0, 1, 2, 3, 5} {
		if totals[i].TotalML != 0 {
			t.Fatalf("expected zero total on empty day %s, got %d", totals[i].Date, totals[i].TotalML)
		}
	}
}

func TestDailyTotalsSumMatchesEventLog(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	logged := 0
	for i := 0; i < 5; i++ {
		amount := 100 + i*50
		logAt(t, sqldb, amount, now.AddDate(0, 0, -i))
		logged += amount
	}
	// Outside the 5-day window; must be excluded.
	logAt(t, sqldb, 999, now.AddDate(0, 0, -6))

	totals, err := service.DailyTotals(sqldb, 5, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	sum := 0
	for _, d := range totals {
		sum += d.TotalML
	}
	if sum != logged {
		t.Fatalf("expected window sum %d, got %d", logged, sum)
	}
}

func TestDailyTotalsUsesUTCDayBoundary(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	now := time.Date(2026, 8, 26, 1, 0, 0, 0, time.UTC)
	// 23:30 UTC the previous day belongs to yesterday regardless of the
	// caller's local zone.
	logAt(t, sqldb, 400, time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC))

	totals, err := service.DailyTotals(sqldb, 2, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if totals[0].TotalML != 400 || totals[1].TotalML != 0 {
		t.Fatalf("expected [400 0], got [%d %d]", totals[0].TotalML, totals[1].TotalML)
	}
}

func TestTodayTotalMatchesLastWindowEntry(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	now := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)
	logAt(t, sqldb, 250, now.Add(-2*time.Hour))
	logAt(t, sqldb, 500, now.Add(-time.Hour))

	today, err := service.TodayTotal(sqldb, now)
	if err != nil {
		t.Fatalf("today total: %v", err)
	}
	if today != 750 {
		t.Fatalf("expected 750 ml, got %d", today)
	}

	totals, err := service.DailyTotals(sqldb, 1, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}
	if totals[len(totals)-1].TotalML != today {
		t.Fatalf("today total %d disagrees with daily_totals(1) %d", today, totals[len(totals)-1].TotalML)
	}
}

func TestDailyTotalsRejectsEmptyWindow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, err := service.DailyTotals(sqldb, 0, time.Now()); err == nil {
		t.Fatal("expected error for zero-day window")
	}
}
