package service_test

import (
	"testing"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

func TestWeeklyEcoBottleEquivalence(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		logAt(t, sqldb, 1000, now.AddDate(0, 0, -i))
	}

	report, err := service.WeeklyEco(sqldb, 0, now)
	if err != nil {
		t.Fatalf("weekly eco: %v", err)
	}
	if report.WeekTotalML != 7000 {
		t.Fatalf("expected 7000 ml week total, got %d", report.WeekTotalML)
	}
	if report.BottleSizeML != service.DefaultBottleSizeML {
		t.Fatalf("expected default bottle size, got %d", report.BottleSizeML)
	}
	if report.BottlesSaved != 14 {
		t.Fatalf("expected 14 bottles, got %v", report.BottlesSaved)
	}
}

func TestBottlesSavedCustomSize(t *testing.T) {
	t.Parallel()
	if got := service.BottlesSaved(3000, 750); got != 4 {
		t.Fatalf("expected 4 bottles, got %v", got)
	}
	if got := service.BottlesSaved(1000, 0); got != 2 {
		t.Fatalf("expected fallback to 500 ml bottles, got %v", got)
	}
}

func TestStatsAveragesOverWindow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	setTestProfile(t, sqldb, 70, 30, "normal")

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	logAt(t, sqldb, 2800, now)
	logAt(t, sqldb, 1400, now.AddDate(0, 0, -1))

	report, err := service.Stats(sqldb, 14, now)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if report.Days != 14 || !report.HasProfile {
		t.Fatalf("unexpected report shape: %+v", report)
	}
	if report.AverageML != 300 { // 4200 / 14
		t.Fatalf("expected 300 ml average, got %v", report.AverageML)
	}
	if report.GoalML != 2450 {
		t.Fatalf("expected goal 2450, got %d", report.GoalML)
	}
}
