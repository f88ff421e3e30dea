package service_test

import (
	"testing"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

func TestCadenceFactorWithoutProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	factor, err := service.CadenceFactor(sqldb, time.Now())
	if err != nil {
		t.Fatalf("cadence factor: %v", err)
	}
	if factor != 1.0 {
		t.Fatalf("expected 1.0 with no profile, got %v", factor)
	}
}

func TestCadenceFactorAggressiveWhenNothingLogged(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	setTestProfile(t, sqldb, 70, 30, "normal")

	factor, err := service.CadenceFactor(sqldb, time.Now())
	if err != nil {
		t.Fatalf("cadence factor: %v", err)
	}
	if factor != 1.20 {
		t.Fatalf("expected 1.20 for zero recent average, got %v", factor)
	}
}

func TestCadenceFactorTiers(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	// Goal is 2450 for this profile; tiers break at 1715 (70%) and 2205 (90%).
	cases := []struct {
		name     string
		dailyML  int
		expected float64
	}{
		{"well below goal", 1000, 1.20},
		{"slightly below goal", 2000, 1.05},
		{"at goal", 2450, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sqldb := newTestDB(t)
			defer sqldb.Close()
			setTestProfile(t, sqldb, 70, 30, "normal")
			for i := 0; i < 3; i++ {
				logAt(t, sqldb, tc.dailyML, now.AddDate(0, 0, -i))
			}

			factor, err := service.CadenceFactor(sqldb, now)
			if err != nil {
				t.Fatalf("cadence factor: %v", err)
			}
			if factor != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, factor)
			}
		})
	}
}

func TestCadenceFactorUsesOnlyLastThreeOfSevenDayWindow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()
	setTestProfile(t, sqldb, 70, 30, "normal")

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	// Heavy intake 4-6 days ago must not rescue a dry recent stretch.
	for i := 4; i <= 6; i++ {
		logAt(t, sqldb, 5000, now.AddDate(0, 0, -i))
	}

	factor, err := service.CadenceFactor(sqldb, now)
	if err != nil {
		t.Fatalf("cadence factor: %v", err)
	}
	if factor != 1.20 {
		t.Fatalf("expected 1.20 when the last 3 days are empty, got %v", factor)
	}
}
