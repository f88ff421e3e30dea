package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/db"
	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waterbuddy.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func setTestProfile(t *testing.T, sqldb *sql.DB, weightKg float64, age int, activity string) {
	t.Helper()
	if _, err := service.SetProfile(sqldb, service.SetProfileInput{
		Name:     "Tester",
		Age:      age,
		WeightKg: weightKg,
		Activity: activity,
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
}

func logAt(t *testing.T, sqldb *sql.DB, amountML int, at time.Time) {
	t.Helper()
	if _, err := service.LogIntake(sqldb, amountML, at); err != nil {
		t.Fatalf("log %d ml at %s: %v", amountML, at, err)
	}
}
