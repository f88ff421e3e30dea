package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// weatherCacheTTL bounds how stale a cached temperature may be. Ambient
// temperature only nudges the goal at 25/30 degree thresholds, so an hour
// of staleness is acceptable.
const weatherCacheTTL = time.Hour

type TemperatureSource interface {
	CurrentTemperature(ctx context.Context, latitude, longitude float64) (float64, error)
}

// AmbientTemperature returns the current temperature for a location,
// serving from the weather_cache table when a fresh row exists.
func AmbientTemperature(ctx context.Context, db *sql.DB, src TemperatureSource, latitude, longitude float64, now time.Time) (float64, error) {
	location := fmt.Sprintf("%.4f,%.4f", latitude, longitude)

	var temp float64
	var expiresRaw string
	err := db.QueryRow(`
SELECT temperature_c, expires_at FROM weather_cache WHERE location = ?
`, location).Scan(&temp, &expiresRaw)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("read weather cache for %s: %w", location, err)
	}
	if err == nil {
		expires, parseErr := time.Parse(time.RFC3339, expiresRaw)
		if parseErr == nil && now.UTC().Before(expires) {
			return temp, nil
		}
	}

	temp, err = src.CurrentTemperature(ctx, latitude, longitude)
	if err != nil {
		return 0, err
	}

	fetched := now.UTC()
	if _, err := db.Exec(`
INSERT INTO weather_cache(location, temperature_c, fetched_at, expires_at)
VALUES(?, ?, ?, ?)
ON CONFLICT(location) DO UPDATE SET
  temperature_c=excluded.temperature_c,
  fetched_at=excluded.fetched_at,
  expires_at=excluded.expires_at
`, location, temp, fetched.Format(time.RFC3339), fetched.Add(weatherCacheTTL).Format(time.RFC3339)); err != nil {
		return 0, fmt.Errorf("write weather cache for %s: %w", location, err)
	}
	return temp, nil
}
