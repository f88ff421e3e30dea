package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
)

type stubTemperatureSource struct {
	temp  float64
	err   error
	calls int
}

func (s *stubTemperatureSource) CurrentTemperature(ctx context.Context, lat, lon float64) (float64, error) {
	s.calls++
	return s.temp, s.err
}

func TestAmbientTemperatureCachesWithinTTL(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	src := &stubTemperatureSource{temp: 31.5}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	got, err := service.AmbientTemperature(context.Background(), sqldb, src, 19.0760, 72.8777, now)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if got != 31.5 || src.calls != 1 {
		t.Fatalf("expected fetched 31.5 with one call, got %v after %d calls", got, src.calls)
	}

	src.temp = 99 // cached value must be served instead
	got, err = service.AmbientTemperature(context.Background(), sqldb, src, 19.0760, 72.8777, now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if got != 31.5 || src.calls != 1 {
		t.Fatalf("expected cached 31.5 without new call, got %v after %d calls", got, src.calls)
	}

	got, err = service.AmbientTemperature(context.Background(), sqldb, src, 19.0760, 72.8777, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("expired fetch: %v", err)
	}
	if got != 99 || src.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %v after %d calls", got, src.calls)
	}
}

func TestAmbientTemperaturePropagatesProviderError(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	src := &stubTemperatureSource{err: errors.New("network down")}
	_, err := service.AmbientTemperature(context.Background(), sqldb, src, 0, 0, time.Now())
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}
